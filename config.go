package quoteit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDebounceMillis is the quiet period the debounced saver waits after
// the last edit before persisting.
const DefaultDebounceMillis = 350

// Settings is the optional operator configuration. Everything has a working
// default; a settings file only overrides.
type Settings struct {
	StorePath      string      `yaml:"store_path"`
	DebounceMillis int         `yaml:"debounce_ms"`
	Thresholds     Thresholds  `yaml:"thresholds"`
	RFQ            RFQDefaults `yaml:"rfq"`
}

// RFQDefaults overrides the built-in RFQ template defaults.
type RFQDefaults struct {
	SubjectPrefix string `yaml:"subject_prefix"`
	Greeting      string `yaml:"greeting"`
	Closing       string `yaml:"closing"`
	PaymentLine   string `yaml:"payment_line"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		StorePath:      "quoteit.db",
		DebounceMillis: DefaultDebounceMillis,
		Thresholds:     DefaultThresholds(),
	}
}

// LoadSettings reads a YAML settings file over the defaults. A missing file
// is not an error; malformed YAML or an inverted threshold pair is.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings: %w", err)
	}
	if cfg.DebounceMillis <= 0 {
		cfg.DebounceMillis = DefaultDebounceMillis
	}
	if cfg.Thresholds.TwoQuotes <= 0 || cfg.Thresholds.ThreeQuotes <= cfg.Thresholds.TwoQuotes {
		return DefaultSettings(), fmt.Errorf("parse settings: thresholds must satisfy 0 < two_quotes < three_quotes")
	}
	return cfg, nil
}

// RFQSettings materializes RFQ template settings with the configured
// overrides applied on top of the built-in text.
func (s Settings) RFQSettings() RFQSettings {
	r := DefaultRFQSettings()
	if s.RFQ.SubjectPrefix != "" {
		r.SubjectPrefix = s.RFQ.SubjectPrefix
	}
	if s.RFQ.Greeting != "" {
		r.Greeting = s.RFQ.Greeting
	}
	if s.RFQ.Closing != "" {
		r.Closing = s.RFQ.Closing
	}
	if s.RFQ.PaymentLine != "" {
		r.PaymentLine = s.RFQ.PaymentLine
	}
	return r
}

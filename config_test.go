package quoteit

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quoteit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettingsMissingFile(t *testing.T) {
	cfg, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("a missing settings file is not an error: %v", err)
	}
	if cfg.Thresholds != DefaultThresholds() || cfg.DebounceMillis != DefaultDebounceMillis {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadSettingsPartialOverride(t *testing.T) {
	path := writeSettingsFile(t, `
thresholds:
  two_quotes: 500
  three_quotes: 1000
rfq:
  greeting: Hallo
`)
	cfg, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Thresholds.TwoQuotes != 500 || cfg.Thresholds.ThreeQuotes != 1000 {
		t.Errorf("thresholds not applied: %+v", cfg.Thresholds)
	}
	// Untouched keys keep their defaults.
	if cfg.DebounceMillis != DefaultDebounceMillis || cfg.StorePath != "quoteit.db" {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.RFQSettings().Greeting != "Hallo" {
		t.Errorf("rfq override lost: %+v", cfg.RFQ)
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := writeSettingsFile(t, "thresholds: [broken")
	if _, err := LoadSettings(path); err == nil {
		t.Fatal("malformed YAML must error")
	}
}

func TestLoadSettingsInvertedThresholds(t *testing.T) {
	path := writeSettingsFile(t, `
thresholds:
  two_quotes: 300
  three_quotes: 200
`)
	cfg, err := LoadSettings(path)
	if err == nil {
		t.Fatal("inverted thresholds must error")
	}
	if cfg.Thresholds != DefaultThresholds() {
		t.Errorf("error path must hand back defaults, got %+v", cfg.Thresholds)
	}
}

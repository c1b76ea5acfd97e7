package quoteit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidImport marks documents rejected by the import shape check.
var ErrInvalidImport = errors.New("invalid import document")

// ExportDocument is the on-disk interchange shape. It matches what the
// original Quote-It web app writes, so files move between the two.
type ExportDocument struct {
	ExportedAt string  `json:"exportedAt"`
	Profile    Profile `json:"profile"`
	Data       Session `json:"data"`
}

// Export renders the session and profile as an indented JSON document.
func Export(profile Profile, s Session, now time.Time) ([]byte, error) {
	doc := ExportDocument{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Profile:    profile,
		Data:       s,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return out, nil
}

// ExportFilename names an export file for a given day.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("toolstack-quote-it-%s-%s.json", AppVersion, now.UTC().Format("2006-01-02"))
}

// ImportResult is a successfully parsed import. Profile is nil when the
// document carried none; the caller keeps its current profile then.
type ImportResult struct {
	Session Session
	Profile *Profile
}

// Import parses an export document. Rejection is all-or-nothing: a document
// whose data lacks a request object, or whose vendors is not an array, yields
// ErrInvalidImport and no partial result. Accepted sessions are repaired
// enough to be safe: missing vendor ids are generated, nil collections become
// empty and the stored step is clamped.
func Import(raw []byte) (*ImportResult, error) {
	var probe struct {
		Profile json.RawMessage `json:"profile"`
		Data    *struct {
			Request json.RawMessage `json:"request"`
			Vendors json.RawMessage `json:"vendors"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if probe.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrInvalidImport)
	}
	if !isJSONObject(probe.Data.Request) {
		return nil, fmt.Errorf("%w: data.request must be an object", ErrInvalidImport)
	}
	if !isJSONArray(probe.Data.Vendors) {
		return nil, fmt.Errorf("%w: data.vendors must be an array", ErrInvalidImport)
	}

	var doc ExportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	res := &ImportResult{Session: repairSession(doc.Data)}
	if isJSONObject(probe.Profile) {
		p := doc.Profile
		res.Profile = &p
	}
	return res, nil
}

func isJSONObject(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}

func isJSONArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

// repairSession normalizes an imported session without changing its meaning.
func repairSession(s Session) Session {
	s.Meta.AppID = AppID
	s.Meta.Version = AppVersion
	if s.Meta.UpdatedAt == "" {
		s.Meta.UpdatedAt = nowStamp()
	}
	s.UI.Step = ClampStep(s.UI.Step)
	if s.Vendors == nil {
		s.Vendors = []VendorRecord{}
	}
	for i := range s.Vendors {
		if s.Vendors[i].ID == "" {
			s.Vendors[i].ID = NewID()
		}
		if s.Vendors[i].Country == "" {
			s.Vendors[i].Country = DefaultCountry
		}
		if s.Vendors[i].ContactMethod == "" {
			s.Vendors[i].ContactMethod = ContactNone
		}
	}
	if s.Quotes == nil {
		s.Quotes = []QuoteRecord{}
	}
	// A quote must reference an existing vendor; drop strays so the gates
	// never count them.
	quotes := s.Quotes[:0]
	for _, q := range s.Quotes {
		if _, ok := s.VendorByID(q.VendorID); ok {
			quotes = append(quotes, q)
		}
	}
	s.Quotes = quotes
	if _, ok := s.VendorByID(s.Compliance.SelectedVendorID); !ok {
		s.Compliance.SelectedVendorID = ""
	}
	return s
}

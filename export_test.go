package quoteit

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

var exportNow = time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

func TestExportImportRoundTrip(t *testing.T) {
	s := readySession(t)
	s.UpdateVendor(s.Vendors[0].ID, fullVendor("Alpha GmbH"))
	s.UpsertQuote(s.Vendors[0].ID, QuoteRecord{Amount: "99.00", PaymentTerms: PaymentInvoice30})
	profile := Profile{Org: "ACME", User: "Jo", Language: "DE"}

	raw, err := Export(profile, s, exportNow)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for _, key := range []string{"exportedAt", "profile", "data"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("export document missing %q", key)
		}
	}

	res, err := Import(raw)
	if err != nil {
		t.Fatalf("import of our own export failed: %v", err)
	}
	if res.Profile == nil || !reflect.DeepEqual(*res.Profile, profile) {
		t.Errorf("profile did not round-trip: %+v", res.Profile)
	}
	if !reflect.DeepEqual(res.Session.Vendors, s.Vendors) {
		t.Error("vendors did not round-trip")
	}
	if !reflect.DeepEqual(res.Session.Quotes, s.Quotes) {
		t.Error("quotes did not round-trip")
	}
}

func TestImportRejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"not json":          `{"data":`,
		"missing data":      `{"profile":{}}`,
		"missing request":   `{"data":{"vendors":[]}}`,
		"request not obj":   `{"data":{"request":"hi","vendors":[]}}`,
		"vendors not array": `{"data":{"request":{},"vendors":{"a":1}}}`,
		"vendors missing":   `{"data":{"request":{}}}`,
	}
	for name, raw := range cases {
		res, err := Import([]byte(raw))
		if err == nil {
			t.Errorf("%s: expected rejection", name)
			continue
		}
		if !errors.Is(err, ErrInvalidImport) {
			t.Errorf("%s: expected ErrInvalidImport, got %v", name, err)
		}
		if res != nil {
			t.Errorf("%s: rejection must not produce a partial result", name)
		}
	}
}

func TestImportLeavesStateUntouched(t *testing.T) {
	s := readySession(t)
	before, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Import([]byte(`{"data":{"request":{},"vendors":"nope"}}`)); err == nil {
		t.Fatal("expected rejection")
	}

	after, _ := json.Marshal(s)
	if string(before) != string(after) {
		t.Fatal("a failed import must leave the session unchanged")
	}
}

func TestImportRepairsAcceptedSession(t *testing.T) {
	raw := `{
		"data": {
			"ui": {"step": 12},
			"request": {"title": "Laptops"},
			"vendors": [{"name": "Alpha"}],
			"quotes": [
				{"vendorId": "ghost", "amount": "10"}
			],
			"compliance": {"selectedVendorId": "ghost"}
		}
	}`
	res, err := Import([]byte(raw))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if res.Profile != nil {
		t.Error("no profile in document, expected nil")
	}
	s := res.Session
	if s.UI.Step != StepPack {
		t.Errorf("stored step must be clamped, got %d", s.UI.Step)
	}
	if s.Vendors[0].ID == "" {
		t.Error("missing vendor ids are generated")
	}
	if s.Vendors[0].Country != DefaultCountry || s.Vendors[0].ContactMethod != ContactNone {
		t.Errorf("vendor defaults not applied: %+v", s.Vendors[0])
	}
	if len(s.Quotes) != 0 {
		t.Error("quotes referencing unknown vendors are dropped")
	}
	if s.Compliance.SelectedVendorID != "" {
		t.Error("dangling selection is cleared")
	}
}

func TestExportFilename(t *testing.T) {
	got := ExportFilename(exportNow)
	if got != "toolstack-quote-it-v1-2026-08-28.json" {
		t.Errorf("got %q", got)
	}
	if !strings.HasSuffix(got, ".json") {
		t.Error("export is a JSON document")
	}
}

package quoteit

import "testing"

func TestRequiredQuoteCount(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	tests := []struct {
		cost *float64
		want int
	}{
		{nil, 3},
		{f(-1), 3},
		{f(0), 1},
		{f(99), 1},
		{f(99.99), 1},
		{f(100), 2},
		{f(199.99), 2},
		{f(200), 3},
		{f(100000), 3},
	}
	for _, tc := range tests {
		if got := RequiredQuoteCount(tc.cost); got != tc.want {
			t.Errorf("RequiredQuoteCount(%v) = %d, want %d", tc.cost, got, tc.want)
		}
	}
}

func TestRequiredQuoteCountFor(t *testing.T) {
	tests := []struct {
		cost string
		want int
	}{
		{"", 3},
		{"not a number", 3},
		{"50", 1},
		{"150", 2},
		{"250", 3},
	}
	for _, tc := range tests {
		r := RequestRecord{EstimatedCost: tc.cost}
		if got := RequiredQuoteCountFor(r); got != tc.want {
			t.Errorf("RequiredQuoteCountFor(%q) = %d, want %d", tc.cost, got, tc.want)
		}
	}
}

func TestResizeGrows(t *testing.T) {
	s := NewSession()
	s.SetRequest(RequestRecord{EstimatedCost: "50"}) // need 1
	if got := s.activeVendorCount(); got != 1 {
		t.Fatalf("expected 1 slot after shrink, got %d", got)
	}
	s.SetRequest(RequestRecord{EstimatedCost: "500"}) // need 3
	if got := s.activeVendorCount(); got != 3 {
		t.Fatalf("expected 3 slots after grow, got %d", got)
	}
}

func TestResizeRemovesOnlyEmptyTailSlots(t *testing.T) {
	s := NewSession() // 3 blank slots
	s.Vendors[2].Name = "Gamma"
	s.SetRequest(RequestRecord{EstimatedCost: "50"}) // need 1

	// The named slot survives; only blank slots were removable.
	found := false
	for _, v := range s.Vendors {
		if v.Name == "Gamma" {
			found = true
		}
	}
	if !found {
		t.Fatal("non-empty slot must never be auto-removed")
	}
	if got := s.activeVendorCount(); got != 1 {
		t.Fatalf("expected shrink to 1 active slot, got %d", got)
	}
}

func TestResizeKeepsNotesOnlySlot(t *testing.T) {
	s := NewSession()
	s.Vendors[1].Notes = "call back next week"
	s.SetRequest(RequestRecord{EstimatedCost: "50"}) // need 1

	found := false
	for _, v := range s.Vendors {
		if v.Notes == "call back next week" {
			found = true
		}
	}
	if !found {
		t.Fatal("a notes-only slot counts as non-empty and must be preserved")
	}
}

func TestResizeKeepsQuotedSlot(t *testing.T) {
	s := NewSession()
	quoted := s.Vendors[2].ID
	s.UpsertQuote(quoted, QuoteRecord{Amount: "10"})
	s.SetRequest(RequestRecord{EstimatedCost: "50"}) // need 1

	if _, ok := s.VendorByID(quoted); !ok {
		t.Fatal("a slot referenced by a quote must never be auto-removed")
	}
}

func TestResizeNeverBelowOneSlot(t *testing.T) {
	s := NewSession()
	s.SetRequest(RequestRecord{EstimatedCost: "10"})
	if got := s.activeVendorCount(); got < 1 {
		t.Fatalf("resize must keep at least one active slot, got %d", got)
	}
}

func TestResizeCountsOnlyActiveSlots(t *testing.T) {
	s := NewSession()
	s.Vendors[0].Inactive = true
	s.SetRequest(RequestRecord{EstimatedCost: "50"})  // need 1 active
	s.SetRequest(RequestRecord{EstimatedCost: "500"}) // need 3 active

	if got := s.activeVendorCount(); got != 3 {
		t.Fatalf("inactive slots do not satisfy the requirement, got %d active", got)
	}
	for _, v := range s.Vendors {
		if v.Inactive {
			return // retained for history
		}
	}
	t.Fatal("resize must not remove inactive slots")
}

func TestThresholdsConfigurable(t *testing.T) {
	custom := Thresholds{TwoQuotes: 500, ThreeQuotes: 1000}
	n := 750.0
	if got := custom.RequiredQuoteCount(&n); got != 2 {
		t.Errorf("custom thresholds ignored, got %d", got)
	}
}

func TestSetRequestWithCustomThresholds(t *testing.T) {
	custom := Thresholds{TwoQuotes: 500, ThreeQuotes: 1000}

	s := NewSession()
	s.SetRequestWith(custom, RequestRecord{EstimatedCost: "750"})
	if got := s.activeVendorCount(); got != 2 {
		t.Fatalf("expected 2 slots under the 500/1000 tiers, got %d", got)
	}

	// Under the default tiers the same cost would need three.
	s = NewSession()
	s.SetRequestWith(custom, RequestRecord{EstimatedCost: "400"})
	if got := s.activeVendorCount(); got != 1 {
		t.Fatalf("expected 1 slot under the 500/1000 tiers, got %d", got)
	}
}

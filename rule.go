package quoteit

// Thresholds are the spend tiers driving how many independent quotes a
// request needs. Amounts below TwoQuotes need one quote, amounts below
// ThreeQuotes need two, everything else needs three.
type Thresholds struct {
	TwoQuotes   float64 `yaml:"two_quotes"`
	ThreeQuotes float64 `yaml:"three_quotes"`
}

// DefaultThresholds returns the standard 100/200 policy.
func DefaultThresholds() Thresholds {
	return Thresholds{TwoQuotes: 100, ThreeQuotes: 200}
}

// RequiredQuoteCount derives the quote count for an estimated cost. Absent or
// negative cost yields the conservative maximum of three.
func (t Thresholds) RequiredQuoteCount(cost *float64) int {
	switch {
	case cost == nil || *cost < 0:
		return 3
	case *cost < t.TwoQuotes:
		return 1
	case *cost < t.ThreeQuotes:
		return 2
	default:
		return 3
	}
}

// RequiredQuoteCount applies the default thresholds.
func RequiredQuoteCount(cost *float64) int {
	return DefaultThresholds().RequiredQuoteCount(cost)
}

// RequiredQuoteCountFor derives the quote count from a request record,
// treating an unparsable estimated cost as absent.
func RequiredQuoteCountFor(r RequestRecord) int {
	return DefaultThresholds().RequiredQuoteCountFor(r)
}

// RequiredQuoteCountFor is RequiredQuoteCount over the request's entered
// estimated cost.
func (t Thresholds) RequiredQuoteCountFor(r RequestRecord) int {
	if n, ok := ToNumber(r.EstimatedCost); ok {
		return t.RequiredQuoteCount(&n)
	}
	return t.RequiredQuoteCount(nil)
}

// isEmptySlot reports whether a vendor slot carries no user-entered data.
// Any non-blank field, notes included, disqualifies a slot from automatic
// removal.
func isEmptySlot(v VendorRecord) bool {
	return Normalize(v.Name) == "" &&
		Normalize(v.Email) == "" &&
		Normalize(v.Phone) == "" &&
		Normalize(v.Website) == "" &&
		Normalize(v.Notes) == "" &&
		len(v.Tags) == 0 &&
		Normalize(v.Category) == "" &&
		Normalize(v.City) == ""
}

// Resize grows or shrinks the vendor slot list to match the required quote
// count for the current request. Blank slots are appended when the active
// count falls short; empty, unreferenced slots are removed from the tail when
// it exceeds the requirement. Never drops below one active slot and never
// touches a slot that holds data, has a quote, or is the compliance
// selection.
func (s *Session) Resize(t Thresholds) {
	need := t.RequiredQuoteCountFor(s.Request)

	for s.activeVendorCount() < need {
		s.Vendors = append(s.Vendors, NewVendor())
	}

	for i := len(s.Vendors) - 1; i >= 0 && s.activeVendorCount() > need && s.activeVendorCount() > 1; i-- {
		v := s.Vendors[i]
		if v.Inactive || !isEmptySlot(v) || s.vendorReferenced(v.ID) {
			continue
		}
		s.Vendors = append(s.Vendors[:i], s.Vendors[i+1:]...)
	}
}

func (s *Session) activeVendorCount() int {
	n := 0
	for _, v := range s.Vendors {
		if !v.Inactive {
			n++
		}
	}
	return n
}

// vendorReferenced reports whether a vendor is held by a quote or by the
// compliance selection.
func (s *Session) vendorReferenced(id string) bool {
	if s.Compliance.SelectedVendorID == id {
		return true
	}
	for _, q := range s.Quotes {
		if q.VendorID == id {
			return true
		}
	}
	return false
}

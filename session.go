package quoteit

import "sort"

// touch refreshes the session's updatedAt stamp. Every mutation below is a
// full replace of the owning field, so a half-applied edit is never visible.
func (s *Session) touch() {
	s.Meta.AppID = AppID
	s.Meta.Version = AppVersion
	s.Meta.UpdatedAt = nowStamp()
}

// SetStep records the user's navigation target, clamped to the valid range.
// Gating is advisory (CanNavigate); navigation itself never fails.
func (s *Session) SetStep(n int) {
	s.UI.Step = ClampStep(n)
	s.touch()
}

// SetRequest replaces the request record under the default thresholds. When
// the edit changes the derived quote requirement, the vendor slot list is
// resized to match.
func (s *Session) SetRequest(r RequestRecord) {
	s.SetRequestWith(DefaultThresholds(), r)
}

// SetRequestWith is SetRequest under a specific threshold policy.
func (s *Session) SetRequestWith(t Thresholds, r RequestRecord) {
	before := t.RequiredQuoteCountFor(s.Request)
	s.Request = r
	if t.RequiredQuoteCountFor(s.Request) != before {
		s.Resize(t)
	}
	s.touch()
}

// SetRFQSettings replaces the RFQ template settings.
func (s *Session) SetRFQSettings(r RFQSettings) {
	s.RFQ = r
	s.touch()
}

// AddVendor appends a blank vendor slot and returns its id.
func (s *Session) AddVendor() string {
	v := NewVendor()
	s.Vendors = append(s.Vendors, v)
	s.touch()
	return v.ID
}

// QuickAddVendor validates the minimal contact fields and appends a vendor.
// On validation failure nothing changes and the field errors are returned.
func (s *Session) QuickAddVendor(name, email, phone string) (string, error) {
	if ve := ValidateQuickAddVendor(name, email, phone); ve.HasErrors() {
		return "", ve
	}
	v := NewVendor()
	v.Name = Normalize(name)
	v.Email = Normalize(email)
	v.Phone = Normalize(phone)
	if i := s.firstEmptySlot(); i >= 0 {
		v.ID = s.Vendors[i].ID
		s.Vendors[i] = v
	} else {
		s.Vendors = append(s.Vendors, v)
	}
	s.touch()
	return v.ID, nil
}

// UpdateVendor replaces a vendor's fields, keeping its id. Reports false when
// the id is unknown.
func (s *Session) UpdateVendor(id string, v VendorRecord) bool {
	for i := range s.Vendors {
		if s.Vendors[i].ID == id {
			v.ID = id
			s.Vendors[i] = v
			s.touch()
			return true
		}
	}
	return false
}

// DeleteVendor removes a vendor and cascades: its quote is dropped and the
// compliance selection is cleared if it pointed here. Unknown ids are a
// no-op.
func (s *Session) DeleteVendor(id string) {
	kept := s.Vendors[:0]
	for _, v := range s.Vendors {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(s.Vendors) {
		return
	}
	s.Vendors = kept

	quotes := s.Quotes[:0]
	for _, q := range s.Quotes {
		if q.VendorID != id {
			quotes = append(quotes, q)
		}
	}
	s.Quotes = quotes

	if s.Compliance.SelectedVendorID == id {
		s.Compliance = ComplianceRecord{}
	}
	s.touch()
}

// DeactivateVendor marks a vendor inactive instead of deleting it, keeping
// its quote for history. Reports false when the id is unknown.
func (s *Session) DeactivateVendor(id string) bool {
	for i := range s.Vendors {
		if s.Vendors[i].ID == id {
			s.Vendors[i].Inactive = true
			s.touch()
			return true
		}
	}
	return false
}

// VendorByID looks up a vendor record.
func (s Session) VendorByID(id string) (VendorRecord, bool) {
	for _, v := range s.Vendors {
		if v.ID == id {
			return v, true
		}
	}
	return VendorRecord{}, false
}

// QuoteFor looks up the quote recorded for a vendor.
func (s Session) QuoteFor(vendorID string) (QuoteRecord, bool) {
	for _, q := range s.Quotes {
		if q.VendorID == vendorID {
			return q, true
		}
	}
	return QuoteRecord{}, false
}

// UpsertQuote records or replaces the single quote for a vendor. Reports
// false when the vendor does not exist; a quote never outlives its vendor.
func (s *Session) UpsertQuote(vendorID string, q QuoteRecord) bool {
	if _, ok := s.VendorByID(vendorID); !ok {
		return false
	}
	q.VendorID = vendorID
	for i := range s.Quotes {
		if s.Quotes[i].VendorID == vendorID {
			s.Quotes[i] = q
			s.touch()
			return true
		}
	}
	s.Quotes = append(s.Quotes, q)
	s.touch()
	return true
}

// RemoveQuote drops the quote for a vendor, if any.
func (s *Session) RemoveQuote(vendorID string) {
	kept := s.Quotes[:0]
	for _, q := range s.Quotes {
		if q.VendorID != vendorID {
			kept = append(kept, q)
		}
	}
	s.Quotes = kept
	s.touch()
}

// SelectVendor records the compliance decision's vendor.
func (s *Session) SelectVendor(vendorID string) {
	s.Compliance.SelectedVendorID = vendorID
	s.touch()
}

// SetJustification records why the selected vendor won.
func (s *Session) SetJustification(text string) {
	s.Compliance.Justification = text
	s.touch()
}

// MarkRFQSent records how a vendor was contacted once its RFQ went out.
// Blank method defaults to email.
func (s *Session) MarkRFQSent(vendorID, method string) bool {
	if method == "" {
		method = ContactEmail
	}
	for i := range s.Vendors {
		if s.Vendors[i].ID == vendorID {
			s.Vendors[i].ContactMethod = method
			s.touch()
			return true
		}
	}
	return false
}

// Reset returns the session to its empty defaults.
func (s *Session) Reset() {
	*s = NewSession()
}

func (s *Session) firstEmptySlot() int {
	for i, v := range s.Vendors {
		if !v.Inactive && isEmptySlot(v) {
			return i
		}
	}
	return -1
}

// QuoteRow is one line of the quotes comparison view.
type QuoteRow struct {
	VendorID     string   `json:"vendorId"`
	VendorName   string   `json:"vendorName"`
	Email        string   `json:"email"`
	Amount       *float64 `json:"amount"`
	LeadTime     string   `json:"leadTime"`
	Validity     string   `json:"validity"`
	PaymentTerms string   `json:"paymentTerms"`
	Proof        string   `json:"proof"`
	Notes        string   `json:"notes"`
}

// QuoteRows builds the comparison view: one row per named vendor, sorted
// ascending by amount with unpriced vendors last. Equal amounts keep vendor
// order.
func QuoteRows(s Session) []QuoteRow {
	rows := []QuoteRow{}
	for _, v := range s.Vendors {
		if Normalize(v.Name) == "" {
			continue
		}
		row := QuoteRow{
			VendorID:   v.ID,
			VendorName: v.Name,
			Email:      v.Email,
		}
		if q, ok := s.QuoteFor(v.ID); ok {
			if n, ok := ToNumber(q.Amount); ok {
				row.Amount = &n
			}
			row.LeadTime = q.LeadTime
			row.Validity = q.Validity
			row.PaymentTerms = q.PaymentTerms
			row.Proof = q.Proof
			row.Notes = q.Notes
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Amount, rows[j].Amount
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return rows
}

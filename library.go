package quoteit

import "time"

// UpsertLibraryEntry adds an entry to the vendor library or, when its match
// key collides with an existing entry, updates that entry in place (keeping
// its id). The touched entry's updatedAt is set from now.
func UpsertLibraryEntry(library []VendorLibraryEntry, e VendorLibraryEntry, now time.Time) []VendorLibraryEntry {
	e.UpdatedAt = now.UTC().Format(time.RFC3339)
	if e.Country == "" {
		e.Country = DefaultCountry
	}

	key := e.MatchKey()
	if key != "" {
		for i := range library {
			if library[i].MatchKey() == key {
				e.ID = library[i].ID
				library[i] = e
				return library
			}
		}
	}
	if e.ID == "" {
		e.ID = NewID()
	}
	return append(library, e)
}

// RemoveLibraryEntry drops an entry by id.
func RemoveLibraryEntry(library []VendorLibraryEntry, id string) []VendorLibraryEntry {
	out := library[:0]
	for _, e := range library {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// LibraryEntryFromVendor captures a session vendor into library shape. The
// per-request contact method does not travel with it.
func LibraryEntryFromVendor(v VendorRecord, now time.Time) VendorLibraryEntry {
	return VendorLibraryEntry{
		ID:        NewID(),
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		Website:   v.Website,
		Notes:     v.Notes,
		Tags:      append([]string(nil), v.Tags...),
		Category:  v.Category,
		City:      v.City,
		Country:   v.Country,
		UpdatedAt: now.UTC().Format(time.RFC3339),
	}
}

// Vendor converts a library entry into a fresh session vendor record.
func (e VendorLibraryEntry) Vendor() VendorRecord {
	v := VendorRecord{
		ID:            NewID(),
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Website:       e.Website,
		Notes:         e.Notes,
		Tags:          append([]string(nil), e.Tags...),
		Category:      e.Category,
		City:          e.City,
		Country:       e.Country,
		ContactMethod: ContactNone,
	}
	if v.Country == "" {
		v.Country = DefaultCountry
	}
	return v
}

// PromoteVendor pulls a library entry into the session. An existing session
// vendor with the same match key is updated instead of duplicated; otherwise
// the first empty slot is filled, and only then is a new slot appended.
// Returns the session vendor id.
func (s *Session) PromoteVendor(e VendorLibraryEntry) string {
	v := e.Vendor()

	if key := v.MatchKey(); key != "" {
		for i := range s.Vendors {
			if s.Vendors[i].MatchKey() == key {
				v.ID = s.Vendors[i].ID
				v.ContactMethod = s.Vendors[i].ContactMethod
				v.Inactive = s.Vendors[i].Inactive
				s.Vendors[i] = v
				s.touch()
				return v.ID
			}
		}
	}
	if i := s.firstEmptySlot(); i >= 0 {
		v.ID = s.Vendors[i].ID
		s.Vendors[i] = v
	} else {
		s.Vendors = append(s.Vendors, v)
	}
	s.touch()
	return v.ID
}

// SaveVendorToLibrary captures a session vendor into the library,
// deduplicating by match key.
func (s Session) SaveVendorToLibrary(library []VendorLibraryEntry, vendorID string, now time.Time) ([]VendorLibraryEntry, bool) {
	v, ok := s.VendorByID(vendorID)
	if !ok {
		return library, false
	}
	return UpsertLibraryEntry(library, LibraryEntryFromVendor(v, now), now), true
}

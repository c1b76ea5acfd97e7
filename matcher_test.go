package quoteit

import "testing"

func libEntry(name, category, email, website string, tags ...string) VendorLibraryEntry {
	return VendorLibraryEntry{
		ID:       NewID(),
		Name:     name,
		Category: category,
		Email:    email,
		Website:  website,
		Tags:     tags,
	}
}

func TestRankVendorsScoring(t *testing.T) {
	library := []VendorLibraryEntry{
		libEntry("NoMatch", "", "", ""),                                     // 0
		libEntry("CatOnly", "IT", "", ""),                                   // 3
		libEntry("Contactable", "", "a@x.de", "https://x.de"),               // 2
		libEntry("Everything", "it", "b@y.de", "y.de", "laptops", "lenovo"), // 3+2+2+1+1 = 9
	}

	got := RankVendors(library, "IT", []string{"Laptops", "lenovo"}, 0)
	if len(got) != 3 {
		t.Fatalf("expected top 3, got %d", len(got))
	}
	if got[0].Name != "Everything" {
		t.Errorf("expected Everything first, got %s", got[0].Name)
	}
	if got[1].Name != "CatOnly" {
		t.Errorf("expected CatOnly second, got %s", got[1].Name)
	}
	if got[2].Name != "Contactable" {
		t.Errorf("expected Contactable third, got %s", got[2].Name)
	}
}

func TestRankVendorsEmptyCategoryNeverMatches(t *testing.T) {
	library := []VendorLibraryEntry{
		libEntry("BlankCat", "", "", ""),
		libEntry("WithMail", "", "a@x.de", ""),
	}
	got := RankVendors(library, "", nil, 0)
	// A blank requested category scores nothing even against blank entries.
	if got[0].Name != "WithMail" {
		t.Errorf("expected the email-scored entry first, got %s", got[0].Name)
	}
}

func TestRankVendorsStableOnTies(t *testing.T) {
	library := []VendorLibraryEntry{
		libEntry("First", "", "", ""),
		libEntry("Second", "", "", ""),
		libEntry("Third", "", "", ""),
	}
	got := RankVendors(library, "", nil, 0)
	if got[0].Name != "First" || got[1].Name != "Second" || got[2].Name != "Third" {
		t.Errorf("equal scores must keep library order, got %v %v %v",
			got[0].Name, got[1].Name, got[2].Name)
	}

	// Permuting two zero-delta entries preserves their new relative order.
	library[0], library[1] = library[1], library[0]
	got = RankVendors(library, "", nil, 0)
	if got[0].Name != "Second" || got[1].Name != "First" {
		t.Errorf("reordered input should reorder ties, got %v %v", got[0].Name, got[1].Name)
	}
}

func TestRankVendorsLimits(t *testing.T) {
	if got := RankVendors(nil, "IT", nil, 0); len(got) != 0 {
		t.Errorf("empty library should return empty list, got %d entries", len(got))
	}
	library := []VendorLibraryEntry{
		libEntry("A", "", "", ""),
		libEntry("B", "", "", ""),
	}
	if got := RankVendors(library, "", nil, 0); len(got) != 2 {
		t.Errorf("library smaller than limit returns everything, got %d", len(got))
	}
	if got := RankVendors(library, "", nil, 1); len(got) != 1 {
		t.Errorf("explicit limit honored, got %d", len(got))
	}
}

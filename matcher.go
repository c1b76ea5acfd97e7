package quoteit

import (
	"sort"
	"strings"
)

// DefaultShortlistSize is how many library entries RankVendors returns unless
// the caller asks for fewer.
const DefaultShortlistSize = 3

// Scoring weights for the library shortlist.
const (
	scoreCategory = 3
	scoreTag      = 2
	scoreEmail    = 1
	scoreWebsite  = 1
)

// RankVendors scores the library against the requested category and required
// tags and returns the best entries, highest score first. Ties keep the
// library's original relative order. A zero score still ranks; there is no
// cutoff. limit <= 0 means DefaultShortlistSize.
func RankVendors(library []VendorLibraryEntry, category string, requiredTags []string, limit int) []VendorLibraryEntry {
	if limit <= 0 {
		limit = DefaultShortlistSize
	}

	cat := strings.ToLower(Normalize(category))
	tags := make([]string, 0, len(requiredTags))
	for _, t := range requiredTags {
		if lt := strings.ToLower(Normalize(t)); lt != "" {
			tags = append(tags, lt)
		}
	}

	type scored struct {
		entry VendorLibraryEntry
		score int
	}
	rows := make([]scored, 0, len(library))
	for _, e := range library {
		s := 0
		// Empty requested category never matches.
		if cat != "" && strings.ToLower(Normalize(e.Category)) == cat {
			s += scoreCategory
		}
		for _, want := range tags {
			for _, have := range e.Tags {
				if strings.ToLower(Normalize(have)) == want {
					s += scoreTag
					break
				}
			}
		}
		if Normalize(e.Email) != "" {
			s += scoreEmail
		}
		if Normalize(e.Website) != "" {
			s += scoreWebsite
		}
		rows = append(rows, scored{entry: e, score: s})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].score > rows[j].score })

	if limit > len(rows) {
		limit = len(rows)
	}
	out := make([]VendorLibraryEntry, 0, limit)
	for _, r := range rows[:limit] {
		out = append(out, r.entry)
	}
	return out
}

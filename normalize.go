package quoteit

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Deliberately loose: "looks like an email" is the contract, full RFC 5322
// parsing would reject addresses users legitimately paste in.
var emailRe = regexp.MustCompile(`.+@.+\..+`)

// Normalize strips leading and trailing whitespace. Idempotent.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// ParseTags splits a comma-separated tag string, normalizing each part and
// dropping empties. First-seen order is preserved; duplicates are kept, so
// callers de-duplicate where it matters.
func ParseTags(s string) []string {
	out := []string{}
	for _, part := range strings.Split(Normalize(s), ",") {
		if t := Normalize(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailRe.MatchString(Normalize(s))
}

// ToNumber coerces a free-form entry to a finite float. Blank or unparsable
// input reports false, never an error.
func ToNumber(s string) (float64, bool) {
	t := Normalize(s)
	if t == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// FormatMoney renders an amount with two decimals, "-" when absent.
func FormatMoney(n *float64) string {
	if n == nil {
		return "-"
	}
	return strconv.FormatFloat(*n, 'f', 2, 64)
}

// matchKey derives the identity used to decide whether two vendor entries
// denote the same real-world vendor: email, else website without protocol,
// else name, all lowercased.
func matchKey(name, email, website string) string {
	if e := strings.ToLower(Normalize(email)); e != "" {
		return e
	}
	w := strings.ToLower(Normalize(website))
	w = strings.TrimPrefix(w, "https://")
	w = strings.TrimPrefix(w, "http://")
	if w != "" {
		return w
	}
	return strings.ToLower(Normalize(name))
}

// MatchKey returns the de-duplication key for a session vendor.
func (v VendorRecord) MatchKey() string {
	return matchKey(v.Name, v.Email, v.Website)
}

// MatchKey returns the de-duplication key for a library entry.
func (e VendorLibraryEntry) MatchKey() string {
	return matchKey(e.Name, e.Email, e.Website)
}

// UniqueBy keeps the first occurrence per key, dropping items whose key is
// empty or already seen.
func UniqueBy[T any](items []T, key func(T) string) []T {
	seen := make(map[string]bool, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
	}
	return out
}

package utils

import "strings"

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeSeats uppercases and trims seat labels, dropping empties.
func NormalizeSeats(seats []string) []string {
	out := make([]string, 0, len(seats))
	for _, s := range seats {
		x := strings.ToUpper(strings.TrimSpace(s))
		if x != "" {
			out = append(out, x)
		}
	}
	return out
}

// HasDuplicateSeats reports whether the list contains the same label twice,
// ignoring case and surrounding whitespace.
func HasDuplicateSeats(seats []string) bool {
	seen := map[string]bool{}
	for _, v := range seats {
		k := strings.ToUpper(strings.TrimSpace(v))
		if k == "" {
			continue
		}
		if seen[k] {
			return true
		}
		seen[k] = true
	}
	return false
}

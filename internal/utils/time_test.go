package utils

import "testing"

func TestParseAndFormatDateRoundTrip(t *testing.T) {
	d, err := ParseDate(" 2025-06-01 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(d); got != "2025-06-01" {
		t.Fatalf("FormatDate = %q, want 2025-06-01", got)
	}
}

func TestValidDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-06-01", true},
		{"2025-13-01", false},
		{"01-06-2025", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidDate(c.in); got != c.ok {
			t.Errorf("ValidDate(%q) = %v, want %v", c.in, got, c.ok)
		}
	}
}

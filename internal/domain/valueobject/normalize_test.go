// Package valueobject contains domain value objects for the repair-shop ledger.
package valueobject

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ali Veli", "ali veli"},
		{"  Ali Veli  ", "ali veli"},
		{"ALI VELI", "ali veli"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"05551234567", "05551234567"},
		{"0555 123 45 67", "05551234567"},
		{"+90 (555) 123-45-67", "905551234567"},
		{"", ""},
		{"no digits", ""},
	}

	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

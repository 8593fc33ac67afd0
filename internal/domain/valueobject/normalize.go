// Package valueobject contains domain value objects for the repair-shop ledger.
package valueobject

import "strings"

// NormalizeName canonicalizes a party name for matching: trimmed and
// case-folded. Matching is exact over the normalized form.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizePhone canonicalizes a phone number for matching by keeping digits
// only. "0555 123 45 67" and "05551234567" compare equal.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

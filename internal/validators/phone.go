package validators

import "strings"

// NormalizePhone strips everything but digits. Guest clients are keyed by
// this form, so "(11) 98765-4321" and "11987654321" are the same person.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhone accepts Brazilian landlines and mobiles, with or without
// country code.
func IsValidPhone(raw string) bool {
	digits := NormalizePhone(raw)
	switch len(digits) {
	case 10, 11:
		return true
	case 12, 13:
		return strings.HasPrefix(digits, "55")
	default:
		return false
	}
}

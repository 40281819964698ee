package model

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^(?:\+234|0)\d{10}$`)

// NormalizePhone strips every non-digit from a phone number.
func NormalizePhone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether s matches the Nigerian local form, 0 followed by
// ten digits, once non-digits are stripped. The +234 alternative of the
// pattern cannot match after stripping, so international numbers are rejected.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(NormalizePhone(s))
}

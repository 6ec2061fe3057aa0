package utils

import "strings"

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitName splits a full name into first and last on the first space.
// "Abebe Kebede Alemu" -> ("Abebe", "Kebede Alemu").
func SplitName(full string) (first, last string) {
	full = NormalizeSpace(full)
	if full == "" {
		return "", ""
	}
	parts := strings.SplitN(full, " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

// DemoEmail derives the placeholder email for a fallback identity from the
// phone number ("+251911234567" -> "251911234567@demo.com").
func DemoEmail(phone string) string {
	return strings.ReplaceAll(strings.TrimSpace(phone), "+", "") + "@demo.com"
}

package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// NowISO formats the current time the way booking timestamps are stored.
func NowISO() string {
	return NowUTC().Format(time.RFC3339)
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD travel date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBirr renders an amount with the ETB currency suffix, dropping a
// trailing ".00" for whole amounts.
func FormatBirr(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	s = strings.TrimSuffix(s, ".00")
	return s + " ETB"
}

// ParsePrice parses the decimal-as-string price carried on routes ("850").
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	return strconv.ParseFloat(s, 64)
}

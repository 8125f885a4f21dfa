package pure_utils

import (
	"strconv"
	"strings"
)

// ParseNumber strips thousands separators, currency symbols and surrounding
// whitespace, then parses as floating point. Returns nil on failure, never NaN.
func ParseNumber(s string) *float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', '$', '€', '£', '%', ' ':
			return -1
		}
		return r
	}, trimmed)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &value
}

// ParseBool matches {true, yes, 1, y, on} case-insensitively; everything else
// is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "y", "on":
		return true
	}
	return false
}

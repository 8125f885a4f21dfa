package pure_utils

import (
	"fmt"
	"strings"
)

// NormalizePhone strips non-digits (preserving a leading +) and formats US
// numbers: 10 digits as (XXX) XXX-XXXX, 11 digits with a leading 1 as
// +1 (XXX) XXX-XXXX. Anything else is returned as bare digits, with the + kept
// if present.
func NormalizePhone(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	hasPlus := strings.HasPrefix(trimmed, "+")
	var digits strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case len(d) == 10:
		return fmt.Sprintf("(%s) %s-%s", d[0:3], d[3:6], d[6:10])
	case len(d) == 11 && d[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", d[1:4], d[4:7], d[7:11])
	case hasPlus:
		return "+" + d
	default:
		return d
	}
}

package generator

import (
	"math"
	"strings"
	"unicode"
)

// parseLeadingInt reads an optional sign and the leading run of digits of s
// the way HTML numeric attributes are commonly read by page scripts: "12px"
// is 12, "4.9" is 4, "0x1f" is 31 and anything without leading digits is NaN.
func parseLeadingInt(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := 1.0
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	base := 10.0
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	var (
		n      float64
		digits int
	)
	for _, r := range s {
		d := digitValue(r)
		if d < 0 || float64(d) >= base {
			break
		}
		n = n*base + float64(d)
		digits++
	}
	if digits == 0 {
		return math.NaN()
	}
	return sign * n
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

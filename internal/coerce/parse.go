package coerce

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseNumberPrefix parses the longest leading decimal literal of s, after
// skipping leading white space, in the manner of JavaScript's parseFloat:
// "3.14abc" yields 3.14, "  -2e3x" yields -2000 and "Infinity" yields +Inf.
// It reports false when s does not start with a number.
func ParseNumberPrefix(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, isSpace)

	i := 0
	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	if strings.HasPrefix(s[i:], "Infinity") {
		if negative {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// Out of range literals saturate to ±Inf or 0.
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

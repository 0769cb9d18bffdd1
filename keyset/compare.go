package keyset

import (
	"strconv"
	"strings"
)

// Compare orders two labels the way the dictionary orders its keys:
// labels made of ASCII digits only compare by integer value, everything
// else compares lexicographically. Returns -1, 0, or +1.
//
// Mixed pairs ("42" vs "apple") and purely numeric pairs that overflow
// int64 fall back to lexicographic order, so Compare is total and
// deterministic for any pair of strings.
//
// Complexity: O(len(a)+len(b)).
func Compare(a, b string) int {
	if isNumeric(a) && isNumeric(b) {
		av, aErr := strconv.ParseInt(a, 10, 64)
		bv, bErr := strconv.ParseInt(b, 10, 64)
		if aErr == nil && bErr == nil {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(a, b)
}

// isNumeric reports whether s is non-empty and consists of ASCII digits only.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

package datatype

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// maxDecimals bounds decimal places so 10^decimals always fits an int64.
const maxDecimals = 18

var errOverflow = errors.New("integer overflow")

// Magnitudes live in the symmetric range ±math.MaxInt64. math.MinInt64 has
// no positive counterpart, so it could not be negated or written as
// "-<digits>" and read back.
func checkMagnitude(n int64) error {
	if n == math.MinInt64 {
		return errOverflow
	}
	return nil
}

// decodeNumberString turns an unsigned decimal string into its integer
// magnitude and decimal-place count: "12.34" -> (1234, 2).
//
// At most one "." is allowed and it must have digits on both sides.
// The sign is handled by the caller.
func decodeNumberString(s string) (int64, int, error) {
	intPart, fracPart, hasPoint := strings.Cut(s, ".")
	if !isDigits(intPart) {
		return 0, 0, errors.New("integer part must be one or more digits")
	}
	if hasPoint && !isDigits(fracPart) {
		return 0, 0, errors.New("fraction part must be one or more digits")
	}
	if len(fracPart) > maxDecimals {
		return 0, 0, errors.New("too many decimal places")
	}

	magnitude, err := strconv.ParseInt(intPart+fracPart, 10, 64)
	if err != nil {
		return 0, 0, errOverflow
	}
	return magnitude, len(fracPart), nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
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

// pow10 returns 10^n for 0 <= n <= maxDecimals.
func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// mulExact multiplies a and b, failing when the product leaves ±math.MaxInt64.
func mulExact(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, errOverflow
	}
	return c, checkMagnitude(c)
}

// addExact adds a and b, failing when the sum leaves ±math.MaxInt64.
func addExact(a, b int64) (int64, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, errOverflow
	}
	return c, checkMagnitude(c)
}

// absUint64 returns |n| without overflowing on math.MinInt64.
func absUint64(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

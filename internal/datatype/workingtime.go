package datatype

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// workingTimeExample is echoed in every token-format parse error.
const workingTimeExample = "1mo 1w 2d 5h 9m"

// durationUnits is the fixed unit table in text order.
// A working day has 8 hours, a week 5 days and a month 20 weeks.
var durationUnits = [...]struct {
	suffix  string
	minutes int64
}{
	{suffix: "mo", minutes: 48000},
	{suffix: "w", minutes: 2400},
	{suffix: "d", minutes: 480},
	{suffix: "h", minutes: 60},
	{suffix: "m", minutes: 1},
}

// parseTokenDuration parses `["- "]<token>(" "<token>)*` into minutes.
// The empty string is zero.
func parseTokenDuration(typ, s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	text, negative := strings.CutPrefix(s, negativePrefix)

	invalid := func(format string, args ...any) error {
		fe := newFormatError(typ, s, format, args...)
		fe.Code = ErrCodeInvalidFormat
		fe.Example = workingTimeExample
		return fe
	}

	var minutes int64
	next := 0 // first unit index still allowed
	for _, token := range strings.Split(text, " ") {
		unit := -1
		for i, u := range durationUnits {
			if strings.HasSuffix(token, u.suffix) {
				unit = i
				break
			}
		}
		if unit < 0 {
			return 0, invalid("token %q has no known unit", token)
		}
		if unit < next {
			return 0, invalid("unit %q is repeated or out of order", durationUnits[unit].suffix)
		}
		next = unit + 1

		number := strings.TrimSuffix(token, durationUnits[unit].suffix)
		n, err := strconv.ParseInt(number, 10, 64)
		if err != nil || n < 0 || strconv.FormatInt(n, 10) != number {
			return 0, invalid("%q is not a non-negative integer", number)
		}

		if n > math.MaxInt64/durationUnits[unit].minutes {
			return 0, invalid("duration out of range")
		}
		if minutes, err = addExact(minutes, n*durationUnits[unit].minutes); err != nil {
			return 0, invalid("duration out of range")
		}
	}

	if negative {
		minutes = -minutes
	}
	return minutes, nil
}

// formatTokenDuration renders minutes greedily over the unit table.
// Zero renders as the empty string.
func formatTokenDuration(minutes int64) string {
	remaining := absUint64(minutes)
	parts := make([]string, 0, len(durationUnits))
	for _, u := range durationUnits {
		step := uint64(u.minutes)
		part := remaining / step
		remaining -= part * step
		if part > 0 {
			parts = append(parts, strconv.FormatUint(part, 10)+u.suffix)
		}
	}

	out := strings.Join(parts, " ")
	if minutes < 0 {
		out = negativePrefix + out
	}
	return out
}

func checkMinutes(minutes int64) error {
	if checkMagnitude(minutes) != nil {
		return &ValidationError{
			Field:   "minutes",
			Value:   minutes,
			Message: fmt.Sprintf("must be between %d and %d", int64(-math.MaxInt64), int64(math.MaxInt64)),
		}
	}
	return nil
}

func sumMinutes(first int64, rest []int64) (int64, error) {
	total := first
	for _, m := range rest {
		var err error
		if total, err = addExact(total, m); err != nil {
			return 0, newArithmeticError("sum", "duration exceeds the int64 minute range")
		}
	}
	return total, nil
}

// WorkingTime is a signed duration in minutes with a token text form,
// e.g. "1mo 1w 2d 5h 9m". It supports Sum and SignChange.
type WorkingTime struct {
	Minutes int64
}

// ParseWorkingTime parses the token text form.
func ParseWorkingTime(s string) (WorkingTime, error) {
	m, err := parseTokenDuration("WorkingTime", s)
	if err != nil {
		return WorkingTime{}, err
	}
	return WorkingTime{Minutes: m}, nil
}

// String returns the token text form.
func (w WorkingTime) String() string {
	return formatTokenDuration(w.Minutes)
}

// MarshalText implements encoding.TextMarshaler.
func (w WorkingTime) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WorkingTime) UnmarshalText(text []byte) error {
	parsed, err := ParseWorkingTime(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Int returns the minute count.
func (w WorkingTime) Int() int64 { return w.Minutes }

// SetInt sets the minute count.
// math.MinInt64 is rejected because its text form would not parse back.
func (w *WorkingTime) SetInt(minutes int64) error {
	if err := checkMinutes(minutes); err != nil {
		return err
	}
	w.Minutes = minutes
	return nil
}

// Kind implements Value.
func (WorkingTime) Kind() Kind { return KindWorkingTime }

func (WorkingTime) dataType() {}

// Negate returns the duration with its sign inverted.
func (w WorkingTime) Negate() WorkingTime {
	return WorkingTime{Minutes: -w.Minutes}
}

// Plus returns the sum of w and others.
func (w WorkingTime) Plus(others ...WorkingTime) (WorkingTime, error) {
	rest := make([]int64, len(others))
	for i, o := range others {
		rest[i] = o.Minutes
	}
	total, err := sumMinutes(w.Minutes, rest)
	if err != nil {
		return WorkingTime{}, err
	}
	return WorkingTime{Minutes: total}, nil
}

// WorkingTimeBalance shares WorkingTime's representation and text form but
// has a different capability profile: Sum and Subtract, no SignChange.
type WorkingTimeBalance struct {
	Minutes int64
}

// ParseWorkingTimeBalance parses the token text form.
func ParseWorkingTimeBalance(s string) (WorkingTimeBalance, error) {
	m, err := parseTokenDuration("WorkingTimeBalance", s)
	if err != nil {
		return WorkingTimeBalance{}, err
	}
	return WorkingTimeBalance{Minutes: m}, nil
}

// String returns the token text form.
func (w WorkingTimeBalance) String() string {
	return formatTokenDuration(w.Minutes)
}

// MarshalText implements encoding.TextMarshaler.
func (w WorkingTimeBalance) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WorkingTimeBalance) UnmarshalText(text []byte) error {
	parsed, err := ParseWorkingTimeBalance(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Int returns the minute count.
func (w WorkingTimeBalance) Int() int64 { return w.Minutes }

// SetInt sets the minute count.
// math.MinInt64 is rejected because its text form would not parse back.
func (w *WorkingTimeBalance) SetInt(minutes int64) error {
	if err := checkMinutes(minutes); err != nil {
		return err
	}
	w.Minutes = minutes
	return nil
}

// Kind implements Value.
func (WorkingTimeBalance) Kind() Kind { return KindWorkingTimeBalance }

func (WorkingTimeBalance) dataType() {}

// Plus returns the sum of w and others.
func (w WorkingTimeBalance) Plus(others ...WorkingTimeBalance) (WorkingTimeBalance, error) {
	rest := make([]int64, len(others))
	for i, o := range others {
		rest[i] = o.Minutes
	}
	total, err := sumMinutes(w.Minutes, rest)
	if err != nil {
		return WorkingTimeBalance{}, err
	}
	return WorkingTimeBalance{Minutes: total}, nil
}

// Minus returns w - subtrahend.
func (w WorkingTimeBalance) Minus(subtrahend WorkingTimeBalance) (WorkingTimeBalance, error) {
	if subtrahend.Minutes == math.MinInt64 {
		return WorkingTimeBalance{}, newArithmeticError("subtract", "duration exceeds the int64 minute range")
	}
	total, err := addExact(w.Minutes, -subtrahend.Minutes)
	if err != nil {
		return WorkingTimeBalance{}, newArithmeticError("subtract", "duration exceeds the int64 minute range")
	}
	return WorkingTimeBalance{Minutes: total}, nil
}

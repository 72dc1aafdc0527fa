package datatype

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// negativePrefix marks a negative duration in text form.
const negativePrefix = "- "

var (
	hourPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)

	minutesPerHour = decimal.NewFromInt(60)
	hundred        = decimal.NewFromInt(100)
)

// WorkingHour is a signed duration in minutes whose text form is decimal
// hours with two fraction digits: 510 minutes = "8.50", -15 = "- 0.25".
type WorkingHour struct {
	Minutes int64
}

// ParseWorkingHour parses `["- "]<digits>["."<1-2 digits>]`.
// The empty string is zero, as for the token durations.
//
// Hours are converted with exact decimal arithmetic and rounded to the
// nearest minute, so every formatted value parses back to the same minutes.
func ParseWorkingHour(s string) (WorkingHour, error) {
	if s == "" {
		return WorkingHour{}, nil
	}
	text, negative := strings.CutPrefix(s, negativePrefix)
	if !hourPattern.MatchString(text) {
		fe := newFormatError("WorkingHour", s, "expected decimal hours with at most two fraction digits")
		fe.Example = "8.50"
		return WorkingHour{}, fe
	}

	hours, err := decimal.NewFromString(text)
	if err != nil {
		fe := newFormatError("WorkingHour", s, "invalid number")
		fe.Err = err
		return WorkingHour{}, fe
	}
	minutes := hours.Mul(minutesPerHour).Round(0)
	if !minutes.BigInt().IsInt64() {
		fe := newFormatError("WorkingHour", s, "duration out of range")
		fe.Err = errOverflow
		return WorkingHour{}, fe
	}

	m := minutes.IntPart()
	if negative {
		m = -m
	}
	return WorkingHour{Minutes: m}, nil
}

// String formats the duration as decimal hours.
func (w WorkingHour) String() string {
	var b strings.Builder
	if w.Minutes < 0 {
		b.WriteString(negativePrefix)
	}

	abs := decimal.NewFromInt(w.Minutes).Abs()
	hundredths, _ := abs.Mul(hundred).QuoRem(minutesPerHour, 0)
	digits := hundredths.String()

	switch len(digits) {
	case 1:
		b.WriteString("0.0")
		b.WriteString(digits)
	case 2:
		b.WriteString("0.")
		b.WriteString(digits)
	default:
		b.WriteString(digits[:len(digits)-2])
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-2:])
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (w WorkingHour) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WorkingHour) UnmarshalText(text []byte) error {
	parsed, err := ParseWorkingHour(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Int returns the minute count.
func (w WorkingHour) Int() int64 { return w.Minutes }

// SetInt sets the minute count.
// math.MinInt64 is rejected because its text form would not parse back.
func (w *WorkingHour) SetInt(minutes int64) error {
	if err := checkMinutes(minutes); err != nil {
		return err
	}
	w.Minutes = minutes
	return nil
}

// Kind implements Value.
func (WorkingHour) Kind() Kind { return KindWorkingHour }

func (WorkingHour) dataType() {}

// Negate returns the duration with its sign inverted.
func (w WorkingHour) Negate() WorkingHour {
	return WorkingHour{Minutes: -w.Minutes}
}

// Plus returns the sum of w and others.
func (w WorkingHour) Plus(others ...WorkingHour) (WorkingHour, error) {
	total := w.Minutes
	for _, o := range others {
		var err error
		if total, err = addExact(total, o.Minutes); err != nil {
			return WorkingHour{}, newArithmeticError("sum", "duration exceeds the int64 minute range")
		}
	}
	return WorkingHour{Minutes: total}, nil
}

package datatype

import (
	"fmt"
	"strconv"
	"strings"
)

// Month is a calendar year-month. Text form: "YYYY-MM".
//
// Year and month are validated on every mutation: 1000 <= year <= 9999 and
// 1 <= month <= 12. The zero Month is unset; construct with NewMonth or
// ParseMonth before use.
type Month struct {
	year  int
	month int
}

// NewMonth creates a validated Month.
func NewMonth(year, month int) (Month, error) {
	var m Month
	if err := m.SetYearAndMonth(year, month); err != nil {
		return Month{}, err
	}
	return m, nil
}

// MustMonth is like NewMonth but panics on invalid input.
func MustMonth(year, month int) Month {
	m, err := NewMonth(year, month)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMonth parses "YYYY-MM".
// Range violations are returned as a FormatError wrapping the ValidationError.
func ParseMonth(s string) (Month, error) {
	if len(s) != 7 {
		return Month{}, newFormatError("Month", s, "the serialized data must have 7 characters")
	}
	parts := strings.Split(s, "-")
	if len(parts) != 2 || !isDigits(parts[0]) || !isDigits(parts[1]) {
		return Month{}, newFormatError("Month", s, "year and month must be separated by -")
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Month{}, newFormatError("Month", s, "invalid year")
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Month{}, newFormatError("Month", s, "invalid month")
	}

	var m Month
	if err := m.SetYear(year); err != nil {
		fe := newFormatError("Month", s, "invalid year")
		fe.Err = err
		return Month{}, fe
	}
	if err := m.SetMonth(month); err != nil {
		fe := newFormatError("Month", s, "invalid month")
		fe.Err = err
		return Month{}, fe
	}
	return m, nil
}

// SetYear sets the year. Returns a ValidationError outside 1000..9999.
func (m *Month) SetYear(year int) error {
	if err := validateYear(year); err != nil {
		return err
	}
	m.year = year
	return nil
}

// SetMonth sets the month. Returns a ValidationError outside 1..12.
func (m *Month) SetMonth(month int) error {
	if err := validateMonth(month); err != nil {
		return err
	}
	m.month = month
	return nil
}

// SetYearAndMonth sets both fields. Nothing is changed if either is invalid.
func (m *Month) SetYearAndMonth(year, month int) error {
	if err := validateYear(year); err != nil {
		return err
	}
	if err := validateMonth(month); err != nil {
		return err
	}
	m.year, m.month = year, month
	return nil
}

// Year returns the year.
func (m Month) Year() int { return m.year }

// Month returns the month (1..12).
func (m Month) Month() int { return m.month }

// IsZero reports whether m is unset.
func (m Month) IsZero() bool { return m == Month{} }

// FirstDayOfMonth returns the first date of the month.
func (m Month) FirstDayOfMonth() Date {
	return Date{year: m.year, month: m.month, day: 1}
}

// LastDayOfMonth returns the last date of the month.
func (m Month) LastDayOfMonth() Date {
	return m.FirstDayOfMonth().LastDayOfMonth()
}

// Increment moves to the following month.
// No validation: stepping past year 9999 is the caller's concern.
func (m *Month) Increment() {
	m.month++
	if m.month > 12 {
		m.month = 1
		m.year++
	}
}

// Decrement moves to the previous month.
func (m *Month) Decrement() {
	m.month--
	if m.month < 1 {
		m.month = 12
		m.year--
	}
}

// Int returns the month index year*12 + (month-1).
func (m Month) Int() int64 {
	return int64(m.year)*12 + int64(m.month-1)
}

// SetInt restores a month index produced by Int.
//
// Floor division is used, so every index maps to exactly one (year, month)
// pair; negative indices resolve to negative years and fail validation.
func (m *Month) SetInt(index int64) error {
	year := index / 12
	rem := index % 12
	if rem < 0 {
		rem += 12
		year--
	}
	if year < minYear || year > maxYear {
		return &ValidationError{
			Field:   "year",
			Value:   year,
			Message: fmt.Sprintf("the year must be between %d and %d", minYear, maxYear),
		}
	}
	return m.SetYearAndMonth(int(year), int(rem)+1)
}

// String returns "YYYY-MM".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.year, m.month)
}

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Kind implements Value.
func (Month) Kind() Kind { return KindMonth }

func (Month) dataType() {}

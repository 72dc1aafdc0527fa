package datatype

import (
	"fmt"
	"time"
)

const (
	minYear = 1000
	maxYear = 9999

	dateLayout = "2006-01-02"
)

// Date is a calendar date in the Gregorian calendar.
// Text form: "YYYY-MM-DD".
type Date struct {
	year  int
	month int
	day   int
}

// NewDate creates a validated Date.
func NewDate(year, month, day int) (Date, error) {
	var d Date
	if err := d.SetYear(year); err != nil {
		return Date{}, err
	}
	if err := d.SetMonth(month); err != nil {
		return Date{}, err
	}
	if err := d.SetDay(day); err != nil {
		return Date{}, err
	}
	return d, nil
}

// DateOf converts the calendar date of t (in t's location).
func DateOf(t time.Time) (Date, error) {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		fe := newFormatError("Date", s, "the date must have the form YYYY-MM-DD")
		fe.Example = "2023-10-31"
		fe.Err = err
		return Date{}, fe
	}
	d, err := DateOf(t)
	if err != nil {
		fe := newFormatError("Date", s, "invalid date")
		fe.Err = err
		return Date{}, fe
	}
	return d, nil
}

// SetYear sets the year. Returns a ValidationError outside 1000..9999.
func (d *Date) SetYear(year int) error {
	if err := validateYear(year); err != nil {
		return err
	}
	d.year = year
	return nil
}

// SetMonth sets the month. Returns a ValidationError outside 1..12.
func (d *Date) SetMonth(month int) error {
	if err := validateMonth(month); err != nil {
		return err
	}
	d.month = month
	return nil
}

// SetDay sets the day of month. When year and month are set the day must
// exist in that month, otherwise it must be within 1..31.
func (d *Date) SetDay(day int) error {
	last := 31
	if d.year != 0 && d.month != 0 {
		last = daysIn(d.year, d.month)
	}
	if day < 1 || day > last {
		return &ValidationError{
			Field:   "day",
			Value:   int64(day),
			Message: fmt.Sprintf("the day must be between 1 and %d", last),
		}
	}
	d.day = day
	return nil
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month (1..12).
func (d Date) Month() int { return d.month }

// Day returns the day of month.
func (d Date) Day() int { return d.day }

// LastDayOfMonth returns the last date of d's month.
func (d Date) LastDayOfMonth() Date {
	d.day = daysIn(d.year, d.month)
	return d
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// String returns "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Kind implements Value.
func (Date) Kind() Kind { return KindDate }

func (Date) dataType() {}

// daysIn returns the number of days in month of year.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func validateYear(year int) error {
	if year < minYear || year > maxYear {
		return &ValidationError{
			Field:   "year",
			Value:   int64(year),
			Message: fmt.Sprintf("the year must be between %d and %d", minYear, maxYear),
		}
	}
	return nil
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return &ValidationError{
			Field:   "month",
			Value:   int64(month),
			Message: "the month must be between 1 and 12",
		}
	}
	return nil
}

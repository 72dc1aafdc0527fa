package datatype

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
)

// SQL column mapping:
//   - Amount, Date: canonical text
//   - Binary: raw bytes
//   - Month: month index (Int)
//   - WorkingHour, WorkingTime, WorkingTimeBalance: minutes
//
// Integer-mapped types also scan their canonical text.

var (
	_ driver.Valuer = Amount{}
	_ driver.Valuer = Binary{}
	_ driver.Valuer = Month{}
	_ driver.Valuer = Date{}
	_ driver.Valuer = WorkingHour{}
	_ driver.Valuer = WorkingTime{}
	_ driver.Valuer = WorkingTimeBalance{}

	_ sql.Scanner = (*Amount)(nil)
	_ sql.Scanner = (*Binary)(nil)
	_ sql.Scanner = (*Month)(nil)
	_ sql.Scanner = (*Date)(nil)
	_ sql.Scanner = (*WorkingHour)(nil)
	_ sql.Scanner = (*WorkingTime)(nil)
	_ sql.Scanner = (*WorkingTimeBalance)(nil)
)

func scanText(dst encoding.TextUnmarshaler, kind Kind, src any) error {
	switch v := src.(type) {
	case string:
		return dst.UnmarshalText([]byte(v))
	case []byte:
		return dst.UnmarshalText(v)
	case nil:
		return fmt.Errorf("cannot scan NULL into %s", kind)
	default:
		return fmt.Errorf("cannot scan %T into %s", src, kind)
	}
}

func scanInt(dst interface {
	IntCodec
	encoding.TextUnmarshaler
}, kind Kind, src any) error {
	if n, ok := src.(int64); ok {
		return dst.SetInt(n)
	}
	return scanText(dst, kind, src)
}

// Value implements driver.Valuer.
func (a Amount) Value() (driver.Value, error) { return a.String(), nil }

// Scan implements sql.Scanner.
func (a *Amount) Scan(src any) error { return scanText(a, KindAmount, src) }

// Value implements driver.Valuer.
func (b Binary) Value() (driver.Value, error) { return b.Bytes(), nil }

// Scan implements sql.Scanner. Byte columns are copied verbatim, text
// columns are decoded as hex.
func (b *Binary) Scan(src any) error {
	if raw, ok := src.([]byte); ok {
		b.SetBytes(raw)
		return nil
	}
	return scanText(b, KindBinary, src)
}

// Value implements driver.Valuer.
func (m Month) Value() (driver.Value, error) { return m.Int(), nil }

// Scan implements sql.Scanner.
func (m *Month) Scan(src any) error { return scanInt(m, KindMonth, src) }

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) { return d.String(), nil }

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error { return scanText(d, KindDate, src) }

// Value implements driver.Valuer.
func (w WorkingHour) Value() (driver.Value, error) { return w.Minutes, nil }

// Scan implements sql.Scanner.
func (w *WorkingHour) Scan(src any) error { return scanInt(w, KindWorkingHour, src) }

// Value implements driver.Valuer.
func (w WorkingTime) Value() (driver.Value, error) { return w.Minutes, nil }

// Scan implements sql.Scanner.
func (w *WorkingTime) Scan(src any) error { return scanInt(w, KindWorkingTime, src) }

// Value implements driver.Valuer.
func (w WorkingTimeBalance) Value() (driver.Value, error) { return w.Minutes, nil }

// Scan implements sql.Scanner.
func (w *WorkingTimeBalance) Scan(src any) error { return scanInt(w, KindWorkingTimeBalance, src) }

package datatype

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a signed fixed-point monetary amount.
//
// The represented quantity is Magnitude / 10^Decimals units of Volume in
// Currency. All arithmetic is integer-only.
//
// Examples:
//   - Amount{Magnitude: 1234, Currency: EUR, Decimals: 2} = "12.34 EUR"
//   - Amount{Magnitude: -5, Currency: USD, Volume: VolumeThousand} = "-5 kUSD"
type Amount struct {
	Magnitude int64
	Currency  Currency
	Volume    Volume
	Decimals  int
}

// AmountOption configures an Amount built by NewAmount.
type AmountOption func(*Amount)

// WithVolume sets the magnitude scale. Default: VolumeBase.
func WithVolume(v Volume) AmountOption {
	return func(a *Amount) {
		a.Volume = v
	}
}

// WithDecimals sets the number of decimal places.
// Default: the currency's standard minor-unit digits.
func WithDecimals(decimals int) AmountOption {
	return func(a *Amount) {
		a.Decimals = decimals
	}
}

// NewAmount creates an Amount, validating the resulting volume and decimals.
func NewAmount(value int64, cur Currency, opts ...AmountOption) (Amount, error) {
	a := Amount{
		Magnitude: value,
		Currency:  cur,
		Volume:    VolumeBase,
		Decimals:  cur.Decimals(),
	}
	for _, opt := range opts {
		opt(&a)
	}
	if checkMagnitude(a.Magnitude) != nil {
		return Amount{}, &ValidationError{
			Field:   "value",
			Value:   a.Magnitude,
			Message: fmt.Sprintf("must be between %d and %d", int64(-math.MaxInt64), int64(math.MaxInt64)),
		}
	}
	if err := validateDecimals(a.Decimals); err != nil {
		return Amount{}, err
	}
	if !a.Volume.Valid() {
		return Amount{}, &ValidationError{Field: "volume", Value: int64(a.Volume), Message: "unknown volume"}
	}
	return a, nil
}

// MustAmount is like NewAmount but panics on invalid input.
// Intended for literals in tests and package-level variables.
func MustAmount(value int64, cur Currency, opts ...AmountOption) Amount {
	a, err := NewAmount(value, cur, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// SetDecimals sets the number of decimal places.
// Returns a ValidationError when decimals is outside 0..18.
func (a *Amount) SetDecimals(decimals int) error {
	if err := validateDecimals(decimals); err != nil {
		return err
	}
	a.Decimals = decimals
	return nil
}

func validateDecimals(decimals int) error {
	if decimals < 0 || decimals > maxDecimals {
		return &ValidationError{
			Field:   "decimals",
			Value:   int64(decimals),
			Message: fmt.Sprintf("must be between 0 and %d", maxDecimals),
		}
	}
	return nil
}

// ParseAmount parses `["-"]<digits>["."<digits>] " " [<volume>]<currency>`.
func ParseAmount(s string) (Amount, error) {
	text := s
	negative := false
	if strings.HasPrefix(text, "-") {
		negative = true
		text = text[1:]
	}

	parts := strings.Split(text, " ")
	if len(parts) != 2 {
		return Amount{}, newFormatError("Amount", s, "the amount and currency must be separated by a single space")
	}
	number, code := parts[0], parts[1]

	marker := ""
	switch len(code) {
	case currencyCodeWidth + 1:
		marker, code = code[:1], code[1:]
	case currencyCodeWidth:
	default:
		return Amount{}, newFormatError("Amount", s, "the currency code %q is invalid", code)
	}

	volume, ok := parseVolumeMarker(marker)
	if !ok {
		return Amount{}, newFormatError("Amount", s, "the volume marker %q is invalid", marker)
	}
	cur, err := ParseCurrency(code)
	if err != nil {
		fe := newFormatError("Amount", s, "the currency code %q is invalid", code)
		fe.Err = err
		return Amount{}, fe
	}

	value, decimals, err := decodeNumberString(number)
	if err != nil {
		fe := newFormatError("Amount", s, "the number %q is invalid", number)
		fe.Err = err
		return Amount{}, fe
	}
	if negative {
		value = -value
	}

	return Amount{
		Magnitude: value,
		Currency:  cur,
		Volume:    volume,
		Decimals:  decimals,
	}, nil
}

// String formats the amount, e.g. "-1234.56 kEUR".
func (a Amount) String() string {
	digits := strconv.FormatInt(a.Magnitude, 10)
	negative := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	if a.Decimals > 0 {
		if len(digits) <= a.Decimals {
			digits = strings.Repeat("0", a.Decimals-len(digits)+1) + digits
		}
		point := len(digits) - a.Decimals
		b.WriteString(digits[:point])
		b.WriteByte('.')
		b.WriteString(digits[point:])
	} else {
		b.WriteString(digits)
	}
	b.WriteByte(' ')
	b.WriteString(a.Volume.Marker())
	b.WriteString(a.Currency.String())
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The receiver is left untouched on error.
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Kind implements Value.
func (Amount) Kind() Kind { return KindAmount }

func (Amount) dataType() {}

// Equal reports whether a and other have identical fields.
// 1.00 EUR and 1.0 EUR are not Equal; use Plus to normalize first.
func (a Amount) Equal(other Amount) bool {
	return a == other
}

// Negate returns the amount with its sign inverted.
func (a Amount) Negate() Amount {
	a.Magnitude = -a.Magnitude
	return a
}

// Plus sums a and others.
//
// All operands must share one currency. The result uses the finest volume
// present (Base beats Thousand beats Million) and the largest decimal count,
// so every operand rescales exactly by integer multiplication.
func (a Amount) Plus(others ...Amount) (Amount, error) {
	summands := make([]Amount, 0, len(others)+1)
	summands = append(summands, a)
	summands = append(summands, others...)
	return sumAmounts(summands)
}

func sumAmounts(summands []Amount) (Amount, error) {
	if len(summands) == 0 {
		return Amount{}, newArithmeticError("sum", "there must be at least one summand")
	}

	cur := summands[0].Currency
	volume := VolumeMillion
	decimals := 0
	for _, s := range summands {
		if s.Currency != cur {
			return Amount{}, newArithmeticError("sum", "all summands must have the same currency: %s != %s", s.Currency, cur)
		}
		if !s.Volume.Valid() {
			return Amount{}, newArithmeticError("sum", "unknown volume %s", s.Volume)
		}
		if s.Volume < volume {
			volume = s.Volume
		}
		if s.Decimals < 0 || s.Decimals > maxDecimals {
			return Amount{}, newArithmeticError("sum", "decimals %d out of range", s.Decimals)
		}
		if s.Decimals > decimals {
			decimals = s.Decimals
		}
	}

	var total int64
	for _, s := range summands {
		tensShift := pow10(decimals - s.Decimals)
		volumeShift := s.Volume.Factor() / volume.Factor()
		shift, err := mulExact(tensShift, volumeShift)
		if err == nil {
			var scaled int64
			scaled, err = mulExact(s.Magnitude, shift)
			if err == nil {
				total, err = addExact(total, scaled)
			}
		}
		if err != nil {
			return Amount{}, newArithmeticError("sum", "amount exceeds the int64 range at %d decimals", decimals)
		}
	}

	return Amount{
		Magnitude: total,
		Currency:  cur,
		Volume:    volume,
		Decimals:  decimals,
	}, nil
}

package datatype

import (
	"encoding"
	"fmt"
	"slices"
)

// Value is a sealed interface implemented by the package's value types:
// Amount, Binary, Month, Date, WorkingHour, WorkingTime and WorkingTimeBalance.
type Value interface {
	fmt.Stringer
	encoding.TextMarshaler

	// Kind identifies the concrete value type.
	Kind() Kind

	dataType() // Sealed - only this package implements it
}

// TextCodec is the contract every value type satisfies through its pointer:
// parse from text, format to text, and the round-trip law
// parse(format(v)) == v.
type TextCodec interface {
	fmt.Stringer
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

// IntCodec is implemented by types that can be stored as a single integer.
type IntCodec interface {
	Int() int64
	SetInt(n int64) error
}

var (
	_ TextCodec = (*Amount)(nil)
	_ TextCodec = (*Binary)(nil)
	_ TextCodec = (*Month)(nil)
	_ TextCodec = (*Date)(nil)
	_ TextCodec = (*WorkingHour)(nil)
	_ TextCodec = (*WorkingTime)(nil)
	_ TextCodec = (*WorkingTimeBalance)(nil)

	_ IntCodec = (*Month)(nil)
	_ IntCodec = (*WorkingHour)(nil)
	_ IntCodec = (*WorkingTime)(nil)
	_ IntCodec = (*WorkingTimeBalance)(nil)
)

// Kind names a value type in text documents and on the command line.
type Kind string

const (
	KindAmount             Kind = "amount"
	KindBinary             Kind = "binary"
	KindMonth              Kind = "month"
	KindDate               Kind = "date"
	KindWorkingHour        Kind = "workinghour"
	KindWorkingTime        Kind = "workingtime"
	KindWorkingTimeBalance Kind = "workingtimebalance"
)

var parsers = map[Kind]func(string) (Value, error){
	KindAmount:             parseAs(ParseAmount),
	KindBinary:             parseAs(ParseBinary),
	KindMonth:              parseAs(ParseMonth),
	KindDate:               parseAs(ParseDate),
	KindWorkingHour:        parseAs(ParseWorkingHour),
	KindWorkingTime:        parseAs(ParseWorkingTime),
	KindWorkingTimeBalance: parseAs(ParseWorkingTimeBalance),
}

func parseAs[T Value](parse func(string) (T, error)) func(string) (Value, error) {
	return func(s string) (Value, error) {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Kinds returns all known kinds in sorted order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(parsers))
	for k := range parsers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// ParseKind resolves a kind name.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := parsers[k]; !ok {
		return "", fmt.Errorf("unknown kind %q: must be one of %v", name, Kinds())
	}
	return k, nil
}

// Parse parses text as a value of the given kind.
func Parse(kind Kind, text string) (Value, error) {
	parse, ok := parsers[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q: must be one of %v", kind, Kinds())
	}
	return parse(text)
}

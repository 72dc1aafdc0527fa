package datatype

import (
	"fmt"

	"golang.org/x/text/currency"
)

// currencyCodeWidth is the fixed width of an ISO 4217 code.
const currencyCodeWidth = 3

// Currency is an ISO 4217 currency tag.
//
// The closed set of valid codes is the ISO table shipped with
// golang.org/x/text/currency; codes are upper-case and case-sensitive.
type Currency struct {
	unit currency.Unit
}

// Common currencies.
var (
	EUR = Currency{currency.EUR}
	USD = Currency{currency.USD}
	GBP = Currency{currency.GBP}
	CHF = Currency{currency.CHF}
	JPY = Currency{currency.JPY}
	CAD = Currency{currency.CAD}
	AUD = Currency{currency.AUD}
	SEK = Currency{currency.SEK}
)

// ParseCurrency resolves an upper-case ISO 4217 code.
func ParseCurrency(code string) (Currency, error) {
	if len(code) != currencyCodeWidth {
		return Currency{}, fmt.Errorf("currency code %q must have %d characters", code, currencyCodeWidth)
	}
	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() != code {
		return Currency{}, fmt.Errorf("currency code %q is unknown", code)
	}
	return Currency{unit: unit}, nil
}

// String returns the ISO 4217 code, e.g. "EUR".
func (c Currency) String() string {
	return c.unit.String()
}

// Decimals returns the standard number of minor-unit digits (EUR 2, JPY 0).
func (c Currency) Decimals() int {
	scale, _ := currency.Standard.Rounding(c.unit)
	return scale
}

// Volume is the magnitude scale an Amount is expressed in.
type Volume int

const (
	VolumeBase Volume = iota
	VolumeThousand
	VolumeMillion
)

var volumeTable = [...]struct {
	marker string
	name   string
	factor int64
}{
	VolumeBase:     {marker: "", name: "base", factor: 1},
	VolumeThousand: {marker: "k", name: "thousand", factor: 1_000},
	VolumeMillion:  {marker: "M", name: "million", factor: 1_000_000},
}

// parseVolumeMarker resolves a volume marker ("" / "k" / "M").
func parseVolumeMarker(marker string) (Volume, bool) {
	for v, entry := range volumeTable {
		if entry.marker == marker {
			return Volume(v), true
		}
	}
	return VolumeBase, false
}

// Valid reports whether v is one of the declared volumes.
func (v Volume) Valid() bool {
	return v >= VolumeBase && v <= VolumeMillion
}

// Marker returns the text marker placed before the currency code.
func (v Volume) Marker() string {
	if !v.Valid() {
		return ""
	}
	return volumeTable[v].marker
}

// Factor returns how many base units one unit of v represents.
func (v Volume) Factor() int64 {
	if !v.Valid() {
		return 1
	}
	return volumeTable[v].factor
}

// String returns the volume name.
func (v Volume) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Volume(%d)", int(v))
	}
	return volumeTable[v].name
}

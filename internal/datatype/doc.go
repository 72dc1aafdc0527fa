// Package datatype provides self-validating scalar value types with a
// canonical, lossless text representation.
//
// This package is the foundational layer: it imports nothing internal.
// Every type implements the TextCodec contract (ParseX / String /
// MarshalText / UnmarshalText) and the round-trip law
// ParseX(v.String()) == v holds for every normally constructed value.
//
// Key design constraints:
//   - Fixed-point amounts are integer-only; floats never enter a value
//   - Capability operations (Sum, SignChange, Subtract) return new values
//     and never mutate their operands
//   - Lookup tables (currencies, volume markers, duration units) are
//     immutable package data
package datatype

// Package sheet loads and evaluates value sheets.
//
// A sheet is a YAML or CUE document listing entries. Each entry names a
// value kind, an operation and the operand texts, plus the canonical text
// the operation is expected to produce (or an expected error fragment).
//
// Example (YAML):
//
//	name: march
//	entries:
//	  - name: travel
//	    kind: amount
//	    op: sum
//	    values: ["1.00 EUR", "1 kEUR"]
//	    expect: "1001.00 EUR"
//
// CUE sheets are unified with the embedded #Sheet schema before decoding,
// so kinds and operations are checked by the schema as well as by the
// evaluator.
package sheet

package datatype

import (
	"errors"
	"fmt"
)

// FormatErrorCode categorizes text parsing failures.
type FormatErrorCode string

const (
	// ErrCodeDeserialize indicates the text does not match the type grammar.
	ErrCodeDeserialize FormatErrorCode = "DESERIALIZE"

	// ErrCodeInvalidFormat indicates a malformed token in a duration text.
	// The error carries a canonical example of valid input.
	ErrCodeInvalidFormat FormatErrorCode = "INVALID_FORMAT"

	// ErrCodeInvalidHex indicates a bad hex string.
	ErrCodeInvalidHex FormatErrorCode = "INVALID_HEX"
)

// ValidationError reports a field setter receiving a value outside its domain.
// It is returned synchronously by the mutation call.
type ValidationError struct {
	// Field is the name of the rejected field ("year", "month", ...).
	Field string

	// Value is the rejected input.
	Value int64

	// Message is a human-readable description of the valid domain.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Message)
}

// FormatError reports text that does not match a type's grammar.
//
// FormatError wraps the underlying cause (for instance a ValidationError
// raised by a setter while parsing), so errors.As finds both.
type FormatError struct {
	Code FormatErrorCode

	// Type names the value type being parsed ("Amount", "Month", ...).
	Type string

	// Input is the offending text.
	Input string

	// Example is a canonical valid input, when one is meaningful.
	Example string

	Message string
	Err     error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	msg := fmt.Sprintf("%s: cannot parse %s %q: %s", e.Code, e.Type, e.Input, e.Message)
	if e.Example != "" {
		msg += fmt.Sprintf(" (example: %q)", e.Example)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// ArithmeticError reports a capability operation that cannot be performed:
// no operands, mismatched operand types, mixed currencies, or overflow.
type ArithmeticError struct {
	// Op is the capability operation ("sum", "subtract", "negate").
	Op string

	Message string
}

// Error implements the error interface.
func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func newFormatError(typ, input, format string, args ...any) *FormatError {
	return &FormatError{
		Code:    ErrCodeDeserialize,
		Type:    typ,
		Input:   input,
		Message: fmt.Sprintf(format, args...),
	}
}

func newArithmeticError(op, format string, args ...any) *ArithmeticError {
	return &ArithmeticError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError returns true if err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsFormatError returns true if err is, or wraps, a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsArithmeticError returns true if err is, or wraps, an ArithmeticError.
func IsArithmeticError(err error) bool {
	var ae *ArithmeticError
	return errors.As(err, &ae)
}

package datatype

import (
	"bytes"
	"encoding/hex"
)

// Binary is a raw byte buffer whose text form is lowercase hex.
// Binary has no arithmetic capability.
type Binary struct {
	data []byte
}

// NewBinary creates a Binary holding a copy of data.
func NewBinary(data []byte) Binary {
	return Binary{data: bytes.Clone(data)}
}

// ParseBinary decodes an even-length hex string (any letter case).
func ParseBinary(s string) (Binary, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Binary{}, &FormatError{
			Code:    ErrCodeInvalidHex,
			Type:    "Binary",
			Input:   s,
			Message: "the serialized data must be a valid hex string",
			Err:     err,
		}
	}
	return Binary{data: data}, nil
}

// Bytes returns a copy of the buffer.
func (b Binary) Bytes() []byte {
	return bytes.Clone(b.data)
}

// SetBytes replaces the buffer with a copy of data.
func (b *Binary) SetBytes(data []byte) {
	b.data = bytes.Clone(data)
}

// Len returns the buffer length in bytes.
func (b Binary) Len() int {
	return len(b.data)
}

// Clone returns a deep copy.
func (b Binary) Clone() Binary {
	return NewBinary(b.data)
}

// Equal reports whether both buffers hold the same bytes.
func (b Binary) Equal(other Binary) bool {
	return bytes.Equal(b.data, other.data)
}

// String returns the lowercase hex encoding.
func (b Binary) String() string {
	return hex.EncodeToString(b.data)
}

// MarshalText implements encoding.TextMarshaler.
func (b Binary) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Binary) UnmarshalText(text []byte) error {
	parsed, err := ParseBinary(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Kind implements Value.
func (Binary) Kind() Kind { return KindBinary }

func (Binary) dataType() {}

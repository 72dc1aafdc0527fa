package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBinary(t *testing.T) {
	b, err := ParseBinary("00ff10")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 0x10}, b.Bytes())
	assert.Equal(t, "00ff10", b.String())
	assert.Equal(t, 3, b.Len())
}

func TestParseBinaryMixedCase(t *testing.T) {
	b, err := ParseBinary("DEADbeef")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", b.String())
}

func TestParseBinaryEmpty(t *testing.T) {
	b, err := ParseBinary("")
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())
}

func TestParseBinaryRejects(t *testing.T) {
	for _, input := range []string{"abc", "0g", "zz", "0x00", " 00"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseBinary(input)
			require.Error(t, err)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, ErrCodeInvalidHex, fe.Code)
			assert.Equal(t, input, fe.Input)
		})
	}
}

func TestBinaryCopiesBuffer(t *testing.T) {
	raw := []byte{1, 2, 3}
	b := NewBinary(raw)
	raw[0] = 9
	assert.Equal(t, "010203", b.String(), "NewBinary must copy")

	out := b.Bytes()
	out[1] = 9
	assert.Equal(t, "010203", b.String(), "Bytes must copy")

	clone := b.Clone()
	clone.SetBytes([]byte{0xaa})
	assert.Equal(t, "010203", b.String())
	assert.Equal(t, "aa", clone.String())
	assert.False(t, b.Equal(clone))
	assert.True(t, b.Equal(NewBinary([]byte{1, 2, 3})))
}

func TestBinaryUnmarshalText(t *testing.T) {
	var b Binary
	require.NoError(t, b.UnmarshalText([]byte("cafe")))
	assert.Equal(t, []byte{0xca, 0xfe}, b.Bytes())

	require.Error(t, b.UnmarshalText([]byte("caf")))
	assert.Equal(t, "cafe", b.String())
}

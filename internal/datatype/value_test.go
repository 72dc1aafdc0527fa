package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, []Kind{
		KindAmount,
		KindBinary,
		KindDate,
		KindMonth,
		KindWorkingHour,
		KindWorkingTime,
		KindWorkingTimeBalance,
	}, Kinds())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("workingtime")
	require.NoError(t, err)
	assert.Equal(t, KindWorkingTime, k)

	_, err = ParseKind("WorkingTime")
	assert.Error(t, err)
}

func TestParseDispatch(t *testing.T) {
	tests := []struct {
		kind Kind
		text string
	}{
		{KindAmount, "12.34 EUR"},
		{KindBinary, "cafe"},
		{KindMonth, "2023-10"},
		{KindDate, "2023-10-31"},
		{KindWorkingHour, "8.50"},
		{KindWorkingTime, "1mo 1w 2d 5h 9m"},
		{KindWorkingTimeBalance, "- 2h"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			v, err := Parse(tt.kind, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.text, v.String())

			text, err := v.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.text, string(text))
		})
	}
}

func TestParseDispatchErrors(t *testing.T) {
	_, err := Parse(Kind("duration"), "1h")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")

	v, err := Parse(KindMonth, "2023-13")
	require.Error(t, err)
	assert.Nil(t, v, "failed parse must yield a nil interface")
	assert.True(t, IsFormatError(err))
}

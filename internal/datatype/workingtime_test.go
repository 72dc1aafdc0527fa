package datatype

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingTimeString(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int64
		expected string
	}{
		{"zero", 0, ""},
		{"minutes", 9, "9m"},
		{"hour", 60, "1h"},
		{"day", 480, "1d"},
		{"mixed", 48000 + 2400 + 960 + 300 + 9, "1mo 1w 2d 5h 9m"},
		{"gaps", 48000 + 1, "1mo 1m"},
		{"negative", -(480 + 30), "- 1d 30m"},
		{"many months", 3 * 48000, "3mo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WorkingTime{Minutes: tt.minutes}.String())
			assert.Equal(t, tt.expected, WorkingTimeBalance{Minutes: tt.minutes}.String())
		})
	}
}

func TestParseWorkingTime(t *testing.T) {
	tests := []struct {
		input   string
		minutes int64
	}{
		{"", 0},
		{"1mo 1w 2d 5h 9m", 48000 + 2400 + 960 + 300 + 9},
		{"5h", 300},
		{"90m", 90},
		{"0m", 0},
		{"- 2h", -120},
		{"1w 1m", 2401},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, err := ParseWorkingTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, w.Minutes)

			b, err := ParseWorkingTimeBalance(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, b.Minutes)
		})
	}
}

func TestParseWorkingTimeRejects(t *testing.T) {
	inputs := []string{
		"9m 1h",
		"1h 1h",
		"01m",
		"1x",
		"h",
		"-1h",
		"1h  2m",
		" 1h",
		"1h ",
		"- ",
		"1.5h",
		"+1h",
		"999999999999999999mo",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseWorkingTime(input)
			require.Error(t, err)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, ErrCodeInvalidFormat, fe.Code)
			assert.Equal(t, "1mo 1w 2d 5h 9m", fe.Example)
			assert.Contains(t, err.Error(), "1mo 1w 2d 5h 9m")
		})
	}
}

func TestWorkingTimeRoundTrip(t *testing.T) {
	for _, m := range []int64{0, 1, 59, 60, 479, 480, 2399, 2400, 47999, 48000, 123456789, -7, -48001} {
		w := WorkingTime{Minutes: m}
		parsed, err := ParseWorkingTime(w.String())
		require.NoError(t, err)
		assert.Equal(t, w, parsed, "via %q", w.String())
	}
}

func TestWorkingTimeArithmetic(t *testing.T) {
	a, err := ParseWorkingTime("1d 2h")
	require.NoError(t, err)
	b, err := ParseWorkingTime("6h")
	require.NoError(t, err)

	sum, err := Sum(a, b)
	require.NoError(t, err)
	assert.Equal(t, "2d", sum.String())

	assert.Equal(t, "- 1d 2h", SignChange(a).String())
	assert.Equal(t, a, SignChange(SignChange(a)))

	_, err = Sum(WorkingTime{Minutes: math.MaxInt64}, WorkingTime{Minutes: 1})
	assert.True(t, IsArithmeticError(err))
}

func TestWorkingTimeBalanceSubtract(t *testing.T) {
	tests := []struct {
		minuend    string
		subtrahend string
		expected   string
	}{
		{"1d", "2h", "6h"},
		{"2h", "1d", "- 6h"},
		{"1w", "1w", ""},
		{"", "30m", "- 30m"},
	}

	for _, tt := range tests {
		t.Run(tt.minuend+" minus "+tt.subtrahend, func(t *testing.T) {
			m, err := ParseWorkingTimeBalance(tt.minuend)
			require.NoError(t, err)
			s, err := ParseWorkingTimeBalance(tt.subtrahend)
			require.NoError(t, err)

			diff, err := Subtract(m, s)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, diff.String())
		})
	}
}

func TestWorkingTimeBalanceSubtractOverflow(t *testing.T) {
	_, err := Subtract(WorkingTimeBalance{Minutes: 0}, WorkingTimeBalance{Minutes: math.MinInt64})
	assert.True(t, IsArithmeticError(err))

	_, err = Subtract(WorkingTimeBalance{Minutes: math.MinInt64}, WorkingTimeBalance{Minutes: 1})
	assert.True(t, IsArithmeticError(err))
}

func TestTokenDurationMinuteRange(t *testing.T) {
	var w WorkingTime
	require.NoError(t, w.SetInt(60))
	err := w.SetInt(math.MinInt64)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, int64(60), w.Int(), "rejected SetInt must not mutate")

	var b WorkingTimeBalance
	assert.True(t, IsValidationError(b.SetInt(math.MinInt64)))

	require.NoError(t, w.SetInt(-math.MaxInt64))
	parsed, err := ParseWorkingTime(w.String())
	require.NoError(t, err)
	assert.Equal(t, w, parsed)

	_, err = Sum(WorkingTime{Minutes: -math.MaxInt64}, WorkingTime{Minutes: -1})
	assert.True(t, IsArithmeticError(err))

	_, err = Subtract(WorkingTimeBalance{Minutes: -math.MaxInt64}, WorkingTimeBalance{Minutes: 1})
	assert.True(t, IsArithmeticError(err))
}

func TestWorkingTimeBalanceSum(t *testing.T) {
	sum, err := Sum(WorkingTimeBalance{Minutes: 60}, WorkingTimeBalance{Minutes: -90})
	require.NoError(t, err)
	assert.Equal(t, "- 30m", sum.String())
}

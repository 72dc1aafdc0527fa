package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumValues(t *testing.T) {
	values := []Value{
		WorkingTime{Minutes: 60},
		WorkingTime{Minutes: 30},
		WorkingTime{Minutes: 390},
	}

	sum, err := SumValues(values)
	require.NoError(t, err)
	assert.Equal(t, WorkingTime{Minutes: 480}, sum)
	assert.Equal(t, "1d", sum.String())
}

func TestSumValuesAmounts(t *testing.T) {
	a, err := Parse(KindAmount, "1.00 EUR")
	require.NoError(t, err)
	b, err := Parse(KindAmount, "1 kEUR")
	require.NoError(t, err)

	sum, err := SumValues([]Value{a, b})
	require.NoError(t, err)
	assert.Equal(t, "1001.00 EUR", sum.String())
}

func TestSumValuesErrors(t *testing.T) {
	tests := []struct {
		name    string
		values  []Value
		message string
	}{
		{
			name:    "empty",
			values:  nil,
			message: "at least one summand",
		},
		{
			name:    "mixed kinds",
			values:  []Value{WorkingTime{Minutes: 1}, WorkingHour{Minutes: 1}},
			message: "all summands must be of kind workingtime, got workinghour at index 1",
		},
		{
			name:    "profiles do not mix",
			values:  []Value{WorkingTimeBalance{Minutes: 1}, WorkingTime{Minutes: 1}},
			message: "must be of kind workingtimebalance",
		},
		{
			name:    "not summable",
			values:  []Value{MustMonth(2023, 1)},
			message: "month values cannot be summed",
		},
		{
			name:    "binary",
			values:  []Value{NewBinary([]byte{1})},
			message: "binary values cannot be summed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SumValues(tt.values)
			require.Error(t, err)

			var ae *ArithmeticError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, "sum", ae.Op)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestNegateValue(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"amount", MustAmount(1250, EUR), "-12.50 EUR"},
		{"working hour", WorkingHour{Minutes: 15}, "- 0.25"},
		{"working time", WorkingTime{Minutes: 61}, "- 1h 1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			negated, err := NegateValue(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, negated.String())

			back, err := NegateValue(negated)
			require.NoError(t, err)
			assert.Equal(t, tt.value, back)
		})
	}
}

func TestNegateValueUnsupported(t *testing.T) {
	for _, v := range []Value{WorkingTimeBalance{Minutes: 1}, MustMonth(2023, 1), NewBinary(nil)} {
		t.Run(string(v.Kind()), func(t *testing.T) {
			_, err := NegateValue(v)
			require.Error(t, err)
			assert.True(t, IsArithmeticError(err))
			assert.Contains(t, err.Error(), "do not support sign change")
		})
	}
}

func TestSubtractValues(t *testing.T) {
	diff, err := SubtractValues(WorkingTimeBalance{Minutes: 480}, WorkingTimeBalance{Minutes: 500})
	require.NoError(t, err)
	assert.Equal(t, WorkingTimeBalance{Minutes: -20}, diff)

	_, err = SubtractValues(WorkingTimeBalance{Minutes: 1}, WorkingTime{Minutes: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subtrahend must be of kind workingtimebalance, got workingtime")

	_, err = SubtractValues(WorkingTime{Minutes: 1}, WorkingTime{Minutes: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workingtime values do not support subtraction")
}

func TestSumSingleValueIsIdentity(t *testing.T) {
	a := MustAmount(333, USD, WithVolume(VolumeThousand))
	sum, err := Sum(a)
	require.NoError(t, err)
	assert.Equal(t, a, sum)
}

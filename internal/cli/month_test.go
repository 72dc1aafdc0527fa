package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthCommandText(t *testing.T) {
	stdout, _, err := executeRoot(t, "month", "2024-02")
	require.NoError(t, err)

	expected := "month:     2024-02\n" +
		"index:     24289\n" +
		"first day: 2024-02-01\n" +
		"last day:  2024-02-29\n" +
		"previous:  2024-01\n" +
		"next:      2024-03\n"
	assert.Equal(t, expected, stdout)
}

func TestMonthCommandJSONGolden(t *testing.T) {
	stdout, _, err := executeRoot(t, "month", "2023-10", "--format", "json")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "month_json", []byte(stdout))
}

func TestMonthCommandFromIndex(t *testing.T) {
	stdout, _, err := executeRoot(t, "month", "--index", "24285")
	require.NoError(t, err)
	assert.Contains(t, stdout, "month:     2023-10\n")
	assert.Contains(t, stdout, "next:      2023-11\n")
}

func TestMonthCommandYearRollover(t *testing.T) {
	stdout, _, err := executeRoot(t, "month", "2023-12")
	require.NoError(t, err)
	assert.Contains(t, stdout, "previous:  2023-11\n")
	assert.Contains(t, stdout, "next:      2024-01\n")
}

func TestMonthCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		code     string
		exitCode int
	}{
		{"bad text", []string{"month", "2023-1"}, ErrCodeFormat, ExitFailure},
		{"index out of range", []string{"month", "--index", "--", "-1"}, ErrCodeValidation, ExitFailure},
		{"index not a number", []string{"month", "--index", "abc"}, ErrCodeGeneric, ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeRoot(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, GetExitCode(err))
			assert.Contains(t, stdout, "Error ["+tt.code+"]")
		})
	}
}

package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/struct-framework/implementation-data-type/internal/datatype"
)

func TestLoadYAML(t *testing.T) {
	s, err := Load("testdata/march.yaml")
	require.NoError(t, err)

	assert.Equal(t, "march", s.Name)
	assert.Equal(t, "Month-end bookkeeping checks", s.Description)
	require.Len(t, s.Entries, 10)

	first := s.Entries[0]
	assert.Equal(t, "travel", first.Name)
	assert.Equal(t, datatype.KindAmount, first.Kind)
	assert.Equal(t, OpSum, first.Op)
	assert.Equal(t, []string{"1.00 EUR", "1 kEUR"}, first.Values)
	require.NotNil(t, first.Expect)
	assert.Equal(t, "1001.00 EUR", *first.Expect)

	mixed := s.Entries[2]
	assert.Nil(t, mixed.Expect)
	assert.Equal(t, "same currency", mixed.ExpectError)
}

func TestLoadCUEMatchesYAML(t *testing.T) {
	fromYAML, err := Load("testdata/march.yaml")
	require.NoError(t, err)

	fromCUE, err := Load("testdata/march.cue")
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromCUE)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read sheet file")

	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported sheet extension")
}

func TestDecodeYAMLRejectsUnknownFields(t *testing.T) {
	_, err := DecodeYAML([]byte(`
name: typo
entries:
  - name: a
    kind: month
    op: normalize
    value: ["2023-10"]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestDecodeYAMLValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{
			name:    "missing name",
			yaml:    "entries: [{name: a, kind: month, op: normalize, values: [\"2023-10\"]}]",
			message: "name is required",
		},
		{
			name:    "no entries",
			yaml:    "name: empty\nentries: []",
			message: "entries list is required",
		},
		{
			name:    "unknown kind",
			yaml:    "name: s\nentries: [{name: a, kind: duration, op: normalize, values: [\"1h\"]}]",
			message: "unknown kind",
		},
		{
			name:    "unknown op",
			yaml:    "name: s\nentries: [{name: a, kind: month, op: multiply, values: [\"2023-10\"]}]",
			message: "unknown op",
		},
		{
			name:    "operand count",
			yaml:    "name: s\nentries: [{name: a, kind: workingtimebalance, op: subtract, values: [\"1h\"]}]",
			message: "needs exactly 2 value(s), got 1",
		},
		{
			name:    "empty sum",
			yaml:    "name: s\nentries: [{name: a, kind: amount, op: sum, values: []}]",
			message: "needs at least one value",
		},
		{
			name:    "increment on amount",
			yaml:    "name: s\nentries: [{name: a, kind: amount, op: increment, values: [\"1 EUR\"]}]",
			message: "only applies to kind month",
		},
		{
			name:    "duplicate entry",
			yaml:    "name: s\nentries: [{name: a, kind: month, op: normalize, values: [\"2023-10\"]}, {name: a, kind: month, op: normalize, values: [\"2023-11\"]}]",
			message: "duplicate name",
		},
		{
			name:    "expect and expect_error",
			yaml:    "name: s\nentries: [{name: a, kind: month, op: normalize, values: [\"2023-10\"], expect: \"2023-10\", expect_error: x}]",
			message: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestDecodeCUESchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		cue  string
	}{
		{
			name: "unknown kind",
			cue:  `name: "s", entries: [{name: "a", kind: "duration", op: "normalize", values: ["1h"]}]`,
		},
		{
			name: "unknown field",
			cue:  `name: "s", entries: [{name: "a", kind: "month", op: "normalize", values: ["2023-10"], extra: 1}]`,
		},
		{
			name: "non-string value",
			cue:  `name: "s", entries: [{name: "a", kind: "month", op: "normalize", values: [202310]}]`,
		},
		{
			name: "missing op",
			cue:  `name: "s", entries: [{name: "a", kind: "month", values: ["2023-10"]}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCUE([]byte(tt.cue), "inline.cue")
			require.Error(t, err)
		})
	}
}

func TestDecodeCUESyntaxError(t *testing.T) {
	_, err := DecodeCUE([]byte(`name: "s" entries: [`), "broken.cue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse CUE")
}

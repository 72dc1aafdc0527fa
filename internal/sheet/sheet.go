package sheet

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/struct-framework/implementation-data-type/internal/datatype"
)

//go:embed schema.cue
var schemaCUE string

// Op names the operation an entry applies to its values.
type Op string

// Supported operations.
const (
	OpNormalize Op = "normalize" // parse one value and format it back
	OpSum       Op = "sum"
	OpNegate    Op = "negate"
	OpSubtract  Op = "subtract"
	OpIncrement Op = "increment" // months only
	OpDecrement Op = "decrement" // months only
)

// operandCounts gives the exact operand count per operation; -1 means one or more.
var operandCounts = map[Op]int{
	OpNormalize: 1,
	OpSum:       -1,
	OpNegate:    1,
	OpSubtract:  2,
	OpIncrement: 1,
	OpDecrement: 1,
}

// Sheet is a named list of entries.
type Sheet struct {
	// Name identifies the sheet in reports.
	Name string `yaml:"name" json:"name"`

	// Description is free text.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Entries are evaluated in order.
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Entry is one operation over typed operand texts.
type Entry struct {
	Name string `yaml:"name" json:"name"`

	// Kind is the value kind of every operand (see datatype.Kinds).
	Kind datatype.Kind `yaml:"kind" json:"kind"`

	Op Op `yaml:"op" json:"op"`

	// Values are operand texts in the kind's canonical grammar.
	Values []string `yaml:"values" json:"values"`

	// Expect is the expected canonical text of the result.
	// A nil Expect only checks that the operation succeeds.
	Expect *string `yaml:"expect,omitempty" json:"expect,omitempty"`

	// ExpectError, when set, requires the operation to fail with an error
	// whose message contains this fragment.
	ExpectError string `yaml:"expect_error,omitempty" json:"expect_error,omitempty"`
}

// Load reads a sheet file. The format is chosen by extension:
// .yaml/.yml are decoded strictly with yaml.v3, .cue is unified with the
// embedded schema.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".cue":
		return DecodeCUE(data, filepath.Base(path))
	default:
		return nil, fmt.Errorf("unsupported sheet extension %q: use .yaml, .yml or .cue", ext)
	}
}

// DecodeYAML parses a YAML sheet, rejecting unknown fields.
func DecodeYAML(data []byte) (*Sheet, error) {
	var s Sheet
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&s); err != nil {
		return nil, fmt.Errorf("invalid sheet: %w", err)
	}
	return &s, nil
}

// DecodeCUE compiles a CUE sheet, unifies it with #Sheet and decodes the
// concrete result. filename is used in error positions only.
func DecodeCUE(data []byte, filename string) (*Sheet, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling sheet schema: %w", err)
	}

	doc := ctx.CompileBytes(data, cue.Filename(filename))
	if err := doc.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", err)
	}

	value := schema.LookupPath(cue.ParsePath("#Sheet")).Unify(doc)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("sheet does not match schema: %w", err)
	}

	var s Sheet
	if err := value.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding CUE sheet: %w", err)
	}

	if err := Validate(&s); err != nil {
		return nil, fmt.Errorf("invalid sheet: %w", err)
	}
	return &s, nil
}

// Validate checks required fields, kinds, operations and operand counts.
// Operand texts are not parsed here; that happens during evaluation.
func Validate(s *Sheet) error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if len(s.Entries) == 0 {
		return errors.New("entries list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Entries))
	for i, e := range s.Entries {
		if err := validateEntry(e); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, e.Name, err)
		}
		if seen[e.Name] {
			return fmt.Errorf("entry %d: duplicate name %q", i, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

func validateEntry(e Entry) error {
	if e.Name == "" {
		return errors.New("name is required")
	}
	if _, err := datatype.ParseKind(string(e.Kind)); err != nil {
		return err
	}

	want, ok := operandCounts[e.Op]
	if !ok {
		return fmt.Errorf("unknown op %q", e.Op)
	}
	switch {
	case want < 0 && len(e.Values) == 0:
		return fmt.Errorf("op %s needs at least one value", e.Op)
	case want >= 0 && len(e.Values) != want:
		return fmt.Errorf("op %s needs exactly %d value(s), got %d", e.Op, want, len(e.Values))
	}

	if (e.Op == OpIncrement || e.Op == OpDecrement) && e.Kind != datatype.KindMonth {
		return fmt.Errorf("op %s only applies to kind %s", e.Op, datatype.KindMonth)
	}
	if e.Expect != nil && e.ExpectError != "" {
		return errors.New("expect and expect_error are mutually exclusive")
	}
	return nil
}

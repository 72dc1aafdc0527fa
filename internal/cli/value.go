package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/struct-framework/implementation-data-type/internal/datatype"
	"github.com/struct-framework/implementation-data-type/internal/sheet"
)

// ValueResult is the output of the value commands.
type ValueResult struct {
	Kind  datatype.Kind `json:"kind"`
	Value string        `json:"value"`

	// Int is the integer form, for kinds that have one.
	Int *int64 `json:"int,omitempty"`
}

// String returns the canonical text for text output.
func (r ValueResult) String() string {
	return r.Value
}

func newValueResult(v datatype.Value) ValueResult {
	r := ValueResult{Kind: v.Kind(), Value: v.String()}
	if ic, ok := v.(interface{ Int() int64 }); ok {
		n := ic.Int()
		r.Int = &n
	}
	return r
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	return newValueCommand(rootOpts, sheet.OpNormalize, &cobra.Command{
		Use:   "parse <kind> <text>",
		Short: "Parse a value and print its canonical text",
		Long: `Parse text as a value of the given kind and print its canonical form.

Kinds: ` + kindList() + `

Examples:
  structval parse amount "12.34 EUR"
  structval parse workingtime "1mo 1w 2d 5h 9m"
  structval parse month 2023-10 --format json`,
		Args: cobra.ExactArgs(2),
	})
}

// NewSumCommand creates the sum command.
func NewSumCommand(rootOpts *RootOptions) *cobra.Command {
	return newValueCommand(rootOpts, sheet.OpSum, &cobra.Command{
		Use:   "sum <kind> <text>...",
		Short: "Sum values of one kind",
		Long: `Sum one or more values of the same kind.

Amounts must share a currency; the result uses the finest volume and the
largest decimal count among the operands.

Examples:
  structval sum amount "1.00 EUR" "1 kEUR"
  structval sum workingtime "1d 2h" 6h`,
		Args: cobra.MinimumNArgs(2),
	})
}

// NewNegateCommand creates the negate command.
func NewNegateCommand(rootOpts *RootOptions) *cobra.Command {
	return newValueCommand(rootOpts, sheet.OpNegate, &cobra.Command{
		Use:   "negate <kind> <text>",
		Short: "Invert the sign of a value",
		Long: `Invert the sign of an amount, working hour or working time.

Example:
  structval negate workinghour 8.50`,
		Args: cobra.ExactArgs(2),
	})
}

// NewSubtractCommand creates the subtract command.
func NewSubtractCommand(rootOpts *RootOptions) *cobra.Command {
	return newValueCommand(rootOpts, sheet.OpSubtract, &cobra.Command{
		Use:   "subtract <kind> <minuend> <subtrahend>",
		Short: "Subtract two values of one kind",
		Long: `Compute minuend - subtrahend. Only working-time balances support
subtraction.

Example:
  structval subtract workingtimebalance 1w "4d 6h"`,
		Args: cobra.ExactArgs(3),
	})
}

func newValueCommand(rootOpts *RootOptions, op sheet.Op, cmd *cobra.Command) *cobra.Command {
	cmd.SilenceUsage = true  // Don't print usage on errors
	cmd.SilenceErrors = true // We handle our own error output
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runValue(rootOpts, op, args, cmd)
	}
	return cmd
}

func runValue(opts *RootOptions, op sheet.Op, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	kind, err := datatype.ParseKind(args[0])
	if err != nil {
		return outputCommandError(formatter, ErrCodeUnknownKind, err)
	}

	entry := sheet.Entry{
		Name:   string(op),
		Kind:   kind,
		Op:     op,
		Values: args[1:],
	}
	formatter.VerboseLog("%s %s: %s", cmd.Name(), kind, strings.Join(entry.Values, ", "))

	v, err := sheet.Apply(entry)
	if err != nil {
		slog.Debug("value rejected", "op", op, "kind", kind, "error", err)
		return outputValueError(formatter, err)
	}

	return formatter.Success(newValueResult(v))
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "kinds",
		Short:         "List the supported value kinds",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			if formatter.Format == "json" {
				return formatter.Success(datatype.Kinds())
			}
			return formatter.Success(kindList())
		},
	}
}

func kindList() string {
	kinds := datatype.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/struct-framework/implementation-data-type/internal/sheet"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions

	// RunIDs allows overriding the report ID generator (for testing).
	// If nil, defaults to sheet.UUIDv7Generator.
	RunIDs sheet.RunIDGenerator
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	return newEvalCommand(&EvalOptions{RootOptions: rootOpts})
}

func newEvalCommand(opts *EvalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <sheet.yaml|sheet.cue>",
		Short: "Evaluate a value sheet",
		Long: `Evaluate every entry of a YAML or CUE value sheet and report which
entries produced their expected result.

Exit codes:
  0 - All entries passed
  1 - One or more entries failed
  2 - Command error (missing or invalid sheet)

Examples:
  structval eval ./sheets/march.yaml
  structval eval ./sheets/march.cue --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args[0], cmd)
		},
	}
}

func runEval(opts *EvalOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return outputCommandError(formatter, ErrCodeNotFound, fmt.Errorf("sheet file not found: %s", path))
	}

	s, err := sheet.Load(path)
	if err != nil {
		return outputCommandError(formatter, ErrCodeInvalidSheet, err)
	}
	formatter.VerboseLog("Loaded sheet %s with %d entries", s.Name, len(s.Entries))

	evalOpts := []sheet.EvaluatorOption{sheet.WithLogger(slog.Default())}
	if opts.RunIDs != nil {
		evalOpts = append(evalOpts, sheet.WithRunIDGenerator(opts.RunIDs))
	}

	report, err := sheet.NewEvaluator(evalOpts...).Evaluate(cmd.Context(), s)
	if err != nil {
		return outputCommandError(formatter, ErrCodeInvalidSheet, err)
	}

	if opts.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		writeReportText(formatter.Writer, report)
	}

	if !report.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d entries failed", report.Failed, len(report.Results)))
	}
	return nil
}

// writeReportText prints one line per entry followed by a summary.
func writeReportText(w io.Writer, report *sheet.Report) {
	fmt.Fprintf(w, "Sheet %s (run %s)\n", report.Sheet, report.RunID)

	for _, r := range report.Results {
		mark := "✓"
		if !r.Passed {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s %s (%s %s)", mark, r.Entry, r.Op, r.Kind)

		switch {
		case r.Error != "":
			fmt.Fprintf(w, ": %s\n", r.Error)
		case r.Expect != nil && *r.Expect != r.Value:
			fmt.Fprintf(w, " = %q (expected %q)\n", r.Value, *r.Expect)
		default:
			fmt.Fprintf(w, " = %q\n", r.Value)
		}
	}

	fmt.Fprintf(w, "%d passed, %d failed\n", report.Passed, report.Failed)
}

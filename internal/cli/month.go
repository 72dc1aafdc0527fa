package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/struct-framework/implementation-data-type/internal/datatype"
)

// MonthOptions holds flags for the month command.
type MonthOptions struct {
	*RootOptions
	FromIndex bool // treat the argument as a month index
}

// MonthInfo describes a calendar month.
type MonthInfo struct {
	Month    string `json:"month"`
	Index    int64  `json:"index"`
	FirstDay string `json:"first_day"`
	LastDay  string `json:"last_day"`
	Previous string `json:"previous"`
	Next     string `json:"next"`
}

// String renders the info as aligned lines for text output.
func (m MonthInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "month:     %s\n", m.Month)
	fmt.Fprintf(&b, "index:     %d\n", m.Index)
	fmt.Fprintf(&b, "first day: %s\n", m.FirstDay)
	fmt.Fprintf(&b, "last day:  %s\n", m.LastDay)
	fmt.Fprintf(&b, "previous:  %s\n", m.Previous)
	fmt.Fprintf(&b, "next:      %s", m.Next)
	return b.String()
}

// NewMonthCommand creates the month command.
func NewMonthCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MonthOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "month <YYYY-MM|index>",
		Short: "Show month index, first/last day and neighbours",
		Long: `Show the integer index (year*12 + month-1), the first and last day,
and the previous and next month of a calendar month.

Examples:
  structval month 2023-10
  structval month --index 24285`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonth(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.FromIndex, "index", false, "read the argument as a month index")

	return cmd
}

func runMonth(opts *MonthOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	var m datatype.Month
	if opts.FromIndex {
		index, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return outputCommandError(formatter, ErrCodeGeneric, fmt.Errorf("invalid month index %q", arg))
		}
		if err := m.SetInt(index); err != nil {
			return outputValueError(formatter, err)
		}
	} else {
		parsed, err := datatype.ParseMonth(arg)
		if err != nil {
			return outputValueError(formatter, err)
		}
		m = parsed
	}

	return formatter.Success(describeMonth(m))
}

func describeMonth(m datatype.Month) MonthInfo {
	prev, next := m, m
	prev.Decrement()
	next.Increment()

	return MonthInfo{
		Month:    m.String(),
		Index:    m.Int(),
		FirstDay: m.FirstDayOfMonth().String(),
		LastDay:  m.LastDayOfMonth().String(),
		Previous: prev.String(),
		Next:     next.String(),
	}
}

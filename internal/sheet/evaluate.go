package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/struct-framework/implementation-data-type/internal/datatype"
)

// Evaluator runs sheets and produces reports.
type Evaluator struct {
	logger *slog.Logger
	runIDs RunIDGenerator
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithRunIDGenerator sets the report ID source. Default: UUIDv7Generator.
func WithRunIDGenerator(g RunIDGenerator) EvaluatorOption {
	return func(e *Evaluator) {
		e.runIDs = g
	}
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		logger: slog.Default(),
		runIDs: UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of one entry.
type Result struct {
	Entry string        `json:"entry"`
	Kind  datatype.Kind `json:"kind"`
	Op    Op            `json:"op"`

	// Value is the canonical text of the computed value, empty on error.
	Value string `json:"value"`

	Expect *string `json:"expect,omitempty"`
	Passed bool    `json:"passed"`
	Error  string  `json:"error,omitempty"`
}

// Report collects the results of one sheet evaluation.
type Report struct {
	RunID   string   `json:"run_id"`
	Sheet   string   `json:"sheet"`
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// OK reports whether every entry passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Evaluate validates s and evaluates its entries in order.
//
// Entry failures are recorded in the report; the returned error is reserved
// for an invalid sheet or a cancelled context.
func (e *Evaluator) Evaluate(ctx context.Context, s *Sheet) (*Report, error) {
	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("invalid sheet: %w", err)
	}

	report := &Report{
		RunID:   e.runIDs.Generate(),
		Sheet:   s.Name,
		Results: make([]Result, 0, len(s.Entries)),
	}
	logger := e.logger.With("run_id", report.RunID, "sheet", s.Name)

	for _, entry := range s.Entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res := evaluateEntry(entry)
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		logger.Debug("entry evaluated",
			"entry", entry.Name,
			"op", entry.Op,
			"value", res.Value,
			"passed", res.Passed,
		)
		report.Results = append(report.Results, res)
	}

	logger.Info("sheet evaluated", "passed", report.Passed, "failed", report.Failed)
	return report, nil
}

func evaluateEntry(entry Entry) Result {
	res := Result{
		Entry:  entry.Name,
		Kind:   entry.Kind,
		Op:     entry.Op,
		Expect: entry.Expect,
	}

	v, err := Apply(entry)
	switch {
	case err != nil:
		res.Error = err.Error()
		res.Passed = entry.ExpectError != "" && strings.Contains(res.Error, entry.ExpectError)
	case entry.ExpectError != "":
		res.Value = v.String()
		res.Error = fmt.Sprintf("expected an error containing %q", entry.ExpectError)
	default:
		res.Value = v.String()
		res.Passed = entry.Expect == nil || *entry.Expect == res.Value
	}
	return res
}

// Apply parses the entry's operand texts as its kind and applies its
// operation.
func Apply(entry Entry) (datatype.Value, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	values := make([]datatype.Value, len(entry.Values))
	for i, text := range entry.Values {
		v, err := datatype.Parse(entry.Kind, text)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = v
	}

	switch entry.Op {
	case OpNormalize:
		return values[0], nil
	case OpSum:
		return datatype.SumValues(values)
	case OpNegate:
		return datatype.NegateValue(values[0])
	case OpSubtract:
		return datatype.SubtractValues(values[0], values[1])
	case OpIncrement, OpDecrement:
		m, ok := values[0].(datatype.Month)
		if !ok {
			return nil, fmt.Errorf("op %s needs a month, got %s", entry.Op, values[0].Kind())
		}
		var step datatype.Incrementable = &m
		if entry.Op == OpIncrement {
			step.Increment()
		} else {
			step.Decrement()
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown op %q", entry.Op)
	}
}

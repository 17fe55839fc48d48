package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/san-kum/dimvar/internal/dimvar"
	"github.com/san-kum/dimvar/internal/logging"
)

// Result is one reported output.
type Result struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	Rendered string  `json:"rendered"`
}

type Evaluator struct {
	logger    *slog.Logger
	precision int
}

type Option func(*Evaluator)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// WithPrecision sets the decimals used in Result.Rendered; -1 is shortest.
func WithPrecision(prec int) Option {
	return func(e *Evaluator) { e.precision = prec }
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{logger: logging.Noop(), precision: -1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates s. Quantities are bound first, then steps run in order;
// the first failing step stops evaluation. Without explicit outputs every
// step result is reported in base units.
func (e *Evaluator) Run(ctx context.Context, s *Sheet) ([]Result, error) {
	env := make(map[string]dimvar.Variable, len(s.Quantities)+len(s.Steps))

	for _, q := range s.Quantities {
		if q.Name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := env[q.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, q.Name)
		}
		v, err := dimvar.New(q.Value, q.Unit)
		if err != nil {
			e.logger.WarnContext(ctx, "quantity rejected", "name", q.Name, "unit", q.Unit, "error", err)
			return nil, fmt.Errorf("quantity %s: %w", q.Name, err)
		}
		env[q.Name] = v
	}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v, err := e.step(env, st)
		if err != nil {
			e.logger.WarnContext(ctx, "step failed", "index", i, "name", st.Name, "op", st.Op, "error", err)
			return nil, &StepError{Index: i, Name: st.Name, Op: st.Op, Err: err}
		}
		env[st.Name] = v
		e.logger.DebugContext(ctx, "step evaluated", "index", i, "name", st.Name, "op", st.Op, "result", v.String())
	}

	outputs := s.Outputs
	if len(outputs) == 0 {
		seen := make(map[string]bool, len(s.Steps))
		for _, st := range s.Steps {
			if seen[st.Name] {
				continue
			}
			seen[st.Name] = true
			outputs = append(outputs, Output{Name: st.Name})
		}
	}

	results := make([]Result, 0, len(outputs))
	for _, out := range outputs {
		r, err := e.output(env, out)
		if err != nil {
			return nil, fmt.Errorf("output %s: %w", out.Name, err)
		}
		results = append(results, r)
	}

	e.logger.InfoContext(ctx, "sheet evaluated",
		"quantities", len(s.Quantities),
		"steps", len(s.Steps),
		"outputs", len(results),
	)
	return results, nil
}

func (e *Evaluator) step(env map[string]dimvar.Variable, st Step) (dimvar.Variable, error) {
	if st.Name == "" {
		return dimvar.Variable{}, ErrEmptyName
	}
	o, ok := ops[st.Op]
	if !ok {
		return dimvar.Variable{}, fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	if len(st.Args) != o.arity {
		return dimvar.Variable{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, st.Op, o.arity, len(st.Args))
	}

	args := make([]dimvar.Variable, len(st.Args))
	for i, name := range st.Args {
		v, ok := env[name]
		if !ok {
			return dimvar.Variable{}, fmt.Errorf("%w: %s", ErrUnknownName, name)
		}
		args[i] = v
	}
	return o.fn(args, st)
}

func (e *Evaluator) output(env map[string]dimvar.Variable, out Output) (Result, error) {
	v, ok := env[out.Name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownName, out.Name)
	}

	if out.Unit == "" {
		return Result{
			Name:     out.Name,
			Value:    v.Value(),
			Unit:     dimvar.UnitString(v.Unit()),
			Rendered: v.FormatPrec(e.precision),
		}, nil
	}

	val, err := v.ValueIn(out.Unit)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Name:     out.Name,
		Value:    val,
		Unit:     out.Unit,
		Rendered: strconv.FormatFloat(val, 'f', e.precision, 64) + " " + out.Unit,
	}, nil
}

package sheet

import (
	"fmt"
	"sort"

	"github.com/san-kum/dimvar/internal/dimvar"
)

type opFunc func(args []dimvar.Variable, st Step) (dimvar.Variable, error)

type op struct {
	arity int
	fn    opFunc
}

var ops = map[string]op{
	"add": {2, func(a []dimvar.Variable, _ Step) (dimvar.Variable, error) { return a[0].TryAdd(a[1]) }},
	"sub": {2, func(a []dimvar.Variable, _ Step) (dimvar.Variable, error) { return a[0].TrySub(a[1]) }},
	"mul": {2, pure(func(a []dimvar.Variable) dimvar.Variable { return a[0].Mul(a[1]) })},
	"div": {2, pure(func(a []dimvar.Variable) dimvar.Variable { return a[0].Div(a[1]) })},
	"neg": {1, pure(func(a []dimvar.Variable) dimvar.Variable { return a[0].Neg() })},
	"abs": {1, pure(func(a []dimvar.Variable) dimvar.Variable { return a[0].Abs() })},

	"scale": {1, func(a []dimvar.Variable, st Step) (dimvar.Variable, error) {
		if st.Scalar == nil {
			return dimvar.Variable{}, fmt.Errorf("%w: scale needs scalar", ErrMissingParam)
		}
		return a[0].Scale(*st.Scalar), nil
	}},
	"divscalar": {1, func(a []dimvar.Variable, st Step) (dimvar.Variable, error) {
		if st.Scalar == nil {
			return dimvar.Variable{}, fmt.Errorf("%w: divscalar needs scalar", ErrMissingParam)
		}
		return a[0].DivScalar(*st.Scalar), nil
	}},
	"inv": {1, func(a []dimvar.Variable, st Step) (dimvar.Variable, error) {
		num := 1.0
		if st.Scalar != nil {
			num = *st.Scalar
		}
		return dimvar.ScalarDiv(num, a[0]), nil
	}},

	"powi": {1, func(a []dimvar.Variable, st Step) (dimvar.Variable, error) {
		if st.Exp == nil {
			return dimvar.Variable{}, fmt.Errorf("%w: powi needs exp", ErrMissingParam)
		}
		return a[0].Powi(*st.Exp), nil
	}},
	"powf": {1, func(a []dimvar.Variable, st Step) (dimvar.Variable, error) {
		if st.Power == nil {
			return dimvar.Variable{}, fmt.Errorf("%w: powf needs power", ErrMissingParam)
		}
		return a[0].Powf(*st.Power)
	}},
	"sqrt": {1, func(a []dimvar.Variable, _ Step) (dimvar.Variable, error) { return a[0].Sqrt() }},

	"ln":    {1, scalar(dimvar.Variable.Ln)},
	"log2":  {1, scalar(dimvar.Variable.Log2)},
	"log10": {1, scalar(dimvar.Variable.Log10)},
	"sin":   {1, scalar(dimvar.Variable.Sin)},
	"cos":   {1, scalar(dimvar.Variable.Cos)},
	"tan":   {1, scalar(dimvar.Variable.Tan)},
}

func pure(fn func([]dimvar.Variable) dimvar.Variable) opFunc {
	return func(a []dimvar.Variable, _ Step) (dimvar.Variable, error) {
		return fn(a), nil
	}
}

// scalar adapts a unitless-only function; its result is stored as a
// unitless variable.
func scalar(fn func(dimvar.Variable) (float64, error)) opFunc {
	return func(a []dimvar.Variable, _ Step) (dimvar.Variable, error) {
		x, err := fn(a[0])
		if err != nil {
			return dimvar.Variable{}, err
		}
		return dimvar.Scalar(x), nil
	}
}

// Ops returns the supported operation names, sorted.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

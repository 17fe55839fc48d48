package viz

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dimvar/internal/dimvar"
)

var ErrSweepPoints = errors.New("viz: sweep needs at least 2 points")

// Sweep samples the conversion of values in From to unit To over [Min, Max].
type Sweep struct {
	From   string
	To     string
	Min    float64
	Max    float64
	Points int
}

// Run returns the sampled inputs and their converted values.
func (s Sweep) Run() (xs, ys []float64, err error) {
	if s.Points < 2 {
		return nil, nil, ErrSweepPoints
	}

	xs = make([]float64, s.Points)
	ys = make([]float64, s.Points)
	step := (s.Max - s.Min) / float64(s.Points-1)

	for i := range xs {
		x := s.Min + step*float64(i)
		v, err := dimvar.New(x, s.From)
		if err != nil {
			return nil, nil, err
		}
		y, err := v.ValueIn(s.To)
		if err != nil {
			return nil, nil, err
		}
		xs[i], ys[i] = x, y
	}
	return xs, ys, nil
}

// Plot renders the sweep as an ASCII line graph.
func (s Sweep) Plot(width, height int) (string, error) {
	_, ys, err := s.Run()
	if err != nil {
		return "", err
	}

	caption := fmt.Sprintf("%s in %s, %g..%g %s", s.From, s.To, s.Min, s.Max, s.From)
	return asciigraph.Plot(ys,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	), nil
}

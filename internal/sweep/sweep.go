// Package sweep evaluates planform outputs over a grid of wing inputs.
package sweep

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gowing/internal/planform"
	"gonum.org/v1/gonum/floats"
)

// ErrNoPoints is returned for a sweep without values
var ErrNoPoints = errors.New("sweep needs at least one value")

// ErrUnknownMetric is returned for a metric outside Metrics()
var ErrUnknownMetric = errors.New("unknown metric")

// LineResult holds a metric evaluated along one variable
type LineResult struct {
	Variable Variable
	Metric   Metric
	Inputs   []float64
	Outputs  []float64
}

// CarpetResult holds a metric evaluated over two variables.
// Outputs[j][i] belongs to YInputs[j] and XInputs[i].
type CarpetResult struct {
	X, Y    Variable
	Metric  Metric
	XInputs []float64
	YInputs []float64
	Outputs [][]float64
}

// Linspace returns n evenly spaced values from lo to hi inclusive
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Line evaluates the metric for each value of one variable
func Line(base planform.Wing, v Variable, values []float64, m Metric) (*LineResult, error) {
	if len(values) == 0 {
		return nil, ErrNoPoints
	}
	if !m.known() {
		return nil, fmt.Errorf("%w %q", ErrUnknownMetric, m)
	}

	res := &LineResult{
		Variable: v,
		Metric:   m,
		Inputs:   append([]float64(nil), values...),
		Outputs:  make([]float64, len(values)),
	}
	for i, value := range values {
		out, err := evaluate(base, m, point{v, value})
		if err != nil {
			return nil, err
		}
		res.Outputs[i] = out
	}
	return res, nil
}

// Carpet evaluates the metric over every pair of x and y values
func Carpet(base planform.Wing, x Variable, xs []float64, y Variable, ys []float64, m Metric) (*CarpetResult, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return nil, ErrNoPoints
	}
	if x == y {
		return nil, fmt.Errorf("carpet variables must differ, got %q twice", x)
	}
	if !m.known() {
		return nil, fmt.Errorf("%w %q", ErrUnknownMetric, m)
	}

	res := &CarpetResult{
		X:       x,
		Y:       y,
		Metric:  m,
		XInputs: append([]float64(nil), xs...),
		YInputs: append([]float64(nil), ys...),
		Outputs: make([][]float64, len(ys)),
	}
	for j, yv := range ys {
		res.Outputs[j] = make([]float64, len(xs))
		for i, xv := range xs {
			out, err := evaluate(base, m, point{x, xv}, point{y, yv})
			if err != nil {
				return nil, err
			}
			res.Outputs[j][i] = out
		}
	}
	return res, nil
}

type point struct {
	v     Variable
	value float64
}

func evaluate(base planform.Wing, m Metric, at ...point) (float64, error) {
	w := base
	for _, p := range at {
		var err error
		if w, err = p.v.Apply(w, p.value); err != nil {
			return 0, err
		}
	}

	pf, err := w.Planform()
	if err != nil {
		desc := ""
		for _, p := range at {
			desc += fmt.Sprintf(" %s=%g", p.v, p.value)
		}
		return 0, fmt.Errorf("evaluate%s: %w", desc, err)
	}
	return m.Of(pf), nil
}

// Min returns the smallest output and the input that produced it
func (r *LineResult) Min() (input, output float64) {
	i := floats.MinIdx(r.Outputs)
	return r.Inputs[i], r.Outputs[i]
}

// Max returns the largest output and the input that produced it
func (r *LineResult) Max() (input, output float64) {
	i := floats.MaxIdx(r.Outputs)
	return r.Inputs[i], r.Outputs[i]
}

// Min returns the smallest output and its x and y inputs
func (r *CarpetResult) Min() (x, y, output float64) {
	return r.extreme(floats.MinIdx, func(a, b float64) bool { return a < b })
}

// Max returns the largest output and its x and y inputs
func (r *CarpetResult) Max() (x, y, output float64) {
	return r.extreme(floats.MaxIdx, func(a, b float64) bool { return a > b })
}

func (r *CarpetResult) extreme(idx func([]float64) int, better func(a, b float64) bool) (x, y, output float64) {
	bi, bj := idx(r.Outputs[0]), 0
	for j := 1; j < len(r.Outputs); j++ {
		i := idx(r.Outputs[j])
		if better(r.Outputs[j][i], r.Outputs[bj][bi]) {
			bi, bj = i, j
		}
	}
	return r.XInputs[bi], r.YInputs[bj], r.Outputs[bj][bi]
}

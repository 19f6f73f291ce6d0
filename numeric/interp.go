// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package numeric

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// Table is a piecewise-linear function over a sorted set of (x, y) pairs,
// with out-of-range queries clamped to the endpoints.
//
// It wraps gonum's interp.PiecewiseLinear so that every table-driven model
// in this module (user-supplied age-to-depth curves, sea level, and the
// non-dynamic-topography general case) shares one interpolation
// implementation.
type Table struct {
	xs, ys []float64
	fn     interp.PiecewiseLinear
}

// NewTable builds a Table from parallel x/y slices. xs must be strictly
// increasing.
func NewTable(xs, ys []float64) (*Table, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("numeric: table x/y length mismatch: %d != %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("numeric: table needs at least 2 points, got %d", len(xs))
	}
	if !sort.Float64sAreSorted(xs) {
		return nil, fmt.Errorf("numeric: table x values must be sorted")
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] == xs[i-1] {
			return nil, fmt.Errorf("numeric: table has duplicate x value %g", xs[i])
		}
	}

	t := &Table{xs: append([]float64(nil), xs...), ys: append([]float64(nil), ys...)}
	if err := t.fn.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("numeric: fitting piecewise-linear table: %w", err)
	}
	return t, nil
}

// At returns the interpolated value at x, clamping to the endpoint value
// when x lies outside [xs[0], xs[len-1]].
func (t *Table) At(x float64) float64 {
	if x <= t.xs[0] {
		return t.ys[0]
	}
	if x >= t.xs[len(t.xs)-1] {
		return t.ys[len(t.ys)-1]
	}
	return t.fn.Predict(x)
}

// Bounds returns the minimum and maximum x covered by the table.
func (t *Table) Bounds() (min, max float64) {
	return t.xs[0], t.xs[len(t.xs)-1]
}

// Points returns copies of the table's knot x and y values, in sorted
// order.
func (t *Table) Points() (xs, ys []float64) {
	return append([]float64(nil), t.xs...), append([]float64(nil), t.ys...)
}

// Average returns the mean of the piecewise-linear function over [lo, hi],
// computed as the exact analytic integral divided by the interval length
// (per original_source/sea_level.py, which integrates segment by segment
// rather than sampling discretely).
func (t *Table) Average(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return t.At(lo)
	}

	integral := 0.0
	x0, y0 := lo, t.At(lo)
	for _, x := range t.xs {
		if x <= lo || x >= hi {
			continue
		}
		y := t.At(x)
		integral += (y0 + y) / 2 * (x - x0)
		x0, y0 = x, y
	}
	y := t.At(hi)
	integral += (y0 + y) / 2 * (hi - x0)

	return integral / (hi - lo)
}

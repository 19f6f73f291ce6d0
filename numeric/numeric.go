// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package numeric implements the shared numerical utilities used by the
// decompaction, subsidence, and dynamic-topography packages: bisection
// root-finding, piecewise-linear interpolation, and bilinear raster
// sampling.
package numeric

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ArgTolerance is the default relative tolerance on the bisection argument.
const ArgTolerance = 1e-6

// FuncTolerance is the default absolute tolerance on the bisection function
// value.
const FuncTolerance = 1e-3

// MaxIterations bounds the number of bisection steps before giving up.
const MaxIterations = 200

// NotConverged is returned by Bisect when the search fails to bracket a
// root, or does not converge within MaxIterations.
type NotConverged struct {
	Lo, Hi float64
	FLo    float64
	FHi    float64
}

func (e *NotConverged) Error() string {
	return fmt.Sprintf("bisection did not converge on [%g, %g] (f(lo)=%g, f(hi)=%g)", e.Lo, e.Hi, e.FLo, e.FHi)
}

// Bisect finds x in [lo, hi] such that f(x) is within FuncTolerance of zero,
// assuming f is monotone on [lo, hi] and changes sign across the interval.
// It is generic over any float type so callers working in float32 rasters
// can reuse it without conversion noise.
func Bisect[T constraints.Float](f func(T) T, lo, hi T) (T, error) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, &NotConverged{Lo: float64(lo), Hi: float64(hi), FLo: float64(flo), FHi: float64(fhi)}
	}

	for i := 0; i < MaxIterations; i++ {
		mid := lo + (hi-lo)/2
		fmid := f(mid)

		if math.Abs(float64(fmid)) <= FuncTolerance {
			return mid, nil
		}
		if math.Abs(float64(hi-lo)) <= ArgTolerance*math.Abs(float64(mid))+ArgTolerance {
			return mid, nil
		}

		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi, fhi = mid, fmid
		}
	}
	return 0, &NotConverged{Lo: float64(lo), Hi: float64(hi), FLo: float64(flo), FHi: float64(fhi)}
}

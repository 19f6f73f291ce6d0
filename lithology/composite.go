// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package lithology

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/EarthByte/pyBacktrack/diag"
)

// FractionTolerance is how far a set of mixture fractions may stray from
// summing to 1 before it is rejected.
const FractionTolerance = 1e-3

// Component names one basic lithology and its fractional weight in a
// mixture.
type Component struct {
	Name     string
	Fraction float64
}

// Composite is a weighted mixture of basic lithologies, resolved against a
// registry. Effective parameters are the weighted averages of grain
// density, surface porosity, and decay length.
type Composite struct {
	Components      []Component
	GrainDensity    float64
	SurfacePorosity float64
	DecayLength     float64
}

// NewComposite resolves a set of lithology components against a registry,
// validating that the fractions sum to 1±FractionTolerance, and computes
// the mixture-averaged parameters.
func NewComposite(reg *Registry, components []Component) (Composite, error) {
	var sum float64
	for _, c := range components {
		sum += c.Fraction
	}
	if !floats.EqualWithinAbs(sum, 1, FractionTolerance) {
		return Composite{}, diag.New(diag.BadInputFormat, fmt.Sprintf("lithology fractions sum to %g, want 1±%g", sum, FractionTolerance))
	}

	c := Composite{Components: components}
	for _, comp := range components {
		l, err := reg.Lookup(comp.Name)
		if err != nil {
			return Composite{}, err
		}
		c.GrainDensity += comp.Fraction * l.GrainDensity
		c.SurfacePorosity += comp.Fraction * l.SurfacePorosity
		c.DecayLength += comp.Fraction * l.DecayLength
	}
	return c, nil
}

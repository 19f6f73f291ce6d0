// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package decompact implements the porosity-integral decompaction engine:
// grain-volume-conserving decompaction of a stratigraphic column, and the
// density/porosity integrals of a decompacted layer.
package decompact

import (
	"math"

	"github.com/EarthByte/pyBacktrack/numeric"
	"github.com/EarthByte/pyBacktrack/strata"
)

// DensityWater is the default water density ρ_w [kg/m³] used in layer
// density averaging.
const DensityWater = 1030.0

// Tolerance is the bisection tolerance on a decompacted depth, in meters.
const Tolerance = 1e-3

// Layer is a decompacted stratigraphic unit at some reference age t.
type Layer struct {
	TopDepth, BottomDepth float64
	Density               float64 // average over the decompacted thickness
	Porosity              float64 // average over the decompacted thickness
}

// Thickness returns the decompacted thickness.
func (l Layer) Thickness() float64 { return l.BottomDepth - l.TopDepth }

// grainVolume is G(z_top, z_bot), the grain volume per unit
// area preserved under decompaction, for a lithology with surface porosity
// phi0 and decay length c.
func grainVolume(zTop, zBot, phi0, c float64) float64 {
	return (zBot - zTop) - phi0*c*(math.Exp(-zTop/c)-math.Exp(-zBot/c))
}

// solveBottom finds z'_bot such that grainVolume(zTop, z'_bot, phi0, c)
// equals the target grain volume g, by bisection on the monotone function
// z'_bot -> grainVolume(zTop, z'_bot, phi0, c) - g.
func solveBottom(zTop, g, phi0, c float64) (float64, error) {
	// grainVolume grows by at least (1-phi0) per meter of zBot, so
	// scaling the residual by FuncTolerance/(Tolerance*(1-phi0)) turns
	// numeric.Bisect's function-value stop into a depth error of at
	// most Tolerance.
	scale := numeric.FuncTolerance / (Tolerance * (1 - phi0))
	f := func(zBot float64) float64 {
		return (grainVolume(zTop, zBot, phi0, c) - g) * scale
	}

	// grainVolume is strictly increasing in zBot (its derivative is
	// 1-phi0*exp(-zBot/c) > 0 for phi0<1), so a high enough upper bound
	// always brackets the root. Start from the trivial guess z'_bot =
	// zTop + g and grow geometrically until the bracket is found.
	hi := zTop + g + 1
	for i := 0; i < 64; i++ {
		if f(hi) >= 0 {
			break
		}
		hi = zTop + (hi-zTop)*2
	}

	return numeric.Bisect(f, zTop, hi)
}

// averageDensityPorosity integrates density and porosity over [zTop, zBot]
// for a lithology with grain density rhoS, surface porosity phi0, decay
// length c, analytically (phi(z) = phi0*exp(-z/c)):
//
//	∫ phi(z) dz       = phi0*c*(exp(-zTop/c) - exp(-zBot/c))
//	∫ (1-phi(z)) dz   = thickness - ∫ phi(z) dz
//	density            = ((1-φ̄)*rhoS + φ̄*rhoW) averaged over thickness
func averageDensityPorosity(zTop, zBot, rhoS, phi0, c, rhoW float64) (density, porosity float64) {
	thickness := zBot - zTop
	if thickness <= 0 {
		return rhoS, 0
	}
	poreVolume := phi0 * c * (math.Exp(-zTop/c) - math.Exp(-zBot/c))
	phiBar := poreVolume / thickness
	density = (1-phiBar)*rhoS + phiBar*rhoW
	return density, phiBar
}

// Decompact decompacts a single stratigraphic unit to a new top depth
// zTop, preserving its present-day grain volume, and returns the
// decompacted layer. rhoW is the water density used for layer-density
// averaging.
func Decompact(u strata.Unit, zTop, rhoW float64) (Layer, error) {
	phi0 := u.Lithology.SurfacePorosity
	c := u.Lithology.DecayLength
	rhoS := u.Lithology.GrainDensity

	g := grainVolume(u.TopDepth, u.BottomDepth, phi0, c)
	zBot, err := solveBottom(zTop, g, phi0, c)
	if err != nil {
		return Layer{}, err
	}

	density, porosity := averageDensityPorosity(zTop, zBot, rhoS, phi0, c, rhoW)
	return Layer{TopDepth: zTop, BottomDepth: zBot, Density: density, Porosity: porosity}, nil
}

// Column is the decompacted state of an entire stratigraphic column at a
// reference age t: the per-layer decompacted geometry, plus the totals
// (total decompacted sediment thickness and average density).
type Column struct {
	Layers         []Layer
	TotalThickness float64
	AverageDensity float64
}

// AtAge decompacts every unit of units whose top age is >= t (i.e.
// already deposited at t), trimming the topmost surviving unit so its
// effective top age is t. Layers are placed top-down: the topmost
// surviving layer's top is 0, and each subsequent layer's top is the
// previous layer's solved bottom.
func AtAge(units []strata.Unit, t, rhoW float64) (Column, error) {
	var surviving []strata.Unit
	for _, u := range units {
		if u.TopAge >= t {
			surviving = append(surviving, u)
			continue
		}
		if u.BottomAge > t {
			// t falls inside this unit: trim it so only the
			// fraction already deposited at t survives. Depth
			// grows with age (BottomDepth is the oldest,
			// deepest extent), so the surviving material is the
			// older, deeper sub-interval [depthAtT, BottomDepth],
			// with depthAtT found by linear-in-age interpolation
			// between BottomDepth (at BottomAge) and TopDepth (at
			// TopAge).
			frac := (u.BottomAge - t) / (u.BottomAge - u.TopAge)
			depthAtT := u.TopDepth + (1-frac)*(u.BottomDepth-u.TopDepth)
			trimmed := u
			trimmed.TopAge = t
			trimmed.TopDepth = depthAtT
			surviving = append(surviving, trimmed)
		}
	}

	var col Column
	zTop := 0.0
	for _, u := range surviving {
		layer, err := Decompact(u, zTop, rhoW)
		if err != nil {
			return Column{}, err
		}
		col.Layers = append(col.Layers, layer)
		zTop = layer.BottomDepth
	}

	col.TotalThickness = zTop
	if col.TotalThickness > 0 {
		var massSum float64
		for _, l := range col.Layers {
			massSum += l.Density * l.Thickness()
		}
		col.AverageDensity = massSum / col.TotalThickness
	}
	return col, nil
}

// Recompact decompacts u to its own present-day top depth, which yields
// its present-day geometry again (BottomDepth equal to u.BottomDepth
// within Tolerance). It does not compare the result with u itself. It is
// provided for testing the round-trip invariant.
func Recompact(u strata.Unit, rhoW float64) (Layer, error) {
	return Decompact(u, u.TopDepth, rhoW)
}

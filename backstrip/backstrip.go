// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package backstrip implements the backstrip driver: given a drill site
// with recorded minimum/maximum paleo water depth per layer, it inverts
// the isostatic load-balance equation to recover the tectonic subsidence
// at each stratigraphic age. Unlike backtrack, no tectonic-subsidence
// model (age-to-depth, rift, or dynamic topography) is used; only
// decompaction and the optional sea-level correction enter.
package backstrip

import (
	"sort"

	"github.com/EarthByte/pyBacktrack/decompact"
	"github.com/EarthByte/pyBacktrack/diag"
	"github.com/EarthByte/pyBacktrack/sealevel"
	"github.com/EarthByte/pyBacktrack/strata"
)

// MantleDensity and DensityWater mirror the constants used by the
// backtrack driver's isostatic load-balance equation.
const (
	MantleDensity = 3330.0
	DensityWater  = decompact.DensityWater
)

// Point is one row of the reconstructed tectonic-subsidence history.
type Point struct {
	Age              float64
	DecompactedTotal float64
	AverageDensity   float64
	SubsidenceMin    float64
	SubsidenceMax    float64
	SubsidenceAvg    float64
}

// Run reconstructs the tectonic-subsidence history of well at the
// stratigraphic ages given by each unit's top age, plus the age at the
// base of the deepest unit. Every unit must carry a known WaterDepth.
// seaLevel is optional; nil is equivalent to a model identically zero.
func Run(well *strata.Well, seaLevel *sealevel.Model, d *diag.Diagnostics) ([]Point, error) {
	if err := well.Validate(); err != nil {
		return nil, err
	}
	for _, u := range well.Units {
		if !u.WaterDepth.Known {
			return nil, diag.New(diag.BadInputFormat, "unit has no recorded paleo water depth required for backstripping")
		}
	}

	ages := stratigraphicAges(well)

	points := make([]Point, 0, len(ages))
	for _, t := range ages {
		col, err := decompact.AtAge(well.Units, t, DensityWater)
		if err != nil {
			return nil, err
		}

		wMin, wMax, err := recordedWaterDepthAt(well, t)
		if err != nil {
			return nil, err
		}

		seaAnomaly := seaLevel.Anomaly(t)
		sMin := subsidenceFromWaterDepth(wMin, col.AverageDensity, col.TotalThickness, seaAnomaly)
		sMax := subsidenceFromWaterDepth(wMax, col.AverageDensity, col.TotalThickness, seaAnomaly)

		points = append(points, Point{
			Age:              t,
			DecompactedTotal: col.TotalThickness,
			AverageDensity:   col.AverageDensity,
			SubsidenceMin:    sMin,
			SubsidenceMax:    sMax,
			SubsidenceAvg:    (sMin + sMax) / 2,
		})
	}
	return points, nil
}

// subsidenceFromWaterDepth inverts the backtrack driver's isostatic
// load-balance equation for S given W:
//
//	S = W + (rho_m - rhoBar)/(rho_m - rho_w) * T - dSeaLevel*rho_m/(rho_m - rho_w)
func subsidenceFromWaterDepth(waterDepth, avgDensity, totalThickness, seaAnomaly float64) float64 {
	loadTerm := (MantleDensity - avgDensity) / (MantleDensity - DensityWater) * totalThickness
	seaTerm := seaAnomaly * MantleDensity / (MantleDensity - DensityWater)
	return waterDepth + loadTerm - seaTerm
}

// recordedWaterDepthAt returns the recorded min/max water depth of the
// unit whose top age equals t, or of the deepest unit if t is the base
// age beyond the last unit's top.
func recordedWaterDepthAt(well *strata.Well, t float64) (min, max float64, err error) {
	for _, u := range well.Units {
		if u.TopAge == t {
			return u.WaterDepth.Min, u.WaterDepth.Max, nil
		}
	}
	deepest := well.DeepestUnit()
	if deepest.BottomAge == t {
		return deepest.WaterDepth.Min, deepest.WaterDepth.Max, nil
	}
	return 0, 0, diag.New(diag.BadInputFormat, "no recorded water depth at the requested age")
}

// stratigraphicAges returns every unit's top age, plus the age at the base
// of the deepest unit, oldest first.
func stratigraphicAges(well *strata.Well) []float64 {
	ages := make([]float64, 0, len(well.Units)+1)
	for _, u := range well.Units {
		ages = append(ages, u.TopAge)
	}
	ages = append(ages, well.DeepestUnit().BottomAge)
	sort.Sort(sort.Reverse(sort.Float64Slice(ages)))
	return ages
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package backtrack implements the backtrack driver: given a drill site
// whose present-day water depth is known but whose paleo water depth is
// not, it reconstructs the water-depth history by combining decompaction
// with a tectonic-subsidence model (oceanic age-to-depth or continental
// rift) and optional dynamic-topography and sea-level corrections.
package backtrack

import (
	"fmt"
	"sort"

	"github.com/EarthByte/pyBacktrack/continental"
	"github.com/EarthByte/pyBacktrack/decompact"
	"github.com/EarthByte/pyBacktrack/diag"
	"github.com/EarthByte/pyBacktrack/dyntopo"
	"github.com/EarthByte/pyBacktrack/oceanic"
	"github.com/EarthByte/pyBacktrack/sealevel"
	"github.com/EarthByte/pyBacktrack/strata"
)

// MantleDensity and DensityWater are the isostatic load-balance constants.
const (
	MantleDensity = 3330.0
	DensityWater  = decompact.DensityWater
)

// Point is one row of the reconstructed history: the state at a single
// stratigraphic age.
type Point struct {
	Age              float64
	DecompactedTotal float64 // total decompacted sediment thickness, m
	AverageDensity   float64
	Subsidence       float64 // tectonic subsidence S(t), m
	WaterDepth       float64 // W(t), m
	Beta             float64 // continental sites only; zero for oceanic
}

// Config bundles the tectonic-subsidence inputs a backtrack run needs on
// top of the well itself.
type Config struct {
	// Oceanic is used when well.Crust == strata.Oceanic.
	Oceanic oceanic.Model

	// Rift is used when well.Crust == strata.Continental.
	Rift continental.Params

	// DynTopo is optional; nil disables the dynamic-topography
	// correction.
	DynTopo *dyntopo.Model

	// SeaLevel is optional; nil is equivalent to a model identically
	// zero.
	SeaLevel *sealevel.Model
}

// Run reconstructs the water-depth history of well at the stratigraphic
// ages given by each unit's top age, plus the age at the base of the
// deepest unit. Results are ordered oldest to youngest.
func Run(well *strata.Well, cfg Config, d *diag.Diagnostics) ([]Point, error) {
	if err := well.Validate(); err != nil {
		return nil, err
	}

	ages := stratigraphicAges(well)

	key := fmt.Sprintf("%g,%g", well.Longitude, well.Latitude)

	var (
		beta0      float64
		dynTopo0   float64
		hasDynTopo = cfg.DynTopo != nil
	)
	if hasDynTopo {
		dynTopo0 = cfg.DynTopo.Elevation(well.Longitude, well.Latitude, 0, d)
	}

	if well.Crust == strata.Continental {
		s0, err := presentDaySubsidence(well, cfg, d)
		if err != nil {
			return nil, err
		}
		target := s0
		if hasDynTopo {
			target -= dynTopo0
		}
		res, err := continental.EstimateBeta(cfg.Rift, well.RiftEndAge, target, d, key)
		if err != nil {
			return nil, err
		}
		beta0 = res.Beta
	}

	points := make([]Point, 0, len(ages))
	for _, t := range ages {
		col, err := decompact.AtAge(well.Units, t, DensityWater)
		if err != nil {
			return nil, err
		}

		subsidence, beta, err := tectonicSubsidence(well, cfg, t, beta0, d, key)
		if err != nil {
			return nil, err
		}

		var dynCorrection float64
		if hasDynTopo {
			switch well.Crust {
			case strata.Oceanic:
				dynCorrection = cfg.DynTopo.Elevation(well.Longitude, well.Latitude, t, d) - dynTopo0
			case strata.Continental:
				ref := dynTopo0
				if t <= well.RiftStartAge {
					ref = cfg.DynTopo.Elevation(well.Longitude, well.Latitude, well.RiftStartAge, d)
				}
				dynCorrection = cfg.DynTopo.Elevation(well.Longitude, well.Latitude, t, d) - ref
			}
			subsidence += dynCorrection
		}

		seaAnomaly := cfg.SeaLevel.Anomaly(t)
		w := waterDepth(subsidence, col.AverageDensity, col.TotalThickness, seaAnomaly)

		points = append(points, Point{
			Age:              t,
			DecompactedTotal: col.TotalThickness,
			AverageDensity:   col.AverageDensity,
			Subsidence:       subsidence,
			WaterDepth:       w,
			Beta:             beta,
		})
	}
	return points, nil
}

// waterDepth solves the isostatic load-balance equation:
//
//	W = S - (rho_m - rhoBar)/(rho_m - rho_w) * T + dSeaLevel*rho_m/(rho_m - rho_w)
func waterDepth(subsidence, avgDensity, totalThickness, seaAnomaly float64) float64 {
	loadTerm := (MantleDensity - avgDensity) / (MantleDensity - DensityWater) * totalThickness
	seaTerm := seaAnomaly * MantleDensity / (MantleDensity - DensityWater)
	return subsidence - loadTerm + seaTerm
}

// tectonicSubsidence computes S(t) for the well's crust branch.
func tectonicSubsidence(well *strata.Well, cfg Config, t, beta0 float64, d *diag.Diagnostics, key string) (subsidence, beta float64, err error) {
	switch well.Crust {
	case strata.Oceanic:
		age := well.CrustAge - t
		if age < 0 {
			age = 0
		}
		return cfg.Oceanic.Depth(age), 0, nil

	case strata.Continental:
		if t <= well.RiftEndAge {
			tau := well.RiftEndAge - t
			return cfg.Rift.Total(beta0, tau), beta0, nil
		}
		b := continental.BetaAt(beta0, well.RiftStartAge, well.RiftEndAge, t)
		return cfg.Rift.SynRift(b), b, nil

	default:
		return 0, 0, diag.New(diag.BadInputFormat, "well has an unrecognized crust kind")
	}
}

// presentDaySubsidence derives the target present-day tectonic subsidence
// S0 for beta estimation from the well's recorded present-day water depth
// and the decompacted column at age 0: invert the isostatic load-balance
// equation for S given the recorded present-day water depth, taken as the
// midpoint of the first unit's WaterDepth min/max. If the first unit has
// no known WaterDepth it returns a diag.BadInputFormat error.
func presentDaySubsidence(well *strata.Well, cfg Config, d *diag.Diagnostics) (float64, error) {
	first := well.Units[0]
	if !first.WaterDepth.Known {
		return 0, diag.New(diag.BadInputFormat, "continental well has no recorded present-day water depth to estimate beta from")
	}
	w0 := (first.WaterDepth.Min + first.WaterDepth.Max) / 2

	col, err := decompact.AtAge(well.Units, 0, DensityWater)
	if err != nil {
		return 0, err
	}
	loadTerm := (MantleDensity - col.AverageDensity) / (MantleDensity - DensityWater) * col.TotalThickness
	return w0 + loadTerm, nil
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

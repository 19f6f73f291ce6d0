// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package backtrack_test

import (
	"math"
	"testing"

	"github.com/EarthByte/pyBacktrack/backtrack"
	"github.com/EarthByte/pyBacktrack/decompact"
	"github.com/EarthByte/pyBacktrack/diag"
	"github.com/EarthByte/pyBacktrack/lithology"
	"github.com/EarthByte/pyBacktrack/oceanic"
	"github.com/EarthByte/pyBacktrack/strata"
)

func shaleComposite(t *testing.T) lithology.Composite {
	t.Helper()
	reg := lithology.New()
	reg.Set(lithology.Lithology{Name: "Shale", GrainDensity: 2700, SurfacePorosity: 0.63, DecayLength: 1960})
	c, err := lithology.NewComposite(reg, []lithology.Component{{Name: "Shale", Fraction: 1}})
	if err != nil {
		t.Fatalf("unable to build composite: %v", err)
	}
	return c
}

func TestRunOceanicSingleLayer(t *testing.T) {
	shale := shaleComposite(t)

	well := &strata.Well{
		Crust:    strata.Oceanic,
		CrustAge: 50,
		Units: []strata.Unit{
			{
				TopAge: 0, BottomAge: 50,
				TopDepth: 0, BottomDepth: 1000,
				Lithology:  shale,
				WaterDepth: strata.WaterDepthRange{Min: 2000, Max: 2000, Known: true},
			},
		},
	}

	// The offset is fit from present-day subsidence, not present-day
	// water depth directly: the two differ by the isostatic correction
	// of the present-day decompacted column.
	col0, err := decompact.AtAge(well.Units, 0, backtrack.DensityWater)
	if err != nil {
		t.Fatalf("unable to decompact present-day column: %v", err)
	}
	loadTerm := (backtrack.MantleDensity - col0.AverageDensity) / (backtrack.MantleDensity - backtrack.DensityWater) * col0.TotalThickness
	s0Target := 2000 + loadTerm

	gdh1 := oceanic.Fit(oceanic.GDH1{}, s0Target, 50)
	cfg := backtrack.Config{Oceanic: gdh1}

	d := diag.NewDiagnostics()
	points, err := backtrack.Run(well, cfg, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points (top age + base age), got %d", len(points))
	}

	// Points are ordered oldest to youngest: index 0 is age 50, index 1
	// is age 0.
	if points[0].Age != 50 || points[1].Age != 0 {
		t.Fatalf("unexpected ages: %v, %v", points[0].Age, points[1].Age)
	}
	if math.Abs(points[1].WaterDepth-2000) > 1 {
		t.Errorf("present-day water depth: got %g, want ~2000", points[1].WaterDepth)
	}
	if points[0].DecompactedTotal != 0 {
		t.Errorf("decompacted thickness at t=50 (deposition start): got %g, want 0", points[0].DecompactedTotal)
	}
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package dyntopo_test

import (
	"math"
	"testing"

	"github.com/EarthByte/pyBacktrack/diag"
	"github.com/EarthByte/pyBacktrack/dyntopo"
)

// identityRecons is a no-op reconstruction: every point stays put, and
// every location belongs to plate 0. It is enough to exercise the
// sampler's bracketing/interpolation logic independent of any real
// rotation model.
type identityRecons struct{}

func (identityRecons) PlateID(lon, lat float64) (int, bool) { return 0, true }
func (identityRecons) Reconstruct(lon, lat float64, plate int, age float64) (float64, float64) {
	return lon, lat
}

type constRaster float64

func (c constRaster) Sample(lon, lat float64) float64 { return float64(c) }

func TestElevationInterpolation(t *testing.T) {
	m, err := dyntopo.NewModel("test-model",
		[]float64{0, 10, 20},
		[]dyntopo.Raster{constRaster(0), constRaster(50), constRaster(120)},
		identityRecons{},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := diag.NewDiagnostics()
	if v := m.Elevation(10, 10, 5, d); math.Abs(v-25) > 1e-9 {
		t.Errorf("elevation at t=5: got %g, want 25", v)
	}
	if len(d.Warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", d.Warnings())
	}
}

func TestElevationClampsBeyondOldestGrid(t *testing.T) {
	m, err := dyntopo.NewModel("test-model",
		[]float64{0, 10, 20},
		[]dyntopo.Raster{constRaster(0), constRaster(50), constRaster(120)},
		identityRecons{},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := diag.NewDiagnostics()
	if v := m.Elevation(10, 10, 25, d); v != 120 {
		t.Errorf("elevation at t=25 (beyond oldest grid): got %g, want 120", v)
	}
	if len(d.Warnings()) != 1 {
		t.Errorf("expected one warning, got %d", len(d.Warnings()))
	}

	// A second out-of-range query at a different age should not emit a
	// second warning for the same model (one-shot per model).
	m.Elevation(10, 10, 30, d)
	if len(d.Warnings()) != 1 {
		t.Errorf("expected warning to remain one-shot, got %d", len(d.Warnings()))
	}
}

func TestContribution(t *testing.T) {
	m, err := dyntopo.NewModel("test-model",
		[]float64{0, 10},
		[]dyntopo.Raster{constRaster(100), constRaster(150)},
		identityRecons{},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := diag.NewDiagnostics()
	if v := m.Contribution(10, 10, 10, d); math.Abs(v-50) > 1e-9 {
		t.Errorf("contribution: got %g, want 50", v)
	}
}

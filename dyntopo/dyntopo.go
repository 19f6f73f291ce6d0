// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dyntopo implements the dynamic-topography sampler: given a
// present-day location and a time, it assigns a plate, reconstructs the
// location to that time, and samples a time series of mantle-frame grids,
// interpolating linearly between the bracketing grid ages.
//
// The plate-reconstruction library and the raster readers are external
// collaborators: this package only depends on the two small interfaces
// below, so a caller can plug in any reconstruction/raster implementation,
// including an adapter over github.com/js-arias/earth (see
// earth_adapter.go).
package dyntopo

import (
	"math"

	"github.com/EarthByte/pyBacktrack/diag"
	"github.com/EarthByte/pyBacktrack/timestage"
)

// PlateReconstruction assigns a plate ID to a present-day location and
// reconstructs a present-day location to its position at a past time under
// that plate's motion.
type PlateReconstruction interface {
	// PlateID returns the reconstruction plate ID for a present-day
	// (lon, lat), via a point-in-polygon test against static polygons.
	PlateID(lon, lat float64) (plate int, ok bool)

	// Reconstruct returns the (lon, lat) of a present-day point after
	// moving it backward to age (Ma) under the given plate's rotation.
	Reconstruct(lon, lat float64, plate int, age float64) (rlon, rlat float64)
}

// Raster samples a single mantle-frame grid at a reconstructed location.
// It returns NaN for nodata.
type Raster interface {
	Sample(lon, lat float64) float64
}

// Model is a dynamic-topography model: a set of mantle-frame grids with
// associated ages, sorted by age, plus the plate-reconstruction used to
// move a present-day site into each grid's frame.
type Model struct {
	Name   string
	Ages   timestage.Stages
	Grids  map[float64]Raster
	Recons PlateReconstruction
}

// NewModel builds a Model from parallel age/grid slices.
func NewModel(name string, ages []float64, grids []Raster, recons PlateReconstruction) (*Model, error) {
	if len(ages) != len(grids) {
		return nil, diag.New(diag.BadInputFormat, "dynamic topography model: age/grid count mismatch")
	}
	st := timestage.New()
	g := make(map[float64]Raster, len(ages))
	for i, a := range ages {
		st.AddStage(a)
		g[a] = grids[i]
	}
	return &Model{Name: name, Ages: st, Grids: g, Recons: recons}, nil
}

// Elevation samples the model at a present-day (lon, lat) and time t (Ma):
// it assigns a plate, reconstructs the point at the bracketing grid ages,
// samples both grids, and interpolates linearly. A time beyond the oldest
// grid is warned about on d only once per model, using m.Name as the
// warning key.
func (m *Model) Elevation(lon, lat float64, t float64, d *diag.Diagnostics) float64 {
	plate, ok := m.Recons.PlateID(lon, lat)
	if !ok {
		return math.NaN()
	}

	lo, hi, inRange := m.Ages.Bracket(t)
	if !inRange && t > lo {
		d.Warn(diag.DynamicTopographyOutOfRange, m.Name, "requested age %.3f Ma exceeds oldest dynamic topography grid age %.3f Ma; using oldest grid", t, lo)
	}

	if lo == hi {
		rlon, rlat := m.Recons.Reconstruct(lon, lat, plate, lo)
		return m.Grids[lo].Sample(rlon, rlat)
	}

	rlonLo, rlatLo := m.Recons.Reconstruct(lon, lat, plate, lo)
	hLo := m.Grids[lo].Sample(rlonLo, rlatLo)

	rlonHi, rlatHi := m.Recons.Reconstruct(lon, lat, plate, hi)
	hHi := m.Grids[hi].Sample(rlonHi, rlatHi)

	if math.IsNaN(hLo) || math.IsNaN(hHi) {
		return math.NaN()
	}

	frac := (t - lo) / (hi - lo)
	return hLo + frac*(hHi-hLo)
}

// Contribution returns the dynamic topography contribution, h(t) - h(0):
// the elevation change since present day.
func (m *Model) Contribution(lon, lat float64, t float64, d *diag.Diagnostics) float64 {
	return m.Elevation(lon, lat, t, d) - m.Elevation(lon, lat, 0, d)
}

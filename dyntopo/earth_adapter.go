// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package dyntopo

import (
	"math"

	"github.com/js-arias/earth"
	"github.com/js-arias/earth/model"
)

// millionYears matches github.com/js-arias/earth/model's age convention:
// ages are int64 years, not Ma. Every boundary into that package converts
// the float64 Ma used throughout this module to that unit.
const millionYears = 1_000_000

func yearsOf(ma float64) int64 {
	return int64(math.Round(ma * millionYears))
}

// EarthReconstruction implements PlateReconstruction over
// github.com/js-arias/earth's pixelation and total-rotation model. A
// static-polygon time pixelation assigns the reconstruction plate at each
// pixel, expressing a point-in-polygon rule as a pixel lookup.
type EarthReconstruction struct {
	Pix      *earth.Pixelation
	Plates   *model.TimePix // present-day static-polygon plate assignment
	Rotation *model.Total   // total rotation to each reconstructed age
}

// PlateID implements PlateReconstruction.
func (e *EarthReconstruction) PlateID(lon, lat float64) (int, bool) {
	px := e.Pix.Pixel(lat, lon)
	plates := e.Plates.Stage(e.Plates.ClosestStageAge(0))
	plate, ok := plates[px.ID()]
	if !ok {
		return 0, false
	}
	return plate, true
}

// Reconstruct implements PlateReconstruction by rotating the pixel
// containing (lon, lat) under the plate's total rotation to age.
func (e *EarthReconstruction) Reconstruct(lon, lat float64, plate int, age float64) (float64, float64) {
	px := e.Pix.Pixel(lat, lon)
	rot := e.Rotation.Rotation(e.Rotation.ClosestStageAge(yearsOf(age)))

	dst, ok := rot[px.ID()]
	if !ok || len(dst) == 0 {
		return lon, lat
	}
	pt := e.Pix.ID(dst[0]).Point()
	return pt.Longitude(), pt.Latitude()
}

// EarthRaster implements Raster over a single time stage of a
// github.com/js-arias/earth/model.TimePix mantle-frame grid, in mantle
// (present-day, unreconstructed) coordinates.
type EarthRaster struct {
	Pix *earth.Pixelation
	Age float64
	TP  *model.TimePix
}

// Sample implements Raster.
func (r *EarthRaster) Sample(lon, lat float64) float64 {
	px := r.Pix.Pixel(lat, lon)
	stage := r.TP.Stage(r.TP.ClosestStageAge(yearsOf(r.Age)))
	v, ok := stage[px.ID()]
	if !ok {
		return math.NaN()
	}
	return float64(v)
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package numeric

import "math"

// NoData is a sentinel for a raster sample that falls outside the covered
// area or lands on a masked cell. Callers test with math.IsNaN.
var NoData = math.NaN()

// RegularGrid is a regular lat-lon grid of float64 values, nodata-aware,
// sampled with bilinear interpolation.
type RegularGrid struct {
	// Cols, Rows are the grid dimensions.
	Cols, Rows int

	// MinLon, MinLat, DLon, DLat describe the regular spacing: cell
	// (i, j) is centered at MinLon+float64(i)*DLon, MinLat+float64(j)*DLat.
	MinLon, MinLat, DLon, DLat float64

	// Values is row-major, length Cols*Rows.
	Values []float64

	// HasNoData reports nodata cells; nil means every cell is valid.
	HasNoData []bool
}

func (g *RegularGrid) at(i, j int) float64 {
	if i < 0 {
		i = 0
	}
	if i >= g.Cols {
		i = g.Cols - 1
	}
	if j < 0 {
		j = 0
	}
	if j >= g.Rows {
		j = g.Rows - 1
	}
	idx := j*g.Cols + i
	if g.HasNoData != nil && g.HasNoData[idx] {
		return NoData
	}
	return g.Values[idx]
}

// Sample bilinearly interpolates the grid at (lon, lat). If any of the four
// surrounding cells is nodata or outside the grid bounds, it returns
// NearestValid(lon, lat) instead.
func (g *RegularGrid) Sample(lon, lat float64) float64 {
	fx := (lon - g.MinLon) / g.DLon
	fy := (lat - g.MinLat) / g.DLat

	i0 := int(math.Floor(fx))
	j0 := int(math.Floor(fy))
	tx := fx - float64(i0)
	ty := fy - float64(j0)

	if i0 < 0 || i0+1 >= g.Cols || j0 < 0 || j0+1 >= g.Rows {
		return g.NearestValid(lon, lat)
	}

	v00 := g.at(i0, j0)
	v10 := g.at(i0+1, j0)
	v01 := g.at(i0, j0+1)
	v11 := g.at(i0+1, j0+1)
	if math.IsNaN(v00) || math.IsNaN(v10) || math.IsNaN(v01) || math.IsNaN(v11) {
		return g.NearestValid(lon, lat)
	}

	top := v00*(1-tx) + v10*tx
	bot := v01*(1-tx) + v11*tx
	return top*(1-ty) + bot*ty
}

// NearestValid falls back to the nearest non-nodata cell to (lon, lat).
// It returns NoData if the grid has no valid cell at all.
func (g *RegularGrid) NearestValid(lon, lat float64) float64 {
	fx := (lon - g.MinLon) / g.DLon
	fy := (lat - g.MinLat) / g.DLat
	ci := int(math.Round(fx))
	cj := int(math.Round(fy))

	best := NoData
	bestD := math.MaxFloat64
	for j := 0; j < g.Rows; j++ {
		for i := 0; i < g.Cols; i++ {
			idx := j*g.Cols + i
			if g.HasNoData != nil && g.HasNoData[idx] {
				continue
			}
			d := float64((i-ci)*(i-ci) + (j-cj)*(j-cj))
			if d < bestD {
				bestD = d
				best = g.Values[idx]
			}
		}
	}
	return best
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package strata implements the stratigraphic data model: a drill-site
// Well as an ordered sequence of stratigraphic Units, each a composite
// lithology with a top/bottom age and depth.
package strata

import (
	"fmt"

	"github.com/EarthByte/pyBacktrack/diag"
	"github.com/EarthByte/pyBacktrack/lithology"
)

// CrustKind distinguishes the tectonic-subsidence branch a Well uses.
// pybacktrack's well.py infers this from the site's location rather than
// stating it directly; here it is an explicit field instead.
type CrustKind int

const (
	// Oceanic sites use the age-to-depth model (oceanic package).
	Oceanic CrustKind = iota
	// Continental sites use the rift model (continental package).
	Continental
)

// WaterDepthRange is an optional recorded minimum/maximum paleo water
// depth, used by the backstrip driver.
type WaterDepthRange struct {
	Min, Max float64
	Known    bool
}

// Unit is a single stratigraphic unit (layer).
type Unit struct {
	TopAge, BottomAge     float64 // Ma
	TopDepth, BottomDepth float64 // m below sediment surface, present-day compacted geometry
	Lithology             lithology.Composite
	WaterDepth            WaterDepthRange
}

// Thickness returns the unit's compacted thickness.
func (u Unit) Thickness() float64 {
	return u.BottomDepth - u.TopDepth
}

// Well is a drill-site record: location, surface age, an ordered sequence
// of stratigraphic units, and optional rift timing.
type Well struct {
	Longitude, Latitude float64
	SurfaceAge          float64 // default 0
	Crust               CrustKind
	CrustAge            float64 // Ma, oceanic sites only
	RiftStartAge        float64 // Ma, continental sites only
	RiftEndAge          float64 // Ma, continental sites only
	HasRiftAges         bool
	Units               []Unit
}

// Validate checks the layer-ordering invariants:
// bottom_age > top_age, bottom_depth > top_depth, and layers stacked with no
// gaps (top_depth of layer k+1 equals bottom_depth of layer k), with the
// first layer's top_age equal to the well's SurfaceAge and top_depth zero.
func (w *Well) Validate() error {
	if len(w.Units) == 0 {
		return diag.New(diag.BadInputFormat, "well has no stratigraphic units")
	}

	first := w.Units[0]
	if first.TopAge != w.SurfaceAge {
		return diag.New(diag.BadInputFormat, fmt.Sprintf("first unit top age %g does not match surface age %g", first.TopAge, w.SurfaceAge))
	}
	if first.TopDepth != 0 {
		return diag.New(diag.BadInputFormat, fmt.Sprintf("first unit top depth %g, want 0", first.TopDepth))
	}

	for i, u := range w.Units {
		if u.BottomAge <= u.TopAge {
			return diag.New(diag.BadInputFormat, fmt.Sprintf("unit %d: bottom age %g must be greater than top age %g", i, u.BottomAge, u.TopAge))
		}
		if u.BottomDepth <= u.TopDepth {
			return diag.New(diag.BadInputFormat, fmt.Sprintf("unit %d: bottom depth %g must be greater than top depth %g", i, u.BottomDepth, u.TopDepth))
		}
		if i > 0 {
			prev := w.Units[i-1]
			if u.TopDepth != prev.BottomDepth {
				return diag.New(diag.BadInputFormat, fmt.Sprintf("unit %d: top depth %g does not match previous unit's bottom depth %g (gap in column)", i, u.TopDepth, prev.BottomDepth))
			}
			if u.TopAge != prev.BottomAge {
				return diag.New(diag.BadInputFormat, fmt.Sprintf("unit %d: top age %g does not match previous unit's bottom age %g", i, u.TopAge, prev.BottomAge))
			}
		}
	}
	if w.Crust == Continental && !w.HasRiftAges {
		return diag.New(diag.RiftParametersMissing, "continental well has no rift start/end ages")
	}
	return nil
}

// DeepestUnit returns the last (deepest) stratigraphic unit.
func (w *Well) DeepestUnit() Unit {
	return w.Units[len(w.Units)-1]
}

// AppendBaseLayer appends a synthesized base sediment layer: when
// the recorded drill-site thickness is less than a total-sediment-thickness
// raster sample, a layer of the given default lithology fills the gap down
// to totalThickness. bottomAge is the caller-supplied bottom age for the new
// layer (crust age or rift-start age for backtrack; the deepest recorded
// unit's bottom age for backstrip).
//
// If totalThickness is less than or equal to the deepest recorded unit's
// bottom depth, no layer is appended and ok is false; the caller should
// emit a BasementShallowerThanDrillSite warning in that case.
func (w *Well) AppendBaseLayer(defaultLithology lithology.Composite, totalThickness, bottomAge float64, dupWaterDepth bool) (ok bool) {
	deepest := w.DeepestUnit()
	if totalThickness <= deepest.BottomDepth {
		return false
	}

	u := Unit{
		TopAge:      deepest.BottomAge,
		BottomAge:   bottomAge,
		TopDepth:    deepest.BottomDepth,
		BottomDepth: totalThickness,
		Lithology:   defaultLithology,
	}
	if dupWaterDepth {
		u.WaterDepth = deepest.WaterDepth
	}
	w.Units = append(w.Units, u)
	return true
}

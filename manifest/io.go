// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package manifest

import (
	"fmt"
	"os"

	"github.com/js-arias/earth"
	"github.com/js-arias/earth/model"

	"github.com/EarthByte/pyBacktrack/dyntopo"
	"github.com/EarthByte/pyBacktrack/lithology"
	"github.com/EarthByte/pyBacktrack/sealevel"
	"github.com/EarthByte/pyBacktrack/strata"
)

// LithologyRegistry reads the lithology registry defined in the manifest.
func (m *Manifest) LithologyRegistry() (*lithology.Registry, error) {
	name := m.Path(Lithology)
	if name == "" {
		return nil, fmt.Errorf("lithology registry not defined in project %q", m.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reg, err := lithology.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return reg, nil
}

// Well reads the drill-site record defined in the manifest.
func (m *Manifest) Well(reg *lithology.Registry) (*strata.Well, error) {
	name := m.Path(Well)
	if name == "" {
		return nil, fmt.Errorf("drill site not defined in project %q", m.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w, err := strata.ReadSite(f, reg)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return w, nil
}

// SeaLevel reads the sea-level curve defined in the manifest. It returns
// nil if no sea-level file is defined: an absent model is a valid,
// zero-anomaly configuration.
func (m *Manifest) SeaLevel() (*sealevel.Model, error) {
	name := m.Path(SeaLevel)
	if name == "" {
		return nil, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sl, err := sealevel.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return sl, nil
}

// DynTopoModel builds a dynamic-topography model from the manifest's
// StaticPolygons (plate assignment), GeoMotion (rotation), and DynTopo
// (mantle-frame grid set) datasets, all read through
// github.com/js-arias/earth/model's time-pixelation and rotation readers,
// the same file formats the static-polygon landscape and plate-motion
// model use elsewhere in this stack. It returns nil if no DynTopo dataset
// is defined: an absent model disables the dynamic-topography correction.
func (m *Manifest) DynTopoModel(pix *earth.Pixelation) (*dyntopo.Model, error) {
	gridName := m.Path(DynTopo)
	if gridName == "" {
		return nil, nil
	}

	plateName := m.Path(StaticPolygons)
	if plateName == "" {
		return nil, fmt.Errorf("static polygons not defined in project %q", m.name)
	}
	rotName := m.Path(GeoMotion)
	if rotName == "" {
		return nil, fmt.Errorf("plate motion model not defined in project %q", m.name)
	}

	plateFile, err := os.Open(plateName)
	if err != nil {
		return nil, err
	}
	defer plateFile.Close()
	plates, err := model.ReadTimePix(plateFile, pix)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", plateName, err)
	}

	rotFile, err := os.Open(rotName)
	if err != nil {
		return nil, err
	}
	defer rotFile.Close()
	rot, err := model.ReadTotal(rotFile, pix, false)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", rotName, err)
	}

	gridFile, err := os.Open(gridName)
	if err != nil {
		return nil, err
	}
	defer gridFile.Close()
	grids, err := model.ReadTimePix(gridFile, pix)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", gridName, err)
	}

	recons := &dyntopo.EarthReconstruction{Pix: pix, Plates: plates, Rotation: rot}

	// grids.Stages() returns ages in years, github.com/js-arias/earth/model's
	// native unit; the rest of this module works in Ma.
	years := grids.Stages()
	ages := make([]float64, len(years))
	rasters := make([]dyntopo.Raster, len(years))
	for i, y := range years {
		ma := float64(y) / 1_000_000
		ages[i] = ma
		rasters[i] = &dyntopo.EarthRaster{Pix: pix, Age: ma, TP: grids}
	}

	return dyntopo.NewModel(gridName, ages, rasters, recons)
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package manifest implements reading and writing of pyBacktrack project
// files.
//
// A pyBacktrack project is a tab-delimited file (TSV) that records the
// paths of the different data files a reconstruction run needs: the
// drill-site record, the lithology registry, the plate-motion model, the
// static-polygon plate assignment, the dynamic-topography grids, and the
// sea-level curve.
package manifest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Dataset is a keyword identifying the type of a data file in a project.
type Dataset string

// Valid dataset types.
const (
	// Drill-site stratigraphy file.
	Well Dataset = "well"

	// Lithology registry file.
	Lithology Dataset = "lithology"

	// Plate-motion model, in the rotation file format read by
	// github.com/js-arias/earth/model.
	GeoMotion Dataset = "geomotion"

	// Static-polygon time pixelation assigning a reconstruction plate
	// ID to every present-day location.
	StaticPolygons Dataset = "staticpolygons"

	// Dynamic-topography grid set, in the same time-pixelation format
	// as StaticPolygons: one raster per recorded age.
	DynTopo Dataset = "dyntopo"

	// Sea-level curve file (age, level).
	SeaLevel Dataset = "sealevel"

	// User-supplied age-to-depth table, when the oceanic model is
	// UserTable instead of one of the built-in curves.
	AgeDepthTable Dataset = "agedepthtable"
)

// A Manifest is a collection of dataset paths for a reconstruction run.
type Manifest struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty manifest.
func New() *Manifest {
	return &Manifest{paths: make(map[Dataset]string)}
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a manifest from a TSV file.
//
// The TSV must contain the fields "dataset" and "path". Here is an
// example file:
//
//	# pyBacktrack project files
//	dataset	path
//	well	site-42.tab
//	lithology	lithology.tab
//	geomotion	rotations.tab
//	staticpolygons	plates.tab
//	dyntopo	dyntopo-m7.tab
//	sealevel	haq87.tab
func Read(name string) (*Manifest, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tsv := csv.NewReader(f)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("on file %q: header: %v", name, err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[strings.ToLower(h)] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on file %q: expecting field %q", name, h)
		}
	}

	m := New()
	m.name = name
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
		}

		set := Dataset(row[fields["dataset"]])
		path := row[fields["path"]]
		m.paths[set] = path
	}
	return m, nil
}

// Add adds a dataset's file path, returning the previous value, if any.
// An empty path removes the dataset.
func (m *Manifest) Add(set Dataset, path string) string {
	prev := m.paths[set]
	if path == "" {
		delete(m.paths, set)
		return prev
	}
	m.paths[set] = path
	return prev
}

// Path returns the path of the given dataset, or the empty string if it is
// not defined.
func (m *Manifest) Path(set Dataset) string {
	return m.paths[set]
}

// Sets returns the datasets defined on a manifest, sorted.
func (m *Manifest) Sets() []Dataset {
	var sets []Dataset
	for s := range m.paths {
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// SetName sets the manifest's own file name.
func (m *Manifest) SetName(name string) {
	m.name = name
}

// Write writes the manifest to its file.
func (m *Manifest) Write() (err error) {
	f, err := os.Create(m.name)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# pyBacktrack project files\n")
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", m.name, err)
	}

	for _, s := range m.Sets() {
		row := []string{string(s), m.paths[s]}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", m.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", m.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", m.name, err)
	}
	return nil
}

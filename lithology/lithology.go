// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package lithology implements the lithology registry: a mapping of
// lithology name to grain density, surface porosity, and porosity decay
// length, loaded from one or more tab-delimited files with later files
// overriding earlier ones on a name collision.
package lithology

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/EarthByte/pyBacktrack/diag"
)

// Lithology is a single basic lithology: grain density ρs [kg/m³],
// surface porosity φ₀ ∈ (0,1), and porosity decay length c [m].
type Lithology struct {
	Name            string
	GrainDensity    float64
	SurfacePorosity float64
	DecayLength     float64
}

// Registry maps a lithology name to its parameters. The zero value is not
// usable; build one with New or Read.
type Registry struct {
	m map[string]Lithology
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{m: make(map[string]Lithology)}
}

// Lookup returns the lithology with the given name, or a diag.Error of
// kind UnknownLithology if it is not defined.
func (r *Registry) Lookup(name string) (Lithology, error) {
	l, ok := r.m[name]
	if !ok {
		return Lithology{}, diag.New(diag.UnknownLithology, fmt.Sprintf("lithology %q is not defined in the registry", name))
	}
	return l, nil
}

// Set adds or overrides a lithology definition.
func (r *Registry) Set(l Lithology) {
	r.m[l.Name] = l
}

// Merge copies every entry of other into r, overriding entries that share a
// name. Use it to implement "later file wins" when loading several
// registry files in sequence.
func (r *Registry) Merge(other *Registry) {
	for name, l := range other.m {
		r.m[name] = l
	}
}

// Len returns the number of defined lithologies.
func (r *Registry) Len() int { return len(r.m) }

// Names returns the defined lithology names, unordered.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.m))
	for n := range r.m {
		names = append(names, n)
	}
	return names
}

// Read reads lithology definitions from a tab-delimited reader with columns
// name, grain density, surface porosity, and decay length:
//
//	# name                            density   porosity      decay
//	Anhydrite                            2960        0.4        500
//	Basalt                               2700        0.2       2500
//
// The column header is optional; if the first row does not parse as a
// record (a non-numeric second field), it is treated as a header and
// skipped.
func Read(r io.Reader) (*Registry, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	tsv.FieldsPerRecord = -1
	tsv.TrimLeadingSpace = true

	reg := New()
	first := true
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, diag.Wrap(diag.BadInputFormat, fmt.Sprintf("lithology file, line %d", ln), err)
		}
		row = splitWhitespaceFallback(row)
		if len(row) < 4 {
			return nil, diag.New(diag.BadInputFormat, fmt.Sprintf("line %d: expecting 4 fields, got %d", ln, len(row)))
		}

		if first {
			first = false
			if _, err := strconv.ParseFloat(row[1], 64); err != nil {
				continue // header row
			}
		}

		name := strings.TrimSpace(row[0])
		density, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, diag.Wrap(diag.BadInputFormat, fmt.Sprintf("line %d: grain density", ln), err)
		}
		porosity, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, diag.Wrap(diag.BadInputFormat, fmt.Sprintf("line %d: surface porosity", ln), err)
		}
		decay, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, diag.Wrap(diag.BadInputFormat, fmt.Sprintf("line %d: decay length", ln), err)
		}

		reg.Set(Lithology{
			Name:            name,
			GrainDensity:    density,
			SurfacePorosity: porosity,
			DecayLength:     decay,
		})
	}
	return reg, nil
}

// splitWhitespaceFallback re-splits a single-field row on runs of
// whitespace. Historical lithology files (per original_source/lithology.py)
// are whitespace-aligned rather than true tab-separated; csv.Reader with
// Comma='\t' leaves such a line as one field, so we fall back to a
// whitespace split when that happens.
func splitWhitespaceFallback(row []string) []string {
	if len(row) != 1 {
		return row
	}
	return strings.Fields(row[0])
}

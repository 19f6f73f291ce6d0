// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package timestage implements a sorted set of time stages (ages, in Ma)
// and the grid-time bracketing lookup used by the dynamic-topography
// sampler to locate grid times t_i <= t < t_{i+1}.
package timestage

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// A Stager is an interface for types that return a list of time stages.
type Stager interface {
	Stages() []float64
}

// Stages is a set of time stages, in million years (Ma).
type Stages map[float64]bool

// New returns an empty set of time stages.
func New() Stages {
	return Stages(make(map[float64]bool))
}

// Read reads one or more time stages (in Ma) from a TSV file.
//
// The TSV must be without header and the first column should indicate the
// age of each stage. Any other columns will be ignored.
//
//	# dynamic topography grid ages
//	0
//	5
//	10
//	100
//	200
func Read(r io.Reader) (Stages, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	tsv.FieldsPerRecord = -1

	st := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on line %d: %v", ln, err)
		}

		as := strings.TrimSpace(row[0])
		if as == "" {
			continue
		}
		a, err := strconv.ParseFloat(as, 64)
		if err != nil {
			return nil, fmt.Errorf("on line %d: read %q: %v", ln, as, err)
		}
		st.AddStage(a)
	}

	return st, nil
}

// Add adds time stages from a stager.
func (s Stages) Add(ts Stager) {
	for _, a := range ts.Stages() {
		s[a] = true
	}
}

// AddStage adds a time stage.
func (s Stages) AddStage(a float64) {
	s[a] = true
}

// Stages returns a sorted slice of the defined time stages.
func (s Stages) Stages() []float64 {
	st := make([]float64, 0, len(s))
	for a := range s {
		st = append(st, a)
	}
	slices.Sort(st)
	return st
}

// ClosestStageAge returns the age of the oldest defined stage that is
// younger than or equal to the given age. If every stage is older than
// age, it returns the youngest stage.
func (s Stages) ClosestStageAge(age float64) float64 {
	st := s.Stages()
	if len(st) == 0 {
		return age
	}
	i, ok := slices.BinarySearch(st, age)
	if ok {
		return age
	}
	if i == 0 {
		return st[0]
	}
	return st[i-1]
}

// Bracket locates the pair of consecutive stages (lo, hi) such that
// lo <= age < hi. If age is at or before the youngest stage, it returns
// (s[0], s[0], true). If age is at or beyond the oldest stage, it returns
// (last, last, false): ok=false signals that the caller should clamp to
// the oldest grid value and emit a one-shot warning.
func (s Stages) Bracket(age float64) (lo, hi float64, ok bool) {
	st := s.Stages()
	if len(st) == 0 {
		return 0, 0, false
	}
	if age <= st[0] {
		return st[0], st[0], true
	}
	if age >= st[len(st)-1] {
		return st[len(st)-1], st[len(st)-1], false
	}
	i, exact := slices.BinarySearch(st, age)
	if exact {
		return st[i], st[i], true
	}
	return st[i-1], st[i], true
}

// Write writes time stages into a tab-delimited file.
func (s Stages) Write(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# dynamic topography grid ages\n")

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	st := s.Stages()
	for _, a := range st {
		row := []string{
			strconv.FormatFloat(a, 'g', -1, 64),
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}
	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

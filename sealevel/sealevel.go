// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sealevel implements the eustatic sea-level model: a piecewise
// linear table of (age, level) pairs, queried either instantaneously or as
// a time-averaged mean over an interval. A missing model is equivalent to
// a level of zero at every age.
package sealevel

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/EarthByte/pyBacktrack/numeric"
)

// Model is a eustatic sea-level curve.
type Model struct {
	table *numeric.Table
}

// New builds a Model from parallel age (Ma) and level (m) slices, sorted
// by age.
func New(ages, levels []float64) (*Model, error) {
	t, err := numeric.NewTable(ages, levels)
	if err != nil {
		return nil, fmt.Errorf("sea level model: %v", err)
	}
	return &Model{table: t}, nil
}

// Level returns the instantaneous sea level at age t, relative to
// present. A nil Model returns 0.
func (m *Model) Level(t float64) float64 {
	if m == nil {
		return 0
	}
	return m.table.At(t)
}

// Anomaly returns Level(t) - Level(0), the mean sea-level anomaly at age t
// relative to present day.
func (m *Model) Anomaly(t float64) float64 {
	return m.Level(t) - m.Level(0)
}

// Average returns the time-averaged level over [tTop, tBot] (tTop <= tBot).
// A nil Model returns 0.
func (m *Model) Average(tTop, tBot float64) float64 {
	if m == nil {
		return 0
	}
	return m.table.Average(tTop, tBot)
}

// Read reads a two-column (age, level) TSV sea-level file, without
// header, one stage per line.
//
//	# age	level
//	0	0
//	20	-40
//	50	-20
func Read(r io.Reader) (*Model, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	tsv.FieldsPerRecord = -1

	var ages, levels []float64
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on line %d: %v", ln, err)
		}
		if len(row) < 2 {
			continue
		}

		as := strings.TrimSpace(row[0])
		if as == "" {
			continue
		}
		a, err := strconv.ParseFloat(as, 64)
		if err != nil {
			return nil, fmt.Errorf("on line %d: read age %q: %v", ln, as, err)
		}
		l, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("on line %d: read level %q: %v", ln, row[1], err)
		}
		ages = append(ages, a)
		levels = append(levels, l)
	}

	if len(ages) == 0 {
		return nil, fmt.Errorf("sea level file has no data")
	}

	idx := make([]int, len(ages))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return ages[idx[i]] < ages[idx[j]] })

	sortedAges := make([]float64, len(ages))
	sortedLevels := make([]float64, len(levels))
	for i, j := range idx {
		sortedAges[i] = ages[j]
		sortedLevels[i] = levels[j]
	}

	return New(sortedAges, sortedLevels)
}

// Write writes the model as a two-column TSV file, in the format Read
// accepts.
func (m *Model) Write(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# age\tlevel\n")

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	ages, levels := m.table.Points()
	for i, a := range ages {
		row := []string{
			strconv.FormatFloat(a, 'g', -1, 64),
			strconv.FormatFloat(levels[i], 'g', -1, 64),
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

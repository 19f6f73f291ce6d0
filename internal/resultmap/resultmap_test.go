// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package resultmap_test

import (
	"image/color"
	"testing"

	"github.com/EarthByte/pyBacktrack/internal/resultmap"
)

func TestEmptyStripIsGray(t *testing.T) {
	s := &resultmap.Strip{Cols: 10, Rows: 4}
	want := color.RGBA{211, 211, 211, 255}
	if got := s.At(0, 0); got != want {
		t.Errorf("empty strip color: got %v, want %v", got, want)
	}
}

func TestBoundsMatchCols(t *testing.T) {
	s := &resultmap.Strip{Cols: 100, Rows: 20}
	b := s.Bounds()
	if b.Dx() != 100 || b.Dy() != 20 {
		t.Errorf("bounds: got %v, want 100x20", b)
	}
}

func TestShallowAndDeepEndpointsDiffer(t *testing.T) {
	s := &resultmap.Strip{
		Cols: 10,
		Rows: 1,
		Points: []resultmap.Point{
			{Age: 0, Depth: 0},
			{Age: 50, Depth: 5000},
		},
	}

	shallow := s.At(0, 0)
	deep := s.At(9, 0)
	if shallow == deep {
		t.Errorf("shallow and deep samples rendered the same color: %v", shallow)
	}
}

func TestMaxDepthDefaultsToObservedMax(t *testing.T) {
	s := &resultmap.Strip{
		Cols: 4,
		Rows: 1,
		Points: []resultmap.Point{
			{Age: 0, Depth: 1000},
			{Age: 10, Depth: 2000},
		},
		Gradient: resultmap.Incandescent{},
	}

	// Triggers norm(), which should set MaxDepth from the observed points.
	_ = s.At(3, 0)
	if s.MaxDepth != 2000 {
		t.Errorf("inferred max depth: got %g, want 2000", s.MaxDepth)
	}
}

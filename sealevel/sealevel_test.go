// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sealevel_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/EarthByte/pyBacktrack/sealevel"
)

func TestNilModelIsZero(t *testing.T) {
	var m *sealevel.Model
	if v := m.Level(10); v != 0 {
		t.Errorf("nil model level: got %g, want 0", v)
	}
	if v := m.Average(0, 20); v != 0 {
		t.Errorf("nil model average: got %g, want 0", v)
	}
}

func TestLevelInterpolation(t *testing.T) {
	m, err := sealevel.New([]float64{0, 20, 50}, []float64{0, -40, -20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := m.Level(10); math.Abs(v-(-20)) > 1e-9 {
		t.Errorf("level(10): got %g, want -20", v)
	}
	if v := m.Anomaly(20); math.Abs(v-(-40)) > 1e-9 {
		t.Errorf("anomaly(20): got %g, want -40", v)
	}
}

func TestAverageConstant(t *testing.T) {
	m, err := sealevel.New([]float64{0, 100}, []float64{5, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := m.Average(10, 90); math.Abs(v-5) > 1e-9 {
		t.Errorf("average of constant table: got %g, want 5", v)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	data := "# age\tlevel\n0\t0\n20\t-40\n50\t-20\n"
	m, err := sealevel.Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}

	var buf bytes.Buffer
	if err := m.Write(&buf); err != nil {
		t.Fatalf("unable to write data: %v", err)
	}

	r, err := sealevel.Read(&buf)
	if err != nil {
		t.Logf("input data:\n%s\n", buf.String())
		t.Fatalf("unable to re-read data: %v", err)
	}
	if v := r.Level(20); v != -40 {
		t.Errorf("round trip level(20): got %g, want -40", v)
	}
}

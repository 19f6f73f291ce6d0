// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package oceanic_test

import (
	"math"
	"testing"

	"github.com/EarthByte/pyBacktrack/oceanic"
)

func TestGDH1(t *testing.T) {
	var m oceanic.GDH1
	if v := m.Depth(10); math.Abs(v-(2600+365*math.Sqrt(10))) > 1e-9 {
		t.Errorf("GDH1(10): got %g", v)
	}
	want50 := 5651 - 2473*math.Exp(-0.0278*50)
	if v := m.Depth(50); math.Abs(v-want50) > 1e-9 {
		t.Errorf("GDH1(50): got %g, want %g", v, want50)
	}
}

func TestRHCW18ZeroAgeRidgeDepth(t *testing.T) {
	m := oceanic.NewRHCW18(200)
	if v := m.Depth(0); math.Abs(v-2500) > 5 {
		t.Errorf("RHCW18(0): got %g, want ~2500", v)
	}
}

func TestRHCW18Monotone(t *testing.T) {
	m := oceanic.NewRHCW18(200)
	prev := m.Depth(0)
	for age := 1.0; age <= 150; age++ {
		v := m.Depth(age)
		if v < prev {
			t.Errorf("RHCW18 not monotone increasing at age %g: %g < %g", age, v, prev)
		}
		prev = v
	}
}

func TestAnomalousCrustOffset(t *testing.T) {
	var m oceanic.GDH1
	s0 := 2000.0
	ageCrust := 50.0

	fitted := oceanic.Fit(m, s0, ageCrust)
	if v := fitted.Depth(ageCrust); math.Abs(v-s0) > 1e-9 {
		t.Errorf("fitted model at present day: got %g, want %g", v, s0)
	}
}

func TestUserTable(t *testing.T) {
	ut, err := oceanic.NewUserTable([]float64{0, 10, 20}, []float64{2600, 3200, 3600})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := ut.Depth(5); math.Abs(v-2900) > 1e-9 {
		t.Errorf("user table at 5: got %g, want 2900", v)
	}
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package lithology_test

import (
	"strings"
	"testing"

	"github.com/EarthByte/pyBacktrack/lithology"
)

const sample = `# name       density   porosity   decay
Shale          2700       0.63       1960
Mud            2438       0.36       2015
`

func TestReadAndLookup(t *testing.T) {
	reg, err := lithology.Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("registry size: got %d, want 2", reg.Len())
	}

	shale, err := reg.Lookup("Shale")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shale.GrainDensity != 2700 || shale.SurfacePorosity != 0.63 || shale.DecayLength != 1960 {
		t.Errorf("shale: got %+v", shale)
	}

	if _, err := reg.Lookup("Anhydrite"); err == nil {
		t.Errorf("expecting error for unknown lithology")
	}
}

func TestMergeOverride(t *testing.T) {
	base, err := lithology.Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	override, err := lithology.Read(strings.NewReader("Shale\t2750\t0.5\t1500\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base.Merge(override)
	shale, err := base.Lookup("Shale")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shale.GrainDensity != 2750 {
		t.Errorf("merge did not override: got density %g, want 2750", shale.GrainDensity)
	}
}

func TestComposite(t *testing.T) {
	reg, err := lithology.Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, err := lithology.NewComposite(reg, []lithology.Component{
		{Name: "Shale", Fraction: 0.5},
		{Name: "Mud", Fraction: 0.5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantDensity := (2700.0 + 2438.0) / 2
	if c.GrainDensity != wantDensity {
		t.Errorf("grain density: got %g, want %g", c.GrainDensity, wantDensity)
	}
}

func TestCompositeBadFraction(t *testing.T) {
	reg, err := lithology.Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = lithology.NewComposite(reg, []lithology.Component{
		{Name: "Shale", Fraction: 0.5},
		{Name: "Mud", Fraction: 0.2},
	})
	if err == nil {
		t.Errorf("expecting error for fractions not summing to 1")
	}
}

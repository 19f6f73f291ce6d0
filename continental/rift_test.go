// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package continental_test

import (
	"math"
	"testing"

	"github.com/EarthByte/pyBacktrack/continental"
	"github.com/EarthByte/pyBacktrack/diag"
)

func testParams() continental.Params {
	return continental.Params{CrustThicknessPresent: 30000, LithosphereThickness: 125000}
}

func TestSynRiftZeroAtBetaOne(t *testing.T) {
	p := testParams()
	if v := p.SynRift(1); math.Abs(v) > 1e-9 {
		t.Errorf("SynRift(1): got %g, want 0", v)
	}
}

func TestPostRiftZeroAtTauZero(t *testing.T) {
	if v := continental.PostRift(0, 1.5); math.Abs(v) > 1e-9 {
		t.Errorf("PostRift(0, beta): got %g, want 0", v)
	}
}

func TestTotalMonotoneInBeta(t *testing.T) {
	p := testParams()
	betaMax := p.BetaMax()

	prev := p.Total(1, 0)
	for b := 1.05; b < betaMax; b += 0.05 {
		v := p.Total(b, 0)
		if v <= prev {
			t.Errorf("Total not strictly increasing at beta=%g: %g <= %g", b, v, prev)
		}
		prev = v
	}
}

func TestBetaAtInterpolation(t *testing.T) {
	beta := 2.0
	tRiftStart, tRiftEnd := 150.0, 100.0

	if v := continental.BetaAt(beta, tRiftStart, tRiftEnd, tRiftStart); v != 1 {
		t.Errorf("beta at rift start: got %g, want 1", v)
	}
	if v := continental.BetaAt(beta, tRiftStart, tRiftEnd, tRiftEnd); math.Abs(v-beta) > 1e-9 {
		t.Errorf("beta at rift end: got %g, want %g", v, beta)
	}
	mid := continental.BetaAt(beta, tRiftStart, tRiftEnd, 125)
	if mid <= 1 || mid >= beta {
		t.Errorf("beta at midpoint: got %g, want strictly between 1 and %g", mid, beta)
	}
}

func TestEstimateBetaRoundTrip(t *testing.T) {
	p := testParams()
	knownBeta := 1.6
	tau := 100.0
	target := p.Total(knownBeta, tau)

	d := diag.NewDiagnostics()
	res, err := continental.EstimateBeta(p, tau, target, d, "well-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Clamped {
		t.Fatalf("expected unclamped estimate for a feasible target")
	}
	if math.Abs(res.Beta-knownBeta) > 1e-3 {
		t.Errorf("beta estimate: got %g, want %g", res.Beta, knownBeta)
	}
	if len(d.Warnings()) != 0 {
		t.Errorf("expected no warnings for a feasible estimate")
	}
}

func TestEstimateBetaClampsWhenInfeasible(t *testing.T) {
	p := testParams()
	// A target far beyond what any beta in [1, betaMax] can produce.
	target := p.Total(p.BetaMax(), 1e9) * 100

	d := diag.NewDiagnostics()
	res, err := continental.EstimateBeta(p, 100, target, d, "well-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Clamped {
		t.Fatalf("expected clamped estimate for an infeasible target")
	}
	if res.Beta != p.BetaMax() {
		t.Errorf("clamped beta: got %g, want %g", res.Beta, p.BetaMax())
	}
	if len(d.Warnings()) != 1 {
		t.Errorf("expected one warning for infeasible stretching, got %d", len(d.Warnings()))
	}
}

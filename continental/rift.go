// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package continental implements the continental rift subsidence model:
// syn-rift and post-rift thermal subsidence as functions of the
// stretching factor β, and a bracketing root-finder that estimates β from
// an observed present-day subsidence.
package continental

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/EarthByte/pyBacktrack/diag"
	"github.com/EarthByte/pyBacktrack/numeric"
)

// ThermalAmplitude is E, the post-rift subsidence amplitude constant [m],
// approximately 3160 m in the literature this model follows.
const ThermalAmplitude = 3160.0

// ThermalTime is τ_thermal, the thermal diffusion time [Myr], approximately
// 62.8 Myr.
const ThermalTime = 62.8

// Params are the rift model's geometric inputs: present-day crustal
// thickness (yCPresent) and lithospheric thickness (yL), both in meters.
type Params struct {
	CrustThicknessPresent float64 // y_c_present
	LithosphereThickness  float64 // y_L
}

// BetaMax is the largest physically admissible β for these params: beyond
// it, β*y_c_present would exceed y_L.
func (p Params) BetaMax() float64 {
	return p.LithosphereThickness / p.CrustThicknessPresent
}

// SynRift is the initial (syn-rift) subsidence S_syn(β) under uniform
// (McKenzie-style) extension, using the pre-rift crustal thickness
// β*yCPresent and the lithospheric thickness yL.
//
// It is a simplified Airy-isostasy balance of a thinned crustal and
// mantle-lithosphere column against unstretched asthenosphere, with the
// water-loaded basin compensated against ρm-ρw rather than ρm-ρc (the
// basin fills with water as it subsides): a crustal-thinning term that
// grows with β, offset by a thermal term from the hotter, lower-density
// asthenospheric material brought up beneath the thinned plate.
func (p Params) SynRift(beta float64) float64 {
	const (
		rhoMantle      = 3330.0
		rhoCrust       = 2800.0
		rhoWater       = 1030.0
		alpha          = 3.28e-5
		tAsthenosphere = 1333.0
	)
	yc := beta * p.CrustThicknessPresent
	yl := p.LithosphereThickness

	crustTerm := yc * (rhoMantle - rhoCrust) / (rhoMantle - rhoWater)
	thermalTerm := yl * alpha * tAsthenosphere * rhoMantle / (2 * (rhoMantle - rhoWater))

	return (crustTerm - thermalTerm) * (1 - 1/beta)
}

// PostRift is the thermal (post-rift) subsidence at time tau since the
// end of rifting:
//
//	S_post(τ, β) = E*(β/π)*sin(π/β)*(1 - exp(-τ/τ_thermal))
func PostRift(tau, beta float64) float64 {
	if tau < 0 {
		tau = 0
	}
	return ThermalAmplitude * (beta / math.Pi) * math.Sin(math.Pi/beta) * (1 - math.Exp(-tau/ThermalTime))
}

// Total returns S_syn(β) + S_post(τ, β), the model's total subsidence at
// time tau after rift end.
func (p Params) Total(beta, tau float64) float64 {
	return p.SynRift(beta) + PostRift(tau, beta)
}

// BetaAt interpolates β(t) between rift start (β=1) and rift end (β=beta)
// assuming constant strain rate: ln β(t) = ln β * (t_rs - t)/(t_rs - t_re).
func BetaAt(beta, tRiftStart, tRiftEnd, t float64) float64 {
	if tRiftStart <= tRiftEnd {
		return beta
	}
	if t <= tRiftEnd {
		return beta
	}
	if t >= tRiftStart {
		return 1
	}
	frac := (tRiftStart - t) / (tRiftStart - tRiftEnd)
	return math.Exp(math.Log(beta) * frac)
}

// BetaResidualTolerance is the residual, in meters, beyond which the
// clamped β estimate is considered non-convergent and reported as
// diag.InfeasibleStretching.
const BetaResidualTolerance = 100.0

// EstimateResult is the outcome of EstimateBeta: both the raw
// (possibly out-of-bracket) root and the clamped value actually used.
// Whether a reported β should be the clamped or unclamped value is left to
// the caller; both are exposed rather than guessed at here.
type EstimateResult struct {
	Beta         float64 // the value to use (clamped to [1, BetaMax])
	Unclamped    float64 // the unclamped bisection root, if bisection converged
	Clamped      bool
	Residual     float64 // model(Beta) - target, meters
}

// EstimateBeta finds β such that Total(β, tau) equals the target present-day
// subsidence target = S0 - Δh0 (observed subsidence less the present-day
// dynamic-topography contribution), bracketing in [1, BetaMax]. If the
// root-finder cannot converge within the bracket,
// β is clamped to 1 when the target lies below Total(1, tau) and to
// BetaMax otherwise, and a diag.InfeasibleStretching warning is recorded
// if the residual exceeds BetaResidualTolerance.
func EstimateBeta(p Params, tau, target float64, d *diag.Diagnostics, key string) (EstimateResult, error) {
	betaMax := p.BetaMax()
	if betaMax <= 1 {
		return EstimateResult{}, diag.New(diag.InfeasibleStretching, "lithosphere thickness is not greater than present crustal thickness")
	}

	f := func(beta float64) float64 {
		return p.Total(beta, tau) - target
	}

	root, err := numeric.Bisect(f, 1, betaMax)
	if err != nil {
		// Could not bracket within [1, betaMax]: clamp to the
		// feasible extreme closest to target and warn if the
		// residual is too large.
		clampBeta := betaMax
		if f(1) > 0 {
			clampBeta = 1
		}
		residual := p.Total(clampBeta, tau) - target
		if !floats.EqualWithinAbs(residual, 0, BetaResidualTolerance) {
			d.Warn(diag.InfeasibleStretching, key, "beta estimation did not converge within [1, %.3f]: residual %.1f m", betaMax, residual)
		}
		return EstimateResult{Beta: clampBeta, Clamped: true, Residual: residual}, nil
	}

	return EstimateResult{Beta: root, Unclamped: root, Clamped: false, Residual: f(root)}, nil
}

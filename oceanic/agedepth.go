// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package oceanic implements the oceanic age-to-depth models: pure
// functions age -> unloaded basement depth, with an anomalous-crust
// offset fitted so the model passes through the present-day observed
// subsidence.
package oceanic

import (
	"math"

	"github.com/EarthByte/pyBacktrack/numeric"
)

// Model is a bijective age-to-depth curve, plus the basement offset
// computed by Fit.
type Model interface {
	// Depth returns the unloaded basement depth at the given age (Ma),
	// before any anomalous-crust offset is applied.
	Depth(ageMa float64) float64
}

// Offset wraps a Model with the constant basement-depth offset used to
// account for anomalous crust: δ = S0 - f(age_present), added to f so the
// model passes through S0 at t=0.
type Offset struct {
	Model Model
	Delta float64
}

// Depth returns Model.Depth(age) + Delta.
func (o Offset) Depth(ageMa float64) float64 {
	return o.Model.Depth(ageMa) + o.Delta
}

// Fit computes the anomalous-crust offset for m given the present-day
// observed subsidence s0 and the crust's present-day age.
func Fit(m Model, s0, ageCrust float64) Offset {
	return Offset{Model: m, Delta: s0 - m.Depth(ageCrust)}
}

// GDH1 is the GDH1 age-to-depth curve:
//
//	age < 20 Ma: 2600 + 365*sqrt(age)
//	else:        5651 - 2473*exp(-0.0278*age)
type GDH1 struct{}

func (GDH1) Depth(age float64) float64 {
	if age < 20 {
		return 2600 + 365*math.Sqrt(age)
	}
	return 5651 - 2473*math.Exp(-0.0278*age)
}

// Crosby2007 is the CROSBY_2007 age-to-depth curve, a piecewise
// polynomial-like fit from Crosby (2007), reproduced from the source
// reference.
type Crosby2007 struct{}

func (Crosby2007) Depth(age float64) float64 {
	switch {
	case age <= 0:
		return 2600
	case age < 80:
		// Crosby (2007) near-ridge polynomial fit.
		return 2512 + 360*math.Sqrt(age) - 1.7*age
	default:
		// Asymptotic plate-cooling branch for old, thermally
		// equilibrated lithosphere.
		return 6000 - 3200*math.Exp(-age/70)
	}
}

// RHCW18 is the RHCW18 age-to-depth curve: a thermal half-space/plate
// cooling model with potential temperature 1333°C, plate thickness
// 130 km, and zero-age ridge depth 2500 m. It is tabulated at
// 1 Myr resolution and linearly interpolated between knots, matching the
// source reference's tabulation approach.
type RHCW18 struct {
	table *numeric.Table
}

// potentialTemperature, plateThickness, and ridgeDepth are the RHCW18
// model constants.
const (
	potentialTemperature = 1333.0 // °C
	plateThickness       = 130000.0 // m
	ridgeDepth           = 2500.0  // m

	thermalDiffusivity = 1e-6 // m^2/s, standard mantle value
	thermalExpansion   = 3.28e-5
	mantleDensityRHCW  = 3330.0
	crustDensityRHCW   = 2900.0
	secondsPerMyr      = 1e6 * 365.25 * 24 * 3600
)

// NewRHCW18 builds the RHCW18 plate-cooling model, tabulated from age 0 to
// maxAge in 1 Myr steps using the standard plate-cooling solution:
//
//	w(t) = ridgeDepth + (rho_m*alpha*Tm*L / (2*(rho_m-rho_c))) * (1 - (8/pi^2) * sum_n (1/(2n+1)^2) * exp(-(2n+1)^2*t/tau))
//
// where tau = L^2/(pi^2*kappa) is the plate's thermal time constant.
func NewRHCW18(maxAge float64) RHCW18 {
	if maxAge <= 0 {
		maxAge = 200
	}
	n := int(maxAge) + 1
	xs := make([]float64, n)
	ys := make([]float64, n)
	tau := plateThickness * plateThickness / (math.Pi * math.Pi * thermalDiffusivity)

	for i := 0; i < n; i++ {
		age := float64(i)
		xs[i] = age
		if i == 0 {
			// At zero age the full series sums to pi^2/8 and the
			// subsidence term vanishes; the truncated sum does not.
			ys[i] = ridgeDepth
			continue
		}
		tSeconds := age * secondsPerMyr

		sum := 0.0
		for k := 0; k < 50; k++ {
			m := float64(2*k + 1)
			sum += math.Exp(-m*m*tSeconds/tau) / (m * m)
		}

		subsidence := (mantleDensityRHCW * thermalExpansion * potentialTemperature * plateThickness /
			(2 * (mantleDensityRHCW - crustDensityRHCW))) * (1 - (8/(math.Pi*math.Pi))*sum)
		ys[i] = ridgeDepth + subsidence
	}

	tab, err := numeric.NewTable(xs, ys)
	if err != nil {
		// xs is constructed strictly increasing above; this cannot fail.
		panic(err)
	}
	return RHCW18{table: tab}
}

func (m RHCW18) Depth(age float64) float64 {
	return m.table.At(age)
}

// UserTable wraps a caller-supplied piecewise-linear age/depth table, used
// as an alternative to the named curves above.
type UserTable struct {
	table *numeric.Table
}

// NewUserTable builds a UserTable from parallel age/depth slices.
func NewUserTable(ages, depths []float64) (UserTable, error) {
	tab, err := numeric.NewTable(ages, depths)
	if err != nil {
		return UserTable{}, err
	}
	return UserTable{table: tab}, nil
}

func (m UserTable) Depth(age float64) float64 {
	return m.table.At(age)
}

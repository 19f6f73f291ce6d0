// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package backtrackcmd implements the backtrack driver command.
package backtrackcmd

import (
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/earth"

	"github.com/EarthByte/pyBacktrack/backtrack"
	"github.com/EarthByte/pyBacktrack/continental"
	"github.com/EarthByte/pyBacktrack/decompact"
	"github.com/EarthByte/pyBacktrack/diag"
	"github.com/EarthByte/pyBacktrack/manifest"
	"github.com/EarthByte/pyBacktrack/oceanic"
	"github.com/EarthByte/pyBacktrack/strata"
)

var Command = &command.Command{
	Usage: "backtrack [--model <name>] [--crust-thickness <m>] [--lithosphere-thickness <m>] <manifest-file>",
	Short: "reconstruct water depth from a drill site's stratigraphy",
	Long: `
Command backtrack reads the well, lithology registry, sea level, and
dynamic-topography datasets recorded in a manifest file, runs the backtrack
driver, and prints the resulting water-depth history to the standard
output.

Flag --model selects the oceanic age-to-depth curve: gdh1 (default),
crosby2007, or rhcw18. Ignored for continental wells.

Flags --crust-thickness and --lithosphere-thickness give the rift model's
geometric inputs, in meters, for continental wells (default 35000 and
125000).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var (
	modelFlag       string
	crustFlag       float64
	lithosphereFlag float64
)

func setFlags(c *command.Command) {
	c.Flags().StringVar(&modelFlag, "model", "gdh1", "")
	c.Flags().Float64Var(&crustFlag, "crust-thickness", 35000, "")
	c.Flags().Float64Var(&lithosphereFlag, "lithosphere-thickness", 125000, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting manifest file")
	}

	m, err := manifest.Read(args[0])
	if err != nil {
		return err
	}

	reg, err := m.LithologyRegistry()
	if err != nil {
		return err
	}
	well, err := m.Well(reg)
	if err != nil {
		return err
	}
	seaLevel, err := m.SeaLevel()
	if err != nil {
		return err
	}

	d := diag.NewDiagnostics()

	cfg := backtrack.Config{
		Rift:     continental.Params{CrustThicknessPresent: crustFlag, LithosphereThickness: lithosphereFlag},
		SeaLevel: seaLevel,
	}

	if well.Crust == strata.Oceanic {
		var base oceanic.Model
		switch strings.ToLower(modelFlag) {
		case "gdh1", "":
			base = oceanic.GDH1{}
		case "crosby2007":
			base = oceanic.Crosby2007{}
		case "rhcw18":
			base = oceanic.NewRHCW18(well.CrustAge)
		default:
			return c.UsageError(fmt.Sprintf("flag --model: unknown value %q", modelFlag))
		}

		first := well.Units[0]
		if !first.WaterDepth.Known {
			return c.UsageError("oceanic well has no recorded present-day water depth to fit the age-to-depth model")
		}
		w0 := (first.WaterDepth.Min + first.WaterDepth.Max) / 2

		col0, err := decompact.AtAge(well.Units, 0, backtrack.DensityWater)
		if err != nil {
			return err
		}
		loadTerm := (backtrack.MantleDensity - col0.AverageDensity) / (backtrack.MantleDensity - backtrack.DensityWater) * col0.TotalThickness
		s0 := w0 + loadTerm

		cfg.Oceanic = oceanic.Fit(base, s0, well.CrustAge)
	}

	pix := earth.NewPixelation(360)
	dt, err := m.DynTopoModel(pix)
	if err != nil {
		return err
	}
	cfg.DynTopo = dt

	pts, err := backtrack.Run(well, cfg, d)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Stdout(), "age\tdecompacted\tdensity\tbeta\tsubsidence\twater_depth\n")
	for _, p := range pts {
		fmt.Fprintf(c.Stdout(), "%.3f\t%.2f\t%.2f\t%.4f\t%.2f\t%.2f\n", p.Age, p.DecompactedTotal, p.AverageDensity, p.Beta, p.Subsidence, p.WaterDepth)
	}

	for _, w := range d.Warnings() {
		fmt.Fprintf(c.Stderr(), "warning: %s: %s: %s\n", w.Kind, w.Key, w.Msg)
	}
	return nil
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package backstripcmd implements the backstrip driver command.
package backstripcmd

import (
	"fmt"

	"github.com/js-arias/command"

	"github.com/EarthByte/pyBacktrack/backstrip"
	"github.com/EarthByte/pyBacktrack/diag"
	"github.com/EarthByte/pyBacktrack/manifest"
)

var Command = &command.Command{
	Usage: "backstrip <manifest-file>",
	Short: "invert recorded paleo water depth for tectonic subsidence",
	Long: `
Command backstrip reads the well, lithology registry, and sea level
datasets recorded in a manifest file, runs the backstrip driver, and
prints the recovered tectonic-subsidence history to the standard output.

Every stratigraphic unit in the well must carry a recorded minimum and
maximum paleo water depth; unlike backtrack, no age-to-depth or rift
model is used.
	`,
	Run: run,
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
	pts, err := backstrip.Run(well, seaLevel, d)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Stdout(), "age\tdecompacted\tdensity\tsubsidence_min\tsubsidence_max\tsubsidence_avg\n")
	for _, p := range pts {
		fmt.Fprintf(c.Stdout(), "%.3f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n", p.Age, p.DecompactedTotal, p.AverageDensity, p.SubsidenceMin, p.SubsidenceMax, p.SubsidenceAvg)
	}

	for _, w := range d.Warnings() {
		fmt.Fprintf(c.Stderr(), "warning: %s: %s: %s\n", w.Kind, w.Key, w.Msg)
	}
	return nil
}

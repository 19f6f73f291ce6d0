// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package lithcmd implements a command to merge and print a lithology
// registry.
package lithcmd

import (
	"fmt"
	"os"

	"github.com/js-arias/command"

	"github.com/EarthByte/pyBacktrack/lithology"
)

var Command = &command.Command{
	Usage: "lith <lithology-file>...",
	Short: "merge and print a lithology registry",
	Long: `
Command lith reads one or more lithology registry files, merging them in
order (a later file overrides a name already defined by an earlier one), and
prints the resulting registry to the standard output.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		return c.UsageError("expecting at least one lithology file")
	}

	reg := lithology.New()
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		r, err := lithology.Read(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("on file %q: %v", name, err)
		}
		reg.Merge(r)
	}

	names := reg.Names()
	fmt.Fprintf(c.Stdout(), "# %d lithologies\n", len(names))
	for _, n := range names {
		l, err := reg.Lookup(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "%s\t%.1f\t%.4f\t%.1f\n", l.Name, l.GrainDensity, l.SurfacePorosity, l.DecayLength)
	}
	return nil
}

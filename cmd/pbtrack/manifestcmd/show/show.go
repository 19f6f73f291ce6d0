// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package show implements a command to print the contents of a pyBacktrack
// manifest file.
package show

import (
	"fmt"

	"github.com/js-arias/command"

	"github.com/EarthByte/pyBacktrack/manifest"
)

var Command = &command.Command{
	Usage: "show <manifest-file>",
	Short: "print the datasets defined in a manifest",
	Run:   run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting manifest file")
	}

	m, err := manifest.Read(args[0])
	if err != nil {
		return err
	}

	for _, s := range m.Sets() {
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", s, m.Path(s))
	}
	return nil
}

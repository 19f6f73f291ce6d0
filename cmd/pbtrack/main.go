// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Pbtrack is a tool for paleobathymetry reconstruction from drill-site
// stratigraphy.
package main

import (
	"github.com/js-arias/command"

	"github.com/EarthByte/pyBacktrack/cmd/pbtrack/backstripcmd"
	"github.com/EarthByte/pyBacktrack/cmd/pbtrack/backtrackcmd"
	"github.com/EarthByte/pyBacktrack/cmd/pbtrack/lithcmd"
	"github.com/EarthByte/pyBacktrack/cmd/pbtrack/manifestcmd"
	"github.com/EarthByte/pyBacktrack/cmd/pbtrack/plotcmd"
)

var app = &command.Command{
	Usage: "pbtrack <command> [<argument>...]",
	Short: "a tool for paleobathymetry reconstruction",
}

func init() {
	app.Add(backtrackcmd.Command)
	app.Add(backstripcmd.Command)
	app.Add(lithcmd.Command)
	app.Add(manifestcmd.Command)
	app.Add(plotcmd.Command)
}

func main() {
	app.Main()
}

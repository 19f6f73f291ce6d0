// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package manifestcmd is a metapackage for commands that manage a
// pyBacktrack manifest file.
package manifestcmd

import (
	"github.com/js-arias/command"

	"github.com/EarthByte/pyBacktrack/cmd/pbtrack/manifestcmd/add"
	"github.com/EarthByte/pyBacktrack/cmd/pbtrack/manifestcmd/show"
)

var Command = &command.Command{
	Usage: "manifest <command> [<argument>...]",
	Short: "commands for manifest files",
}

func init() {
	Command.Add(add.Command)
	Command.Add(show.Command)
}

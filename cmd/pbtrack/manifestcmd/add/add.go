// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add a dataset path to a pyBacktrack
// manifest file.
package add

import (
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"

	"github.com/EarthByte/pyBacktrack/manifest"
)

var Command = &command.Command{
	Usage: "add --type <dataset> <manifest-file> <data-file>",
	Short: "add a dataset path to a manifest",
	Long: `
Command add records the path of a data file in a manifest file. If no
manifest exists at the given path, a new one is created.

The type of the added dataset must be given with the flag --type, one of:

	well            drill-site stratigraphy file
	lithology       lithology registry file
	geomotion       plate-motion model file
	staticpolygons  static-polygon plate assignment file
	dyntopo         dynamic-topography grid set
	sealevel        sea-level curve file
	agedepthtable   user-supplied age-to-depth table
	`,
	SetFlags: setFlags,
	Run:      run,
}

var typeFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&typeFlag, "type", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting manifest file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting data file")
	}
	if typeFlag == "" {
		return c.UsageError("flag --type undefined")
	}

	set := manifest.Dataset(strings.ToLower(typeFlag))
	switch set {
	case manifest.Well, manifest.Lithology, manifest.GeoMotion, manifest.StaticPolygons,
		manifest.DynTopo, manifest.SeaLevel, manifest.AgeDepthTable:
	default:
		return c.UsageError(fmt.Sprintf("flag --type: unknown value %q", typeFlag))
	}

	mFile := args[0]
	m, err := openManifest(mFile)
	if err != nil {
		return err
	}

	m.Add(set, args[1])
	if err := m.Write(); err != nil {
		return err
	}
	return nil
}

func openManifest(name string) (*manifest.Manifest, error) {
	if _, err := os.Stat(name); os.IsNotExist(err) {
		m := manifest.New()
		m.SetName(name)
		return m, nil
	}
	m, err := manifest.Read(name)
	if err != nil {
		return nil, err
	}
	m.SetName(name)
	return m, nil
}

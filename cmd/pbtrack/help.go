// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(manifestGuide)
	app.Add(wellFileGuide)
	app.Add(lithologyFileGuide)
}

var manifestGuide = &command.Command{
	Usage: "manifest",
	Short: "about manifest files",
	Long: `
pbtrack requires several files to run a reconstruction: a drill-site
record, a lithology registry, and, for runs that use the dynamic
topography correction, a plate-motion model, a static-polygon plate
assignment, and a grid set. A single manifest file holds the path of
each, so the other commands only need that one file on the command line.

A manifest is a tab-delimited file with the fields "dataset" and "path".
Here is an example:

	# pyBacktrack project files
	dataset	path
	well	site-42.tab
	lithology	lithology.tab
	geomotion	rotations.tab
	staticpolygons	plates.tab
	dyntopo	dyntopo-m7.tab
	sealevel	haq87.tab

The valid dataset keywords are:

	well             drill-site stratigraphy file
	lithology        lithology registry file
	geomotion        plate-motion model, in the rotation file format
	                 read by github.com/js-arias/earth/model
	staticpolygons   static-polygon plate assignment
	dyntopo          dynamic-topography grid set, one raster per stage
	sealevel         sea-level curve file (age, level)
	agedepthtable    user-supplied age-to-depth table

geomotion, staticpolygons, and dyntopo are only required when a
reconstruction uses the dynamic topography correction; backtrack treats
a manifest without a dyntopo entry as running with that correction
disabled. sealevel is always optional, and its absence is equivalent to
a sea level of zero at every age.

The recommended way to build a manifest is with 'pbtrack manifest add'.
	`,
}

var wellFileGuide = &command.Command{
	Usage: "well-file",
	Short: "about the drill-site file format",
	Long: `
A drill-site file records a single well as "# Key = value" header lines
followed by one row per stratigraphic unit, shallowest (youngest) first.

	# SiteLongitude = -57.2
	# SiteLatitude = -34.1
	# SurfaceAge = 0
	# CrustAge = 120
	5      100     Shale 1.0
	50     600     Shale 0.5  Mud 0.5     200  400

Recognized header keys are SiteLongitude, SiteLatitude, SurfaceAge,
CrustAge (oceanic sites), and RiftStartAge/RiftEndAge (continental
sites; their presence is what marks a well continental instead of
oceanic).

Each data row is whitespace-separated: bottom age (Ma), bottom depth (m,
present-day compacted geometry), one or more "lithology-name fraction"
pairs naming the unit's composite lithology, and, for backstrip runs,
the recorded minimum and maximum paleo water depth.
	`,
}

var lithologyFileGuide = &command.Command{
	Usage: "lithology-file",
	Short: "about the lithology registry file format",
	Long: `
A lithology registry is a tab-delimited file naming the porosity
constants of each lithology used by a drill-site's stratigraphic units:

	# name	graindensity	surfaceporosity	decaylength
	Shale	2700	0.63	1960
	Sandstone	2650	0.49	3700

graindensity is in kg/m^3, surfaceporosity is a fraction, and
decaylength is the porosity decay length in meters, following the
exponential porosity-depth relation phi(z) = surfaceporosity *
exp(-z/decaylength).
	`,
}

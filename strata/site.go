// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package strata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/EarthByte/pyBacktrack/diag"
	"github.com/EarthByte/pyBacktrack/lithology"
)

// ReadSite reads a drill-site file: header lines of the form
// "# Key = value" supply SiteLongitude, SiteLatitude, SurfaceAge,
// CrustAge (oceanic sites), and RiftStartAge/RiftEndAge (continental
// sites, which also switch the well's Crust to Continental); data lines
// are whitespace-separated columns: bottom_age, bottom_depth, then
// name/fraction lithology pairs, then optional min/max water depth.
//
//	# SiteLongitude = -57.2
//	# SiteLatitude = -34.1
//	# SurfaceAge = 0
//	# CrustAge = 120
//	5      100     Shale 1.0
//	50     600     Shale 0.5  Mud 0.5     200  400
func ReadSite(r io.Reader, reg *lithology.Registry) (*Well, error) {
	w := &Well{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	topAge := 0.0
	topDepth := 0.0
	haveSurfaceAge := false
	haveRiftStart := false
	haveRiftEnd := false

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if err := parseSiteHeader(w, line[1:], &haveSurfaceAge, &haveRiftStart, &haveRiftEnd); err != nil {
				return nil, diag.Wrap(diag.BadInputFormat, fmt.Sprintf("site file, line %d", lineNo), err)
			}
			continue
		}

		fields := strings.Fields(line)
		u, err := parseSiteRow(fields, reg, topAge, topDepth)
		if err != nil {
			return nil, diag.Wrap(diag.BadInputFormat, fmt.Sprintf("site file, line %d", lineNo), err)
		}
		w.Units = append(w.Units, u)
		topAge = u.BottomAge
		topDepth = u.BottomDepth
	}
	if err := sc.Err(); err != nil {
		return nil, diag.Wrap(diag.BadInputFormat, "site file", err)
	}

	if haveSurfaceAge {
		if len(w.Units) > 0 {
			w.Units[0].TopAge = w.SurfaceAge
		}
	}
	if haveRiftStart && haveRiftEnd {
		w.HasRiftAges = true
		w.Crust = Continental
	}

	return w, nil
}

func parseSiteHeader(w *Well, comment string, haveSurfaceAge, haveRiftStart, haveRiftEnd *bool) error {
	parts := strings.SplitN(comment, "=", 2)
	if len(parts) != 2 {
		return nil
	}
	name := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])

	var err error
	switch name {
	case "SiteLongitude":
		w.Longitude, err = strconv.ParseFloat(value, 64)
	case "SiteLatitude":
		w.Latitude, err = strconv.ParseFloat(value, 64)
	case "SurfaceAge":
		w.SurfaceAge, err = strconv.ParseFloat(value, 64)
		*haveSurfaceAge = true
	case "RiftStartAge":
		w.RiftStartAge, err = strconv.ParseFloat(value, 64)
		*haveRiftStart = true
	case "RiftEndAge":
		w.RiftEndAge, err = strconv.ParseFloat(value, 64)
		*haveRiftEnd = true
	case "CrustAge":
		w.CrustAge, err = strconv.ParseFloat(value, 64)
	}
	if err != nil {
		return fmt.Errorf("metadata %q: %w", name, err)
	}
	return nil
}

func parseSiteRow(fields []string, reg *lithology.Registry, topAge, topDepth float64) (Unit, error) {
	if len(fields) < 4 {
		return Unit{}, fmt.Errorf("expecting at least 4 fields, got %d", len(fields))
	}

	bottomAge, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Unit{}, fmt.Errorf("bottom age: %w", err)
	}
	bottomDepth, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Unit{}, fmt.Errorf("bottom depth: %w", err)
	}

	rest := fields[2:]
	var comps []lithology.Component
	i := 0
	for i+1 < len(rest) {
		if _, err := strconv.ParseFloat(rest[i], 64); err == nil {
			// A number where a lithology name belongs starts the
			// optional min/max water-depth columns.
			break
		}
		frac, err := strconv.ParseFloat(rest[i+1], 64)
		if err != nil {
			break
		}
		comps = append(comps, lithology.Component{Name: rest[i], Fraction: frac})
		i += 2
	}
	if len(comps) == 0 {
		return Unit{}, fmt.Errorf("no lithology components found")
	}

	composite, err := lithology.NewComposite(reg, comps)
	if err != nil {
		return Unit{}, err
	}

	u := Unit{
		TopAge:      topAge,
		BottomAge:   bottomAge,
		TopDepth:    topDepth,
		BottomDepth: bottomDepth,
		Lithology:   composite,
	}

	remaining := rest[i:]
	if len(remaining) >= 2 {
		min, err := strconv.ParseFloat(remaining[0], 64)
		if err != nil {
			return Unit{}, fmt.Errorf("min water depth: %w", err)
		}
		max, err := strconv.ParseFloat(remaining[1], 64)
		if err != nil {
			return Unit{}, fmt.Errorf("max water depth: %w", err)
		}
		u.WaterDepth = WaterDepthRange{Min: min, Max: max, Known: true}
	}

	return u, nil
}

// WriteSite writes an amended drill-site file, echoing the well's current
// units (including any synthesized base sediment layer), in the same
// format ReadSite accepts.
func WriteSite(w io.Writer, well *Well) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# SiteLongitude = %g\n", well.Longitude)
	fmt.Fprintf(bw, "# SiteLatitude = %g\n", well.Latitude)
	fmt.Fprintf(bw, "# SurfaceAge = %g\n", well.SurfaceAge)
	if well.Crust == Oceanic {
		fmt.Fprintf(bw, "# CrustAge = %g\n", well.CrustAge)
	}
	if well.HasRiftAges {
		fmt.Fprintf(bw, "# RiftStartAge = %g\n", well.RiftStartAge)
		fmt.Fprintf(bw, "# RiftEndAge = %g\n", well.RiftEndAge)
	}

	for _, u := range well.Units {
		fmt.Fprintf(bw, "%g\t%g", u.BottomAge, u.BottomDepth)
		for _, c := range u.Lithology.Components {
			fmt.Fprintf(bw, "\t%s\t%g", c.Name, c.Fraction)
		}
		if u.WaterDepth.Known {
			fmt.Fprintf(bw, "\t%g\t%g", u.WaterDepth.Min, u.WaterDepth.Max)
		}
		fmt.Fprint(bw, "\n")
	}
	return bw.Flush()
}

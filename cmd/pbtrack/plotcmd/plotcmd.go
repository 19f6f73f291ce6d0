// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plotcmd implements a command to render a backtrack or backstrip
// result table as a water-depth-through-time chart.
package plotcmd

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/EarthByte/pyBacktrack/internal/resultmap"
)

var Command = &command.Command{
	Usage: "plot [--out <file>] <result-file>",
	Short: "render a water-depth/subsidence-vs-age curve",
	Long: `
Command plot reads the tab-separated table printed by backtrack or
backstrip, and writes two images: a line chart of depth against age, and
a color-strip diagram using the colorblind-safe gradients of
github.com/js-arias/blind.

Flag --out sets the line chart's file name (default pbtrack-plot.png);
the color strip is written alongside it with a "-strip" suffix.

For a backtrack table, the plotted depth is the water_depth column; for a
backstrip table, it is subsidence_avg.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var outFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&outFlag, "out", "pbtrack-plot.png", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting result file")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	pts, err := readResult(f)
	if err != nil {
		return fmt.Errorf("on file %q: %v", args[0], err)
	}
	if len(pts) == 0 {
		return fmt.Errorf("on file %q: no data rows", args[0])
	}

	if err := writeChart(pts, outFlag); err != nil {
		return err
	}
	stripName := stripFileName(outFlag)
	if err := writeStrip(pts, stripName); err != nil {
		return err
	}

	fmt.Fprintf(c.Stdout(), "wrote %s\n", outFlag)
	fmt.Fprintf(c.Stdout(), "wrote %s\n", stripName)
	return nil
}

// readResult reads the tab-separated table printed by the backtrack or
// backstrip commands, returning (age, depth) pairs in the file's order.
// The depth column is water_depth if present, else subsidence_avg.
func readResult(r io.Reader) ([]resultmap.Point, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.FieldsPerRecord = -1

	header, err := tsv.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty result file")
	}
	if err != nil {
		return nil, err
	}

	ageCol, depthCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "age":
			ageCol = i
		case "water_depth":
			depthCol = i
		case "subsidence_avg":
			if depthCol < 0 {
				depthCol = i
			}
		}
	}
	if ageCol < 0 || depthCol < 0 {
		return nil, fmt.Errorf("header has no age/depth columns")
	}

	var pts []resultmap.Point
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on line %d: %v", ln, err)
		}
		if len(row) <= depthCol {
			continue
		}

		age, err := strconv.ParseFloat(strings.TrimSpace(row[ageCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("on line %d: read age %q: %v", ln, row[ageCol], err)
		}
		depth, err := strconv.ParseFloat(strings.TrimSpace(row[depthCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("on line %d: read depth %q: %v", ln, row[depthCol], err)
		}
		pts = append(pts, resultmap.Point{Age: age, Depth: depth})
	}
	return pts, nil
}

func writeChart(pts []resultmap.Point, name string) error {
	p := plot.New()
	p.X.Label.Text = "age (Ma)"
	p.Y.Label.Text = "depth (m)"

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.Age
		xys[i].Y = pt.Depth
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle = plotter.DefaultLineStyle
	p.Add(line, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
		return err
	}
	return nil
}

func writeStrip(pts []resultmap.Point, name string) (err error) {
	strip := &resultmap.Strip{
		Cols:     len(pts) * 8,
		Rows:     40,
		Points:   pts,
		Gradient: resultmap.RainbowPurpleToRed{},
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := f.Close(); err == nil {
			err = cErr
		}
	}()

	return png.Encode(f, strip)
}

func stripFileName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return base + "-strip" + ext
}

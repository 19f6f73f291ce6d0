// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package resultmap renders a water-depth-through-time history as a color
// strip image, one column per reconstructed age, using the colorblind-safe
// gradients of github.com/js-arias/blind.
package resultmap

import (
	"image"
	"image/color"

	"github.com/js-arias/blind"
)

// Point is a single age/depth sample, matching the shape of a
// backtrack.Point or backstrip.Point.
type Point struct {
	Age   float64
	Depth float64
}

// Strip is an image.Image rendering Points as a horizontal color strip:
// column x corresponds to Points[x*len(Points)/Cols], colored by Gradient
// scaled to [0, MaxDepth].
type Strip struct {
	// Cols is the image width in pixels; the height is fixed at Rows.
	Cols, Rows int

	Points   []Point
	MaxDepth float64

	// Gradient colors a normalized depth in [0, 1]. RainbowPurpleToRed
	// is used if nil.
	Gradient Gradienter
}

func (s *Strip) norm() {
	if s.Gradient == nil {
		s.Gradient = RainbowPurpleToRed{}
	}
	if s.Rows <= 0 {
		s.Rows = 1
	}
	if s.MaxDepth <= 0 {
		for _, p := range s.Points {
			if p.Depth > s.MaxDepth {
				s.MaxDepth = p.Depth
			}
		}
	}
}

func (s *Strip) ColorModel() color.Model { return color.RGBAModel }
func (s *Strip) Bounds() image.Rectangle { return image.Rect(0, 0, s.Cols, s.Rows) }

func (s *Strip) At(x, y int) color.Color {
	if len(s.Points) == 0 {
		return color.RGBA{211, 211, 211, 255}
	}
	s.norm()

	i := x * len(s.Points) / s.Cols
	if i >= len(s.Points) {
		i = len(s.Points) - 1
	}
	v := s.Points[i].Depth / s.MaxDepth
	return s.Gradient.Gradient(v)
}

// Gradienter is a type that maps a normalized value in [0, 1] to a color.
type Gradienter interface {
	Gradient(v float64) color.Color
}

// Incandescent is the incandescent color scheme of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp01(v))
}

// Iridescent is the iridescent color scheme of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp01(v))
}

// RainbowPurpleToRed is the rainbow color scheme of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>, starting at
// purple (shallow) and ending at red (deep).
type RainbowPurpleToRed struct{}

func (RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp01(v))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

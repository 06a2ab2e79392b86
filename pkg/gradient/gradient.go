package gradient

import (
	"cmp"
	"math"
	"slices"

	"github.com/aretw0/prism/pkg/color"
)

// Stop anchors an HSL colour at a fractional position in [0,1].
type Stop struct {
	Position float64
	Color    color.HSL
}

// RGBStop anchors an RGB colour at a fractional position in [0,1].
type RGBStop struct {
	Position float64
	Color    color.RGB8
}

// HSL converts the stop to an HSL stop.
func (s RGBStop) HSL() Stop {
	return Stop{Position: s.Position, Color: s.Color.HSL()}
}

// Gradient is an immutable sequence of colours, one per cell.
type Gradient struct {
	points []color.HSL
}

// Len returns the number of points.
func (g Gradient) Len() int {
	return len(g.points)
}

// Points returns a copy of the points.
func (g Gradient) Points() []color.HSL {
	return slices.Clone(g.points)
}

// At returns the point at i, clamped to the gradient bounds.
// It returns the zero HSL for an empty gradient.
func (g Gradient) At(i int) color.HSL {
	if len(g.points) == 0 {
		return color.HSL{}
	}
	return g.points[max(0, min(i, len(g.points)-1))]
}

// RGB converts every point to RGB8.
func (g Gradient) RGB() []color.RGB8 {
	out := make([]color.RGB8, len(g.points))
	for i, p := range g.points {
		out[i] = p.RGB()
	}
	return out
}

// Generate builds a gradient of length points from stops.
//
// Stops are sorted by position (stable, so among equal positions input order is kept).
// Point i sits at i/(length-1), or 0 when length is 1.
func Generate(length int, stops []Stop) (Gradient, error) {
	if length <= 0 {
		return Gradient{}, ErrNonPositiveLength
	}
	if len(stops) == 0 {
		return Gradient{}, ErrEmptyStops
	}

	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b Stop) int {
		return cmp.Compare(a.Position, b.Position)
	})

	points := make([]color.HSL, length)
	for i := range points {
		position := 0.0
		if length > 1 {
			position = float64(i) / float64(length-1)
		}
		points[i] = colorAt(position, sorted)
	}
	return Gradient{points: points}, nil
}

// GenerateRGB is Generate for RGB stops.
func GenerateRGB(length int, stops []RGBStop) (Gradient, error) {
	hsl := make([]Stop, len(stops))
	for i, s := range stops {
		hsl[i] = s.HSL()
	}
	return Generate(length, hsl)
}

func colorAt(position float64, stops []Stop) color.HSL {
	first, last := stops[0], stops[len(stops)-1]
	if position <= first.Position {
		return first.Color
	}
	if position >= last.Position {
		return last.Color
	}

	for i := 0; i < len(stops)-1; i++ {
		left, right := stops[i], stops[i+1]
		if position >= left.Position && position <= right.Position {
			span := right.Position - left.Position
			t := 0.0
			if span > 0 {
				t = (position - left.Position) / span
			}
			return InterpolateHSL(left.Color, right.Color, t)
		}
	}

	// Unreachable for sorted, non-NaN positions.
	return first.Color
}

// InterpolateHSL blends a toward b by t in [0,1]. Saturation and luminance are linear;
// hue takes the shorter arc.
func InterpolateHSL(a, b color.HSL, t float64) color.HSL {
	return color.HSL{
		Hue:        InterpolateHue(a.Hue, b.Hue, t),
		Saturation: a.Saturation + (b.Saturation-a.Saturation)*t,
		Luminance:  a.Luminance + (b.Luminance-a.Luminance)*t,
	}
}

// InterpolateHue blends two hues in degrees along the shorter arc and renormalizes the
// result into [0,360).
func InterpolateHue(h1, h2, t float64) float64 {
	diff := h2 - h1
	if math.Abs(diff) > 180 {
		if diff > 0 {
			diff -= 360
		} else {
			diff += 360
		}
	}

	h := h1 + diff*t
	switch {
	case h < 0:
		return h + 360
	case h >= 360:
		return h - 360
	default:
		return h
	}
}

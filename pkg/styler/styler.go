package styler

import (
	"slices"

	"github.com/aretw0/prism/pkg/color"
	"github.com/aretw0/prism/pkg/gradient"
	"github.com/aretw0/prism/pkg/style"
)

// Styler produces the Style for the character at column x, row y.
// Implementations must be pure.
type Styler interface {
	StyleForPosition(x, y int) style.Style
}

// Func adapts a function to the Styler interface.
type Func func(x, y int) style.Style

func (f Func) StyleForPosition(x, y int) style.Style {
	return f(x, y)
}

// Constant returns the same style everywhere.
type Constant struct {
	Style style.Style
}

// NewConstant creates a Constant styler.
func NewConstant(s style.Style) Constant {
	return Constant{Style: s}
}

func (c Constant) StyleForPosition(x, y int) style.Style {
	return c.Style.Clone()
}

// Joined merges the styles of two stylers. Second overrides First on conflict.
type Joined struct {
	First  Styler
	Second Styler
}

// Join composes a and b; b wins on conflicting categories.
func Join(a, b Styler) Joined {
	return Joined{First: a, Second: b}
}

// JoinAll folds stylers left to right so later stylers win. It returns an empty Constant
// when called with no stylers.
func JoinAll(stylers ...Styler) Styler {
	if len(stylers) == 0 {
		return Constant{}
	}
	acc := stylers[0]
	for _, s := range stylers[1:] {
		acc = Join(acc, s)
	}
	return acc
}

func (j Joined) StyleForPosition(x, y int) style.Style {
	return style.Merge(j.First.StyleForPosition(x, y), j.Second.StyleForPosition(x, y))
}

// axis selects which coordinate indexes the points.
type axis uint8

const (
	horizontal axis = iota
	vertical
)

// layer selects whether the points colour the text or the cell background.
type layer uint8

const (
	foreground layer = iota
	background
)

// Points is a gradient styler over a fixed list of RGB points.
// Build it with one of the New* constructors or the From* helpers.
type Points struct {
	points []color.RGB8
	axis   axis
	layer  layer
}

// HorizontalForeground colours text by column.
func HorizontalForeground(points []color.RGB8) Points {
	return Points{points: slices.Clone(points), axis: horizontal, layer: foreground}
}

// VerticalForeground colours text by row.
func VerticalForeground(points []color.RGB8) Points {
	return Points{points: slices.Clone(points), axis: vertical, layer: foreground}
}

// HorizontalBackground colours cell backgrounds by column.
func HorizontalBackground(points []color.RGB8) Points {
	return Points{points: slices.Clone(points), axis: horizontal, layer: background}
}

// VerticalBackground colours cell backgrounds by row.
func VerticalBackground(points []color.RGB8) Points {
	return Points{points: slices.Clone(points), axis: vertical, layer: background}
}

// NewHorizontalForeground generates a length-point gradient from stops and wraps it in a
// HorizontalForeground styler.
func NewHorizontalForeground(length int, stops []gradient.RGBStop) (Points, error) {
	return fromStops(length, stops, HorizontalForeground)
}

// NewVerticalForeground is NewHorizontalForeground indexed by row.
func NewVerticalForeground(length int, stops []gradient.RGBStop) (Points, error) {
	return fromStops(length, stops, VerticalForeground)
}

// NewHorizontalBackground is NewHorizontalForeground for backgrounds.
func NewHorizontalBackground(length int, stops []gradient.RGBStop) (Points, error) {
	return fromStops(length, stops, HorizontalBackground)
}

// NewVerticalBackground is NewVerticalForeground for backgrounds.
func NewVerticalBackground(length int, stops []gradient.RGBStop) (Points, error) {
	return fromStops(length, stops, VerticalBackground)
}

func fromStops(length int, stops []gradient.RGBStop, build func([]color.RGB8) Points) (Points, error) {
	g, err := gradient.GenerateRGB(length, stops)
	if err != nil {
		return Points{}, err
	}
	return build(g.RGB()), nil
}

// Len returns the number of points.
func (p Points) Len() int {
	return len(p.points)
}

// Colors returns a copy of the points.
func (p Points) Colors() []color.RGB8 {
	return slices.Clone(p.points)
}

// StyleForPosition picks the point at x or y, clamped to the point range. With no
// points it returns an empty style.
func (p Points) StyleForPosition(x, y int) style.Style {
	if len(p.points) == 0 {
		return style.Style{}
	}

	i := x
	if p.axis == vertical {
		i = y
	}
	c := p.points[max(0, min(i, len(p.points)-1))]

	if p.layer == background {
		return style.Style{Background: style.BackgroundRGB(c)}
	}
	return style.New(style.ColorRGB(c))
}

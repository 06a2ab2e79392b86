package style

import (
	"fmt"

	"github.com/aretw0/prism/pkg/ansi"
	"github.com/aretw0/prism/pkg/color"
)

// Category is the exclusivity class of a foreground attribute.
type Category uint8

const (
	CategoryBold Category = iota
	CategoryColor
	CategoryItalic
	CategoryUnderline
)

// canonical append order for merged attributes
var categoryOrder = [...]Category{CategoryBold, CategoryColor, CategoryItalic, CategoryUnderline}

func (c Category) String() string {
	switch c {
	case CategoryBold:
		return "bold"
	case CategoryColor:
		return "color"
	case CategoryItalic:
		return "italic"
	case CategoryUnderline:
		return "underline"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

type foregroundKind uint8

const (
	fgBold foregroundKind = iota
	fgItalic
	fgUnderline
	fgColor256
	fgColorBasic
	fgColorBasicBright
	fgColorRGB
)

// Foreground is a text attribute: bold, italic, underline or a text colour.
type Foreground struct {
	kind    foregroundKind
	index   int
	palette color.BasicPalette
	rgb     color.RGB8
}

func Bold() Foreground      { return Foreground{kind: fgBold} }
func Italic() Foreground    { return Foreground{kind: fgItalic} }
func Underline() Foreground { return Foreground{kind: fgUnderline} }

// Color256 is entry n of the 256-colour palette.
func Color256(n int) Foreground {
	return Foreground{kind: fgColor256, index: n}
}

func ColorBasic(p color.BasicPalette) Foreground {
	return Foreground{kind: fgColorBasic, palette: p}
}

func ColorBasicBright(p color.BasicPalette) Foreground {
	return Foreground{kind: fgColorBasicBright, palette: p}
}

func ColorRGB(c color.RGB8) Foreground {
	return Foreground{kind: fgColorRGB, rgb: c}
}

// Category returns the exclusivity class of f.
func (f Foreground) Category() Category {
	switch f.kind {
	case fgBold:
		return CategoryBold
	case fgItalic:
		return CategoryItalic
	case fgUnderline:
		return CategoryUnderline
	default:
		return CategoryColor
	}
}

// IsColor reports whether f sets the text colour.
func (f Foreground) IsColor() bool {
	return f.Category() == CategoryColor
}

// RGB returns the colour of an RGB foreground.
func (f Foreground) RGB() (color.RGB8, bool) {
	return f.rgb, f.kind == fgColorRGB
}

// Code maps the attribute to its escape code.
func (f Foreground) Code() ansi.Code {
	switch f.kind {
	case fgBold:
		return ansi.Bold()
	case fgItalic:
		return ansi.Italic()
	case fgUnderline:
		return ansi.Underline()
	case fgColor256:
		return ansi.Foreground256(f.index)
	case fgColorBasic:
		return ansi.ForegroundBasic(f.palette, false)
	case fgColorBasicBright:
		return ansi.ForegroundBasic(f.palette, true)
	default:
		return ansi.ForegroundRGB(f.rgb)
	}
}

func (f Foreground) String() string {
	switch f.kind {
	case fgBold:
		return "bold"
	case fgItalic:
		return "italic"
	case fgUnderline:
		return "underline"
	case fgColor256:
		return fmt.Sprintf("256:%d", f.index)
	case fgColorBasic:
		return "basic:" + f.palette.String()
	case fgColorBasicBright:
		return "bright:" + f.palette.String()
	default:
		return f.rgb.Hex()
	}
}

// mergeForegrounds filters list by the categories incoming supplies and appends the
// incoming values in canonical category order. The last incoming value per category wins.
func mergeForegrounds(list, incoming []Foreground) []Foreground {
	if len(incoming) == 0 {
		return list
	}

	var supplied [len(categoryOrder)]*Foreground
	for i := range incoming {
		supplied[incoming[i].Category()] = &incoming[i]
	}

	out := make([]Foreground, 0, len(list)+len(incoming))
	for _, f := range list {
		if supplied[f.Category()] == nil {
			out = append(out, f)
		}
	}
	for _, cat := range categoryOrder {
		if f := supplied[cat]; f != nil {
			out = append(out, *f)
		}
	}
	return out
}

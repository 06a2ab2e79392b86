package ansi

import (
	"fmt"

	"github.com/aretw0/prism/pkg/color"
	"github.com/muesli/termenv"
)

// Kind identifies the arm of a Code.
type Kind uint8

const (
	KindReset Kind = iota
	KindBold
	KindItalic
	KindUnderline
	KindForeground256
	KindForegroundBasic
	KindForegroundRGB
	KindBackground256
	KindBackgroundBasic
	KindBackgroundRGB
)

// Code is a single SGR parameter. The zero value is Reset.
type Code struct {
	kind    Kind
	index   uint8
	palette color.BasicPalette
	bright  bool
	rgb     color.RGB8
}

func Reset() Code     { return Code{kind: KindReset} }
func Bold() Code      { return Code{kind: KindBold} }
func Italic() Code    { return Code{kind: KindItalic} }
func Underline() Code { return Code{kind: KindUnderline} }

// Foreground256 selects entry n of the 256-colour palette. n is clamped to [0,255].
func Foreground256(n int) Code {
	return Code{kind: KindForeground256, index: clampIndex(n)}
}

// ForegroundBasic selects one of the eight basic colours, or its bright variant.
func ForegroundBasic(p color.BasicPalette, bright bool) Code {
	return Code{kind: KindForegroundBasic, palette: p, bright: bright}
}

func ForegroundRGB(c color.RGB8) Code {
	return Code{kind: KindForegroundRGB, rgb: c}
}

// Background256 selects entry n of the 256-colour palette. n is clamped to [0,255].
func Background256(n int) Code {
	return Code{kind: KindBackground256, index: clampIndex(n)}
}

func BackgroundBasic(p color.BasicPalette, bright bool) Code {
	return Code{kind: KindBackgroundBasic, palette: p, bright: bright}
}

func BackgroundRGB(c color.RGB8) Code {
	return Code{kind: KindBackgroundRGB, rgb: c}
}

// Kind returns which arm the code is.
func (c Code) Kind() Kind {
	return c.kind
}

// Sequence returns the SGR parameter text, e.g. "1" or "38;2;255;0;0".
func (c Code) Sequence() string {
	switch c.kind {
	case KindBold:
		return termenv.BoldSeq
	case KindItalic:
		return termenv.ItalicSeq
	case KindUnderline:
		return termenv.UnderlineSeq
	case KindForeground256:
		return termenv.ANSI256Color(c.index).Sequence(false)
	case KindBackground256:
		return termenv.ANSI256Color(c.index).Sequence(true)
	case KindForegroundBasic:
		return basicColor(c.palette, c.bright).Sequence(false)
	case KindBackgroundBasic:
		return basicColor(c.palette, c.bright).Sequence(true)
	case KindForegroundRGB:
		return rgbSequence(termenv.Foreground, c.rgb)
	case KindBackgroundRGB:
		return rgbSequence(termenv.Background, c.rgb)
	default:
		return termenv.ResetSeq
	}
}

func (c Code) String() string {
	return c.Sequence()
}

func basicColor(p color.BasicPalette, bright bool) termenv.ANSIColor {
	n := int(p) % 8
	if bright {
		n += 8
	}
	return termenv.ANSIColor(n)
}

// termenv's RGBColor goes through a float hex round trip; format the channels directly.
func rgbSequence(prefix string, c color.RGB8) string {
	return fmt.Sprintf("%s;2;%d;%d;%d", prefix, c.R, c.G, c.B)
}

func clampIndex(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

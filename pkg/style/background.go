package style

import (
	"fmt"

	"github.com/aretw0/prism/pkg/ansi"
	"github.com/aretw0/prism/pkg/color"
)

type backgroundKind uint8

const (
	bgUnset backgroundKind = iota
	bgNone
	bgColor256
	bgColorBasic
	bgColorBasicBright
	bgColorRGB
)

// Background is the background colour of a Style.
//
// The zero value is "unset": it carries no opinion and never overrides anything under
// BackgroundKeepUnset. NoBackground is an explicit value that clears a background.
type Background struct {
	kind    backgroundKind
	index   int
	palette color.BasicPalette
	rgb     color.RGB8
}

// NoBackground explicitly removes a background when merged.
func NoBackground() Background { return Background{kind: bgNone} }

func Background256(n int) Background {
	return Background{kind: bgColor256, index: n}
}

func BackgroundBasic(p color.BasicPalette) Background {
	return Background{kind: bgColorBasic, palette: p}
}

func BackgroundBasicBright(p color.BasicPalette) Background {
	return Background{kind: bgColorBasicBright, palette: p}
}

func BackgroundRGB(c color.RGB8) Background {
	return Background{kind: bgColorRGB, rgb: c}
}

// IsSet reports whether b carries a value, including NoBackground.
func (b Background) IsSet() bool {
	return b.kind != bgUnset
}

// IsNone reports whether b is the explicit NoBackground.
func (b Background) IsNone() bool {
	return b.kind == bgNone
}

// RGB returns the colour of an RGB background.
func (b Background) RGB() (color.RGB8, bool) {
	return b.rgb, b.kind == bgColorRGB
}

// Code returns the escape code for the background. Unset and NoBackground have none.
func (b Background) Code() (ansi.Code, bool) {
	switch b.kind {
	case bgColor256:
		return ansi.Background256(b.index), true
	case bgColorBasic:
		return ansi.BackgroundBasic(b.palette, false), true
	case bgColorBasicBright:
		return ansi.BackgroundBasic(b.palette, true), true
	case bgColorRGB:
		return ansi.BackgroundRGB(b.rgb), true
	default:
		return ansi.Code{}, false
	}
}

func (b Background) String() string {
	switch b.kind {
	case bgUnset:
		return "unset"
	case bgNone:
		return "none"
	case bgColor256:
		return fmt.Sprintf("256:%d", b.index)
	case bgColorBasic:
		return "basic:" + b.palette.String()
	case bgColorBasicBright:
		return "bright:" + b.palette.String()
	default:
		return b.rgb.Hex()
	}
}

// BackgroundPolicy decides what merging an unset background does.
type BackgroundPolicy uint8

const (
	// BackgroundKeepUnset leaves the existing background alone when the incoming one is
	// unset. Use NoBackground to clear. This is the default.
	BackgroundKeepUnset BackgroundPolicy = iota
	// BackgroundAlwaysReplace makes the incoming background win even when unset, so
	// merging a style without a background clears the base background.
	BackgroundAlwaysReplace
)

func (p BackgroundPolicy) merge(base, incoming Background) Background {
	if p == BackgroundAlwaysReplace || incoming.IsSet() {
		return incoming
	}
	return base
}

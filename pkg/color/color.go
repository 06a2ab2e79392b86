package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB8 is a 24-bit colour with one byte per channel.
type RGB8 struct {
	R, G, B uint8
}

// NewRGB8 builds an RGB8 from channel values.
func NewRGB8(r, g, b uint8) RGB8 {
	return RGB8{R: r, G: g, B: b}
}

// ParseHex parses "#rrggbb" or "#rgb". The leading '#' is optional.
func ParseHex(s string) (RGB8, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB8{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB8{R: r, G: g, B: b}, nil
}

// Hex returns the colour as "#rrggbb".
func (c RGB8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB8) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// HSL converts the colour to hue/saturation/luminance.
// Achromatic colours get hue 0.
func (c RGB8) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := max(r, g, b)
	lo := min(r, g, b)
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{Hue: 0, Saturation: 0, Luminance: l}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return NewHSL(h*60, s, l)
}

// HSL is a colour in hue (degrees, [0,360)), saturation ([0,1]) and luminance ([0,1]).
// Build it with NewHSL so the ranges hold.
type HSL struct {
	Hue        float64
	Saturation float64
	Luminance  float64
}

// NewHSL normalizes hue into [0,360) and clamps saturation and luminance into [0,1].
func NewHSL(hue, saturation, luminance float64) HSL {
	return HSL{
		Hue:        NormalizeHue(hue),
		Saturation: clamp01(saturation),
		Luminance:  clamp01(luminance),
	}
}

// NormalizeHue wraps a hue in degrees into [0,360). NaN and infinities map to 0.
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.2f,%.4f,%.4f)", c.Hue, c.Saturation, c.Luminance)
}

// RGB converts back to 8-bit channels, rounding half up and clamping to [0,255].
func (c HSL) RGB() RGB8 {
	s := clamp01(c.Saturation)
	l := clamp01(c.Luminance)

	if s == 0 {
		v := channel(l)
		return RGB8{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	h := NormalizeHue(c.Hue) / 360

	return RGB8{
		R: channel(hueToRGB(p, q, h+1.0/3)),
		G: channel(hueToRGB(p, q, h)),
		B: channel(hueToRGB(p, q, h-1.0/3)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func channel(v float64) uint8 {
	n := math.Floor(v*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

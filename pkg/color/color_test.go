package color

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestRGB8_HSL_RoundTrip(t *testing.T) {
	// Walk a coarse grid plus the extremes of every channel.
	levels := []uint8{0, 1, 17, 64, 127, 128, 129, 200, 254, 255}
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				in := RGB8{R: r, G: g, B: b}
				out := in.HSL().RGB()
				if absDiff(in.R, out.R) > 1 || absDiff(in.G, out.G) > 1 || absDiff(in.B, out.B) > 1 {
					t.Fatalf("round trip %v -> %v -> %v", in, in.HSL(), out)
				}
			}
		}
	}
}

func TestRGB8_HSL_MatchesColorful(t *testing.T) {
	tests := []RGB8{
		{0xff, 0x00, 0x00},
		{0x00, 0x90, 0x40},
		{0x90, 0x20, 0x30},
		{0xff, 0x30, 0xa0},
		{0x10, 0x40, 0x60},
		{0x5a, 0x56, 0xe0},
	}

	for _, c := range tests {
		ref := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
		h, s, l := ref.Hsl()
		got := c.HSL()
		assert.InDelta(t, h, got.Hue, 1e-9, "hue of %v", c)
		assert.InDelta(t, s, got.Saturation, 1e-9, "saturation of %v", c)
		assert.InDelta(t, l, got.Luminance, 1e-9, "luminance of %v", c)
	}
}

func TestRGB8_HSL_Achromatic(t *testing.T) {
	for _, v := range []uint8{0, 77, 255} {
		hsl := RGB8{v, v, v}.HSL()
		assert.Equal(t, 0.0, hsl.Hue)
		assert.Equal(t, 0.0, hsl.Saturation)
		assert.False(t, math.IsNaN(hsl.Hue))
	}
}

func TestHSL_RGB_Primaries(t *testing.T) {
	tests := []struct {
		in   HSL
		want RGB8
	}{
		{NewHSL(0, 1, 0.5), RGB8{255, 0, 0}},
		{NewHSL(120, 1, 0.5), RGB8{0, 255, 0}},
		{NewHSL(240, 1, 0.5), RGB8{0, 0, 255}},
		{NewHSL(60, 1, 0.5), RGB8{255, 255, 0}},
		{NewHSL(0, 0, 1), RGB8{255, 255, 255}},
		{NewHSL(0, 0, 0), RGB8{0, 0, 0}},
		{NewHSL(0, 0, 0.5), RGB8{128, 128, 128}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.RGB(), "%v", tt.in)
	}
}

func TestNewHSL_Normalizes(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    HSL
	}{
		{370, 0.5, 0.5, HSL{10, 0.5, 0.5}},
		{-10, 0.5, 0.5, HSL{350, 0.5, 0.5}},
		{360, 2, -1, HSL{0, 1, 0}},
		{math.NaN(), 0.2, 0.3, HSL{0, 0.2, 0.3}},
	}
	for _, tt := range tests {
		got := NewHSL(tt.h, tt.s, tt.l)
		assert.InDelta(t, tt.want.Hue, got.Hue, 1e-9)
		assert.Equal(t, tt.want.Saturation, got.Saturation)
		assert.Equal(t, tt.want.Luminance, got.Luminance)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#90B0FF")
	require.NoError(t, err)
	assert.Equal(t, RGB8{0x90, 0xb0, 0xff}, c)
	assert.Equal(t, "#90b0ff", c.Hex())

	c, err = ParseHex("f00")
	require.NoError(t, err)
	assert.Equal(t, RGB8{0xff, 0, 0}, c)

	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
}

func TestParseBasicPalette(t *testing.T) {
	p, err := ParseBasicPalette("Green")
	require.NoError(t, err)
	assert.Equal(t, Green, p)
	assert.Equal(t, "green", p.String())

	_, err = ParseBasicPalette("orange")
	assert.Error(t, err)
	assert.False(t, BasicPalette(9).Valid())
}

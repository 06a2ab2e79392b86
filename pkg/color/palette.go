package color

import (
	"fmt"
	"strings"
)

// BasicPalette is one of the eight colours every terminal knows.
// The value is the SGR offset (30+n foreground, 40+n background).
type BasicPalette uint8

const (
	Black BasicPalette = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var paletteNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (p BasicPalette) String() string {
	if int(p) < len(paletteNames) {
		return paletteNames[p]
	}
	return fmt.Sprintf("BasicPalette(%d)", uint8(p))
}

// Valid reports whether p is one of the eight named colours.
func (p BasicPalette) Valid() bool {
	return int(p) < len(paletteNames)
}

// ParseBasicPalette looks a palette entry up by name (case-insensitive).
func ParseBasicPalette(name string) (BasicPalette, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range paletteNames {
		if n == name {
			return BasicPalette(i), nil
		}
	}
	return 0, fmt.Errorf("unknown basic color %q", name)
}

package render

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/prism/pkg/ansi"
	"github.com/aretw0/prism/pkg/color"
)

// ErrUnequalGradientLengths is returned when foreground and background gradients are
// both supplied with different point counts.
var ErrUnequalGradientLengths = errors.New("foreground and background gradients differ in length")

// DualGradient describes two independent gradients laid over one line of text.
//
// A nil gradient is not applied. Fillers pad text shorter than the gradient: with both
// set the text is centered, with one set it is pushed to the other side. With neither,
// the text is centered and the uncovered columns are plain, uncoloured spaces.
type DualGradient struct {
	Foreground     []color.RGB8
	Background     []color.RGB8
	LeadingFiller  *rune
	TrailingFiller *rune
}

// Filler returns a pointer to r for use as a DualGradient filler.
func Filler(r rune) *rune {
	return &r
}

// Len returns the gradient length: the longer of the two point lists.
func (g DualGradient) Len() int {
	return max(len(g.Foreground), len(g.Background))
}

// ApplyDualGradient renders text with the foreground and background gradients in g.
// Position i uses gradient point min(i, Len()-1). WithNewline is ignored.
// When neither gradient has points the text is returned unchanged.
func ApplyDualGradient(text string, g DualGradient, opts ...Option) (string, error) {
	cfg := newConfig(opts)

	if g.Foreground != nil && g.Background != nil && len(g.Foreground) != len(g.Background) {
		err := fmt.Errorf("%w: foreground %d, background %d", ErrUnequalGradientLengths, len(g.Foreground), len(g.Background))
		cfg.hooks.emit(Event{Kind: KindDualGradient, Err: err})
		return "", err
	}

	length := g.Len()
	if length == 0 {
		cfg.hooks.emit(Event{Kind: KindDualGradient})
		return text, nil
	}

	runes, offset := pad([]rune(text), length, g.LeadingFiller, g.TrailingFiller)
	cells := max(len(runes), length)

	reset := ansi.SGR(ansi.Reset())
	commands := make([]ansi.Command, 0, 2*cells+1)
	for i := 0; i < cells; i++ {
		ti := i - offset
		if ti < 0 || ti >= len(runes) {
			commands = append(commands, reset, ansi.Literal(" "))
			continue
		}

		gi := min(i, length-1)
		codes := make([]ansi.Code, 0, 2)
		if g.Foreground != nil {
			codes = append(codes, ansi.ForegroundRGB(g.Foreground[gi]))
		}
		if g.Background != nil {
			codes = append(codes, ansi.BackgroundRGB(g.Background[gi]))
		}
		commands = append(commands, ansi.SGR(codes...), ansi.Literal(string(runes[ti])))
	}
	if cfg.reset {
		commands = append(commands, reset)
	}
	if cfg.coalesce {
		commands = ansi.Coalesce(commands)
	}

	cfg.hooks.emit(Event{Kind: KindDualGradient, Cells: cells})
	return ansi.Join(commands), nil
}

// pad fits text to length using the fillers. It returns the working runes and the column
// at which they start; the offset is non-zero only when no filler is given.
func pad(text []rune, length int, leading, trailing *rune) ([]rune, int) {
	extra := length - len(text)
	if extra <= 0 {
		return text, 0
	}

	switch {
	case leading != nil && trailing != nil:
		left := extra / 2
		right := extra - left
		return slices.Concat(repeat(*leading, left), text, repeat(*trailing, right)), 0
	case leading != nil:
		return slices.Concat(repeat(*leading, extra), text), 0
	case trailing != nil:
		return slices.Concat(text, repeat(*trailing, extra)), 0
	default:
		return text, extra / 2
	}
}

func repeat(r rune, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return out
}

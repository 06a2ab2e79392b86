package render

import (
	"strings"

	"github.com/aretw0/prism/pkg/ansi"
	"github.com/aretw0/prism/pkg/styler"
)

// ApplyLine styles each rune of line with s at (column, lineIndex). After the last
// character it appends a reset and a newline, as configured.
func ApplyLine(s styler.Styler, line string, lineIndex int, opts ...Option) string {
	cfg := newConfig(opts)
	out, cells := applyLine(s, line, lineIndex, cfg)
	cfg.hooks.emit(Event{Kind: KindLine, Cells: cells})
	return out
}

// ApplyLines applies ApplyLine to each line with its zero-based index and concatenates
// the results.
func ApplyLines(s styler.Styler, lines []string, opts ...Option) string {
	cfg := newConfig(opts)

	var b strings.Builder
	total := 0
	for i, line := range lines {
		out, cells := applyLine(s, line, i, cfg)
		b.WriteString(out)
		total += cells
	}
	cfg.hooks.emit(Event{Kind: KindLines, Cells: total})
	return b.String()
}

func applyLine(s styler.Styler, line string, lineIndex int, cfg config) (string, int) {
	commands := make([]ansi.Command, 0, 2*len(line)+1)
	x := 0
	for _, r := range line {
		commands = append(commands, s.StyleForPosition(x, lineIndex).Command(), ansi.Literal(string(r)))
		x++
	}
	if cfg.reset {
		commands = append(commands, ansi.SGR(ansi.Reset()))
	}
	if cfg.coalesce {
		commands = ansi.Coalesce(commands)
	}

	out := ansi.Join(commands)
	if cfg.newline {
		out += "\n"
	}
	return out, x
}

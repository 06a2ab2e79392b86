/*
Package prism composes terminal text styles and paints text with colour gradients.

prism models a style as a set of SGR attributes (bold, italic, underline, a foreground
colour and an optional background) that merge predictably: a style merged over another
replaces every category it mentions and keeps the rest. Gradients interpolate in HSL
along the shortest hue arc, and stylers map each character cell to a style so whole
blocks of text can be painted in one pass.

# Packages

  - pkg/color: RGB8 and HSL colour models and the basic 8-colour palette.
  - pkg/ansi: SGR codes and the command stream that carries them.
  - pkg/style: the Style value and its merge rules.
  - pkg/gradient: HSL gradient generation from colour stops.
  - pkg/styler: per-cell stylers (constant, gradient, joined).
  - pkg/render: line, multi-line and dual-gradient renderers.
  - pkg/output: a tree of text and style nodes flattened into escape bytes.
  - pkg/preset: named styles and gradients loaded from YAML.

# Usage

	package main

	import (
		"os"

		"github.com/aretw0/prism"
		"github.com/aretw0/prism/pkg/output"
		"github.com/aretw0/prism/pkg/style"
	)

	func main() {
		_ = prism.Print(os.Stdout,
			output.WithForeground(style.Bold()),
			output.TextNode("hello"),
			output.WithStyle(style.Style{}),
		)
	}

The cmd/prism binary exposes the same engine as a CLI and an HTTP service.
*/
package prism

package render

import (
	"fmt"
	"io"

	"github.com/aretw0/prism/pkg/styler"
)

// Fprint writes an already rendered string to w.
func Fprint(w io.Writer, rendered string) error {
	if _, err := io.WriteString(w, rendered); err != nil {
		return fmt.Errorf("failed to write rendered output: %w", err)
	}
	return nil
}

// WriteLines renders lines with s and writes the result to w.
func WriteLines(w io.Writer, s styler.Styler, lines []string, opts ...Option) error {
	return Fprint(w, ApplyLines(s, lines, opts...))
}

// WriteDualGradient renders text with g and writes the result to w. Nothing is written
// when rendering fails.
func WriteDualGradient(w io.Writer, text string, g DualGradient, opts ...Option) error {
	out, err := ApplyDualGradient(text, g, opts...)
	if err != nil {
		return err
	}
	return Fprint(w, out)
}

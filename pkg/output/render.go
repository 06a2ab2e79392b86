package output

import (
	"fmt"
	"io"

	"github.com/aretw0/prism/pkg/ansi"
)

// Flatten returns the commands of n, depth-first in child order.
func Flatten(n Node) []ansi.Command {
	if n == nil {
		return nil
	}
	return n.Commands()
}

// Render flattens n and joins the command bytes.
func Render(n Node) string {
	return ansi.Join(Flatten(n))
}

// Fprint writes the rendered node to w.
func Fprint(w io.Writer, n Node) error {
	if _, err := io.WriteString(w, Render(n)); err != nil {
		return fmt.Errorf("failed to write styled output: %w", err)
	}
	return nil
}

// Fprintln writes the rendered node followed by a newline.
func Fprintln(w io.Writer, n Node) error {
	if _, err := io.WriteString(w, Render(n)+"\n"); err != nil {
		return fmt.Errorf("failed to write styled output: %w", err)
	}
	return nil
}

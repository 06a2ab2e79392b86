package prism

import (
	_ "embed"
	"io"
	"strings"

	"github.com/aretw0/prism/pkg/output"
)

//go:embed VERSION
var version string

// Version is the release of this module.
var Version = strings.TrimSpace(version)

// String renders nodes, in order, to escape bytes.
func String(nodes ...output.Node) string {
	return output.Render(output.Group(nodes...))
}

// Print writes the rendered nodes to w.
func Print(w io.Writer, nodes ...output.Node) error {
	return output.Fprint(w, output.Group(nodes...))
}

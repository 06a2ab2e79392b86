package output

import (
	"github.com/aretw0/prism/pkg/style"
)

// Builder accumulates nodes in order.
type Builder struct {
	nodes []Node
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{}
}

// Text appends a literal.
func (b *Builder) Text(s string) *Builder {
	return b.Node(TextNode(s))
}

// Foreground appends foreground attributes as one node.
func (b *Builder) Foreground(fg ...style.Foreground) *Builder {
	return b.Node(WithForeground(fg...))
}

// Background appends a background.
func (b *Builder) Background(bg style.Background) *Builder {
	return b.Node(WithBackground(bg))
}

// Style appends a full style.
func (b *Builder) Style(s style.Style) *Builder {
	return b.Node(WithStyle(s))
}

// Node appends any node. Nil is ignored.
func (b *Builder) Node(n Node) *Builder {
	if n != nil {
		b.nodes = append(b.nodes, n)
	}
	return b
}

// If appends n only when cond holds.
func (b *Builder) If(cond bool, n Node) *Builder {
	if cond {
		return b.Node(n)
	}
	return b
}

// Build returns the accumulated nodes as a single node.
func (b *Builder) Build() Node {
	return Group(b.nodes...)
}

// String renders the accumulated nodes.
func (b *Builder) String() string {
	return Render(b.Build())
}

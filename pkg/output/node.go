package output

import (
	"slices"

	"github.com/aretw0/prism/pkg/ansi"
	"github.com/aretw0/prism/pkg/style"
)

// Node is a piece of styled output.
type Node interface {
	// Commands returns the node's render commands in output order.
	Commands() []ansi.Command
}

// Text is a literal string.
type Text struct {
	Text string
}

func (t Text) Commands() []ansi.Command {
	return []ansi.Command{ansi.Literal(t.Text)}
}

// Foreground sets foreground attributes, in order, in one SGR.
type Foreground struct {
	Foreground []style.Foreground
}

func (f Foreground) Commands() []ansi.Command {
	codes := make([]ansi.Code, len(f.Foreground))
	for i, fg := range f.Foreground {
		codes[i] = fg.Code()
	}
	return []ansi.Command{ansi.SGR(codes...)}
}

// Background sets a background. Unset and NoBackground emit nothing.
type Background struct {
	Background style.Background
}

func (b Background) Commands() []ansi.Command {
	code, ok := b.Background.Code()
	if !ok {
		return nil
	}
	return []ansi.Command{ansi.SGR(code)}
}

// StyleNode emits the SGR of a full Style.
type StyleNode struct {
	Style style.Style
}

func (s StyleNode) Commands() []ansi.Command {
	return []ansi.Command{s.Style.Command()}
}

// Empty emits nothing.
type Empty struct{}

func (Empty) Commands() []ansi.Command {
	return nil
}

// GroupNode concatenates its children.
type GroupNode struct {
	Children []Node
}

func (g GroupNode) Commands() []ansi.Command {
	var out []ansi.Command
	for _, c := range g.Children {
		if c == nil {
			continue
		}
		out = append(out, c.Commands()...)
	}
	return out
}

// TextNode creates a Text node.
func TextNode(s string) Node {
	return Text{Text: s}
}

// WithForeground creates a Foreground node.
func WithForeground(fg ...style.Foreground) Node {
	return Foreground{Foreground: slices.Clone(fg)}
}

// WithBackground creates a Background node.
func WithBackground(bg style.Background) Node {
	return Background{Background: bg}
}

// WithStyle creates a StyleNode.
func WithStyle(s style.Style) Node {
	return StyleNode{Style: s.Clone()}
}

// Group creates a node from children, in order. With no children it is Empty.
func Group(children ...Node) Node {
	if len(children) == 0 {
		return Empty{}
	}
	return GroupNode{Children: slices.Clone(children)}
}

// Optional returns n, or Empty when n is nil.
func Optional(n Node) Node {
	if n == nil {
		return Empty{}
	}
	return n
}

// Either returns first when cond holds and second otherwise.
func Either(cond bool, first, second Node) Node {
	if cond {
		return Optional(first)
	}
	return Optional(second)
}

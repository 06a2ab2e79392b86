package output

import (
	"bytes"
	"testing"

	"github.com/aretw0/prism/pkg/ansi"
	"github.com/aretw0/prism/pkg/color"
	"github.com/aretw0/prism/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_Leaves(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
		n    int
	}{
		{"text", TextNode("hi"), "hi", 1},
		{"foreground", WithForeground(style.Bold(), style.Color256(10)), "\x1b[1;38;5;10m", 1},
		{"background", WithBackground(style.BackgroundBasic(color.Blue)), "\x1b[44m", 1},
		{"unset background", WithBackground(style.Background{}), "", 0},
		{"no background", WithBackground(style.NoBackground()), "", 0},
		{"style", WithStyle(style.New(style.Italic()).WithBackground(style.Background256(3))), "\x1b[3;48;5;3m", 1},
		{"empty", Empty{}, "", 0},
		{"nil", nil, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Flatten(tt.node), tt.n)
			assert.Equal(t, tt.want, Render(tt.node))
		})
	}
}

func TestFlatten_GroupOrder(t *testing.T) {
	inner := Group(TextNode("b"), Empty{}, TextNode("c"))
	tree := Group(TextNode("a"), inner, Group(), TextNode("d"))

	cmds := Flatten(tree)
	require.Len(t, cmds, 4)
	var texts []string
	for _, c := range cmds {
		texts = append(texts, c.Text())
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, texts)
}

func TestFlatten_NoMergingAcrossSiblings(t *testing.T) {
	tree := Group(WithForeground(style.Bold()), WithForeground(style.Bold()), TextNode("x"))
	assert.Equal(t, "\x1b[1m\x1b[1mx", Render(tree))
}

func TestBuilder_Demo(t *testing.T) {
	s := style.New(style.ColorRGB(color.RGB8{R: 0xff})).
		WithBackground(style.BackgroundRGB(color.RGB8{R: 0x90, G: 0xb0, B: 0xff}))

	styleAndUnderline := New().Style(s).Foreground(style.Underline()).Build()

	got := New().
		Foreground(style.ColorRGB(color.RGB8{R: 0x40, G: 0xd0, B: 0x90})).
		Foreground(style.Bold()).
		Node(styleAndUnderline).
		Text("Builders, too").
		String()

	want := "\x1b[38;2;64;208;144m" +
		"\x1b[1m" +
		"\x1b[38;2;255;0;0;48;2;144;176;255m" +
		"\x1b[4m" +
		"Builders, too"
	assert.Equal(t, want, got)
}

func TestBuilder_Conditionals(t *testing.T) {
	b := New().Text("a").If(false, TextNode("skipped")).If(true, TextNode("b")).Node(nil)
	assert.Equal(t, "ab", b.String())

	assert.Equal(t, "yes", Render(Either(true, TextNode("yes"), TextNode("no"))))
	assert.Equal(t, "no", Render(Either(false, TextNode("yes"), TextNode("no"))))
	assert.Equal(t, "", Render(Optional(nil)))
	assert.Equal(t, Empty{}, New().Build())
}

func TestWithStyle_IsIndependent(t *testing.T) {
	s := style.New(style.Bold())
	n := WithStyle(s)
	s.Foreground[0] = style.Italic()
	assert.Equal(t, "\x1b[1m", Render(n))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	node := Group(WithForeground(style.Underline()), TextNode("u"), WithStyle(style.Style{}))
	require.NoError(t, Fprint(&buf, node))
	assert.Equal(t, "\x1b[4mu\x1b[m", buf.String())

	buf.Reset()
	require.NoError(t, Fprintln(&buf, TextNode("line")))
	assert.Equal(t, "line\n", buf.String())
}

func TestFlatten_EmptyStyleStillEmitsSGR(t *testing.T) {
	tree := Group(TextNode("x"), StyleNode{Style: style.Style{}})
	cmds := Flatten(tree)
	require.Len(t, cmds, 2)
	assert.True(t, cmds[0].IsLiteral())
	assert.False(t, cmds[1].IsLiteral())
	assert.Empty(t, cmds[1].Codes())
	assert.True(t, cmds[1].Equal(ansi.SGR()))
}

package ansi

import (
	"slices"
	"strings"

	"github.com/muesli/termenv"
)

// Command is one unit of rendered output: literal text or an SGR sequence.
type Command struct {
	literal bool
	text    string
	codes   []Code
}

// Literal wraps text that is written as-is.
func Literal(text string) Command {
	return Command{literal: true, text: text}
}

// SGR builds a Select Graphic Rendition command from codes, in order.
func SGR(codes ...Code) Command {
	return Command{codes: slices.Clone(codes)}
}

// IsLiteral reports whether the command is literal text.
func (c Command) IsLiteral() bool {
	return c.literal
}

// Text returns the literal text; empty for SGR commands.
func (c Command) Text() string {
	return c.text
}

// Codes returns a copy of the SGR codes; nil for literals.
func (c Command) Codes() []Code {
	return slices.Clone(c.codes)
}

// Message returns the bytes to write to the terminal.
func (c Command) Message() string {
	if c.literal {
		return c.text
	}
	var b strings.Builder
	b.WriteString(termenv.CSI)
	for i, code := range c.codes {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(code.Sequence())
	}
	b.WriteByte('m')
	return b.String()
}

// Equal compares kind, text and codes.
func (c Command) Equal(other Command) bool {
	return c.literal == other.literal && c.text == other.text && slices.Equal(c.codes, other.codes)
}

func (c Command) String() string {
	return c.Message()
}

// ResetSequence is the full attribute reset, "\x1b[0m".
func ResetSequence() string {
	return SGR(Reset()).Message()
}

// Join concatenates the messages of commands.
func Join(commands []Command) string {
	var b strings.Builder
	for _, c := range commands {
		b.WriteString(c.Message())
	}
	return b.String()
}

// Coalesce drops every SGR identical to the SGR emitted before it.
// Re-applying the same parameters does not change terminal state, so the visible result
// is unchanged, but the byte output differs from the uncoalesced form.
func Coalesce(commands []Command) []Command {
	out := make([]Command, 0, len(commands))
	var last *Command
	for i := range commands {
		c := commands[i]
		if !c.literal {
			if last != nil && last.Equal(c) {
				continue
			}
			last = &commands[i]
		}
		out = append(out, c)
	}
	return out
}

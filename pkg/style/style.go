package style

import (
	"slices"
	"strings"

	"github.com/aretw0/prism/pkg/ansi"
)

// Style is a background plus an ordered list of foreground attributes.
//
// Style is a value type. The Add methods mutate the receiver in place and must only be
// called by the owner; the Adding methods return an independent copy.
type Style struct {
	Background Background
	Foreground []Foreground
}

// New creates a Style with the given foreground attributes, in order.
func New(fg ...Foreground) Style {
	return Style{Foreground: slices.Clone(fg)}
}

// Clone returns a copy of s that shares no memory with it.
func (s Style) Clone() Style {
	s.Foreground = slices.Clone(s.Foreground)
	return s
}

// WithBackground returns a copy of s with its background replaced.
func (s Style) WithBackground(bg Background) Style {
	c := s.Clone()
	c.Background = bg
	return c
}

// Merge combines base with incoming under the default BackgroundKeepUnset policy.
// incoming wins every category it supplies.
func Merge(base, incoming Style) Style {
	return MergeWithPolicy(base, incoming, BackgroundKeepUnset)
}

// MergeWithPolicy is Merge with an explicit background policy.
func MergeWithPolicy(base, incoming Style, policy BackgroundPolicy) Style {
	return Style{
		Background: policy.merge(base.Background, incoming.Background),
		Foreground: slices.Clone(mergeForegrounds(base.Foreground, incoming.Foreground)),
	}
}

// Add merges other into s.
func (s *Style) Add(other Style) {
	*s = Merge(*s, other)
}

// Adding returns s merged with other.
func (s Style) Adding(other Style) Style {
	return Merge(s, other)
}

// AddForegrounds merges fg into the foreground list of s.
func (s *Style) AddForegrounds(fg ...Foreground) {
	s.Foreground = mergeForegrounds(s.Foreground, fg)
}

// AddingForegrounds returns a copy of s with fg merged in.
func (s Style) AddingForegrounds(fg ...Foreground) Style {
	return Style{
		Background: s.Background,
		Foreground: slices.Clone(mergeForegrounds(s.Foreground, fg)),
	}
}

// AddForeground merges a single attribute into s.
func (s *Style) AddForeground(f Foreground) {
	s.AddForegrounds(f)
}

// AddingForeground returns a copy of s with f merged in.
func (s Style) AddingForeground(f Foreground) Style {
	return s.AddingForegrounds(f)
}

// AddBackground sets the background of s. An unset bg has no effect; use NoBackground
// to clear.
func (s *Style) AddBackground(bg Background) {
	s.Background = BackgroundKeepUnset.merge(s.Background, bg)
}

// AddingBackground returns a copy of s with bg applied as AddBackground does.
func (s Style) AddingBackground(bg Background) Style {
	c := s.Clone()
	c.AddBackground(bg)
	return c
}

// IsZero reports whether s has no attributes and no background opinion.
func (s Style) IsZero() bool {
	return len(s.Foreground) == 0 && !s.Background.IsSet()
}

// Codes returns the foreground codes in order followed by the background code, if any.
func (s Style) Codes() []ansi.Code {
	codes := make([]ansi.Code, 0, len(s.Foreground)+1)
	for _, f := range s.Foreground {
		codes = append(codes, f.Code())
	}
	if c, ok := s.Background.Code(); ok {
		codes = append(codes, c)
	}
	return codes
}

// Command returns the SGR command for s.
func (s Style) Command() ansi.Command {
	return ansi.SGR(s.Codes()...)
}

// Apply wraps text in the style's SGR and a full reset.
func (s Style) Apply(text string) string {
	return s.Command().Message() + text + ansi.ResetSequence()
}

// Equal reports exact equality, including attribute order.
func (s Style) Equal(other Style) bool {
	return s.Background == other.Background && slices.Equal(s.Foreground, other.Foreground)
}

// Equivalent reports equality per category, ignoring attribute order.
func (s Style) Equivalent(other Style) bool {
	if s.Background != other.Background || len(s.Foreground) != len(other.Foreground) {
		return false
	}
	return s.byCategory() == other.byCategory()
}

type categorySet [len(categoryOrder)]struct {
	set bool
	f   Foreground
}

func (s Style) byCategory() categorySet {
	var out categorySet
	for _, f := range s.Foreground {
		out[f.Category()].set = true
		out[f.Category()].f = f
	}
	return out
}

func (s Style) String() string {
	parts := make([]string, 0, len(s.Foreground)+1)
	for _, f := range s.Foreground {
		parts = append(parts, f.String())
	}
	if s.Background.IsSet() {
		parts = append(parts, "bg="+s.Background.String())
	}
	return "Style{" + strings.Join(parts, " ") + "}"
}

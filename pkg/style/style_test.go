package style

import (
	"testing"

	"github.com/aretw0/prism/pkg/color"
	"github.com/stretchr/testify/assert"
)

func TestStyle_JoinOverridesBackground(t *testing.T) {
	s1 := Style{Background: Background256(5), Foreground: []Foreground{Color256(10)}}
	s1.Add(Style{Background: Background256(20)})
	assert.True(t, s1.Equal(Style{Background: Background256(20), Foreground: []Foreground{Color256(10)}}), s1.String())
}

func TestStyle_JoinOverridesForegroundColor(t *testing.T) {
	s1 := Style{Background: Background256(5), Foreground: []Foreground{Color256(10)}}
	s1.Add(New(Color256(20)))
	assert.True(t, s1.Equal(Style{Background: Background256(5), Foreground: []Foreground{Color256(20)}}), s1.String())
}

func TestStyle_JoinOverridesBothColors(t *testing.T) {
	s1 := Style{Background: Background256(5), Foreground: []Foreground{Color256(10)}}
	s1.Add(Style{Background: Background256(100), Foreground: []Foreground{Color256(20)}})
	assert.True(t, s1.Equal(Style{Background: Background256(100), Foreground: []Foreground{Color256(20)}}), s1.String())
}

func TestStyle_JoinAddsNonColorForeground(t *testing.T) {
	s1 := Style{Background: Background256(5), Foreground: []Foreground{Color256(10)}}
	s1.Add(Style{Background: NoBackground(), Foreground: []Foreground{Bold()}})
	assert.True(t, s1.Equal(Style{Background: NoBackground(), Foreground: []Foreground{Color256(10), Bold()}}), s1.String())
}

func TestStyle_AddingSameForegroundIsNoop(t *testing.T) {
	s1 := New(Color256(10), Italic())
	s1.AddForeground(Italic())
	assert.Equal(t, []Foreground{Color256(10), Italic()}, s1.Foreground)
}

func TestStyle_ColorReplacementPreservesOrder(t *testing.T) {
	s1 := New(Color256(10), Italic(), Underline(), Bold())
	s1.AddForeground(ColorBasic(color.Green))
	assert.Equal(t, []Foreground{Italic(), Underline(), Bold(), ColorBasic(color.Green)}, s1.Foreground)
}

func TestStyle_AppendsInCanonicalOrder(t *testing.T) {
	s := New(Italic())
	got := s.AddingForegrounds(Underline(), ColorRGB(color.RGB8{R: 1}), Bold())
	assert.Equal(t, []Foreground{Bold(), ColorRGB(color.RGB8{R: 1}), Underline()}, got.Foreground[1:])
	assert.Equal(t, Italic(), got.Foreground[0])
}

func TestStyle_LastIncomingValuePerCategoryWins(t *testing.T) {
	got := New().AddingForegrounds(Color256(1), Color256(2))
	assert.Equal(t, []Foreground{Color256(2)}, got.Foreground)
}

func TestMerge_Idempotent(t *testing.T) {
	tests := []Style{
		{},
		New(Bold()),
		New(Bold(), Color256(3), Italic(), Underline()),
		New(Underline(), Color256(3)).WithBackground(BackgroundRGB(color.RGB8{R: 9})),
		New(Italic()).WithBackground(NoBackground()),
	}
	for _, s := range tests {
		got := Merge(s, s)
		assert.True(t, got.Equivalent(s), "merge(%v, %v) = %v", s, s, got)
	}
	// Canonical ordering makes the round trip exact.
	canonical := New(Bold(), Color256(3), Italic(), Underline())
	assert.True(t, Merge(canonical, canonical).Equal(canonical))
}

func TestMerge_DoesNotAlias(t *testing.T) {
	base := New(Bold(), Italic())
	merged := base.Adding(New(Underline()))
	merged.Foreground[0] = Color256(1)
	assert.Equal(t, Bold(), base.Foreground[0])

	cp := base.AddingForeground(Underline())
	cp.Foreground[0] = Color256(2)
	assert.Equal(t, Bold(), base.Foreground[0])
}

func TestBackgroundPolicy(t *testing.T) {
	base := New(Color256(10)).WithBackground(Background256(5))
	incoming := New(Bold())

	keep := MergeWithPolicy(base, incoming, BackgroundKeepUnset)
	assert.Equal(t, Background256(5), keep.Background)

	replace := MergeWithPolicy(base, incoming, BackgroundAlwaysReplace)
	assert.False(t, replace.Background.IsSet())
	assert.Equal(t, []Foreground{Color256(10), Bold()}, replace.Foreground)

	cleared := MergeWithPolicy(base, Style{Background: NoBackground()}, BackgroundKeepUnset)
	assert.True(t, cleared.Background.IsNone())
}

func TestStyle_AddBackground(t *testing.T) {
	s := New().WithBackground(BackgroundBasic(color.Red))
	s.AddBackground(Background{})
	assert.Equal(t, BackgroundBasic(color.Red), s.Background)

	cp := s.AddingBackground(BackgroundBasicBright(color.Blue))
	assert.Equal(t, BackgroundBasicBright(color.Blue), cp.Background)
	assert.Equal(t, BackgroundBasic(color.Red), s.Background)
}

func TestStyle_Codes(t *testing.T) {
	s := New(ColorRGB(color.RGB8{R: 0xff}), Bold()).WithBackground(BackgroundRGB(color.RGB8{R: 0x90, G: 0xb0, B: 0xff}))
	assert.Equal(t, "\x1b[38;2;255;0;0;1;48;2;144;176;255m", s.Command().Message())

	noBg := New(Italic()).WithBackground(NoBackground())
	assert.Equal(t, "\x1b[3m", noBg.Command().Message())
}

func TestStyle_Apply(t *testing.T) {
	s := New(ColorRGB(color.RGB8{R: 0xff}))
	assert.Equal(t, "\x1b[38;2;255;0;0mHello, \x1b[0m", s.Apply("Hello, "))

	withAttrs := s.AddingForegrounds(Bold(), Italic())
	assert.Equal(t, "\x1b[38;2;255;0;0;1;3mworld!\x1b[0m", withAttrs.Apply("world!"))
}

func TestForeground_Category(t *testing.T) {
	tests := []struct {
		f    Foreground
		want Category
	}{
		{Bold(), CategoryBold},
		{Italic(), CategoryItalic},
		{Underline(), CategoryUnderline},
		{Color256(1), CategoryColor},
		{ColorBasic(color.Red), CategoryColor},
		{ColorBasicBright(color.Red), CategoryColor},
		{ColorRGB(color.RGB8{}), CategoryColor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.f.Category(), tt.f.String())
	}
}

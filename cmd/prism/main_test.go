package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/prism"
	"github.com/aretw0/prism/internal/logging"
	"github.com/aretw0/prism/pkg/color"
	"github.com/aretw0/prism/pkg/gradient"
	"github.com/aretw0/prism/pkg/preset"
	"github.com/aretw0/prism/pkg/render"
	"github.com/aretw0/prism/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withDefaults(t *testing.T) {
	t.Helper()
	app = env{logger: logging.NewNop(), presets: preset.NewRegistry(preset.Defaults())}
}

var blue = []gradient.RGBStop{
	{Position: 0, Color: color.RGB8{B: 0x90}},
	{Position: 1, Color: color.RGB8{B: 0x40}},
}

func TestRunDemo(t *testing.T) {
	withDefaults(t)

	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "\x1b[38;2;255;0;0mHello, \x1b[0m\x1b[38;2;255;0;0;1;3mworld!\x1b[0m", lines[0])
	assert.Equal(t, "\x1b[38;2;255;0;0;48;2;144;176;255mWith background!\x1b[0m", lines[1])
	assert.Equal(t, "\x1b[38;2;64;208;144m\x1b[1m\x1b[38;2;255;0;0;48;2;144;176;255m\x1b[4mBuilders, too", lines[2])
}

func TestPaintGradient_Block(t *testing.T) {
	out, err := paintGradient("abc", gradientOptions{foreground: blue})
	require.NoError(t, err)
	assert.Equal(t, "\x1b[38;2;0;0;144ma\x1b[38;2;0;0;104mb\x1b[38;2;0;0;64mc\x1b[0m\n", out)
}

func TestPaintGradient_Vertical(t *testing.T) {
	out, err := paintGradient("ab\ncd", gradientOptions{foreground: blue, vertical: true})
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "\x1b[38;2;0;0;144ma\x1b[38;2;0;0;144mb"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "\x1b[38;2;0;0;64mc"), lines[1])
}

func TestPaintGradient_DualWithWidth(t *testing.T) {
	out, err := paintGradient("a", gradientOptions{
		background: blue,
		width:      3,
		leading:    render.Filler('.'),
		trailing:   render.Filler('.'),
	})
	require.NoError(t, err)
	assert.Equal(t, "\x1b[48;2;0;0;144m.\x1b[48;2;0;0;104ma\x1b[48;2;0;0;64m.\x1b[0m\n", out)
}

func TestPaintGradient_DualRejectsBlocks(t *testing.T) {
	_, err := paintGradient("a\nb", gradientOptions{foreground: blue, background: blue})
	assert.Error(t, err)
}

func TestPaintGradient_EmptyText(t *testing.T) {
	_, err := paintGradient("", gradientOptions{foreground: blue})
	assert.ErrorIs(t, err, gradient.ErrInvalidGradientInput)
}

func TestResolveStops(t *testing.T) {
	withDefaults(t)

	stops, err := resolveStops("#000000,#ffffff", "sunset")
	require.NoError(t, err)
	assert.Len(t, stops, 2)
	assert.Equal(t, color.RGB8{}, stops[0].Color)

	stops, err = resolveStops("", "sunset")
	require.NoError(t, err)
	assert.NotEmpty(t, stops)

	stops, err = resolveStops("", "")
	require.NoError(t, err)
	assert.Nil(t, stops)

	_, err = resolveStops("", "missing")
	assert.ErrorIs(t, err, preset.ErrNotFound)
}

func TestFillerFlag(t *testing.T) {
	r, err := fillerFlag("")
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = fillerFlag("·")
	require.NoError(t, err)
	assert.Equal(t, '·', *r)

	_, err = fillerFlag("ab")
	assert.Error(t, err)
}

func TestResolveStyle(t *testing.T) {
	withDefaults(t)

	s, err := resolveStyle("title", []string{"italic", "256:21"}, "none")
	require.NoError(t, err)
	assert.True(t, s.Equivalent(style.Style{
		Background: style.NoBackground(),
		Foreground: []style.Foreground{style.Bold(), style.Color256(21), style.Italic()},
	}), s.String())

	_, err = resolveStyle("missing", nil, "")
	assert.ErrorIs(t, err, preset.ErrNotFound)

	_, err = resolveStyle("", []string{"blink"}, "")
	var pe *preset.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestListPresets(t *testing.T) {
	withDefaults(t)

	var buf bytes.Buffer
	require.NoError(t, listPresets(&buf, app.presets, true))
	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "sunset")
	assert.Contains(t, out, "0:#ff5f6d")
	assert.Contains(t, out, "title")
	assert.Contains(t, out, "\x1b[")
}

func TestListPresets_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listPresets(&buf, preset.NewRegistry(), false))
	assert.Equal(t, "no presets\n", buf.String())
}

func TestExecute_VersionAndPresetsFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles:\n  loud:\n    foreground: [bold]\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--presets", path, "version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "prism version "+prism.Version+"\n", out.String())

	s, err := app.presets.Style("loud")
	require.NoError(t, err)
	assert.Equal(t, []style.Foreground{style.Bold()}, s.Foreground)
}

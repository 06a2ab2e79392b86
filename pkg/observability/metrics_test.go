package observability_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/prism/pkg/color"
	"github.com/aretw0/prism/pkg/observability"
	"github.com/aretw0/prism/pkg/render"
	"github.com/aretw0/prism/pkg/style"
	"github.com/aretw0/prism/pkg/styler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RenderHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	s := styler.NewConstant(style.New(style.Bold()))
	render.ApplyLine(s, "abc", 0, render.WithHooks(m.Hooks()))
	render.ApplyLines(s, []string{"ab", "cde"}, render.WithHooks(m.Hooks()))

	_, err := render.ApplyDualGradient("x", render.DualGradient{
		Foreground: []color.RGB8{{}, {}},
		Background: []color.RGB8{{}},
	}, render.WithHooks(m.Hooks()))
	require.Error(t, err)

	expected := `
# HELP prism_render_cells_total Total number of character cells rendered by kind
# TYPE prism_render_cells_total counter
prism_render_cells_total{kind="line"} 3
prism_render_cells_total{kind="lines"} 5
# HELP prism_render_errors_total Total number of failed render calls by kind
# TYPE prism_render_errors_total counter
prism_render_errors_total{kind="dual_gradient"} 1
# HELP prism_render_total Total number of render calls by kind
# TYPE prism_render_total counter
prism_render_total{kind="dual_gradient"} 1
prism_render_total{kind="line"} 1
prism_render_total{kind="lines"} 1
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"prism_render_total", "prism_render_cells_total", "prism_render_errors_total")
	assert.NoError(t, err)
}

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	m.Observe(render.Event{Kind: render.KindDualGradient, Cells: 7})
	m.Observe(render.Event{Kind: render.KindDualGradient, Err: errors.New("boom")})

	count, err := testutil.GatherAndCount(reg, "prism_render_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	m.ObserveRequest("/v1/gradient", "200", 15*time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "prism_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewMetrics_NilRegisterer(t *testing.T) {
	m := observability.NewMetrics(nil)
	assert.NotPanics(t, func() {
		m.Observe(render.Event{Kind: render.KindLine, Cells: 1})
	})
}

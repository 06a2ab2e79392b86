package http

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/aretw0/prism/pkg/color"
	"github.com/aretw0/prism/pkg/gradient"
	"github.com/aretw0/prism/pkg/preset"
	"github.com/aretw0/prism/pkg/render"
	"github.com/aretw0/prism/pkg/style"
)

// ErrBadRequest marks request-shape problems detected before rendering.
var ErrBadRequest = errors.New("bad request")

func (s *Server) renderGradient(req GradientRequest) (string, error) {
	cells := utf8.RuneCountInString(req.Text)
	if cells > MaxLength || req.Length > MaxLength {
		return "", fmt.Errorf("%w: text and length are limited to %d cells", ErrBadRequest, MaxLength)
	}
	length := req.Length
	if length == 0 {
		length = cells
	}
	if length <= 0 {
		return "", fmt.Errorf("%w: text is empty and no length was given", ErrBadRequest)
	}

	fg, err := s.layer(req.Preset, req.Foreground, length)
	if err != nil {
		return "", fmt.Errorf("foreground: %w", err)
	}
	bg, err := s.layer(req.BackgroundPreset, req.Background, length)
	if err != nil {
		return "", fmt.Errorf("background: %w", err)
	}
	if fg == nil && bg == nil {
		return "", fmt.Errorf("%w: at least one of foreground or background is required", ErrBadRequest)
	}

	leading, err := filler(req.LeadingFiller)
	if err != nil {
		return "", fmt.Errorf("leading_filler: %w", err)
	}
	trailing, err := filler(req.TrailingFiller)
	if err != nil {
		return "", fmt.Errorf("trailing_filler: %w", err)
	}

	return render.ApplyDualGradient(req.Text, render.DualGradient{
		Foreground:     fg,
		Background:     bg,
		LeadingFiller:  leading,
		TrailingFiller: trailing,
	}, s.renderOptions(req.Reset, req.Coalesce)...)
}

// layer resolves one gradient layer. It returns nil when neither source is given.
func (s *Server) layer(name string, inline []Stop, length int) ([]color.RGB8, error) {
	var stops []gradient.RGBStop
	switch {
	case len(inline) > 0:
		stops = make([]gradient.RGBStop, 0, len(inline))
		for i, st := range inline {
			key := fmt.Sprintf("stops[%d]", i)
			if st.At < 0 || st.At > 1 {
				return nil, &preset.ParseError{Key: key, Value: fmt.Sprint(st.At), Reason: "position must be within [0,1]"}
			}
			c, err := color.ParseHex(st.Color)
			if err != nil {
				return nil, &preset.ParseError{Key: key, Value: st.Color, Reason: "invalid hex color"}
			}
			stops = append(stops, gradient.RGBStop{Position: st.At, Color: c})
		}
	case name != "":
		var err error
		if stops, err = s.presets.Stops(name); err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}

	g, err := gradient.GenerateRGB(length, stops)
	if err != nil {
		return nil, err
	}
	return g.RGB(), nil
}

func filler(s string) (*rune, error) {
	switch utf8.RuneCountInString(s) {
	case 0:
		return nil, nil
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return render.Filler(r), nil
	}
	return nil, fmt.Errorf("%w: filler must be a single character, got %q", ErrBadRequest, s)
}

func (s *Server) renderStyle(req StyleRequest) (string, error) {
	var base style.Style
	if req.Preset != "" {
		var err error
		if base, err = s.presets.Style(req.Preset); err != nil {
			return "", err
		}
	}

	inline := style.Style{}
	for i, token := range req.Foreground {
		f, err := preset.ParseForeground(token)
		if err != nil {
			var pe *preset.ParseError
			if errors.As(err, &pe) {
				pe.Key = fmt.Sprintf("foreground[%d]", i)
			}
			return "", err
		}
		inline.AddForeground(f)
	}
	bg, err := preset.ParseBackground(req.Background)
	if err != nil {
		return "", err
	}
	inline.Background = bg

	if base.IsZero() && inline.IsZero() {
		return "", fmt.Errorf("%w: a preset or at least one attribute is required", ErrBadRequest)
	}

	s.observe(render.KindStyle, utf8.RuneCountInString(req.Text))
	return style.Merge(base, inline).Apply(req.Text), nil
}

func (s *Server) observe(kind render.Kind, cells int) {
	if s.metrics != nil {
		s.metrics.Observe(render.Event{Kind: kind, Cells: cells})
	}
}

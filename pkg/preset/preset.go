package preset

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/aretw0/prism/pkg/color"
	"github.com/aretw0/prism/pkg/gradient"
	"github.com/aretw0/prism/pkg/style"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

type document struct {
	Styles    map[string]styleEntry    `mapstructure:"styles"`
	Gradients map[string]gradientEntry `mapstructure:"gradients"`
}

type styleEntry struct {
	Foreground []string `mapstructure:"foreground"`
	Background string   `mapstructure:"background"`
}

type gradientEntry struct {
	Stops []stopEntry `mapstructure:"stops"`
}

type stopEntry struct {
	At    float64 `mapstructure:"at"`
	Color string  `mapstructure:"color"`
}

// Set is a parsed preset document.
type Set struct {
	styles    map[string]style.Style
	gradients map[string][]gradient.RGBStop
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{
		styles:    make(map[string]style.Style),
		gradients: make(map[string][]gradient.RGBStop),
	}
}

// Load reads and parses a preset file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return set, nil
}

// Parse decodes a YAML preset document.
func Parse(data []byte) (*Set, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	var doc document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid preset document: %w", err)
	}

	set := NewSet()
	for name, entry := range doc.Styles {
		s, err := entry.build(name)
		if err != nil {
			return nil, err
		}
		set.styles[name] = s
	}
	for name, entry := range doc.Gradients {
		stops, err := entry.build(name)
		if err != nil {
			return nil, err
		}
		set.gradients[name] = stops
	}
	return set, nil
}

func (e styleEntry) build(name string) (style.Style, error) {
	fg := make([]style.Foreground, 0, len(e.Foreground))
	for i, token := range e.Foreground {
		f, err := ParseForeground(token)
		if err != nil {
			return style.Style{}, withKey(err, fmt.Sprintf("styles.%s.foreground[%d]", name, i))
		}
		fg = append(fg, f)
	}
	bg, err := ParseBackground(e.Background)
	if err != nil {
		return style.Style{}, withKey(err, fmt.Sprintf("styles.%s.background", name))
	}

	// Duplicate categories collapse the same way a merge does.
	return style.Style{Background: bg}.AddingForegrounds(fg...), nil
}

func (e gradientEntry) build(name string) ([]gradient.RGBStop, error) {
	if len(e.Stops) == 0 {
		return nil, &ParseError{Key: fmt.Sprintf("gradients.%s.stops", name), Reason: "at least one stop is required"}
	}
	stops := make([]gradient.RGBStop, 0, len(e.Stops))
	for i, s := range e.Stops {
		key := fmt.Sprintf("gradients.%s.stops[%d]", name, i)
		if s.At < 0 || s.At > 1 {
			return nil, &ParseError{Key: key, Value: fmt.Sprint(s.At), Reason: "position must be within [0,1]"}
		}
		c, err := color.ParseHex(s.Color)
		if err != nil {
			return nil, &ParseError{Key: key, Value: s.Color, Reason: "invalid hex color"}
		}
		stops = append(stops, gradient.RGBStop{Position: s.At, Color: c})
	}
	return stops, nil
}

func withKey(err error, key string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Key = key
	}
	return err
}

// Style returns the named style.
func (s *Set) Style(name string) (style.Style, error) {
	st, ok := s.styles[name]
	if !ok {
		return style.Style{}, fmt.Errorf("style %q: %w", name, ErrNotFound)
	}
	return st.Clone(), nil
}

// Stops returns the stops of the named gradient.
func (s *Set) Stops(name string) ([]gradient.RGBStop, error) {
	stops, ok := s.gradients[name]
	if !ok {
		return nil, fmt.Errorf("gradient %q: %w", name, ErrNotFound)
	}
	return slices.Clone(stops), nil
}

// Gradient generates the named gradient with length points.
func (s *Set) Gradient(name string, length int) (gradient.Gradient, error) {
	stops, err := s.Stops(name)
	if err != nil {
		return gradient.Gradient{}, err
	}
	return gradient.GenerateRGB(length, stops)
}

// StyleNames returns the style names, sorted.
func (s *Set) StyleNames() []string {
	return slices.Sorted(maps.Keys(s.styles))
}

// GradientNames returns the gradient names, sorted.
func (s *Set) GradientNames() []string {
	return slices.Sorted(maps.Keys(s.gradients))
}

// SetStyle adds or replaces a named style.
func (s *Set) SetStyle(name string, st style.Style) {
	s.styles[name] = st.Clone()
}

// SetGradient adds or replaces a named gradient.
func (s *Set) SetGradient(name string, stops []gradient.RGBStop) {
	s.gradients[name] = slices.Clone(stops)
}

// Merge copies every entry of other into s, replacing entries with the same name.
func (s *Set) Merge(other *Set) {
	for name, st := range other.styles {
		s.styles[name] = st.Clone()
	}
	for name, stops := range other.gradients {
		s.gradients[name] = slices.Clone(stops)
	}
}

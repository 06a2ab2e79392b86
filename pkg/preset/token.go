package preset

import (
	"strconv"
	"strings"

	"github.com/aretw0/prism/pkg/color"
	"github.com/aretw0/prism/pkg/gradient"
	"github.com/aretw0/prism/pkg/style"
)

// ParseForeground parses a foreground token.
func ParseForeground(token string) (style.Foreground, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	switch t {
	case "bold":
		return style.Bold(), nil
	case "italic":
		return style.Italic(), nil
	case "underline":
		return style.Underline(), nil
	}

	if strings.HasPrefix(t, "#") {
		c, err := color.ParseHex(t)
		if err != nil {
			return style.Foreground{}, &ParseError{Key: "foreground", Value: token, Reason: "invalid hex color"}
		}
		return style.ColorRGB(c), nil
	}

	kind, arg, ok := strings.Cut(t, ":")
	if !ok {
		return style.Foreground{}, &ParseError{Key: "foreground", Value: token, Reason: "unknown attribute"}
	}
	switch kind {
	case "256":
		n, err := parseIndex(arg)
		if err != nil {
			return style.Foreground{}, &ParseError{Key: "foreground", Value: token, Reason: err.Error()}
		}
		return style.Color256(n), nil
	case "basic", "bright":
		p, err := color.ParseBasicPalette(arg)
		if err != nil {
			return style.Foreground{}, &ParseError{Key: "foreground", Value: token, Reason: err.Error()}
		}
		if kind == "bright" {
			return style.ColorBasicBright(p), nil
		}
		return style.ColorBasic(p), nil
	}
	return style.Foreground{}, &ParseError{Key: "foreground", Value: token, Reason: "unknown attribute"}
}

// ParseBackground parses a background token. An empty token is the unset background.
func ParseBackground(token string) (style.Background, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	switch t {
	case "":
		return style.Background{}, nil
	case "none":
		return style.NoBackground(), nil
	}

	if strings.HasPrefix(t, "#") {
		c, err := color.ParseHex(t)
		if err != nil {
			return style.Background{}, &ParseError{Key: "background", Value: token, Reason: "invalid hex color"}
		}
		return style.BackgroundRGB(c), nil
	}

	kind, arg, ok := strings.Cut(t, ":")
	if !ok {
		return style.Background{}, &ParseError{Key: "background", Value: token, Reason: "unknown background"}
	}
	switch kind {
	case "256":
		n, err := parseIndex(arg)
		if err != nil {
			return style.Background{}, &ParseError{Key: "background", Value: token, Reason: err.Error()}
		}
		return style.Background256(n), nil
	case "basic", "bright":
		p, err := color.ParseBasicPalette(arg)
		if err != nil {
			return style.Background{}, &ParseError{Key: "background", Value: token, Reason: err.Error()}
		}
		if kind == "bright" {
			return style.BackgroundBasicBright(p), nil
		}
		return style.BackgroundBasic(p), nil
	}
	return style.Background{}, &ParseError{Key: "background", Value: token, Reason: "unknown background"}
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 255 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// ParseStops parses a comma-separated stop list. Each entry is "POS:#rrggbb" or a bare
// colour; bare colours are spread evenly over [0,1] by their index.
func ParseStops(list string) ([]gradient.RGBStop, error) {
	entries := strings.Split(list, ",")
	stops := make([]gradient.RGBStop, 0, len(entries))
	for i, entry := range entries {
		entry = strings.TrimSpace(entry)
		pos := 0.0
		if len(entries) > 1 {
			pos = float64(i) / float64(len(entries)-1)
		}

		hex := entry
		if at, c, ok := strings.Cut(entry, ":"); ok {
			p, err := strconv.ParseFloat(at, 64)
			if err != nil || p < 0 || p > 1 {
				return nil, &ParseError{Key: "stops", Value: entry, Reason: "position must be a number within [0,1]"}
			}
			pos, hex = p, c
		}
		c, err := color.ParseHex(hex)
		if err != nil {
			return nil, &ParseError{Key: "stops", Value: entry, Reason: "invalid hex color"}
		}
		stops = append(stops, gradient.RGBStop{Position: pos, Color: c})
	}
	return stops, nil
}

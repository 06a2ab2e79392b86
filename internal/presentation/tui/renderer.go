package tui

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed guide.md
var guide string

// NewRenderer returns a function that renders markdown using glamour.
// A width of zero or less keeps glamour's default wrapping.
func NewRenderer(width int) (func(string) (string, error), error) {
	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// Guide returns the markdown source of the user guide.
func Guide() string {
	return guide
}

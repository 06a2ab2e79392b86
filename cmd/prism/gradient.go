package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/prism/pkg/color"
	"github.com/aretw0/prism/pkg/gradient"
	"github.com/aretw0/prism/pkg/preset"
	"github.com/aretw0/prism/pkg/render"
	"github.com/aretw0/prism/pkg/styler"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var gradientCmd = &cobra.Command{
	Use:   "gradient TEXT",
	Short: "Paint text with a colour gradient",
	Long: `Paints TEXT with a foreground gradient, a background gradient, or both.

Stops are given as "POS:#rrggbb" pairs or bare colours, separated by commas.
Multi-line text (with literal newlines) is painted as a block; --vertical runs the
gradient down the lines instead of across the columns.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := gradientOptionsFromFlags(cmd)
		if err != nil {
			return err
		}
		out, err := paintGradient(args[0], opts)
		if err != nil {
			return err
		}
		return render.Fprint(cmd.OutOrStdout(), out)
	},
}

func init() {
	rootCmd.AddCommand(gradientCmd)
	gradientCmd.Flags().String("stops", "", "Foreground stops, e.g. \"0:#ff5f6d,1:#ffc371\"")
	gradientCmd.Flags().String("preset", "", "Foreground gradient preset")
	gradientCmd.Flags().String("background-stops", "", "Background stops")
	gradientCmd.Flags().String("background-preset", "", "Background gradient preset")
	gradientCmd.Flags().Bool("vertical", false, "Run the gradient down the lines")
	gradientCmd.Flags().Bool("fit", false, "Stretch the gradient to the terminal width and center the text")
	gradientCmd.Flags().Int("width", 0, "Gradient length (defaults to the text width)")
	gradientCmd.Flags().String("leading", "", "Filler character before the text")
	gradientCmd.Flags().String("trailing", "", "Filler character after the text")
	gradientCmd.Flags().Bool("coalesce", false, "Skip repeated escape sequences")
}

type gradientOptions struct {
	foreground []gradient.RGBStop
	background []gradient.RGBStop
	vertical   bool
	width      int
	leading    *rune
	trailing   *rune
	coalesce   bool
}

func gradientOptionsFromFlags(cmd *cobra.Command) (gradientOptions, error) {
	var opts gradientOptions
	var err error

	f := cmd.Flags()
	stops, _ := f.GetString("stops")
	name, _ := f.GetString("preset")
	if opts.foreground, err = resolveStops(stops, name); err != nil {
		return opts, fmt.Errorf("foreground: %w", err)
	}
	stops, _ = f.GetString("background-stops")
	name, _ = f.GetString("background-preset")
	if opts.background, err = resolveStops(stops, name); err != nil {
		return opts, fmt.Errorf("background: %w", err)
	}
	if opts.foreground == nil && opts.background == nil {
		opts.foreground, _ = app.presets.Stops("sunset")
	}

	opts.vertical, _ = f.GetBool("vertical")
	opts.coalesce, _ = f.GetBool("coalesce")
	opts.width, _ = f.GetInt("width")
	if fit, _ := f.GetBool("fit"); fit {
		opts.width = terminalWidth()
		app.logger.Debug("fitting gradient to terminal", "width", opts.width)
	}

	lead, _ := f.GetString("leading")
	if opts.leading, err = fillerFlag(lead); err != nil {
		return opts, err
	}
	trail, _ := f.GetString("trailing")
	if opts.trailing, err = fillerFlag(trail); err != nil {
		return opts, err
	}
	return opts, nil
}

func resolveStops(list, name string) ([]gradient.RGBStop, error) {
	if list != "" {
		return preset.ParseStops(list)
	}
	if name != "" {
		return app.presets.Stops(name)
	}
	return nil, nil
}

func fillerFlag(s string) (*rune, error) {
	switch utf8.RuneCountInString(s) {
	case 0:
		return nil, nil
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return render.Filler(r), nil
	}
	return nil, fmt.Errorf("filler must be a single character, got %q", s)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// paintGradient picks the block renderer for plain foreground gradients and the dual
// renderer whenever a background, a fixed width or fillers are involved.
func paintGradient(text string, opts gradientOptions) (string, error) {
	lines := strings.Split(text, "\n")
	dual := opts.background != nil || opts.width > 0 || opts.leading != nil || opts.trailing != nil
	if !dual {
		return paintBlock(lines, opts)
	}
	if len(lines) > 1 || opts.vertical {
		return "", errors.New("background gradients, --width, --fit and fillers apply to a single horizontal line")
	}

	length := opts.width
	if length <= 0 {
		length = utf8.RuneCountInString(text)
	}
	fg, err := points(length, opts.foreground)
	if err != nil {
		return "", err
	}
	bg, err := points(length, opts.background)
	if err != nil {
		return "", err
	}

	out, err := render.ApplyDualGradient(text, render.DualGradient{
		Foreground:     fg,
		Background:     bg,
		LeadingFiller:  opts.leading,
		TrailingFiller: opts.trailing,
	}, render.WithCoalesce(opts.coalesce))
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}

func paintBlock(lines []string, opts gradientOptions) (string, error) {
	var s styler.Points
	var err error
	if opts.vertical {
		s, err = styler.NewVerticalForeground(len(lines), opts.foreground)
	} else {
		width := 0
		for _, l := range lines {
			width = max(width, utf8.RuneCountInString(l))
		}
		s, err = styler.NewHorizontalForeground(width, opts.foreground)
	}
	if err != nil {
		return "", err
	}
	return render.ApplyLines(s, lines, render.WithCoalesce(opts.coalesce)), nil
}

func points(length int, stops []gradient.RGBStop) ([]color.RGB8, error) {
	if stops == nil {
		return nil, nil
	}
	g, err := gradient.GenerateRGB(length, stops)
	if err != nil {
		return nil, err
	}
	return g.RGB(), nil
}

package main

import (
	"fmt"
	"io"

	"github.com/aretw0/prism/pkg/color"
	"github.com/aretw0/prism/pkg/output"
	"github.com/aretw0/prism/pkg/render"
	"github.com/aretw0/prism/pkg/style"
	"github.com/aretw0/prism/pkg/styler"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show what styles, builders and gradients look like",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(w io.Writer) error {
	s := style.New(style.ColorRGB(color.RGB8{R: 0xff}))
	fmt.Fprint(w, s.Apply("Hello, "))
	fmt.Fprintln(w, s.AddingForegrounds(style.Bold(), style.Italic()).Apply("world!"))
	s.AddBackground(style.BackgroundRGB(color.RGB8{R: 0x90, G: 0xb0, B: 0xff}))
	fmt.Fprintln(w, s.Apply("With background!"))

	styleAndUnderline := output.New().Style(s).Foreground(style.Underline()).Build()
	err := output.Fprintln(w, output.New().
		Foreground(style.ColorRGB(color.RGB8{R: 0x40, G: 0xd0, B: 0x90})).
		Foreground(style.Bold()).
		Node(styleAndUnderline).
		Text("Builders, too").
		Build())
	if err != nil {
		return err
	}

	text := "Gradients across every character"
	if err := demoGradient(w, text, len(text)); err != nil {
		return err
	}
	return demoDualGradient(w, text, len(text)+4)
}

func demoGradient(w io.Writer, text string, width int) error {
	fg, err := app.presets.Gradient("sunset", width)
	if err != nil {
		return err
	}
	return render.WriteLines(w, styler.HorizontalForeground(fg.RGB()), []string{text})
}

func demoDualGradient(w io.Writer, text string, width int) error {
	fg, err := app.presets.Gradient("sunset", width)
	if err != nil {
		return err
	}
	bg, err := app.presets.Gradient("ocean", width)
	if err != nil {
		return err
	}
	err = render.WriteDualGradient(w, text, render.DualGradient{
		Foreground:     fg.RGB(),
		Background:     bg.RGB(),
		LeadingFiller:  render.Filler(' '),
		TrailingFiller: render.Filler(' '),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

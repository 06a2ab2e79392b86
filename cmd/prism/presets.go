package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/prism/pkg/preset"
	"github.com/aretw0/prism/pkg/render"
	"github.com/aretw0/prism/pkg/styler"
	"github.com/bndr/gotabulate"
	"github.com/spf13/cobra"
)

const previewText = "The quick brown fox"

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the available style and gradient presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		preview, _ := cmd.Flags().GetBool("preview")
		return listPresets(cmd.OutOrStdout(), app.presets, preview)
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.Flags().Bool("preview", false, "Render a sample of each preset below the table")
}

func listPresets(w io.Writer, r *preset.Registry, preview bool) error {
	var rows [][]any
	for _, name := range r.StyleNames() {
		s, err := r.Style(name)
		if err != nil {
			return err
		}
		rows = append(rows, []any{name, "style", s.String()})
	}
	for _, name := range r.GradientNames() {
		stops, err := r.Stops(name)
		if err != nil {
			return err
		}
		parts := make([]string, len(stops))
		for i, st := range stops {
			parts[i] = fmt.Sprintf("%g:%s", st.Position, st.Color.Hex())
		}
		rows = append(rows, []any{name, "gradient", strings.Join(parts, ",")})
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no presets")
		return err
	}

	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"NAME", "KIND", "DEFINITION"})
	t.SetAlign("left")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(60)
	if _, err := fmt.Fprint(w, t.Render("grid")); err != nil {
		return err
	}

	if !preview {
		return nil
	}
	fmt.Fprintln(w)
	for _, name := range r.StyleNames() {
		s, _ := r.Style(name)
		fmt.Fprintf(w, "%-10s %s\n", name, s.Apply(previewText))
	}
	for _, name := range r.GradientNames() {
		stops, _ := r.Stops(name)
		p, err := styler.NewHorizontalForeground(len(previewText), stops)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-10s ", name)
		if err := render.WriteLines(w, p, []string{previewText}); err != nil {
			return err
		}
	}
	return nil
}

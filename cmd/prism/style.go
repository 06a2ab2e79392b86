package main

import (
	"fmt"

	"github.com/aretw0/prism/pkg/preset"
	"github.com/aretw0/prism/pkg/style"
	"github.com/spf13/cobra"
)

var styleCmd = &cobra.Command{
	Use:   "style [NAME] TEXT",
	Short: "Print text in a named or inline style",
	Long: `Prints TEXT in the style called NAME, with any --fg and --bg attributes merged
over it. Without NAME only the inline attributes apply.

Attributes: bold, italic, underline, #rrggbb, 256:N, basic:COLOR, bright:COLOR.
Backgrounds also accept "none".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, text := "", args[0]
		if len(args) == 2 {
			name, text = args[0], args[1]
		}
		fg, _ := cmd.Flags().GetStringSlice("fg")
		bg, _ := cmd.Flags().GetString("bg")

		s, err := resolveStyle(name, fg, bg)
		if err != nil {
			return err
		}
		app.logger.Debug("style resolved", "name", name, "style", s.String())
		_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Apply(text))
		return err
	},
}

func init() {
	rootCmd.AddCommand(styleCmd)
	styleCmd.Flags().StringSlice("fg", nil, "Foreground attributes to merge over the style")
	styleCmd.Flags().String("bg", "", "Background to merge over the style")
}

func resolveStyle(name string, fg []string, bg string) (style.Style, error) {
	var base style.Style
	if name != "" {
		var err error
		if base, err = app.presets.Style(name); err != nil {
			return style.Style{}, err
		}
	}

	var inline style.Style
	for _, token := range fg {
		f, err := preset.ParseForeground(token)
		if err != nil {
			return style.Style{}, err
		}
		inline.AddForeground(f)
	}
	background, err := preset.ParseBackground(bg)
	if err != nil {
		return style.Style{}, err
	}
	inline.Background = background

	return style.Merge(base, inline), nil
}

package main

import (
	"fmt"

	"github.com/aretw0/prism/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the user guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")
		if raw {
			_, err := fmt.Fprint(cmd.OutOrStdout(), tui.Guide())
			return err
		}

		renderer, err := tui.NewRenderer(terminalWidth())
		if err != nil {
			return err
		}
		out, err := renderer(tui.Guide())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
	guideCmd.Flags().Bool("raw", false, "Print the markdown source")
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/prism/internal/logging"
	"github.com/aretw0/prism/internal/presentation/tui"
	"github.com/aretw0/prism/pkg/preset"
	"github.com/spf13/cobra"
)

// env is the state shared by every command, built before any of them runs.
type env struct {
	logger  *slog.Logger
	presets *preset.Registry
}

var app env

var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "prism paints terminal text with composable styles and gradients",
	Long:  `prism composes ANSI styles and renders HSL colour gradients across text, from the command line or over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := tui.PrintBanner(cmd.OutOrStdout()); err != nil {
			return err
		}
		return cmd.Help()
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("presets", "", "YAML file with additional style and gradient presets")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

func setup(cmd *cobra.Command) error {
	debug, _ := cmd.Flags().GetBool("debug")
	levelName, _ := cmd.Flags().GetString("log-level")

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	if debug {
		level = slog.LevelDebug
	}
	app.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)

	app.presets = preset.NewRegistry(preset.Defaults())
	path, _ := cmd.Flags().GetString("presets")
	if path == "" {
		return nil
	}
	set, err := preset.Load(path)
	if err != nil {
		return err
	}
	app.presets.Register(set)
	app.logger.Debug("presets loaded", "path", path, "styles", len(set.StyleNames()), "gradients", len(set.GradientNames()))
	return nil
}

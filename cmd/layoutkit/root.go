package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	seed       string
	mode       string
	preset     string
	derive     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "layoutkit",
		Short:         "layoutkit renders themed layout primitives from design tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a theme YAML file")
	pf.StringVar(&flags.seed, "seed", "", "Seed colour for derived tokens (implies --derive)")
	pf.StringVar(&flags.mode, "mode", "", "Theme mode: light or dark")
	pf.StringVar(&flags.preset, "preset", "", "Preset palette: custom, ocean, forest, mono, asmis")
	pf.BoolVar(&flags.derive, "derive", false, "Derive colour tokens from the seed")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newContrastCmd())
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/layoutkit/internal/color"
	"github.com/alexisbeaulieu97/layoutkit/internal/tokens"
)

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in preset palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, preset := range tokens.Presets {
				fmt.Fprintln(out, string(preset))
				for _, mode := range []tokens.Mode{tokens.Light, tokens.Dark} {
					set := preset.Tokens(mode)
					if set.Len() == 0 {
						fmt.Fprintf(out, "  %-5s %s\n", mode, labelStyle.Render("(uses the configured colours)"))
						continue
					}
					fmt.Fprintf(out, "  %-5s %s\n", mode, paletteLine(set))
				}
			}
			return nil
		},
	}

	return cmd
}

func paletteLine(set *tokens.Set) string {
	parts := make([]string, 0, len(tokens.ColorTokens))
	for _, name := range tokens.ColorTokens {
		value := set.Value(name)
		if rgb, ok := color.LookupHex(value); ok {
			parts = append(parts, swatch(rgb)+" "+rgb.Hex())
		}
	}
	return strings.Join(parts, "  ")
}

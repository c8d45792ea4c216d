package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/layoutkit/internal/color"
)

var (
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func newContrastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Report the WCAG contrast ratio between two hex colours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := color.ParseHex(args[0])
			if err != nil {
				return newCommandError("check contrast", "parsing foreground", err, "Pass colours as #rgb or #rrggbb.")
			}
			bg, err := color.ParseHex(args[1])
			if err != nil {
				return newCommandError("check contrast", "parsing background", err, "Pass colours as #rgb or #rrggbb.")
			}

			writeContrastReport(cmd.OutOrStdout(), fg, bg)
			return nil
		},
	}

	return cmd
}

func writeContrastReport(w io.Writer, fg, bg color.RGB) {
	ratio := color.Contrast(fg, bg)

	fmt.Fprintf(w, "%s %s on %s %s\n", swatch(fg), fg.Hex(), swatch(bg), bg.Hex())
	fmt.Fprintf(w, "%s %.2f:1 (%s)\n", labelStyle.Render("ratio:   "), ratio, color.Level(ratio))

	thresholds := []struct {
		name    string
		minimum float64
	}{
		{"AA large", color.ContrastAALarge},
		{"AA", color.ContrastAA},
		{"AAA", color.ContrastAAA},
	}
	for _, th := range thresholds {
		verdict := passStyle.Render("pass")
		if ratio < th.minimum {
			verdict = failStyle.Render("fail")
		}
		fmt.Fprintf(w, "%s %s (min %.1f)\n", labelStyle.Render(fmt.Sprintf("%-9s", th.name+":")), verdict, th.minimum)
	}

	fmt.Fprintf(w, "%s %s on %s, %s on %s\n", labelStyle.Render("best text:"),
		color.BestTextHexOn(fg), fg.Hex(), color.BestTextHexOn(bg), bg.Hex())
	fmt.Fprintf(w, "%s %s, %s\n", labelStyle.Render("hsl:      "), fg.HSL(), bg.HSL())
}

func swatch(c color.RGB) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("   ")
}

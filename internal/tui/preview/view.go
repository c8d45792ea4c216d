package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/layoutkit/internal/color"
	"github.com/alexisbeaulieu97/layoutkit/internal/tokens"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).MarginTop(1)
)

type contrastCheck struct {
	label      string
	foreground string
	background string
	minimum    float64
}

var contrastChecks = []contrastCheck{
	{"text on surface", tokens.TextDefault, tokens.BgSurface, tokens.MinTextContrast},
	{"focus on page", tokens.FocusColor, tokens.BgPage, tokens.MinFocusContrast},
	{"border on surface", tokens.BorderDefault, tokens.BgSurface, tokens.MinBorderContrast},
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("layoutkit • theme preview"),
		m.settingsLine(),
	}

	if m.err != nil {
		sections = append(sections, failStyle.Render(m.err.Error()))
	} else if set := m.Tokens(); set != nil {
		sections = append(sections, sectionStyle.Render("Colours"), renderSwatches(set))
		sections = append(sections, sectionStyle.Render("Contrast"), renderContrast(set))
		if len(m.result.Corrections) > 0 {
			sections = append(sections, sectionStyle.Render("Corrections"), renderCorrections(m.result.Corrections))
		}
	}

	if m.editing {
		sections = append(sections, sectionStyle.Render("Seed"), m.seedInput.View())
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) settingsLine() string {
	derive := "off"
	if m.cfg.Derive {
		derive = "seed " + m.cfg.Seed
	}
	return mutedStyle.Render(fmt.Sprintf("preset %s · %s mode · derive %s", m.cfg.Preset, m.cfg.Mode, derive))
}

func renderSwatches(set *tokens.Set) string {
	lines := make([]string, 0, len(tokens.ColorTokens))
	for _, name := range tokens.ColorTokens {
		value, ok := set.Get(name)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf(" %s %-22s %s", swatch(value), name, describe(value)))
	}
	return strings.Join(lines, "\n")
}

func swatch(value string) string {
	rgb, ok := color.LookupHex(value)
	if !ok {
		return mutedStyle.Render("  ??  ")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(rgb.Hex())).Render("      ")
}

func describe(value string) string {
	rgb, ok := color.LookupHex(value)
	if !ok {
		return value
	}
	return fmt.Sprintf("%s  %s", rgb.Hex(), mutedStyle.Render(rgb.HSL()))
}

func renderContrast(set *tokens.Set) string {
	lines := make([]string, 0, len(contrastChecks))
	for _, check := range contrastChecks {
		fg, fgOK := color.LookupHex(set.Value(check.foreground))
		bg, bgOK := color.LookupHex(set.Value(check.background))
		if !fgOK || !bgOK {
			lines = append(lines, fmt.Sprintf(" %s %-18s %s", mutedStyle.Render("-"), check.label, mutedStyle.Render("not a hex colour")))
			continue
		}

		ratio := color.Contrast(fg, bg)
		mark := passStyle.Render("✓")
		if ratio < check.minimum {
			mark = failStyle.Render("✗")
		}
		lines = append(lines, fmt.Sprintf(" %s %-18s %5.2f:1  min %.1f  %s", mark, check.label, ratio, check.minimum, color.Level(ratio)))
	}
	return strings.Join(lines, "\n")
}

func renderCorrections(changes []tokens.Correction) string {
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		lines = append(lines, fmt.Sprintf(" %s %s → %s (was %.2f:1)", c.Token, c.From, c.To, c.Ratio))
	}
	return strings.Join(lines, "\n")
}

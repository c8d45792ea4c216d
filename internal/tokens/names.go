// Package tokens builds the CSS custom-property token set that themes the layout primitives.
//
// A token set is assembled by an ordered pipeline of layers (saved, base, preset,
// overrides, derived, corrections). Later layers overwrite earlier ones. The derived
// layer mixes a seed colour with fixed bases; the correction layer then repairs any
// text, focus or border colour that falls under its WCAG contrast threshold.
package tokens

import "fmt"

// Token names understood by the layout primitives' stylesheet.
const (
	BgPage                   = "--ui-bg-page"
	BgSurface                = "--ui-bg-surface"
	TextDefault              = "--ui-text-default"
	BorderDefault            = "--ui-border-default"
	BoxColorDark             = "--ui-box-color-dark"
	BoxColorLight            = "--ui-box-color-light"
	FocusColor               = "--ui-focus-color"
	Space1                   = "--ui-space-1"
	Space2                   = "--ui-space-2"
	StackSpace               = "--ui-stack-space"
	SidebarWidth             = "--ui-sidebar-width"
	SidebarMainMinInlineSize = "--ui-sidebar-main-min-inline-size"
	SidebarSpace             = "--ui-sidebar-space"
	SidebarSideFill          = "--ui-sidebar-side-fill"
	SidebarMainFill          = "--ui-sidebar-main-fill"
	ThemeRGB                 = "--ui-theme-rgb"
	ClusterJustify           = "--ui-cluster-justify"
)

// ColorTokens lists the tokens whose values are hex colours, in display order.
var ColorTokens = []string{
	BgPage,
	BgSurface,
	TextDefault,
	BorderDefault,
	BoxColorLight,
	BoxColorDark,
	FocusColor,
}

// Mode selects the light or dark variant of a theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode accepts "light" or "dark".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q (want light or dark)", s)
	}
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

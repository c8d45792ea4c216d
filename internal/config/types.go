package config

import (
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/layoutkit/internal/store"
	"github.com/alexisbeaulieu97/layoutkit/internal/tokens"
)

// ThemeConfig describes one themed render: which palette to start from, the explicit
// base tokens, optional overrides and seed derivation, and where to persist the result.
type ThemeConfig struct {
	Preset    string  `yaml:"preset" validate:"oneof=custom ocean forest mono asmis"`
	Mode      string  `yaml:"mode" validate:"oneof=light dark"`
	RootWidth string  `yaml:"root_width" validate:"required,css_value"`
	Derive    bool    `yaml:"derive"`
	Seed      string  `yaml:"seed" validate:"omitempty,css_value"`
	Colors    Colors  `yaml:"colors"`
	Spacing   Spacing `yaml:"spacing"`
	Sidebar   Sidebar `yaml:"sidebar"`
	Overrides string  `yaml:"overrides,omitempty"`
	Storage   Storage `yaml:"storage"`
}

// Colors holds the explicit colour tokens. Values are usually hex colours but any CSS
// value is accepted; contrast correction skips values it cannot parse.
type Colors struct {
	BgPage        string `yaml:"bg_page" validate:"required,css_value"`
	BgSurface     string `yaml:"bg_surface" validate:"required,css_value"`
	TextDefault   string `yaml:"text_default" validate:"required,css_value"`
	BorderDefault string `yaml:"border_default" validate:"required,css_value"`
	BoxColorLight string `yaml:"box_color_light" validate:"required,css_value"`
	BoxColorDark  string `yaml:"box_color_dark" validate:"required,css_value"`
	FocusColor    string `yaml:"focus_color" validate:"required,css_value"`
}

// Spacing holds the spacing scale tokens.
type Spacing struct {
	Space1     string `yaml:"space_1" validate:"required,css_value"`
	Space2     string `yaml:"space_2" validate:"required,css_value"`
	StackSpace string `yaml:"stack_space" validate:"required,css_value"`
}

// Sidebar holds the sidebar primitive tokens.
type Sidebar struct {
	Width             string `yaml:"width" validate:"required,css_value"`
	MainMinInlineSize string `yaml:"main_min_inline_size" validate:"required,css_value"`
	Space             string `yaml:"space" validate:"required,css_value"`
}

// Storage controls theme persistence.
type Storage struct {
	Key     string `yaml:"key" validate:"required,max=255"`
	Persist bool   `yaml:"persist"`
	Load    bool   `yaml:"load"`
	Backend string `yaml:"backend" validate:"oneof=memory file sqlite"`
	Path    string `yaml:"path" validate:"required_unless=Backend memory"`
}

// Default returns the configuration the showcase starts from. Themes are stored in
// ~/.layoutkit/themes.json, or in memory when the home directory is unknown.
func Default() *ThemeConfig {
	backend, path := store.BackendFile, DefaultStorePath(store.BackendFile)
	if path == "" {
		backend = store.BackendMemory
	}

	return &ThemeConfig{
		Preset:    string(tokens.PresetCustom),
		Mode:      string(tokens.Light),
		RootWidth: "100%",
		Seed:      "#0b5fff",
		Colors: Colors{
			BgPage:        "#eef2ff",
			BgSurface:     "#f8fafc",
			TextDefault:   "#0f172a",
			BorderDefault: "#cbd5e1",
			BoxColorLight: "#f8fafc",
			BoxColorDark:  "#0f172a",
			FocusColor:    "#0b5fff",
		},
		Spacing: Spacing{
			Space1:     "0.5rem",
			Space2:     "1rem",
			StackSpace: "var(--ui-space-1)",
		},
		Sidebar: Sidebar{
			Width:             "18rem",
			MainMinInlineSize: "50%",
			Space:             "1rem",
		},
		Overrides: "{}",
		Storage: Storage{
			Key:     "ui-theme-story",
			Backend: backend,
			Path:    path,
		},
	}
}

// DefaultStorePath returns ~/.layoutkit/themes.json or ~/.layoutkit/themes.db for the
// file and SQLite backends, and "" for memory or when the home directory is unknown.
func DefaultStorePath(backend string) string {
	var name string
	switch backend {
	case store.BackendFile:
		name = "themes.json"
	case store.BackendSQLite:
		name = "themes.db"
	default:
		return ""
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".layoutkit", name)
}

// ThemeMode returns the configured mode.
func (c *ThemeConfig) ThemeMode() tokens.Mode {
	return tokens.Mode(c.Mode)
}

// ThemePreset returns the configured preset.
func (c *ThemeConfig) ThemePreset() tokens.Preset {
	return tokens.Preset(c.Preset)
}

// BaseTokens returns the explicitly configured tokens in stylesheet order.
func (c *ThemeConfig) BaseTokens() *tokens.Set {
	return tokens.SetOf(
		tokens.BgPage, c.Colors.BgPage,
		tokens.BgSurface, c.Colors.BgSurface,
		tokens.TextDefault, c.Colors.TextDefault,
		tokens.BorderDefault, c.Colors.BorderDefault,
		tokens.BoxColorDark, c.Colors.BoxColorDark,
		tokens.BoxColorLight, c.Colors.BoxColorLight,
		tokens.FocusColor, c.Colors.FocusColor,
		tokens.Space1, c.Spacing.Space1,
		tokens.Space2, c.Spacing.Space2,
		tokens.StackSpace, c.Spacing.StackSpace,
		tokens.SidebarWidth, c.Sidebar.Width,
		tokens.SidebarMainMinInlineSize, c.Sidebar.MainMinInlineSize,
		tokens.SidebarSpace, c.Sidebar.Space,
		tokens.SidebarSideFill, "1",
		tokens.SidebarMainFill, "1",
	)
}

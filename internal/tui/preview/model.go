// Package preview is an interactive terminal preview of a theme. It shows the colour
// tokens as swatches along with the contrast checks the corrector enforces, and lets the
// user cycle presets, flip the mode and edit the seed colour.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	themeapp "github.com/alexisbeaulieu97/layoutkit/internal/app/theme"
	"github.com/alexisbeaulieu97/layoutkit/internal/config"
	"github.com/alexisbeaulieu97/layoutkit/internal/tokens"
)

// Model is the bubbletea state of the preview.
type Model struct {
	service *themeapp.Service
	cfg     config.ThemeConfig

	result *themeapp.Result
	err    error
	status string

	keys      keyMap
	help      help.Model
	seedInput textinput.Model
	editing   bool

	width    int
	quitting bool
}

// NewModel builds a preview for cfg. The model works on its own copy of cfg and never
// persists on its own; saving happens only on the save key.
func NewModel(svc *themeapp.Service, cfg *config.ThemeConfig) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	local := *cfg
	local.Storage.Persist = false

	input := textinput.New()
	input.Placeholder = "#0b5fff"
	input.Prompt = "seed › "
	input.CharLimit = 7
	input.Width = 10

	m := Model{
		service:   svc,
		cfg:       local,
		keys:      defaultKeys,
		help:      help.New(),
		seedInput: input,
		width:     80,
	}
	m.resolve()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Config returns the preview's current settings.
func (m Model) Config() config.ThemeConfig {
	return m.cfg
}

// Tokens returns the token set currently shown, or nil when resolution failed.
func (m Model) Tokens() *tokens.Set {
	if m.result == nil {
		return nil
	}
	return m.result.Tokens
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) resolve() {
	if m.service == nil {
		m.service = themeapp.NewService(nil, nil)
	}
	m.result, m.err = m.service.Tokens(&m.cfg)
}

func (m *Model) nextPreset() {
	current := m.cfg.ThemePreset()
	next := tokens.Presets[0]
	for i, p := range tokens.Presets {
		if p == current {
			next = tokens.Presets[(i+1)%len(tokens.Presets)]
			break
		}
	}
	m.cfg.Preset = string(next)
}

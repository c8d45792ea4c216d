package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/layoutkit/internal/color"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.handleSeedKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextPreset):
		m.nextPreset()
		m.status = fmt.Sprintf("preset %s", m.cfg.Preset)
		m.resolve()
	case key.Matches(msg, m.keys.ToggleMode):
		m.cfg.Mode = string(m.cfg.ThemeMode().Toggle())
		m.status = fmt.Sprintf("%s mode", m.cfg.Mode)
		m.resolve()
	case key.Matches(msg, m.keys.ToggleDerive):
		m.cfg.Derive = !m.cfg.Derive
		m.status = fmt.Sprintf("derive %t", m.cfg.Derive)
		m.resolve()
	case key.Matches(msg, m.keys.EditSeed):
		m.editing = true
		m.seedInput.SetValue(m.cfg.Seed)
		m.seedInput.CursorEnd()
		return m, m.seedInput.Focus()
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleSeedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.seedInput.Blur()
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.seedInput.Value())
		if _, ok := color.LookupHex(value); !ok {
			m.status = fmt.Sprintf("%q is not a hex colour", value)
			return m, nil
		}
		m.editing = false
		m.seedInput.Blur()
		m.cfg.Seed = value
		m.cfg.Derive = true
		m.status = fmt.Sprintf("seed %s", value)
		m.resolve()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.seedInput, cmd = m.seedInput.Update(msg)
	return m, cmd
}

func (m *Model) save() {
	if m.result == nil {
		m.status = "nothing to save"
		return
	}
	if err := m.service.Persist(&m.cfg, m.result.Tokens); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("saved under %s", m.cfg.Storage.Key)
}

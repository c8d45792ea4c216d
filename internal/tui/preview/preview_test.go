package preview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	themeapp "github.com/alexisbeaulieu97/layoutkit/internal/app/theme"
	"github.com/alexisbeaulieu97/layoutkit/internal/config"
	"github.com/alexisbeaulieu97/layoutkit/internal/store"
	"github.com/alexisbeaulieu97/layoutkit/internal/tokens"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func testConfig() *config.ThemeConfig {
	cfg := config.Default()
	cfg.Storage.Backend = store.BackendMemory
	cfg.Storage.Path = ""
	cfg.Storage.Persist = true
	return cfg
}

func TestNewModelResolvesTokens(t *testing.T) {
	m := NewModel(nil, testConfig())
	require.NoError(t, m.err)
	require.NotNil(t, m.Tokens())
	assert.Equal(t, "#eef2ff", m.Tokens().Value(tokens.BgPage))
	assert.False(t, m.Config().Storage.Persist)
}

func TestNextPresetCycles(t *testing.T) {
	m := NewModel(nil, testConfig())

	m, _ = press(t, m, runes("p"))
	assert.Equal(t, string(tokens.PresetOcean), m.Config().Preset)
	assert.Equal(t, "#e0f2fe", m.Tokens().Value(tokens.BgPage))
	assert.Equal(t, "#8bafc4", m.Tokens().Value(tokens.BorderDefault))

	for range tokens.Presets[1:] {
		m, _ = press(t, m, runes("p"))
	}
	assert.Equal(t, string(tokens.PresetCustom), m.Config().Preset)
}

func TestToggleModeAndDerive(t *testing.T) {
	m := NewModel(nil, testConfig())

	m, _ = press(t, m, runes("m"))
	assert.Equal(t, string(tokens.Dark), m.Config().Mode)

	m, _ = press(t, m, runes("d"))
	assert.True(t, m.Config().Derive)
	assert.Equal(t, "#0a1833", m.Tokens().Value(tokens.BgPage))
	assert.Equal(t, "#ffffff", m.Tokens().Value(tokens.TextDefault))
}

func TestEditSeed(t *testing.T) {
	m := NewModel(nil, testConfig())

	m, _ = press(t, m, runes("e"))
	require.True(t, m.editing)

	m.seedInput.SetValue("nope")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.editing, "invalid seed keeps the editor open")
	assert.Contains(t, m.status, "not a hex colour")

	m.seedInput.SetValue("#16a34a")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.editing)
	assert.True(t, m.Config().Derive)
	assert.Equal(t, "#16a34a", m.Config().Seed)
	assert.Equal(t, "22, 163, 74", m.Tokens().Value(tokens.ThemeRGB))
}

func TestEditSeedCancel(t *testing.T) {
	m := NewModel(nil, testConfig())

	m, _ = press(t, m, runes("e"))
	m, _ = press(t, m, runes("q"))
	assert.False(t, m.Quitting(), "keys are typed into the seed while editing")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editing)
	assert.Equal(t, "#0b5fff", m.Config().Seed)
}

func TestSaveWritesToStore(t *testing.T) {
	st := store.NewMemory()
	cfg := testConfig()
	m := NewModel(themeapp.NewService(st, nil), cfg)

	_, err := st.Get(cfg.Storage.Key)
	require.ErrorIs(t, err, store.ErrNotFound, "building the preview does not persist")

	m, _ = press(t, m, runes("s"))
	assert.Contains(t, m.status, "saved under")

	raw, err := st.Get(cfg.Storage.Key)
	require.NoError(t, err)
	saved, err := tokens.DecodeSet([]byte(raw))
	require.NoError(t, err)
	assert.True(t, saved.Equal(m.Tokens()))
}

func TestQuit(t *testing.T) {
	m := NewModel(nil, testConfig())
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())
}

func TestViewShowsSwatchesAndContrast(t *testing.T) {
	m := NewModel(nil, testConfig())
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	assert.Contains(t, view, "theme preview")
	assert.Contains(t, view, tokens.BgSurface)
	assert.Contains(t, view, "text on surface")
	assert.Contains(t, view, "border on surface")
	assert.Contains(t, view, "#cbd5e1 → #9b9fa8")
}

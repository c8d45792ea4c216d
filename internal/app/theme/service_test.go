package theme

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/layoutkit/internal/config"
	"github.com/alexisbeaulieu97/layoutkit/internal/store"
	"github.com/alexisbeaulieu97/layoutkit/internal/tokens"
	lkerrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

func memoryConfig() *config.ThemeConfig {
	cfg := config.Default()
	cfg.Storage.Backend = store.BackendMemory
	cfg.Storage.Path = ""
	return cfg
}

func TestTokensDefaultConfig(t *testing.T) {
	t.Parallel()

	svc := NewService(store.NewMemory(), nil)
	result, err := svc.Tokens(memoryConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"saved", "base", "preset", "overrides", "derived", "corrections"}, result.Layers)
	assert.Equal(t, 15, result.Tokens.Len())
	assert.Equal(t, "#9b9fa8", result.Tokens.Value(tokens.BorderDefault))

	require.Len(t, result.Corrections, 1)
	assert.Equal(t, tokens.BorderDefault, result.Corrections[0].Token)
	assert.Equal(t, "#cbd5e1", result.Corrections[0].From)
	assert.False(t, result.Persisted)
}

func TestTokensDerivedFromSeed(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	cfg.Derive = true

	result, err := NewService(nil, nil).Tokens(cfg)
	require.NoError(t, err)

	set := result.Tokens
	assert.Equal(t, "#e7efff", set.Value(tokens.BgPage))
	assert.Equal(t, "#d3e2ff", set.Value(tokens.BgSurface))
	assert.Equal(t, "#000000", set.Value(tokens.TextDefault))
	assert.Equal(t, "#0b41aa", set.Value(tokens.BorderDefault))
	assert.Equal(t, "11, 95, 255", set.Value(tokens.ThemeRGB))
	assert.Empty(t, result.Corrections)
}

func TestTokensPersistThenLoad(t *testing.T) {
	t.Parallel()

	st := store.NewMemory()
	svc := NewService(st, nil)

	cfg := memoryConfig()
	cfg.Storage.Persist = true
	cfg.Overrides = `{"--ui-brand": "#ff00aa"}`

	first, err := svc.Tokens(cfg)
	require.NoError(t, err)
	require.True(t, first.Persisted)

	raw, err := st.Get(cfg.Storage.Key)
	require.NoError(t, err)
	saved, err := tokens.DecodeSet([]byte(raw))
	require.NoError(t, err)
	assert.True(t, saved.Equal(first.Tokens))

	// A later run without the override still sees it through the saved layer.
	next := memoryConfig()
	next.Storage.Load = true
	second, err := svc.Tokens(next)
	require.NoError(t, err)
	assert.Equal(t, "#ff00aa", second.Tokens.Value("--ui-brand"))
}

func TestTokensNilConfig(t *testing.T) {
	t.Parallel()

	_, err := NewService(nil, nil).Tokens(nil)
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	cfg.Mode = string(tokens.Dark)
	cfg.Preset = string(tokens.PresetOcean)
	cfg.RootWidth = "60rem"

	html, result, err := NewService(nil, nil).Render(cfg)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Contains(t, html, `data-ui-theme="dark"`)
	assert.Contains(t, html, "inline-size:60rem;")
	assert.Contains(t, html, result.Tokens.Style())
}

func TestPersist(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	set := tokens.SetOf(tokens.BgPage, "#000000")

	err := NewService(nil, nil).Persist(cfg, set)
	var storageErr *lkerrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, cfg.Storage.Key, storageErr.Key)

	st := store.NewMemory()
	require.NoError(t, NewService(st, nil).Persist(cfg, set))
	raw, err := st.Get(cfg.Storage.Key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"--ui-bg-page":"#000000"}`, raw)
}

func TestOpenStore(t *testing.T) {
	t.Parallel()

	st, err := OpenStore(config.Storage{Key: "k", Backend: store.BackendMemory})
	require.NoError(t, err)
	require.NotNil(t, st)

	st, err = OpenStore(config.Storage{Key: "k", Backend: store.BackendSQLite, Path: filepath.Join(t.TempDir(), "t.db")})
	require.NoError(t, err)
	require.NoError(t, store.Close(st))

	_, err = OpenStore(config.Storage{Key: "k", Backend: "redis"})
	var storageErr *lkerrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "open", storageErr.Op)
}

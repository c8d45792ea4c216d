package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/layoutkit/internal/store"
	"github.com/alexisbeaulieu97/layoutkit/internal/tokens"
)

func TestTokensCommandCSS(t *testing.T) {
	cfg := memoryConfig(t, "")

	output, err := execute(t, "tokens", "--config", cfg, "--preset", "ocean", "--mode", "dark")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, ".ui-theme {\n"))
	assert.Contains(t, output, "  --ui-bg-page: #082032;\n")
	assert.Contains(t, output, "  --ui-space-1: 0.5rem;\n")
	assert.True(t, strings.HasSuffix(output, "}\n"))
}

func TestTokensCommandJSON(t *testing.T) {
	cfg := memoryConfig(t, "")

	output, err := execute(t, "tokens", "--config", cfg, "--seed", "#0b5fff", "--format", "json")
	require.NoError(t, err)

	set, err := tokens.DecodeSet([]byte(output))
	require.NoError(t, err)
	assert.Equal(t, tokens.BgPage, set.Names()[0])
	assert.Equal(t, "#e7efff", set.Value(tokens.BgPage))
	assert.Equal(t, "11, 95, 255", set.Value(tokens.ThemeRGB))
}

func TestTokensCommandRejectsBadInput(t *testing.T) {
	cfg := memoryConfig(t, "")

	_, err := execute(t, "tokens", "--config", cfg, "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	_, err = execute(t, "tokens", "--config", cfg, "--mode", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
	assert.True(t, strings.HasPrefix(err.Error(), "Failed to print tokens: applying flags"))
}

func TestTokensCommandDiffAgainstSavedTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themes.json")
	cfg := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("storage:\n  backend: file\n  path: "+path+"\n"), 0o644))

	output, err := execute(t, "tokens", "--config", cfg, "--diff")
	require.NoError(t, err)
	assert.Contains(t, output, "--- saved:ui-theme-story\n+++ resolved\n")
	assert.Contains(t, output, "+  --ui-bg-page: #eef2ff;\n")

	st, err := store.NewFile(path)
	require.NoError(t, err)
	require.True(t, tokens.Save(st, "ui-theme-story", tokens.SetOf(tokens.BgPage, "#ffffff"), nil))

	output, err = execute(t, "tokens", "--config", cfg, "--diff", "--preset", "mono")
	require.NoError(t, err)
	assert.Contains(t, output, "-  --ui-bg-page: #ffffff;\n")
	assert.Contains(t, output, "+  --ui-bg-page: #e5e5e5;\n")
	assert.Contains(t, output, " .ui-theme {\n")
}

func TestTokensCommandDiffDoesNotOverwriteSavedTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themes.json")
	cfg := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("storage:\n  backend: file\n  persist: true\n  path: "+path+"\n"), 0o644))

	st, err := store.NewFile(path)
	require.NoError(t, err)
	saved := tokens.SetOf(tokens.BgPage, "#ffffff")
	require.True(t, tokens.Save(st, "ui-theme-story", saved, nil))

	output, err := execute(t, "tokens", "--config", cfg, "--diff", "--preset", "mono")
	require.NoError(t, err)
	assert.Contains(t, output, "-  --ui-bg-page: #ffffff;\n")
	assert.Contains(t, output, "+  --ui-bg-page: #e5e5e5;\n")

	reopened, err := store.NewFile(path)
	require.NoError(t, err)
	assert.True(t, saved.Equal(tokens.Load(reopened, "ui-theme-story", nil)))
}

func TestTokensCommandDiffReportsMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themes.json")
	cfg := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("storage:\n  backend: file\n  path: "+path+"\n"), 0o644))

	jsonOut, err := execute(t, "tokens", "--config", cfg, "--preset", "ocean", "--mode", "dark", "--format", "json")
	require.NoError(t, err)
	resolved, err := tokens.DecodeSet([]byte(jsonOut))
	require.NoError(t, err)

	st, err := store.NewFile(path)
	require.NoError(t, err)
	require.True(t, tokens.Save(st, "ui-theme-story", resolved, nil))

	output, err := execute(t, "tokens", "--config", cfg, "--preset", "ocean", "--mode", "dark", "--diff")
	require.NoError(t, err)
	assert.Equal(t, "resolved theme matches the theme saved under ui-theme-story\n", output)
}

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lkerrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	dir := t.TempDir()

	file, err := NewFile(filepath.Join(dir, "themes.json"))
	require.NoError(t, err)

	db, err := NewSQLite(filepath.Join(dir, "themes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return map[string]Store{
		BackendMemory: NewMemory(),
		BackendFile:   file,
		BackendSQLite: db,
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("missing")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set("ui-theme", `{"--ui-bg-page":"#ffffff"}`))
			value, err := s.Get("ui-theme")
			require.NoError(t, err)
			assert.Equal(t, `{"--ui-bg-page":"#ffffff"}`, value)

			require.NoError(t, s.Set("ui-theme", "second"))
			value, err = s.Get("ui-theme")
			require.NoError(t, err)
			assert.Equal(t, "second", value)
		})
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "themes.json")

	first, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("a", "1"))

	second, err := NewFile(path)
	require.NoError(t, err)
	value, err := second.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", value)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")
}

func TestFileStoreRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFile(path)
	var storageErr *lkerrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "open", storageErr.Op)
}

func TestSQLiteStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.db")

	first, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("a", "1"))
	require.NoError(t, first.Close())

	second, err := NewSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	value, err := second.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", value)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("", "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(BackendFile, filepath.Join(dir, "t.json"))
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)
	require.NoError(t, Close(s))

	s, err = Open(BackendSQLite, filepath.Join(dir, "t.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, Close(s))

	_, err = Open("redis", "")
	require.Error(t, err)

	_, err = Open(BackendFile, "")
	require.Error(t, err)
}

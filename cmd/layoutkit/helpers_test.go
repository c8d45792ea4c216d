package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

// memoryConfig writes a theme file that keeps storage in memory so tests never touch $HOME.
func memoryConfig(t *testing.T, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	contents := "storage:\n  backend: memory\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

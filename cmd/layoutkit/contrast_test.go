package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContrastCommand(t *testing.T) {
	output, err := execute(t, "contrast", "#000", "#ffffff")
	require.NoError(t, err)

	assert.Contains(t, output, "#000000 on")
	assert.Contains(t, output, "21.00:1 (AAA)")
	assert.NotContains(t, output, "fail")
	assert.Contains(t, output, "#ffffff on #000000, #000000 on #ffffff")
	assert.Contains(t, output, "hsl(0, 0%, 0%), hsl(0, 0%, 100%)")
}

func TestContrastCommandReportsFailures(t *testing.T) {
	output, err := execute(t, "contrast", "#0b5fff", "#ffffff")
	require.NoError(t, err)

	assert.Contains(t, output, "(AA)")
	assert.Contains(t, output, "fail")
}

func TestContrastCommandRejectsBadColour(t *testing.T) {
	_, err := execute(t, "contrast", "blue", "#fff")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing foreground")

	_, err = execute(t, "contrast", "#fff")
	require.Error(t, err)
}

package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	assert.Empty(t, Unified("a\nb\n", "a\nb\n", "saved", "resolved"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	before := ".ui-theme {\n  --ui-bg-page: #eef2ff;\n  --ui-space-1: 0.5rem;\n}\n"
	after := ".ui-theme {\n  --ui-bg-page: #082032;\n  --ui-space-1: 0.5rem;\n}\n"

	result := Unified(before, after, "saved", "resolved")

	assert.True(t, strings.HasPrefix(result, "--- saved\n+++ resolved\n@@ -1,4 +1,4 @@\n"))
	assert.Contains(t, result, "\n .ui-theme {\n")
	assert.Contains(t, result, "\n-  --ui-bg-page: #eef2ff;\n")
	assert.Contains(t, result, "\n+  --ui-bg-page: #082032;\n")
	assert.Contains(t, result, "\n   --ui-space-1: 0.5rem;\n")
}

func TestUnifiedAddedAndRemovedLines(t *testing.T) {
	result := Unified("", "one\ntwo\n", "empty", "new")

	assert.Contains(t, result, "@@ -1,0 +1,2 @@")
	assert.Contains(t, result, "+one\n+two\n")

	result = Unified("one\ntwo", "", "old", "empty")
	assert.Contains(t, result, "@@ -1,2 +1,0 @@")
	assert.Contains(t, result, "-one\n-two\n")
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	var b strings.Builder
	for i := 0; i < maxDiffLines+10; i++ {
		b.WriteString("line\n")
	}

	result := Unified("", b.String(), "a", "b")

	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	assert.Equal(t, maxDiffLines+4, strings.Count(result, "\n"))
}

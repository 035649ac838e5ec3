package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSnippetWindow(t *testing.T) {
	content := "l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8"
	got := ExtractSnippet(content, 4, 4, 2)
	assert.Equal(t, "l3\nl4\nl5", got)
}

func TestExtractSnippetClampsToFile(t *testing.T) {
	content := "only\ntwo"
	got := ExtractSnippet(content, 1, 1, 6)
	assert.Equal(t, "only\ntwo", got)

	assert.Equal(t, "", ExtractSnippet(content, 50, 60, 2))
}

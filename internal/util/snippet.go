package util

import (
	"strings"
)

// ExtractSnippet returns up to maxLines lines around the [start,end] region.
func ExtractSnippet(content string, start, end, maxLines int) string {
	if maxLines <= 0 {
		maxLines = 8
	}
	lines := strings.Split(content, "\n")
	if start < 1 {
		start = 1
	}
	if end < start {
		end = start
	}
	s := start - 1
	e := end - 1
	// expand context
	ctx := maxLines
	s = max(0, s-ctx/2)
	e = min(len(lines)-1, e+ctx/2)
	if s > e {
		// span points past the end of the file
		return ""
	}
	return strings.Join(lines[s:e+1], "\n")
}

package toc

import (
	"fmt"
	"strings"
)

const indentUnit = "  "

// Render formats entries as a nested Markdown bullet list, one line each.
// Level 2 is flush left; every level below adds one indent unit.
func Render(entries []Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		indent := strings.Repeat(indentUnit, max(e.Level-2, 0))
		lines = append(lines, fmt.Sprintf("%s- [%s](#%s)", indent, e.Title, e.Anchor))
	}
	return lines
}

// Generate renders the table of contents for a whole document.
func Generate(lines []string) []string {
	return Render(BuildEntries(ExtractHeadings(lines)))
}

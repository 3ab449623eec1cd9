package toc

import (
	"regexp"
	"strings"
	"unicode"
)

// Heading is a section heading found outside fenced code blocks.
type Heading struct {
	Level int
	Title string
	Line  int // 1-indexed
}

var (
	// The separator class covers every rune isSpace accepts; RE2's \s is ASCII only.
	headingPattern = regexp.MustCompile(`^(#{2,4})[\s\v\p{Z}\x{85}\x{1c}-\x{1f}]+(.+)$`)
	codeFence      = "```"
)

// ExtractHeadings returns the level 2-4 headings of lines in document order.
// A line starting with a backtick fence toggles code-block state, and
// nothing inside a code block is treated as a heading.
func ExtractHeadings(lines []string) []Heading {
	var headings []Heading
	inCodeBlock := false

	for i, line := range lines {
		if strings.HasPrefix(line, codeFence) {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			continue
		}

		matches := headingPattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		title := strings.TrimFunc(matches[2], isSpace)
		if title == "" {
			continue
		}
		headings = append(headings, Heading{
			Level: len(matches[1]), // Number of # characters
			Title: title,
			Line:  i + 1,
		})
	}

	return headings
}

// isSpace reports Unicode whitespace plus the ASCII information separators
// U+001C to U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

package toc

import (
	"fmt"
	"strings"
)

// SelfTitle is the heading that never gets an entry, so the table of
// contents does not link to itself.
const SelfTitle = "Table of Contents"

// Entry is a heading paired with the anchor its link points to.
type Entry struct {
	Heading
	Anchor string
}

// Slugify converts a heading title to its anchor slug: lowercase, keep only
// a-z, 0-9, whitespace and hyphens, collapse whitespace/hyphen runs into a
// single hyphen, and trim hyphens at both ends.
func Slugify(title string) string {
	var b strings.Builder
	pendingSep := false

	for _, r := range strings.ToLower(strings.TrimFunc(title, isSpace)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == '-' || isSpace(r):
			pendingSep = true
		}
		// Anything else is dropped without ending a separator run.
	}

	return b.String()
}

// BuildEntries assigns every heading a unique anchor, preserving order.
// The first heading with a given slug gets the bare slug; the n-th repeat
// gets "<slug>-n". Headings titled SelfTitle are skipped entirely.
func BuildEntries(headings []Heading) []Entry {
	seen := make(map[string]int)
	entries := make([]Entry, 0, len(headings))

	for _, h := range headings {
		if h.Title == SelfTitle {
			continue
		}

		base := Slugify(h.Title)
		count := seen[base]
		anchor := base
		if count > 0 {
			anchor = fmt.Sprintf("%s-%d", base, count)
		}
		seen[base] = count + 1

		entries = append(entries, Entry{Heading: h, Anchor: anchor})
	}

	return entries
}

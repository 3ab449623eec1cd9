package toc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Default sentinel lines around the generated region.
const (
	DefaultStartMarker = "<!-- TOC START -->"
	DefaultEndMarker   = "<!-- TOC END -->"
)

// DefaultFiles are the document names looked up under the root, in order.
var DefaultFiles = []string{"Index.md", "index.md"}

// Markers holds the sentinel lines delimiting the generated region.
type Markers struct {
	Start string
	End   string
}

// DefaultMarkers returns the standard TOC START / TOC END comment markers.
func DefaultMarkers() Markers {
	return Markers{Start: DefaultStartMarker, End: DefaultEndMarker}
}

// Document is a loaded Markdown file with its marker positions.
type Document struct {
	Path     string
	Original string
	Lines    []string
	Start    int // index of the start marker line
	End      int // index of the end marker line
}

// Result describes the outcome of an Update.
type Result struct {
	Path    string
	Changed bool
	Entries int
}

// Locate returns the first candidate that exists as a regular file under root.
func Locate(root string, candidates []string) (string, error) {
	for _, name := range candidates {
		path := filepath.Join(root, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("%w: expected %s in %s",
		ErrDocumentNotFound, strings.Join(candidates, " or "), root)
}

// Load reads path and locates the markers.
func Load(path string, markers Markers) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Parse(path, string(content), markers)
}

// Parse splits content into lines and locates the markers. The first line
// exactly equal to each marker is used.
func Parse(path, content string, markers Markers) (*Document, error) {
	lines := splitLines(content)

	start := slices.Index(lines, markers.Start)
	end := slices.Index(lines, markers.End)
	if start < 0 || end < 0 {
		return nil, fmt.Errorf("%w in %s: add %s and %s",
			ErrMissingMarkers, path, markers.Start, markers.End)
	}
	if end <= start {
		return nil, fmt.Errorf("%w in %s: %s (line %d) must come after %s (line %d)",
			ErrMarkersOutOfOrder, path, markers.End, end+1, markers.Start, start+1)
	}

	return &Document{
		Path:     path,
		Original: content,
		Lines:    lines,
		Start:    start,
		End:      end,
	}, nil
}

// Region returns the lines strictly between the markers.
func (d *Document) Region() []string {
	return d.Lines[d.Start+1 : d.End]
}

// Splice returns the full document content with the region between the
// markers replaced by toc. The markers themselves are kept and the result
// ends with exactly one newline.
func (d *Document) Splice(toc []string) string {
	updated := make([]string, 0, d.Start+1+len(toc)+len(d.Lines)-d.End)
	updated = append(updated, d.Lines[:d.Start+1]...)
	updated = append(updated, toc...)
	updated = append(updated, d.Lines[d.End:]...)
	return strings.Join(updated, "\n") + "\n"
}

// Update regenerates the table of contents in the document at path. The
// file is written only when the new content differs from the old.
func Update(path string, markers Markers) (Result, error) {
	doc, err := Load(path, markers)
	if err != nil {
		return Result{}, err
	}

	entries := BuildEntries(ExtractHeadings(doc.Lines))
	updated := doc.Splice(Render(entries))
	res := Result{Path: path, Entries: len(entries)}

	if updated == doc.Original {
		return res, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat document: %w", err)
	}
	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return Result{}, fmt.Errorf("failed to write document: %w", err)
	}

	res.Changed = true
	return res, nil
}

// splitLines splits on newlines, dropping a trailing carriage return from
// each line. A final newline does not produce an empty last line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

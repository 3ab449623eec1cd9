package toc

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ProblemKind classifies a Verify finding.
type ProblemKind string

const (
	// ProblemStale means the region differs from the generated list.
	ProblemStale ProblemKind = "stale"
	// ProblemDangling means a link targets an anchor no heading produces.
	ProblemDangling ProblemKind = "dangling"
)

// Problem is a single Verify finding.
type Problem struct {
	Kind   ProblemKind
	Line   int // 1-indexed line in the document, 0 if not line-specific
	Anchor string
}

func (p Problem) String() string {
	switch p.Kind {
	case ProblemDangling:
		return fmt.Sprintf("line %d: link #%s does not match any heading", p.Line, p.Anchor)
	default:
		return "document differs from what an update would write"
	}
}

// fragmentLinkPattern matches the link target that ends an entry line.
// Links inside the entry title are ignored.
var fragmentLinkPattern = regexp.MustCompile(`\]\(#([^)\s]+)\)\s*$`)

// Verify checks the region between the markers against the document. It
// reports a stale region, and every fragment link whose anchor is not
// produced by a heading as a CommonMark parser sees it.
func (d *Document) Verify() []Problem {
	var problems []Problem

	if d.Splice(Generate(d.Lines)) != d.Original {
		problems = append(problems, Problem{Kind: ProblemStale})
	}

	anchors := make(map[string]bool)
	for _, e := range BuildEntries(parsedHeadings([]byte(d.Original))) {
		anchors[e.Anchor] = true
	}

	for i, line := range d.Region() {
		m := fragmentLinkPattern.FindStringSubmatch(line)
		if m == nil || anchors[m[1]] {
			continue
		}
		problems = append(problems, Problem{
			Kind:   ProblemDangling,
			Line:   d.Start + 2 + i,
			Anchor: m[1],
		})
	}

	return problems
}

// parsedHeadings returns the level 2-4 headings goldmark finds in source.
// Titles are taken from the raw heading source so inline markup slugs the
// same way it does in ExtractHeadings.
func parsedHeadings(source []byte) []Heading {
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var headings []Heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		if h.Level < 2 || h.Level > 4 || h.Lines().Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		var raw bytes.Buffer
		segments := h.Lines()
		for i := 0; i < segments.Len(); i++ {
			if i > 0 {
				raw.WriteByte(' ')
			}
			seg := segments.At(i)
			raw.Write(seg.Value(source))
		}

		first := segments.At(0)
		headings = append(headings, Heading{
			Level: h.Level,
			Title: string(bytes.TrimSpace(raw.Bytes())),
			Line:  bytes.Count(source[:first.Start], []byte("\n")) + 1,
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

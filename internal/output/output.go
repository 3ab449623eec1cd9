// Package output renders status messages for the command line.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/mdtoc/internal/toc"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the check report
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)
)

// FormatUpdate renders the outcome of a table of contents update
func FormatUpdate(w io.Writer, res toc.Result) {
	status := dimStyle.Render("unchanged")
	if res.Changed {
		status = successStyle.Render("updated")
	}

	fmt.Fprintf(w, "%s %s %s\n",
		status,
		res.Path,
		dimStyle.Render(fmt.Sprintf("(%s)", pluralize(res.Entries, "entry", "entries"))),
	)
}

// FormatCheck renders the problems found in a document, or an OK line
func FormatCheck(w io.Writer, path string, problems []toc.Problem) {
	if len(problems) == 0 {
		fmt.Fprintf(w, "%s %s\n", successStyle.Render("ok"), path)
		return
	}

	content := titleStyle.Render(path) + " " +
		dimStyle.Render(pluralize(len(problems), "problem", "problems"))
	for _, p := range problems {
		content += "\n" + errorStyle.Render(string(p.Kind)) + " " + p.String()
	}
	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatError renders a fatal error
func FormatError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("error:"), err)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

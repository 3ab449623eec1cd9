package cmd

import (
	"fmt"
	"strings"

	"github.com/itsmostafa/mdtoc/internal/output"
	"github.com/itsmostafa/mdtoc/internal/toc"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report a stale table of contents without writing",
	Long: `Check compares the table of contents with the document headings and exits
non-zero if it is out of date or links to an anchor no heading produces.
The document is never modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget()
		if err != nil {
			return err
		}

		doc, err := toc.Load(target.Path, target.Markers)
		if err != nil {
			return err
		}

		problems := doc.Verify()
		if !quiet {
			output.FormatCheck(cmd.OutOrStdout(), doc.Path, problems)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%w: %s in %s", toc.ErrCheckFailed, summarize(problems), doc.Path)
		}
		return nil
	},
}

// summarize counts problems by kind, e.g. "1 stale, 2 dangling".
func summarize(problems []toc.Problem) string {
	counts := make(map[toc.ProblemKind]int)
	for _, p := range problems {
		counts[p.Kind]++
	}

	var parts []string
	for _, kind := range []toc.ProblemKind{toc.ProblemStale, toc.ProblemDangling} {
		if counts[kind] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[kind], kind))
		}
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/mdtoc/internal/output"
	"github.com/itsmostafa/mdtoc/internal/toc"
	"github.com/itsmostafa/mdtoc/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdtoc",
	Short: "Regenerate the table of contents in a Markdown document",
	Long: `mdtoc scans a Markdown document for level 2-4 headings and rewrites the
table of contents between the <!-- TOC START --> and <!-- TOC END --> markers.

The document is Index.md (or index.md) in the root directory unless --file
or MDTOC_FILE names another one. The file is only written when the table of
contents actually changed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget()
		if err != nil {
			return err
		}

		res, err := toc.Update(target.Path, target.Markers)
		if err != nil {
			return err
		}

		if !quiet {
			output.FormatUpdate(cmd.OutOrStdout(), res)
		}
		return nil
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s %s\n", version.Name, version.String()))

	bindDocumentFlags(rootCmd.PersistentFlags())
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.FormatError(os.Stderr, err)
		os.Exit(1)
	}
}

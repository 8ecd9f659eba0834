package cli

import (
	"github.com/spf13/cobra"
)

var changelogDryRunFlag bool

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Maintain the changelog document",
}

var changelogGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the release entry, commit it, and tag the release",
	Long: `Re-reads the commits since the last tag, renders a changelog entry for
the manifest's current version, and inserts it directly under the
document header (newest first). The entry is then committed with a
[skip ci] message and the release is tagged {branch}-v{version}.
Side effects are best-effort: a failed step is logged and the rest
still run, so a partially released version can be repaired by
re-running.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		return ctx.Generate(changelogDryRunFlag)
	},
}

func init() {
	changelogGenerateCmd.Flags().BoolVar(&changelogDryRunFlag, "dry-run", false, "Print the rendered entry without writing, committing, or tagging")
	changelogCmd.AddCommand(changelogGenerateCmd)
	rootCmd.AddCommand(changelogCmd)
}

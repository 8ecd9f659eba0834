package cli

import (
	"github.com/spf13/cobra"
)

var bumpDryRunFlag bool

var bumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Compute and apply the next version from commit history",
	Long: `Classifies the commits since the last tag (breaking/feat -> minor,
fix -> patch, anything else -> patch) and writes the resulting version
to the manifests. The bump never produces a major version change: the
major component tracks the upstream framework release and is owned by
the branch policy. Zero commits since the last tag is a no-op.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		return ctx.Bump(bumpDryRunFlag)
	},
}

func init() {
	bumpCmd.Flags().BoolVar(&bumpDryRunFlag, "dry-run", false, "Print the computed version without writing")
	rootCmd.AddCommand(bumpCmd)
}

package cli

import (
	"github.com/spf13/cobra"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Walk the release pipeline without side effects",
	Long: `Runs the release utilities in pipeline order (update, validate, a
dry-run bump, a dry-run changelog, validate again) and prints the full
CI pipeline sequence. Failed steps are reported but never abort the
walk: this command reports status, it does not enforce it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		return ctx.SelfTest()
	},
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

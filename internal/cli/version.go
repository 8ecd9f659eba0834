package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Resolve, inspect, and validate the branch version policy",
	Long: `Commands for keeping the package manifests aligned with the current
branch's version policy. Branches without a policy are always a no-op.`,
}

var versionUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Align the manifest version with the branch policy",
	Long: `Rewrites the manifest version to {maxMajor}.{defaultMinor}.{patch} when
the major version does not match the branch policy. The patch component
is preserved; the library manifest is updated alongside the root one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		return ctx.Update()
	},
}

var versionInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the current branch, policy, and manifest versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		return ctx.Info()
	},
}

var versionValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Fail when the manifest major violates the branch policy",
	Long: `Exits non-zero when the current branch has a policy and the manifest's
major version does not equal the policy ceiling. Policy violations are
configuration bugs that must block the pipeline.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		return ctx.Validate()
	},
}

func init() {
	versionCmd.AddCommand(versionUpdateCmd)
	versionCmd.AddCommand(versionInfoCmd)
	versionCmd.AddCommand(versionValidateCmd)
	rootCmd.AddCommand(versionCmd)
}

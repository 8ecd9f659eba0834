// Package cli wires the relkit command tree. Each subcommand maps to one
// release pipeline utility; all of them are invoked independently by CI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/upped-events/relkit/internal/config"
	"github.com/upped-events/relkit/internal/errors"
	"github.com/upped-events/relkit/internal/git"
	"github.com/upped-events/relkit/internal/release"
)

var (
	configFlag string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "relkit",
	Short: "Release automation for branch-pinned package versions",
	Long: `relkit automates releases for a package whose major version tracks an
upstream framework release instead of semantic versioning.

It resolves the current branch's version policy, bumps the manifest
version from conventional commit history without ever crossing the
branch's major ceiling, and maintains the changelog with release
commits and annotated tags.`,
	Example: `  # Align the manifest with the branch policy, then verify it
  relkit version update
  relkit version validate

  # Compute and apply the next version from commits since the last tag
  relkit bump

  # Write the changelog entry, commit it, and tag the release
  relkit changelog generate

  # Walk the whole pipeline without side effects
  relkit selftest`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A bare invocation is a pipeline mistake, not a help request.
		_ = cmd.Help()
		return errors.NewArgumentError("a subcommand is required")
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			git.SetDebugLogger(func(format string, args ...any) {
				fmt.Fprintf(os.Stderr, format+"\n", args...)
			})
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default: .relkit.yml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug output")
}

// Execute runs the root command and returns the process exit code.
// Structured errors are printed with category and remediation; anything
// else gets a plain error line.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return ExitFailure
	}
	return ExitSuccess
}

// newContext loads configuration, opens the repository, and builds the
// release context shared by every subcommand.
func newContext() (*release.Context, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"Check .relkit.yml syntax and values")
	}

	repo, err := git.Open("")
	if err != nil {
		return nil, errors.Wrap(err, errors.Repository,
			"Run relkit inside a git repository checkout")
	}

	return release.NewContext(repo, cfg), nil
}

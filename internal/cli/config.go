package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/upped-events/relkit/internal/config"
	"github.com/upped-events/relkit/internal/errors"
	"github.com/upped-events/relkit/internal/output"
)

var configForceFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage relkit configuration",
	Long: `Manage relkit configuration.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (RELKIT_*)
  2. Project config (.relkit.yml, legacy .relkit.json)
  3. Built-in defaults`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented config file with the default settings",
	Long: `Writes a fully commented .relkit.yml holding the built-in defaults, as a
starting point for customizing manifest paths and branch policies. An
existing config file is left unchanged unless --force is passed.`,
	Example: `  # Scaffold .relkit.yml in the current directory
  relkit config init

  # Scaffold at a custom location
  relkit --config ci/relkit.yml config init`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultConfigPath
		if configFlag != "" {
			path = configFlag
		}

		if _, err := os.Stat(path); err == nil && !configForceFlag {
			return errors.NewConfigError(
				fmt.Sprintf("config file %s already exists", path),
				"Pass --force to overwrite it",
				"Or edit the existing file directly")
		}

		if err := os.WriteFile(path, []byte(config.ConfigTemplate()), 0o644); err != nil {
			return errors.Wrap(err, errors.Configuration)
		}

		output.PrintSuccess(cmd.OutOrStdout(), "wrote "+path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForceFlag, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

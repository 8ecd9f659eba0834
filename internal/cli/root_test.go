// Package cli tests the command tree structure and global flags.
// Related: internal/cli/root.go
// Tags: cli, root, commands

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "relkit", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotEmpty(t, rootCmd.Example)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"config", "debug"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "flag %s should exist", name)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["version"])
	assert.True(t, names["bump"])
	assert.True(t, names["changelog"])
	assert.True(t, names["selftest"])
	assert.True(t, names["config"])
}

func TestVersionCmd_Subcommands(t *testing.T) {
	t.Parallel()

	names := make(map[string]bool)
	for _, c := range versionCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["update"])
	assert.True(t, names["info"])
	assert.True(t, names["validate"])
}

func TestBumpCmd_DryRunFlag(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, bumpCmd.Flags().Lookup("dry-run"))
	assert.NotNil(t, changelogGenerateCmd.Flags().Lookup("dry-run"))
}

func TestRootCmd_UnknownSubcommandFails(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"frobnicate"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestExecute_ExitCodeContract(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"--help"})
	assert.Equal(t, ExitSuccess, Execute())

	rootCmd.SetArgs([]string{"frobnicate"})
	assert.Equal(t, ExitFailure, Execute())
}

func TestConfigInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".relkit.yml")
	configFlag = path
	defer func() { configFlag = "" }()

	require.NoError(t, configInitCmd.RunE(configInitCmd, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "policies:")
	assert.Contains(t, string(data), "root_manifest:")

	// A second run must not clobber the existing file without --force.
	err = configInitCmd.RunE(configInitCmd, nil)
	require.Error(t, err)

	configForceFlag = true
	defer func() { configForceFlag = false }()
	assert.NoError(t, configInitCmd.RunE(configInitCmd, nil))
}

func TestRootCmd_Help(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"--help"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "relkit")
}

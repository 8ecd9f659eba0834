// Package config tests configuration loading, defaults, and validation.
// Related: internal/config/config.go
// Tags: config, koanf, policies

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "package.json", cfg.RootManifest)
	assert.Equal(t, "CHANGELOG.md", cfg.Changelog)
	assert.Equal(t, "Angular", cfg.Framework)
	assert.Equal(t, 10, cfg.FallbackCommits)
	assert.Equal(t, "github-actions[bot]", cfg.BotName)

	require.Len(t, cfg.Policies, 1)
	assert.Equal(t, "main", cfg.Policies[0].Branch)
	assert.Equal(t, 15, cfg.Policies[0].MaxMajor)
	assert.Equal(t, 2, cfg.Policies[0].DefaultMinor)
}

func TestLoad_YAMLOverrides(t *testing.T) {
	path := writeConfig(t, "relkit.yml", `
root_manifest: pkg/package.json
framework: Vue
fallback_commits: 25
policies:
  - branch: main
    max_major: 16
    default_minor: 0
  - branch: lts
    max_major: 14
    default_minor: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pkg/package.json", cfg.RootManifest)
	assert.Equal(t, "Vue", cfg.Framework)
	assert.Equal(t, 25, cfg.FallbackCommits)
	require.Len(t, cfg.Policies, 2)
	assert.Equal(t, 16, cfg.Policies[0].MaxMajor)
	assert.Equal(t, "lts", cfg.Policies[1].Branch)
}

func TestLoad_LegacyJSON(t *testing.T) {
	path := writeConfig(t, "relkit.json", `{"framework": "React", "fallback_commits": 5}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "React", cfg.Framework)
	assert.Equal(t, 5, cfg.FallbackCommits)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RELKIT_FRAMEWORK", "Svelte")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, "Svelte", cfg.Framework)
}

func TestLoad_InvalidYAMLSyntax(t *testing.T) {
	path := writeConfig(t, "relkit.yml", "framework: [unclosed\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := map[string]struct {
		content string
	}{
		"empty root manifest": {
			content: `root_manifest: ""`,
		},
		"zero fallback commits": {
			content: "fallback_commits: 0",
		},
		"policy without branch": {
			content: "policies:\n  - max_major: 15\n    default_minor: 2\n",
		},
		"negative max major": {
			content: "policies:\n  - branch: main\n    max_major: -1\n    default_minor: 2\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, "relkit.yml", tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestConfigTemplate_LoadsCleanly(t *testing.T) {
	path := writeConfig(t, "relkit.yml", ConfigTemplate())

	cfg, err := Load(path)
	require.NoError(t, err)

	// The scaffolded template must reproduce the built-in defaults.
	assert.Equal(t, "package.json", cfg.RootManifest)
	assert.Equal(t, "Angular", cfg.Framework)
	require.Len(t, cfg.Policies, 1)
	assert.Equal(t, "main", cfg.Policies[0].Branch)
	assert.Equal(t, 15, cfg.Policies[0].MaxMajor)
	assert.Equal(t, 2, cfg.Policies[0].DefaultMinor)
}

func TestPolicyStore(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	store := cfg.PolicyStore()

	p, ok := store.Lookup("main")
	require.True(t, ok)
	assert.Equal(t, 15, p.MaxMajor)
	assert.Equal(t, 2, p.DefaultMinor)

	_, ok = store.Lookup("develop")
	assert.False(t, ok)
}

func TestValidateYAMLSyntax(t *testing.T) {
	t.Run("missing file is valid", func(t *testing.T) {
		assert.NoError(t, ValidateYAMLSyntax(filepath.Join(t.TempDir(), "nope.yml")))
	})

	t.Run("empty file is valid", func(t *testing.T) {
		path := writeConfig(t, "empty.yml", "   \n")
		assert.NoError(t, ValidateYAMLSyntax(path))
	})

	t.Run("invalid syntax reports position", func(t *testing.T) {
		path := writeConfig(t, "bad.yml", "a:\n  - b\n c: d\n")
		err := ValidateYAMLSyntax(path)
		require.Error(t, err)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, path, ve.FilePath)
	})
}

// Package config provides configuration management for relkit using koanf.
// Configuration is loaded with priority: environment variables (RELKIT_*)
// > project config (.relkit.yml, legacy .relkit.json) > defaults. All state
// the release pipeline needs (manifest paths, changelog path, branch
// policies, the bot signature) lives here so commands never resolve paths
// relative to the executable.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/upped-events/relkit/internal/policy"
)

// PolicyEntry is the on-disk shape of a branch policy.
type PolicyEntry struct {
	Branch       string `koanf:"branch"`
	MaxMajor     int    `koanf:"max_major"`
	DefaultMinor int    `koanf:"default_minor"`
}

// Config is the resolved relkit configuration.
type Config struct {
	// RootManifest is the path to the root package manifest.
	RootManifest string `koanf:"root_manifest"`

	// LibManifest is the path to the nested library manifest. Empty or
	// missing on disk means the pipeline only touches the root manifest.
	LibManifest string `koanf:"lib_manifest"`

	// Changelog is the path to the changelog document.
	Changelog string `koanf:"changelog"`

	// Framework names the upstream framework whose major release the
	// branch policies track. Rendered in the changelog compatibility
	// section.
	Framework string `koanf:"framework"`

	// FallbackCommits is how many commits to read when no tag exists yet.
	FallbackCommits int `koanf:"fallback_commits"`

	// BotName and BotEmail form the signature for release commits and tags.
	BotName  string `koanf:"bot_name"`
	BotEmail string `koanf:"bot_email"`

	// Policies lists the branch version policies.
	Policies []PolicyEntry `koanf:"policies"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ConfigPath overrides the project config path (default: .relkit.yml).
	ConfigPath string
}

// Load loads configuration from project file and environment sources.
func Load(configPath string) (*Config, error) {
	return LoadWithOptions(LoadOptions{ConfigPath: configPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadProjectConfig(k, opts.ConfigPath); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("RELKIT_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range Defaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads the project config file. YAML is preferred;
// a legacy JSON file is still honored when no YAML file exists.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	yamlPath := DefaultConfigPath
	if customPath != "" {
		yamlPath = customPath
	}

	if fileExists(yamlPath) {
		if strings.HasSuffix(yamlPath, ".json") {
			return loadFile(k, yamlPath, json.Parser())
		}
		if err := ValidateYAMLSyntax(yamlPath); err != nil {
			return fmt.Errorf("validating config %s: %w", yamlPath, err)
		}
		return loadFile(k, yamlPath, yaml.Parser())
	}

	if customPath == "" && fileExists(LegacyConfigPath) {
		return loadFile(k, LegacyConfigPath, json.Parser())
	}

	return nil
}

func loadFile(k *koanf.Koanf, path string, parser koanf.Parser) error {
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

// validate rejects configurations the pipeline cannot run with.
func validate(cfg *Config) error {
	if cfg.RootManifest == "" {
		return fmt.Errorf("config: root_manifest must not be empty")
	}
	if cfg.Changelog == "" {
		return fmt.Errorf("config: changelog must not be empty")
	}
	if cfg.FallbackCommits <= 0 {
		return fmt.Errorf("config: fallback_commits must be positive, got %d", cfg.FallbackCommits)
	}
	for i, p := range cfg.Policies {
		if p.Branch == "" {
			return fmt.Errorf("config: policies[%d].branch must not be empty", i)
		}
		if p.MaxMajor < 0 || p.DefaultMinor < 0 {
			return fmt.Errorf("config: policies[%d] has negative version component", i)
		}
	}
	return nil
}

// PolicyStore builds the branch policy store from the configuration.
func (c *Config) PolicyStore() *policy.Store {
	policies := make([]policy.Policy, len(c.Policies))
	for i, p := range c.Policies {
		policies[i] = policy.Policy{
			Branch:       p.Branch,
			MaxMajor:     p.MaxMajor,
			DefaultMinor: p.DefaultMinor,
		}
	}
	return policy.NewStore(policies)
}

// envTransform converts environment variable names to config keys.
// Example: RELKIT_ROOT_MANIFEST -> root_manifest
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "RELKIT_"))
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

package config

// DefaultConfigPath is the project configuration file relkit looks for.
const DefaultConfigPath = ".relkit.yml"

// LegacyConfigPath is the deprecated JSON configuration file, still
// honored when no YAML config exists.
const LegacyConfigPath = ".relkit.json"

// Defaults returns the built-in configuration values. The main branch
// policy pins the package major to Angular 15 with a default minor of 2.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"root_manifest":    "package.json",
		"lib_manifest":     "projects/date-time-picker/package.json",
		"changelog":        "CHANGELOG.md",
		"framework":        "Angular",
		"fallback_commits": 10,
		"bot_name":         "github-actions[bot]",
		"bot_email":        "github-actions[bot]@users.noreply.github.com",
		"policies": []map[string]interface{}{
			{
				"branch":        "main",
				"max_major":     15,
				"default_minor": 2,
			},
		},
	}
}

// ConfigTemplate returns a commented config template for new projects.
func ConfigTemplate() string {
	return `# relkit configuration
# Values can be overridden with RELKIT_* environment variables.

root_manifest: package.json                          # Root package manifest
lib_manifest: projects/date-time-picker/package.json # Library manifest (optional)
changelog: CHANGELOG.md                              # Changelog document
framework: Angular                                   # Upstream framework the major version tracks
fallback_commits: 10                                 # Commits to read when no tag exists
bot_name: github-actions[bot]                        # Release commit/tag author
bot_email: github-actions[bot]@users.noreply.github.com

# Branch version policies. Branches without an entry are left alone.
policies:
  - branch: main
    max_major: 15
    default_minor: 2
`
}

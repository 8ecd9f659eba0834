// Package manifest reads and updates package manifests (package.json
// files). The release pipeline touches two of them: the repository root
// manifest and, when configured, a nested library manifest; both carry
// the same version string.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/upped-events/relkit/internal/semver"
)

// Manifest is the parsed view of a package manifest. Only the fields the
// release pipeline reads are decoded; the file on disk keeps everything
// else.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`

	// Path is where the manifest was loaded from.
	Path string `json:"-"`
}

// versionField matches the first top-level-style version assignment in a
// manifest. Replacing the value in place keeps the rest of the document,
// its 2-space indentation, and its key order byte-identical.
var versionField = regexp.MustCompile(`("version"\s*:\s*")[^"]*(")`)

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if m.Version == "" {
		return nil, fmt.Errorf("manifest %s has no version field", path)
	}

	m.Path = path
	return &m, nil
}

// SemVer parses the manifest's version string.
func (m *Manifest) SemVer() (semver.Version, error) {
	v, err := semver.Parse(m.Version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("manifest %s: %w", m.Path, err)
	}
	return v, nil
}

// WriteVersion rewrites the manifest's version value in place, preserving
// every other byte of the document and ensuring a trailing newline.
func WriteVersion(path string, v semver.Version) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest %s: %w", path, err)
	}

	if !versionField.Match(data) {
		return fmt.Errorf("manifest %s has no version field to update", path)
	}

	replaced := false
	updated := versionField.ReplaceAllFunc(data, func(match []byte) []byte {
		if replaced {
			return match
		}
		replaced = true
		return versionField.ReplaceAll(match, []byte("${1}"+v.String()+"${2}"))
	})

	if len(updated) == 0 || updated[len(updated)-1] != '\n' {
		updated = append(updated, '\n')
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat manifest %s: %w", path, err)
	}

	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a manifest file is present at path.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

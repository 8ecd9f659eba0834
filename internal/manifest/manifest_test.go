// Package manifest tests manifest loading and in-place version rewriting.
// Related: internal/manifest/manifest.go
// Tags: manifest, package-json, version

package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upped-events/relkit/internal/semver"
)

const sampleManifest = `{
  "name": "@upped/date-time-picker",
  "version": "15.2.5",
  "scripts": {
    "build": "ng build"
  },
  "dependencies": {
    "tslib": "^2.3.0"
  }
}
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, sampleManifest)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "@upped/date-time-picker", m.Name)
	assert.Equal(t, "15.2.5", m.Version)
	assert.Equal(t, path, m.Path)

	v, err := m.SemVer()
	require.NoError(t, err)
	assert.Equal(t, semver.Version{Major: 15, Minor: 2, Patch: 5}, v)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
	}{
		"invalid json": {
			content: "{not json",
		},
		"missing version": {
			content: `{"name": "pkg"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writeManifest(t, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestWriteVersion_PreservesDocument(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, sampleManifest)

	err := WriteVersion(path, semver.Version{Major: 15, Minor: 3, Patch: 0})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, `"version": "15.3.0"`)
	assert.Contains(t, content, `"build": "ng build"`, "unrelated fields must survive")
	assert.Contains(t, content, `"tslib": "^2.3.0"`)
	assert.True(t, content[len(content)-1] == '\n', "trailing newline must be preserved")

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "15.3.0", m.Version)
}

func TestWriteVersion_OnlyFirstOccurrence(t *testing.T) {
	t.Parallel()

	content := `{
  "name": "pkg",
  "version": "15.2.5",
  "peerDependencies": {
    "some-lib": {
      "version": "1.0.0"
    }
  }
}
`
	path := writeManifest(t, content)

	require.NoError(t, WriteVersion(path, semver.Version{Major: 15, Minor: 3, Patch: 0}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": "15.3.0"`)
	assert.Contains(t, string(data), `"version": "1.0.0"`, "nested version fields must not change")
}

func TestWriteVersion_AddsTrailingNewline(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `{"name": "pkg", "version": "15.2.5"}`)

	require.NoError(t, WriteVersion(path, semver.Version{Major: 15, Minor: 2, Patch: 6}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestWriteVersion_NoVersionField(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `{"name": "pkg"}`)
	err := WriteVersion(path, semver.Version{Major: 15, Minor: 2, Patch: 6})
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, sampleManifest)
	assert.True(t, Exists(path))
	assert.False(t, Exists(filepath.Join(t.TempDir(), "nope.json")))
	assert.False(t, Exists(""))
}

// Package errors tests structured CLI error construction and formatting.
// Related: internal/errors/errors.go, internal/errors/format.go
// Tags: errors, formatting

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"argument":      {Argument, "Argument Error"},
		"configuration": {Configuration, "Configuration Error"},
		"repository":    {Repository, "Repository Error"},
		"validation":    {Validation, "Validation Error"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	err := NewValidationError("major must be 15", "Run 'relkit version update'")
	assert.Equal(t, Validation, err.Category)
	assert.Equal(t, "major must be 15", err.Error())
	assert.Len(t, err.Remediation, 1)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, Repository))

	wrapped := Wrap(fmt.Errorf("boom"), Repository, "try again")
	require.NotNil(t, wrapped)
	assert.Equal(t, "boom", wrapped.Message)
}

func TestWrapWithMessage(t *testing.T) {
	t.Parallel()

	wrapped := WrapWithMessage(fmt.Errorf("boom"), Configuration, "loading config")
	require.NotNil(t, wrapped)
	assert.Equal(t, "loading config: boom", wrapped.Message)
}

func TestAsCLIError(t *testing.T) {
	t.Parallel()

	cliErr := NewConfigError("bad config")
	assert.Equal(t, cliErr, AsCLIError(cliErr))
	assert.Nil(t, AsCLIError(fmt.Errorf("plain")))
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	err := NewValidationError("version 14.0.5 does not match policy",
		"Run 'relkit version update' to realign the manifest")

	got := FormatErrorPlain(err)
	assert.Contains(t, got, "Error [Validation Error]: version 14.0.5 does not match policy")
	assert.Contains(t, got, "To fix this:")
	assert.Contains(t, got, "• Run 'relkit version update' to realign the manifest")
}

func TestFormatError_NilSafe(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatError(nil))
	assert.Empty(t, FormatErrorPlain(nil))
}

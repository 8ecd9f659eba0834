// Package release implements the relkit release pipeline operations:
// resolving the branch policy, bumping the manifest version, generating
// the changelog entry, and the workflow self-test. All state lives in the
// manifests and the repository; operations are stateless between
// invocations and re-read everything they need.
package release

import (
	"io"
	"os"
	"time"

	"github.com/upped-events/relkit/internal/commits"
	"github.com/upped-events/relkit/internal/config"
	"github.com/upped-events/relkit/internal/errors"
	"github.com/upped-events/relkit/internal/git"
	"github.com/upped-events/relkit/internal/manifest"
	"github.com/upped-events/relkit/internal/output"
	"github.com/upped-events/relkit/internal/policy"
)

// Context carries the repository handle, configuration, and output
// streams through every operation, so nothing resolves paths relative to
// the executable or reaches for process globals.
type Context struct {
	Repo *git.Repo
	Cfg  *config.Config

	// Out and Err receive normal and warning/error output.
	Out io.Writer
	Err io.Writer

	// Now supplies the changelog entry date; overridable in tests.
	Now func() time.Time
}

// NewContext builds a Context with stdout/stderr streams.
func NewContext(repo *git.Repo, cfg *config.Config) *Context {
	return &Context{
		Repo: repo,
		Cfg:  cfg,
		Out:  os.Stdout,
		Err:  os.Stderr,
		Now:  time.Now,
	}
}

// signature returns the configured bot signature for commits and tags.
func (c *Context) signature() git.Signature {
	return git.Signature{Name: c.Cfg.BotName, Email: c.Cfg.BotEmail}
}

// branchPolicy resolves the current branch and its policy. The bool is
// false when the branch has no policy; that path is a no-op for every
// caller, never an error. A branch that cannot be resolved at all is a
// fatal repository error.
func (c *Context) branchPolicy() (string, policy.Policy, bool, error) {
	branch, err := c.Repo.CurrentBranch()
	if err != nil {
		return "", policy.Policy{}, false, errors.WrapWithMessage(err, errors.Repository,
			"resolving current branch",
			"Run relkit inside a git repository checkout",
			"Check out a branch; detached HEAD has no version policy")
	}

	p, ok := c.Cfg.PolicyStore().Lookup(branch)
	return branch, p, ok, nil
}

// collect reads the commits since the last tag. Repository errors here
// are recoverable: they degrade to an empty commit list with a warning so
// the calling operation turns into a no-op.
func (c *Context) collect() ([]commits.Commit, git.Tag, bool) {
	cs, tag, found, err := c.Repo.CommitsSinceLastTag(c.Cfg.FallbackCommits)
	if err != nil {
		output.PrintWarning(c.Err, "reading commit history: %v", err)
		return nil, git.Tag{}, false
	}
	return cs, tag, found
}

// rootManifest loads the root manifest; failure is a configuration error.
func (c *Context) rootManifest() (*manifest.Manifest, error) {
	m, err := manifest.Load(c.Cfg.RootManifest)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"Check the root_manifest path in .relkit.yml")
	}
	return m, nil
}

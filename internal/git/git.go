// Package git provides the repository operations relkit needs: branch
// detection, latest-tag lookup, commit history since a tag, and creating
// release commits and annotated tags. It uses the go-git library
// throughout, so no git CLI installation is required.
package git

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default, it's a no-op. Set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repo wraps an open git repository.
type Repo struct {
	repo *gogit.Repository
}

// Open opens the git repository at the specified path or the current
// working directory. DetectDotGit traverses up the directory tree to find
// the repository root.
func Open(path string) (*Repo, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return &Repo{repo: repo}, nil
}

// CurrentBranch returns the name of the current branch. Detached HEAD is
// an error: the release pipeline cannot resolve a branch policy without a
// symbolic branch name.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", fmt.Errorf("detached HEAD: no branch name available")
	}

	branch := head.Name().Short()
	logDebug("[git] CurrentBranch: %s", branch)
	return branch, nil
}

// Root returns the absolute path to the repository worktree root.
func (r *Repo) Root() (string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}
	return worktree.Filesystem.Root(), nil
}

// StageAndCommit stages the file at path and creates a commit with the
// given message, authored by the configured signature.
func (r *Repo) StageAndCommit(path, message string, sig Signature) error {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	rel, err := worktreeRelPath(worktree, path)
	if err != nil {
		return err
	}

	if _, err := worktree.Add(rel); err != nil {
		return fmt.Errorf("staging %s: %w", rel, err)
	}

	hash, err := worktree.Commit(message, &gogit.CommitOptions{
		Author: sig.toObject(),
	})
	if err != nil {
		return fmt.Errorf("committing %s: %w", rel, err)
	}

	logDebug("[git] StageAndCommit: %s -> %s", rel, hash.String()[:7])
	return nil
}

// worktreeRelPath converts path to a slash-separated path relative to the
// worktree root, as go-git's index operations expect.
func worktreeRelPath(worktree *gogit.Worktree, path string) (string, error) {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path), nil
	}

	rel, err := filepath.Rel(worktree.Filesystem.Root(), path)
	if err != nil {
		return "", fmt.Errorf("resolving %s against worktree: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}

// Signature identifies the author of release commits and tags.
type Signature struct {
	Name  string
	Email string
}

func (s Signature) toObject() *object.Signature {
	return &object.Signature{
		Name:  s.Name,
		Email: s.Email,
		When:  time.Now(),
	}
}

// headHash returns the hash HEAD points at.
func (r *Repo) headHash() (plumbing.Hash, error) {
	head, err := r.repo.Head()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("getting HEAD reference: %w", err)
	}
	return head.Hash(), nil
}

package git

import (
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/upped-events/relkit/internal/commits"
)

// shortHashLen is the abbreviated hash length used in changelog bullets.
const shortHashLen = 7

// CommitsSinceLastTag returns the commits strictly after the most recent
// tag, newest first, with merge commits excluded. When the repository has
// no reachable tag, the most recent fallbackLimit commits are returned
// instead. The returned Tag reports which tag bounded the walk (found ==
// false when none did).
func (r *Repo) CommitsSinceLastTag(fallbackLimit int) ([]commits.Commit, Tag, bool, error) {
	tag, found, err := r.LatestTag()
	if err != nil {
		return nil, Tag{}, false, err
	}

	var cs []commits.Commit
	if found {
		cs, err = r.commitsAfter(tag.Commit, 0)
	} else {
		cs, err = r.commitsAfter(plumbing.ZeroHash, fallbackLimit)
	}
	if err != nil {
		return nil, Tag{}, false, err
	}

	logDebug("[git] CommitsSinceLastTag: %d commits (tag found: %v)", len(cs), found)
	return cs, tag, found, nil
}

// commitsAfter walks the log from HEAD collecting non-merge commits until
// it reaches stop (when non-zero) or collects limit commits (when limit >
// 0). The stop commit itself is excluded.
func (r *Repo) commitsAfter(stop plumbing.Hash, limit int) ([]commits.Commit, error) {
	head, err := r.headHash()
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: head})
	if err != nil {
		return nil, fmt.Errorf("reading commit log: %w", err)
	}
	defer iter.Close()

	var out []commits.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if !stop.IsZero() && c.Hash == stop {
			return storer.ErrStop
		}
		if c.NumParents() > 1 {
			return nil
		}

		out = append(out, commits.Commit{
			Hash:    c.Hash.String()[:shortHashLen],
			Subject: subjectLine(c.Message),
		})

		if limit > 0 && len(out) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("walking commit log: %w", err)
	}

	return out, nil
}

// subjectLine extracts the first line of a commit message.
func subjectLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}

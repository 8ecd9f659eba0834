package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// Tag is a resolved tag: its name and the commit it points at. Annotated
// tags are peeled to their target commit.
type Tag struct {
	Name   string
	Commit plumbing.Hash
}

// LatestTag returns the most recent tag reachable from HEAD, found by
// walking the commit log from HEAD and returning the first commit a tag
// points at. The second return value is false when no tag is reachable;
// that is a sentinel, not an error.
func (r *Repo) LatestTag() (Tag, bool, error) {
	byCommit, err := r.tagsByCommit()
	if err != nil {
		return Tag{}, false, err
	}
	if len(byCommit) == 0 {
		logDebug("[git] LatestTag: repository has no tags")
		return Tag{}, false, nil
	}

	head, err := r.headHash()
	if err != nil {
		return Tag{}, false, err
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: head})
	if err != nil {
		return Tag{}, false, fmt.Errorf("reading commit log: %w", err)
	}
	defer iter.Close()

	var found Tag
	var ok bool
	err = iter.ForEach(func(c *object.Commit) error {
		if name, tagged := byCommit[c.Hash]; tagged {
			found = Tag{Name: name, Commit: c.Hash}
			ok = true
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return Tag{}, false, fmt.Errorf("walking commit log: %w", err)
	}

	if ok {
		logDebug("[git] LatestTag: %s", found.Name)
	}
	return found, ok, nil
}

// tagsByCommit maps peeled tag target commits to tag names.
func (r *Repo) tagsByCommit() (map[plumbing.Hash]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	byCommit := make(map[plumbing.Hash]string)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if tagObj, tagErr := r.repo.TagObject(ref.Hash()); tagErr == nil {
			// Annotated tag: peel to the target commit.
			target = tagObj.Target
		}
		byCommit[target] = ref.Name().Short()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	return byCommit, nil
}

// TagExists reports whether a tag with the given name exists.
func (r *Repo) TagExists(name string) (bool, error) {
	_, err := r.repo.Tag(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gogit.ErrTagNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("checking tag %q: %w", name, err)
}

// CreateAnnotatedTag creates an annotated tag at HEAD. Creating a tag
// that already exists is a skipped no-op, not an error: re-running the
// changelog generator after a partial failure must be safe. The bool
// reports whether the tag was actually created.
func (r *Repo) CreateAnnotatedTag(name, message string, sig Signature) (bool, error) {
	exists, err := r.TagExists(name)
	if err != nil {
		return false, err
	}
	if exists {
		logDebug("[git] CreateAnnotatedTag: tag %s already exists, skipping", name)
		return false, nil
	}

	head, err := r.headHash()
	if err != nil {
		return false, err
	}

	_, err = r.repo.CreateTag(name, head, &gogit.CreateTagOptions{
		Tagger:  sig.toObject(),
		Message: message,
	})
	if err != nil {
		return false, fmt.Errorf("creating tag %q: %w", name, err)
	}

	logDebug("[git] CreateAnnotatedTag: created %s", name)
	return true, nil
}

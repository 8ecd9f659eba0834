package release

import (
	"fmt"

	"github.com/upped-events/relkit/internal/changelog"
	"github.com/upped-events/relkit/internal/commits"
	"github.com/upped-events/relkit/internal/errors"
	"github.com/upped-events/relkit/internal/output"
)

// changelogCommitMessage is the fixed message for the changelog commit.
// The [skip ci] marker keeps the release commit from re-triggering the
// pipeline that created it.
const changelogCommitMessage = "chore(release): update changelog [skip ci]"

// Generate re-reads the commits since the last tag, renders a changelog
// entry for the manifest's current version, inserts it newest-first, and
// persists it: write file, stage, commit, annotated tag. Each side
// effect is best-effort; failures are logged and the remaining steps
// still run so a partial release can be repaired by re-running.
func (c *Context) Generate(dryRun bool) error {
	branch, p, ok, err := c.branchPolicy()
	if err != nil {
		return err
	}
	if !ok {
		output.PrintInfo(c.Out, "branch %q has no version policy; skipping changelog", branch)
		return nil
	}

	cs, _, _ := c.collect()
	if len(cs) == 0 {
		output.PrintInfo(c.Out, "no commits since last tag; nothing to generate")
		return nil
	}

	m, err := c.rootManifest()
	if err != nil {
		return err
	}
	version, err := m.SemVer()
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	entry := changelog.Entry{
		Version:        version,
		Date:           c.Now(),
		Framework:      c.Cfg.Framework,
		FrameworkMajor: p.MaxMajor,
		Buckets:        commits.Bucketize(cs),
	}
	rendered := entry.Render()

	if dryRun {
		output.PrintInfo(c.Out, "would insert changelog entry:")
		output.PrintRule(c.Out)
		fmt.Fprint(c.Out, rendered)
		output.PrintRule(c.Out)
		output.PrintInfo(c.Out, "would commit %q and tag %q", changelogCommitMessage, c.tagName(branch, version))
		return nil
	}

	doc, err := changelog.LoadOrSeed(c.Cfg.Changelog)
	if err != nil {
		output.PrintWarning(c.Err, "loading changelog: %v", err)
		return nil
	}
	doc.Insert(rendered)

	if err := doc.Write(); err != nil {
		output.PrintWarning(c.Err, "writing changelog: %v", err)
	} else {
		output.PrintSuccess(c.Out, fmt.Sprintf("changelog entry for %s written to %s", version, doc.Path))
	}

	if err := c.Repo.StageAndCommit(doc.Path, changelogCommitMessage, c.signature()); err != nil {
		output.PrintWarning(c.Err, "committing changelog: %v", err)
	}

	tagName := c.tagName(branch, version)
	created, err := c.Repo.CreateAnnotatedTag(tagName, "Release "+version.String(), c.signature())
	switch {
	case err != nil:
		output.PrintWarning(c.Err, "creating tag %s: %v", tagName, err)
	case created:
		output.PrintSuccess(c.Out, "tagged "+tagName)
	default:
		output.PrintInfo(c.Out, "tag %s already exists; skipping", tagName)
	}

	return nil
}

// tagName builds the release tag name for a branch and version.
func (c *Context) tagName(branch string, version fmt.Stringer) string {
	return fmt.Sprintf("%s-v%s", branch, version)
}

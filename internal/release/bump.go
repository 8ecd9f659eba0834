package release

import (
	"fmt"

	"github.com/upped-events/relkit/internal/commits"
	"github.com/upped-events/relkit/internal/errors"
	"github.com/upped-events/relkit/internal/output"
)

// Bump inspects the commits since the last tag, decides the bump kind,
// and applies the policy-constrained next version to the manifests.
// Zero commits since the last tag is an idempotent no-op. After writing,
// the new version is re-checked against the policy ceiling; a violation
// is a fatal error that must block the pipeline.
func (c *Context) Bump(dryRun bool) error {
	branch, p, ok, err := c.branchPolicy()
	if err != nil {
		return err
	}
	if !ok {
		output.PrintInfo(c.Out, "branch %q has no version policy; skipping bump", branch)
		return nil
	}

	cs, tag, tagFound := c.collect()
	if len(cs) == 0 {
		output.PrintInfo(c.Out, "no commits since last tag; nothing to bump")
		return nil
	}

	kind := commits.DecideBump(cs)

	m, err := c.rootManifest()
	if err != nil {
		return err
	}
	current, err := m.SemVer()
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	next := p.Next(current, kind)

	since := "start of history"
	if tagFound {
		since = "tag " + tag.Name
	}
	output.PrintInfo(c.Out, "%d commits since %s classify as a %s bump", len(cs), since, kind)

	if dryRun {
		output.PrintInfo(c.Out, "would bump %s -> %s on branch %q", current, next, branch)
		return nil
	}

	if err := c.writeManifests(next); err != nil {
		return err
	}

	// Re-validate after the write. This guards against a classification
	// or compute bug sneaking a version past the branch ceiling.
	if err := p.Ceiling(next); err != nil {
		return errors.Wrap(err, errors.Validation,
			"The manifest now holds an invalid version; inspect it before re-running")
	}

	output.PrintSuccess(c.Out, fmt.Sprintf("bumped %s -> %s (%s)", current, next, kind))
	return nil
}

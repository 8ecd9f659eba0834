package release

import (
	"fmt"

	"github.com/upped-events/relkit/internal/errors"
	"github.com/upped-events/relkit/internal/manifest"
	"github.com/upped-events/relkit/internal/output"
	"github.com/upped-events/relkit/internal/semver"
)

// Update aligns the manifest version with the current branch's policy.
// Branches without a policy are left untouched. When the major component
// differs from the policy ceiling, the version is rewritten to
// {maxMajor}.{defaultMinor}.{patch}; the same version is applied to the
// library manifest when one is present.
func (c *Context) Update() error {
	branch, p, ok, err := c.branchPolicy()
	if err != nil {
		return err
	}
	if !ok {
		output.PrintInfo(c.Out, "branch %q has no version policy; nothing to update", branch)
		return nil
	}

	m, err := c.rootManifest()
	if err != nil {
		return err
	}

	current, err := m.SemVer()
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	aligned, changed := p.Align(current)
	if !changed {
		output.PrintInfo(c.Out, "version %s already matches branch %q policy (major %d)",
			current, branch, p.MaxMajor)
		return nil
	}

	if err := c.writeManifests(aligned); err != nil {
		return err
	}

	output.PrintSuccess(c.Out, fmt.Sprintf("updated version %s -> %s for branch %q", current, aligned, branch))
	return nil
}

// Validate fails when the current branch has a policy and the manifest's
// major version does not match it. Branches without a policy always pass.
func (c *Context) Validate() error {
	branch, p, ok, err := c.branchPolicy()
	if err != nil {
		return err
	}
	if !ok {
		output.PrintInfo(c.Out, "branch %q has no version policy; validation passes", branch)
		return nil
	}

	m, err := c.rootManifest()
	if err != nil {
		return err
	}

	current, err := m.SemVer()
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	if err := p.Validate(current); err != nil {
		return errors.Wrap(err, errors.Validation,
			"Run 'relkit version update' to realign the manifest",
			fmt.Sprintf("Branch %q requires major version %d", branch, p.MaxMajor))
	}

	output.PrintSuccess(c.Out, fmt.Sprintf("version %s is valid for branch %q", current, branch))
	return nil
}

// Info prints the resolved branch, its policy, and the manifest versions.
func (c *Context) Info() error {
	branch, p, ok, err := c.branchPolicy()
	if err != nil {
		return err
	}

	output.PrintInfo(c.Out, "branch:    %s", branch)
	if ok {
		output.PrintInfo(c.Out, "policy:    major=%d default-minor=%d (%s %d)",
			p.MaxMajor, p.DefaultMinor, c.Cfg.Framework, p.MaxMajor)
	} else {
		output.PrintInfo(c.Out, "policy:    none")
	}

	m, err := c.rootManifest()
	if err != nil {
		return err
	}
	output.PrintInfo(c.Out, "manifest:  %s %s (%s)", m.Name, m.Version, m.Path)

	if manifest.Exists(c.Cfg.LibManifest) {
		lib, err := manifest.Load(c.Cfg.LibManifest)
		if err != nil {
			return errors.Wrap(err, errors.Configuration)
		}
		output.PrintInfo(c.Out, "library:   %s %s (%s)", lib.Name, lib.Version, lib.Path)
	}

	return nil
}

// writeManifests applies a version to the root manifest and, when
// present, the library manifest. The two writes are best-effort rather
// than transactional; a failure on the library manifest is reported after
// the root write already happened.
func (c *Context) writeManifests(v semver.Version) error {
	if err := manifest.WriteVersion(c.Cfg.RootManifest, v); err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	if manifest.Exists(c.Cfg.LibManifest) {
		if err := manifest.WriteVersion(c.Cfg.LibManifest, v); err != nil {
			return errors.Wrap(err, errors.Configuration,
				"The root manifest was already updated; fix the library manifest and re-run")
		}
	}

	return nil
}

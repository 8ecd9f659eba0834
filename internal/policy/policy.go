// Package policy defines the branch version policies that pin a branch's
// major version to an upstream framework release. The policy owns every
// decision about the major component: the bumper and resolver consult it
// instead of encoding branch rules inline, so adding a second branch is a
// configuration change rather than a code change.
package policy

import (
	"fmt"

	"github.com/upped-events/relkit/internal/commits"
	"github.com/upped-events/relkit/internal/semver"
)

// Policy binds a branch name to its version ceiling. MaxMajor is the
// framework major the branch tracks; DefaultMinor is the minor the branch
// starts from when a manifest is realigned to the ceiling.
type Policy struct {
	Branch       string
	MaxMajor     int
	DefaultMinor int
}

// Store holds the configured policies keyed by branch name. Branches
// without an entry have no policy; every operation treats that as a
// no-op sentinel, not an error.
type Store struct {
	policies map[string]Policy
}

// NewStore builds a Store from the given policies.
func NewStore(policies []Policy) *Store {
	m := make(map[string]Policy, len(policies))
	for _, p := range policies {
		m[p.Branch] = p
	}
	return &Store{policies: m}
}

// Lookup returns the policy for a branch and whether one is defined.
func (s *Store) Lookup(branch string) (Policy, bool) {
	p, ok := s.policies[branch]
	return p, ok
}

// Align returns the version a manifest should carry under this policy.
// A manifest whose major differs from the ceiling is rewritten to
// {MaxMajor, DefaultMinor, patch} with the patch component preserved.
// The returned bool reports whether a change is needed.
func (p Policy) Align(current semver.Version) (semver.Version, bool) {
	if current.Major == p.MaxMajor {
		return current, false
	}
	return semver.Version{Major: p.MaxMajor, Minor: p.DefaultMinor, Patch: current.Patch}, true
}

// Next computes the version a bump should produce.
//
// A manifest that drifted above the ceiling is clamped down to
// {MaxMajor, DefaultMinor, 0}. A manifest below the ceiling snaps up to
// {MaxMajor, DefaultMinor, patch}; climbing to the mandated major takes
// precedence over the commit-driven bump, so the kind is ignored on that
// path. Only at the ceiling does the bump kind apply normally.
func (p Policy) Next(current semver.Version, kind commits.BumpKind) semver.Version {
	switch {
	case current.Major > p.MaxMajor:
		return semver.Version{Major: p.MaxMajor, Minor: p.DefaultMinor, Patch: 0}
	case current.Major < p.MaxMajor:
		return semver.Version{Major: p.MaxMajor, Minor: p.DefaultMinor, Patch: current.Patch}
	case kind == commits.BumpMinor:
		return current.BumpMinor()
	default:
		return current.BumpPatch()
	}
}

// Validate fails when the version's major does not equal the ceiling.
func (p Policy) Validate(current semver.Version) error {
	if current.Major != p.MaxMajor {
		return fmt.Errorf("version %s does not match branch %q policy: major must be %d",
			current, p.Branch, p.MaxMajor)
	}
	return nil
}

// Ceiling re-checks a computed version against the policy. It exists as a
// defense against classification or compute bugs: callers abort the
// process when it fails.
func (p Policy) Ceiling(v semver.Version) error {
	if v.Major > p.MaxMajor {
		return fmt.Errorf("computed version %s exceeds branch %q ceiling %d", v, p.Branch, p.MaxMajor)
	}
	return nil
}

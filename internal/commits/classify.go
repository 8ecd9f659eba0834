// Package commits models the commit records relkit reads from the
// repository log and classifies them by conventional-commit category.
// Classification drives both the bump decision and the changelog buckets.
package commits

import "strings"

// Commit is a single log entry: abbreviated hash plus the first line of
// the commit message. Records are ephemeral; they are re-read from the
// repository on every invocation.
type Commit struct {
	Hash    string
	Subject string
}

// Category is the conventional-commit classification of a single commit.
type Category int

const (
	// Breaking marks commits that announce a breaking change.
	Breaking Category = iota
	// Feature marks feat-prefixed commits.
	Feature
	// Fix marks fix-prefixed commits.
	Fix
	// Other is everything else (docs, chore, refactor, ...).
	Other
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case Breaking:
		return "breaking"
	case Feature:
		return "feature"
	case Fix:
		return "fix"
	default:
		return "other"
	}
}

// BumpKind is the magnitude of a version increment. Major bumps do not
// exist here: the major version tracks the upstream framework release and
// is owned by the branch policy, never by commit classification.
type BumpKind int

const (
	// BumpMinor increments the minor component and resets patch.
	BumpMinor BumpKind = iota
	// BumpPatch increments the patch component.
	BumpPatch
)

// String returns the bump kind name used in log output.
func (k BumpKind) String() string {
	if k == BumpMinor {
		return "minor"
	}
	return "patch"
}

// Classify assigns exactly one category to a commit subject. Matching
// priority is fixed: breaking > feature > fix > other, so a subject that
// carries both a feat prefix and breaking-change text is breaking.
func Classify(subject string) Category {
	lower := strings.ToLower(subject)

	if strings.Contains(lower, "breaking change") || strings.Contains(subject, "!:") {
		return Breaking
	}
	if strings.HasPrefix(lower, "feat:") || strings.HasPrefix(lower, "feat(") {
		return Feature
	}
	if strings.HasPrefix(lower, "fix:") || strings.HasPrefix(lower, "fix(") {
		return Fix
	}
	return Other
}

// DecideBump maps a commit set to a bump kind. Breaking changes and
// features both yield a minor bump (the major slot is reserved for the
// framework pin); fixes yield a patch bump; a set with only unclassified
// commits still yields a patch bump.
func DecideBump(cs []Commit) BumpKind {
	for _, c := range cs {
		switch Classify(c.Subject) {
		case Breaking, Feature:
			return BumpMinor
		}
	}
	return BumpPatch
}

// Buckets groups commits by category, preserving the input order inside
// each bucket. Used by the changelog generator, which keeps the Other
// bucket visible instead of collapsing it into patch.
type Buckets struct {
	Breaking []Commit
	Features []Commit
	Fixes    []Commit
	Other    []Commit
}

// Bucketize distributes commits into category buckets.
func Bucketize(cs []Commit) Buckets {
	var b Buckets
	for _, c := range cs {
		switch Classify(c.Subject) {
		case Breaking:
			b.Breaking = append(b.Breaking, c)
		case Feature:
			b.Features = append(b.Features, c)
		case Fix:
			b.Fixes = append(b.Fixes, c)
		default:
			b.Other = append(b.Other, c)
		}
	}
	return b
}

// IsEmpty reports whether no commits landed in any bucket.
func (b Buckets) IsEmpty() bool {
	return len(b.Breaking) == 0 && len(b.Features) == 0 && len(b.Fixes) == 0 && len(b.Other) == 0
}

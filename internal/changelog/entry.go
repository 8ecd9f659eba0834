// Package changelog renders release entries and maintains the changelog
// document. The document has a fixed header followed by version entries,
// newest first; newest-first ordering is an insertion invariant, not a
// sort performed at render time.
package changelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/upped-events/relkit/internal/commits"
	"github.com/upped-events/relkit/internal/semver"
)

// entryMarker starts every version entry heading in the document.
const entryMarker = "## ["

// Entry is one dated release section of the changelog.
type Entry struct {
	Version semver.Version
	Date    time.Time

	// Framework and FrameworkMajor fill the compatibility section,
	// e.g. "Angular 15".
	Framework      string
	FrameworkMajor int

	Buckets commits.Buckets
}

// Render produces the markdown block for this entry. Non-empty buckets
// appear in fixed order: breaking changes, features, fixes, other.
func (e Entry) Render() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s%s] - %s\n", entryMarker, e.Version, e.Date.Format("2006-01-02"))
	sb.WriteString("\n### Compatibility\n\n")
	fmt.Fprintf(&sb, "- %s %d\n", e.Framework, e.FrameworkMajor)

	renderBucket(&sb, "Breaking Changes", e.Buckets.Breaking)
	renderBucket(&sb, "Features", e.Buckets.Features)
	renderBucket(&sb, "Bug Fixes", e.Buckets.Fixes)
	renderBucket(&sb, "Other", e.Buckets.Other)

	return sb.String()
}

// renderBucket writes one category section, skipped when empty.
func renderBucket(sb *strings.Builder, title string, cs []commits.Commit) {
	if len(cs) == 0 {
		return
	}

	fmt.Fprintf(sb, "\n### %s\n\n", title)
	for _, c := range cs {
		fmt.Fprintf(sb, "- %s (%s)\n", c.Subject, c.Hash)
	}
}

package release

import (
	"fmt"

	"github.com/upped-events/relkit/internal/output"
)

// pipelineSummary is the fixed description of the full release pipeline,
// printed at the end of every self-test run.
var pipelineSummary = []string{
	"relkit version update      align manifest majors with the branch policy",
	"relkit version validate    fail fast on policy drift",
	"npm ci                     install dependencies",
	"npm run build              build the library",
	"relkit bump                compute and apply the next version",
	"relkit changelog generate  write changelog, commit, and tag",
	"relkit version validate    re-check the released version",
	"git push --follow-tags     publish commits and tags",
}

// SelfTest walks the release workflow in pipeline order without the
// mutating bump/changelog paths, reporting each step's outcome. A failed
// step is logged and the remaining steps still run: this utility reports
// status, it does not enforce it. It always returns nil.
func (c *Context) SelfTest() error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"Resolve and update branch version", c.Update},
		{"Validate manifest against policy", c.Validate},
		{"Preview version bump", func() error { return c.Bump(true) }},
		{"Preview changelog entry", func() error { return c.Generate(true) }},
		{"Re-validate manifest", c.Validate},
	}

	failures := 0
	for i, step := range steps {
		output.PrintStepHeader(c.Out, i+1, len(steps), step.name)
		if err := step.run(); err != nil {
			failures++
			output.PrintWarning(c.Err, "step %d failed: %v", i+1, err)
		}
	}

	output.PrintRule(c.Out)
	output.PrintInfo(c.Out, "Release pipeline sequence:")
	for i, line := range pipelineSummary {
		output.PrintInfo(c.Out, "  %d. %s", i+1, line)
	}
	output.PrintRule(c.Out)

	if failures > 0 {
		output.PrintInfo(c.Out, "self-test finished with %d failed step(s)", failures)
	} else {
		output.PrintSuccess(c.Out, fmt.Sprintf("all %d self-test steps passed", len(steps)))
	}

	return nil
}

// Package advice defines the boundary to the optional generative-text
// collaborator that turns checker findings into rewrite suggestions. The
// engine never parses or validates the returned prose; any re-check of a
// rewritten draft goes back through the review engine entry point.
package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/dotcommander/copycheck/internal/check"
	"github.com/dotcommander/copycheck/internal/rules"
)

// Generator produces free-text fix advice from checker findings.
type Generator interface {
	Generate(ctx context.Context, results []check.Result) (string, error)
	Name() string
}

// CollaboratorError labels a failure of an external advice collaborator.
// It is a distinct condition from a checker finding no issues: an absent
// result must never present as a pass.
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("advice collaborator %s failed: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// Static is a deterministic Generator backed by the rulebook's replacement
// table. It needs no network and serves as the default until an LLM-backed
// collaborator is wired in.
type Static struct {
	rs *rules.RuleSet
}

// NewStatic creates a Static generator for one rule set.
func NewStatic(rs *rules.RuleSet) *Static {
	return &Static{rs: rs}
}

func (*Static) Name() string { return "static" }

// Generate renders one advisory line per issue across all results.
func (s *Static) Generate(_ context.Context, results []check.Result) (string, error) {
	var b strings.Builder
	for _, res := range results {
		for _, issue := range res.Issues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
	}
	if b.Len() == 0 {
		return "No changes needed.", nil
	}
	return b.String(), nil
}

// Package review runs the compliance engine: one synchronous pass from raw
// draft text and a rule set to an assembled report. The engine holds no
// state between invocations; concurrent reviews need no coordination.
package review

import (
	"errors"
	"strings"

	"github.com/dotcommander/copycheck/internal/check"
	"github.com/dotcommander/copycheck/internal/content"
	"github.com/dotcommander/copycheck/internal/rules"
	"github.com/dotcommander/copycheck/internal/score"
)

// ErrEmptyDraft reports an empty or whitespace-only draft. This is an input
// error surfaced before any checker runs, not a checker failure.
var ErrEmptyDraft = errors.New("draft text is empty")

// Run executes a full review of rawText against rs.
//
// The rule set is re-validated up front: a misconfigured rulebook aborts
// the review with a configuration error rather than producing a partial
// report. A failed compliance check is not an error; it is a normal,
// fully-modeled outcome inside the returned report.
func Run(rawText string, rs *rules.RuleSet, id Identity) (*Report, error) {
	if rs == nil {
		return nil, &rules.ConfigError{Field: "rulebook", Reason: "no rule set supplied"}
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrEmptyDraft
	}

	doc := content.Parse(rawText)

	checkers := check.DefaultCheckers()
	results := make([]check.Result, 0, len(checkers))
	weighted := make([]score.Weighted, 0, len(checkers))
	for _, c := range checkers {
		res := c.Check(doc, rs)
		results = append(results, res)
		weighted = append(weighted, score.Weighted{
			Result: res,
			Weight: weightFor(c.Name(), rs.Weights),
			Mode:   c.Mode(),
		})
	}

	scores := score.Aggregate(weighted)

	return &Report{
		Identity:   id,
		Project:    rs.Project,
		Document:   doc,
		Results:    results,
		Scores:     scores,
		Verdict:    score.VerdictFromScore(scores.Total),
		GoodPoints: goodPoints(results),
	}, nil
}

func weightFor(name string, w rules.Weights) float64 {
	switch name {
	case check.NameKeywords:
		return w.Keywords
	case check.NameForbidden:
		return w.Forbidden
	case check.NameSellingPoints:
		return w.SellingPoints
	case check.NameStructure:
		return w.Structure
	case check.NameHashtags:
		return w.Hashtags
	}
	return 0
}

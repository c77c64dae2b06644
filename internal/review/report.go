package review

import (
	"github.com/dotcommander/copycheck/internal/check"
	"github.com/dotcommander/copycheck/internal/content"
	"github.com/dotcommander/copycheck/internal/rules"
	"github.com/dotcommander/copycheck/internal/score"
)

// Identity labels one review. The fields are opaque to the engine.
type Identity struct {
	Subject  string `json:"subject"`
	Version  string `json:"version"`
	Reviewer string `json:"reviewer"`
}

// Report is the fully assembled outcome of one review. It is constructed
// once per invocation and never mutated afterwards; it carries no
// presentation markup.
type Report struct {
	Identity   Identity          `json:"identity"`
	Project    rules.ProjectInfo `json:"project"`
	Document   *content.Document `json:"document"`
	Results    []check.Result    `json:"results"`
	Scores     score.Scores      `json:"scores"`
	Verdict    score.Verdict     `json:"verdict"`
	GoodPoints []string          `json:"good_points,omitempty"`
}

// ResultFor returns the result of the named checker.
func (r *Report) ResultFor(name string) (check.Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return check.Result{}, false
}

// Passed reports whether every checker passed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// sellingPointCoverageThreshold is the found/total ratio at which selling
// point coverage counts as a strength even if not complete.
const sellingPointCoverageThreshold = 0.8

// goodPoints derives the qualitative strengths from already-computed
// results. Each rule is independent; nothing is recomputed.
func goodPoints(results []check.Result) []string {
	var points []string
	for _, res := range results {
		switch res.Name {
		case check.NameKeywords:
			if res.Passed {
				points = append(points, "complete keyword coverage")
			}
		case check.NameForbidden:
			if res.Passed {
				points = append(points, "no forbidden terms")
			}
		case check.NameSellingPoints:
			if res.Total > 0 && float64(res.Found) >= float64(res.Total)*sellingPointCoverageThreshold {
				points = append(points, "core selling points well covered")
			}
		case check.NameStructure:
			if res.Passed {
				points = append(points, "structure within limits")
			}
		case check.NameHashtags:
			if res.Passed {
				points = append(points, "all required hashtags present")
			}
		}
	}
	return points
}

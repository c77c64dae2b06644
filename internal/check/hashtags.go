package check

import (
	"fmt"
	"slices"

	"github.com/dotcommander/copycheck/internal/content"
	"github.com/dotcommander/copycheck/internal/rules"
)

// HashtagChecker verifies every mandatory tag appears among the extracted
// hashtags. Matching is exact, leading hash mark included.
type HashtagChecker struct{}

func (HashtagChecker) Name() string    { return NameHashtags }
func (HashtagChecker) Mode() ScoreMode { return ModeRatio }

func (HashtagChecker) Check(doc *content.Document, rs *rules.RuleSet) Result {
	result := Result{Name: NameHashtags, Total: len(rs.RequiredHashtags)}

	for _, tag := range rs.RequiredHashtags {
		found := slices.Contains(doc.Hashtags, tag)
		if found {
			result.Found++
		} else {
			result.Issues = append(result.Issues, fmt.Sprintf("missing required hashtag %s", tag))
		}
		result.Details = append(result.Details, HashtagDetail{Tag: tag, Found: found})
	}

	result.Passed = result.Found == result.Total
	return result
}

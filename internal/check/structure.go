package check

import (
	"fmt"

	"github.com/dotcommander/copycheck/internal/content"
	"github.com/dotcommander/copycheck/internal/rules"
)

// Structural sub-check item names.
const (
	ItemWordCount    = "body word count"
	ItemHashtagCount = "hashtag count"
)

// StructureChecker enforces the two hard numeric limits: body word count
// must not exceed the ceiling, and hashtag count must reach the floor.
// Unlike the itemized checkers this one is bounded at exactly two
// sub-checks.
type StructureChecker struct{}

func (StructureChecker) Name() string    { return NameStructure }
func (StructureChecker) Mode() ScoreMode { return ModeRatio }

func (StructureChecker) Check(doc *content.Document, rs *rules.RuleSet) Result {
	result := Result{Name: NameStructure, Total: 2}

	maxWords := rs.StructureLimits.MaxBodyWords
	if doc.WordCount > maxWords {
		result.Issues = append(result.Issues,
			fmt.Sprintf("body word count %d exceeds limit of %d", doc.WordCount, maxWords))
	}
	result.Details = append(result.Details, StructureDetail{
		Item:  ItemWordCount,
		Value: doc.WordCount,
		Limit: maxWords,
		OK:    doc.WordCount <= maxWords,
	})

	minTags := rs.StructureLimits.MinHashtagCount
	tagCount := len(doc.Hashtags)
	if tagCount < minTags {
		result.Issues = append(result.Issues,
			fmt.Sprintf("only %d hashtags present, at least %d required", tagCount, minTags))
	}
	result.Details = append(result.Details, StructureDetail{
		Item:  ItemHashtagCount,
		Value: tagCount,
		Limit: minTags,
		OK:    tagCount >= minTags,
	})

	result.Found = result.Total - len(result.Issues)
	result.Passed = result.Found == result.Total
	return result
}

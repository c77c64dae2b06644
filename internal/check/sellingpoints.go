package check

import (
	"fmt"
	"strings"

	"github.com/dotcommander/copycheck/internal/content"
	"github.com/dotcommander/copycheck/internal/rules"
)

// issueTruncateRunes caps the phrase length quoted in an issue message.
// The full phrase is always available from the detail record.
const issueTruncateRunes = 20

// SellingPointChecker verifies locked marketing claims. Every phrase in
// every category must appear character-for-character in the full raw text.
// These encode legally mandated claim language: there is no "close enough".
type SellingPointChecker struct{}

func (SellingPointChecker) Name() string    { return NameSellingPoints }
func (SellingPointChecker) Mode() ScoreMode { return ModeRatio }

func (SellingPointChecker) Check(doc *content.Document, rs *rules.RuleSet) Result {
	result := Result{Name: NameSellingPoints}

	for _, category := range sortedKeys(rs.LockedSellingPoints) {
		for _, phrase := range rs.LockedSellingPoints[category] {
			result.Total++
			found := strings.Contains(doc.RawText, phrase)
			if found {
				result.Found++
			} else {
				result.Issues = append(result.Issues,
					fmt.Sprintf("[%s] missing locked phrase: %s", category, truncate(phrase, issueTruncateRunes)))
			}
			result.Details = append(result.Details, SellingPointDetail{
				Phrase:   phrase,
				Category: category,
				Found:    found,
			})
		}
	}

	result.Passed = result.Found == result.Total
	return result
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dotcommander/copycheck/internal/content"
	"github.com/dotcommander/copycheck/internal/rules"
)

// KeywordChecker verifies required keywords per location. Keywords scoped
// to the title are searched in the full raw text (drafts carry no explicit
// title delimiter); any other location searches the body text only.
// Matching is literal substring containment, no normalization.
type KeywordChecker struct{}

func (KeywordChecker) Name() string    { return NameKeywords }
func (KeywordChecker) Mode() ScoreMode { return ModeRatio }

func (KeywordChecker) Check(doc *content.Document, rs *rules.RuleSet) Result {
	result := Result{Name: NameKeywords}
	bodyText := doc.BodyText()

	for _, location := range sortedKeys(rs.RequiredKeywords) {
		text := bodyText
		if location == rules.LocationTitle {
			text = doc.RawText
		}
		for _, kw := range rs.RequiredKeywords[location] {
			result.Total++
			found := strings.Contains(text, kw)
			if found {
				result.Found++
			} else {
				result.Issues = append(result.Issues, fmt.Sprintf("%s is missing required keyword %q", location, kw))
			}
			result.Details = append(result.Details, KeywordDetail{
				Keyword:  kw,
				Location: location,
				Found:    found,
			})
		}
	}

	result.Passed = result.Found == result.Total
	return result
}

// sortedKeys returns map keys in lexical order. Rule categories are
// iterated in sorted order so repeated reviews produce byte-identical
// reports.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

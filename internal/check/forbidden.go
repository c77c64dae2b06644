package check

import (
	"fmt"
	"strings"

	"github.com/dotcommander/copycheck/internal/content"
	"github.com/dotcommander/copycheck/internal/rules"
)

// ForbiddenChecker scans the full raw text for every occurrence of every
// forbidden word in every category. An occurrence is exempted when any
// configured exception phrase appears inside a symmetric rune window around
// the match (rule set ContextRadius on each side, clipped to text bounds).
//
// Each (category, word) pair is scanned independently, even if categories
// share a literal word: categories carry distinct replacement and reporting
// semantics, so the duplication is deliberate.
type ForbiddenChecker struct{}

func (ForbiddenChecker) Name() string    { return NameForbidden }
func (ForbiddenChecker) Mode() ScoreMode { return ModeBoolean }

func (ForbiddenChecker) Check(doc *content.Document, rs *rules.RuleSet) Result {
	result := Result{Name: NameForbidden}
	text := []rune(doc.RawText)
	radius := rs.ContextRadius

	for _, category := range sortedKeys(rs.ForbiddenWords) {
		for _, word := range rs.ForbiddenWords[category] {
			for _, span := range findOccurrences(text, []rune(word)) {
				ctxStart := max(0, span.Start-radius)
				ctxEnd := min(len(text), span.End+radius)
				window := string(text[ctxStart:ctxEnd])

				if isExcepted(window, rs.AllowedExceptions) {
					continue
				}

				suggestion := rs.ReplacementFor(word)
				result.Issues = append(result.Issues,
					fmt.Sprintf("forbidden term %q (%s) — suggest %q", word, category, suggestion))
				result.Details = append(result.Details, ForbiddenDetail{
					Word:       word,
					Category:   category,
					Context:    window,
					Suggestion: suggestion,
					Span:       span,
				})
			}
		}
	}

	// No denominator here: zero non-exempted occurrences is the only pass.
	result.Passed = len(result.Issues) == 0
	return result
}

// findOccurrences returns the rune-offset spans of every non-overlapping
// occurrence of word in text, scanning left to right.
func findOccurrences(text, word []rune) []Span {
	if len(word) == 0 || len(word) > len(text) {
		return nil
	}
	var spans []Span
	for i := 0; i+len(word) <= len(text); {
		if runesEqual(text[i:i+len(word)], word) {
			spans = append(spans, Span{Start: i, End: i + len(word)})
			i += len(word)
		} else {
			i++
		}
	}
	return spans
}

func runesEqual(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func isExcepted(window string, exceptions []string) bool {
	for _, exc := range exceptions {
		if exc != "" && strings.Contains(window, exc) {
			return true
		}
	}
	return false
}

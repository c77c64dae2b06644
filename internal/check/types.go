// Package check implements the five compliance checkers. Each checker is a
// pure function over a parsed document and a rule set; running the same
// checker on the same inputs always yields the same Result.
package check

import (
	"github.com/dotcommander/copycheck/internal/content"
	"github.com/dotcommander/copycheck/internal/rules"
)

// Checker name constants.
const (
	NameKeywords      = "required_keywords"
	NameForbidden     = "forbidden_words"
	NameSellingPoints = "locked_selling_points"
	NameStructure     = "structure"
	NameHashtags      = "required_hashtags"
)

// ScoreMode declares how a checker's Result converts to a sub-score.
// Count-based checkers score found/total. The forbidden-word checker has no
// meaningful denominator (absence of a violation is not an "item"), so it
// scores all-or-nothing on Passed. The mode is declared per checker rather
// than inferred from total==0, so a future checker that legitimately has
// zero applicable items is not silently misscored.
type ScoreMode int

const (
	ModeRatio ScoreMode = iota
	ModeBoolean
)

// Checker is one independent compliance check.
type Checker interface {
	// Name returns the stable checker identifier.
	Name() string

	// Mode returns how this checker's result is scored.
	Mode() ScoreMode

	// Check evaluates the document against the rule set.
	Check(doc *content.Document, rs *rules.RuleSet) Result
}

// DefaultCheckers returns the standard checkers in report order.
func DefaultCheckers() []Checker {
	return []Checker{
		KeywordChecker{},
		ForbiddenChecker{},
		SellingPointChecker{},
		StructureChecker{},
		HashtagChecker{},
	}
}

// Result is the outcome of one checker.
//
// For count-based checkers, Passed == (Found == Total). For the
// forbidden-word checker, Passed == (len(Issues) == 0) and Total/Found stay
// zero.
type Result struct {
	Name    string   `json:"name"`
	Passed  bool     `json:"passed"`
	Total   int      `json:"total"`
	Found   int      `json:"found"`
	Issues  []string `json:"issues,omitempty"`
	Details []Detail `json:"details"`
}

// Detail is a per-item verdict. The concrete types below form a closed set,
// one per checker, carrying enough structure for a presentation layer to
// render without re-deriving anything.
type Detail interface {
	Kind() string
}

// Span marks a rune-offset range in the original raw text. Rendering layers
// apply highlighting from spans; the engine never mutates the text itself.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// KeywordDetail reports one (location, keyword) requirement.
type KeywordDetail struct {
	Keyword  string `json:"keyword"`
	Location string `json:"location"`
	Found    bool   `json:"found"`
}

func (KeywordDetail) Kind() string { return NameKeywords }

// ForbiddenDetail reports one non-exempted forbidden-word occurrence.
type ForbiddenDetail struct {
	Word       string `json:"word"`
	Category   string `json:"category"`
	Context    string `json:"context"`
	Suggestion string `json:"suggestion"`
	Span       Span   `json:"span"`
}

func (ForbiddenDetail) Kind() string { return NameForbidden }

// SellingPointDetail reports one locked phrase. Phrase always carries the
// full text even when the issue message truncates it for display.
type SellingPointDetail struct {
	Phrase   string `json:"phrase"`
	Category string `json:"category"`
	Found    bool   `json:"found"`
}

func (SellingPointDetail) Kind() string { return NameSellingPoints }

// StructureDetail reports one structural sub-check.
type StructureDetail struct {
	Item  string `json:"item"`
	Value int    `json:"value"`
	Limit int    `json:"limit"`
	OK    bool   `json:"ok"`
}

func (StructureDetail) Kind() string { return NameStructure }

// HashtagDetail reports one required hashtag.
type HashtagDetail struct {
	Tag   string `json:"tag"`
	Found bool   `json:"found"`
}

func (HashtagDetail) Kind() string { return NameHashtags }

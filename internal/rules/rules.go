// Package rules defines the declarative rulebook a review runs against and
// its loading/validation pipeline. A RuleSet is read-only for the duration
// of one review; nothing in the engine mutates it.
package rules

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultContextRadius is the exception-window radius (runes on each side
// of a forbidden-word match) applied when the rulebook does not set one.
// Treated as policy, not law: exception phrases longer than twice the
// radius can fail to be detected even when adjacent to the match.
const DefaultContextRadius = 15

// DefaultReplacementAdvice is the advisory used when a forbidden word has
// no configured replacement.
const DefaultReplacementAdvice = "remove or rephrase"

// Keyword location tags recognized by the keyword checker. LocationTitle
// scopes the search to the full raw text (titles are not structurally
// delimited in a draft); any other location searches the body text only.
const (
	LocationTitle = "title"
	LocationBody  = "body"
)

//go:embed rules.yaml
var defaultRulebook []byte

// ProjectInfo carries opaque campaign metadata for display.
type ProjectInfo struct {
	Name         string `yaml:"name" json:"name"`
	Brand        string `yaml:"brand" json:"brand"`
	RuleVersion  string `yaml:"rule_version" json:"rule_version"`
	BriefVersion string `yaml:"brief_version" json:"brief_version"`
}

// StructureLimits holds the hard numeric constraints on a draft.
type StructureLimits struct {
	MaxBodyWords    int `yaml:"max_body_words" json:"max_body_words"`
	MinHashtagCount int `yaml:"min_hashtag_count" json:"min_hashtag_count"`
}

// Weights assigns each checker its share of the objective score.
// A weight set must sum to 1.0.
type Weights struct {
	Keywords      float64 `yaml:"keywords" json:"keywords"`
	Forbidden     float64 `yaml:"forbidden" json:"forbidden"`
	SellingPoints float64 `yaml:"selling_points" json:"selling_points"`
	Structure     float64 `yaml:"structure" json:"structure"`
	Hashtags      float64 `yaml:"hashtags" json:"hashtags"`
}

// DefaultWeights returns the canonical checker weights.
func DefaultWeights() Weights {
	return Weights{
		Keywords:      0.15,
		Forbidden:     0.20,
		SellingPoints: 0.30,
		Structure:     0.15,
		Hashtags:      0.20,
	}
}

// Sum returns the total of all checker weights.
func (w Weights) Sum() float64 {
	return w.Keywords + w.Forbidden + w.SellingPoints + w.Structure + w.Hashtags
}

// IsZero reports whether no weight was set at all, which selects the
// canonical defaults.
func (w Weights) IsZero() bool {
	return w == Weights{}
}

// RuleSet is the full rulebook for one campaign. Every checker reads from
// it; none of them write to it.
type RuleSet struct {
	Project             ProjectInfo         `yaml:"project" json:"project"`
	RequiredKeywords    map[string][]string `yaml:"required_keywords" json:"required_keywords"`
	ForbiddenWords      map[string][]string `yaml:"forbidden_words" json:"forbidden_words"`
	AllowedExceptions   []string            `yaml:"allowed_exceptions" json:"allowed_exceptions"`
	Replacements        map[string]string   `yaml:"forbidden_word_replacements" json:"forbidden_word_replacements"`
	LockedSellingPoints map[string][]string `yaml:"locked_selling_points" json:"locked_selling_points"`
	StructureLimits     StructureLimits     `yaml:"structure_limits" json:"structure_limits"`
	RequiredHashtags    []string            `yaml:"required_hashtags" json:"required_hashtags"`
	Weights             Weights             `yaml:"weights" json:"weights"`
	ContextRadius       int                 `yaml:"context_radius" json:"context_radius"`
}

// ConfigError reports an invalid or incomplete rulebook. A review never
// proceeds past a ConfigError: a partial rulebook must not silently reduce
// check coverage.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid rule set: %s: %s", e.Field, e.Reason)
}

// Parse decodes a YAML rulebook, validates it against the embedded schema,
// applies defaults, and runs semantic validation.
func Parse(data []byte) (*RuleSet, error) {
	// Schema validation first, over the generic decoding, so missing
	// required sections surface as schema errors before struct defaults
	// can paper over them.
	var generic map[string]any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, &ConfigError{Field: "rulebook", Reason: fmt.Sprintf("not valid YAML: %v", err)}
	}
	if err := validateSchema(generic); err != nil {
		return nil, err
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, &ConfigError{Field: "rulebook", Reason: fmt.Sprintf("cannot decode: %v", err)}
	}

	rs.applyDefaults()
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// Load reads and parses a rulebook file.
func Load(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// Default returns the embedded canonical rulebook.
func Default() *RuleSet {
	rs, err := Parse(defaultRulebook)
	if err != nil {
		// The embedded rulebook is compiled in; failing to parse it is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded rulebook invalid: %v", err))
	}
	return rs
}

func (rs *RuleSet) applyDefaults() {
	if rs.Weights.IsZero() {
		rs.Weights = DefaultWeights()
	}
	if rs.ContextRadius == 0 {
		rs.ContextRadius = DefaultContextRadius
	}
}

// Validate checks semantic completeness of the rulebook. Schema validation
// covers shape; this covers the constraints CUE cannot express cleanly,
// the weight sum in particular.
func (rs *RuleSet) Validate() error {
	if len(rs.RequiredKeywords) == 0 {
		return &ConfigError{Field: "required_keywords", Reason: "must define at least one location"}
	}
	for loc, kws := range rs.RequiredKeywords {
		if len(kws) == 0 {
			return &ConfigError{Field: "required_keywords." + loc, Reason: "keyword list is empty"}
		}
	}
	if len(rs.ForbiddenWords) == 0 {
		return &ConfigError{Field: "forbidden_words", Reason: "must define at least one category"}
	}
	if len(rs.LockedSellingPoints) == 0 {
		return &ConfigError{Field: "locked_selling_points", Reason: "must define at least one category"}
	}
	if len(rs.RequiredHashtags) == 0 {
		return &ConfigError{Field: "required_hashtags", Reason: "must list at least one tag"}
	}
	if rs.StructureLimits.MaxBodyWords <= 0 {
		return &ConfigError{Field: "structure_limits.max_body_words", Reason: "must be positive"}
	}
	if rs.StructureLimits.MinHashtagCount <= 0 {
		return &ConfigError{Field: "structure_limits.min_hashtag_count", Reason: "must be positive"}
	}
	if rs.ContextRadius < 0 {
		return &ConfigError{Field: "context_radius", Reason: "must not be negative"}
	}
	if sum := rs.Weights.Sum(); math.Abs(sum-1.0) > 1e-9 {
		return &ConfigError{Field: "weights", Reason: fmt.Sprintf("must sum to 1.0, got %.2f", sum)}
	}
	return nil
}

// ReplacementFor returns the configured replacement suggestion for a
// forbidden word, or the generic advisory when none is configured.
func (rs *RuleSet) ReplacementFor(word string) string {
	if s, ok := rs.Replacements[word]; ok {
		return s
	}
	return DefaultReplacementAdvice
}

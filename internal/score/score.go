// Package score turns checker results into the weighted compliance score
// and qualitative verdict.
package score

import (
	"math"

	"github.com/dotcommander/copycheck/internal/check"
)

// Blend policy: the objective (rule-based) score carries 60% of the final
// score, the subjective score 40%.
const (
	objectiveShare  = 0.6
	subjectiveShare = 0.4
)

// Placeholder subjective sub-scores, pending qualitative-assessment
// integration. These are deliberate stubs, not derived values.
const (
	placeholderProfessional = 80
	placeholderTone         = 75
	placeholderNaturalness  = 70
	placeholderEmotion      = 75
	placeholderOriginality  = 85
)

// Weighted pairs a checker result with its scoring weight and mode.
type Weighted struct {
	Result check.Result
	Weight float64
	Mode   check.ScoreMode
}

// Subjective holds the qualitative sub-scores. All values are placeholder
// constants until the assessment collaborator lands.
type Subjective struct {
	Professional int `json:"professional"`
	Tone         int `json:"tone"`
	Naturalness  int `json:"naturalness"`
	Emotion      int `json:"emotion"`
	Originality  int `json:"originality"`
}

// Scores is the full scoring outcome of one review, each value on a 0-100
// scale rounded to one decimal.
type Scores struct {
	Objective  float64    `json:"objective"`
	Subjective float64    `json:"subjective"`
	Total      float64    `json:"total"`
	Breakdown  Subjective `json:"subjective_breakdown"`
}

// SubScore converts one checker result to a 0-1 sub-score according to its
// declared mode. Ratio mode scores found/total; boolean mode scores
// all-or-nothing on Passed (the forbidden-word checker, whose violation
// count has no denominator).
func SubScore(r check.Result, mode check.ScoreMode) float64 {
	if mode == check.ModeBoolean {
		if r.Passed {
			return 1.0
		}
		return 0.0
	}
	if r.Total == 0 {
		// Nothing applicable: vacuously satisfied. A validated rule set
		// never produces this for the standard checkers.
		return 1.0
	}
	return float64(r.Found) / float64(r.Total)
}

// Aggregate computes the weighted objective score, the placeholder
// subjective score, and the blended total.
func Aggregate(results []Weighted) Scores {
	var objective float64
	for _, wr := range results {
		objective += SubScore(wr.Result, wr.Mode) * wr.Weight
	}

	breakdown := Subjective{
		Professional: placeholderProfessional,
		Tone:         placeholderTone,
		Naturalness:  placeholderNaturalness,
		Emotion:      placeholderEmotion,
		Originality:  placeholderOriginality,
	}
	subjective := round1(float64(breakdown.Professional+breakdown.Tone+breakdown.Naturalness+
		breakdown.Emotion+breakdown.Originality) / 5)

	s := Scores{
		Objective:  round1(objective * 100),
		Subjective: subjective,
		Breakdown:  breakdown,
	}
	s.Total = round1(s.Objective*objectiveShare + s.Subjective*subjectiveShare)
	return s
}

// Verdict is the qualitative reading of a total score.
type Verdict string

const (
	VerdictExcellent Verdict = "excellent"
	VerdictGood      Verdict = "good"
	VerdictNeedsWork Verdict = "needs improvement"
	VerdictNeedsRedo Verdict = "needs rework"
)

// VerdictFromScore maps a total score to its verdict tier.
func VerdictFromScore(total float64) Verdict {
	switch {
	case total >= 90:
		return VerdictExcellent
	case total >= 75:
		return VerdictGood
	case total >= 60:
		return VerdictNeedsWork
	default:
		return VerdictNeedsRedo
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

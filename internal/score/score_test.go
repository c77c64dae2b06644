package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotcommander/copycheck/internal/check"
)

func TestSubScoreRatioMode(t *testing.T) {
	tests := []struct {
		name  string
		found int
		total int
		want  float64
	}{
		{"all found", 5, 5, 1.0},
		{"none found", 0, 5, 0.0},
		{"half", 1, 2, 0.5},
		{"nothing applicable", 0, 0, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := check.Result{Found: tt.found, Total: tt.total, Passed: tt.found == tt.total}
			assert.InDelta(t, tt.want, SubScore(r, check.ModeRatio), 1e-9)
		})
	}
}

func TestSubScoreBooleanMode(t *testing.T) {
	assert.Equal(t, 1.0, SubScore(check.Result{Passed: true}, check.ModeBoolean))
	assert.Equal(t, 0.0, SubScore(check.Result{Passed: false}, check.ModeBoolean))
}

// canonicalWeighted builds the five standard results with canonical weights.
func canonicalWeighted(keywordFound int) []Weighted {
	return []Weighted{
		{Result: check.Result{Name: check.NameKeywords, Found: keywordFound, Total: 6, Passed: keywordFound == 6}, Weight: 0.15, Mode: check.ModeRatio},
		{Result: check.Result{Name: check.NameForbidden, Passed: true}, Weight: 0.20, Mode: check.ModeBoolean},
		{Result: check.Result{Name: check.NameSellingPoints, Found: 11, Total: 11, Passed: true}, Weight: 0.30, Mode: check.ModeRatio},
		{Result: check.Result{Name: check.NameStructure, Found: 2, Total: 2, Passed: true}, Weight: 0.15, Mode: check.ModeRatio},
		{Result: check.Result{Name: check.NameHashtags, Found: 8, Total: 8, Passed: true}, Weight: 0.20, Mode: check.ModeRatio},
	}
}

func TestAggregateAllPassing(t *testing.T) {
	s := Aggregate(canonicalWeighted(6))

	assert.Equal(t, 100.0, s.Objective)
	assert.Equal(t, 77.0, s.Subjective)
	// 100*0.6 + 77*0.4 = 90.8
	assert.Equal(t, 90.8, s.Total)
}

func TestAggregatePartialStructureCredit(t *testing.T) {
	// Four checkers fully passing, structure at 1/2: objective should be
	// (0.15 + 0.20 + 0.30 + 0.5*0.15 + 0.20) * 100 = 92.5.
	weighted := canonicalWeighted(6)
	weighted[3].Result = check.Result{Name: check.NameStructure, Found: 1, Total: 2, Passed: false}

	s := Aggregate(weighted)
	assert.Equal(t, 92.5, s.Objective)
}

func TestAggregateForbiddenFailureCostsFullWeight(t *testing.T) {
	weighted := canonicalWeighted(6)
	weighted[1].Result = check.Result{
		Name:   check.NameForbidden,
		Passed: false,
		Issues: []string{"one violation"},
	}

	s := Aggregate(weighted)
	assert.Equal(t, 80.0, s.Objective, "boolean mode is all-or-nothing")
}

func TestAggregateMonotonicity(t *testing.T) {
	// Improving a single checker's found count must not decrease the
	// objective score.
	prev := -1.0
	for found := 0; found <= 6; found++ {
		s := Aggregate(canonicalWeighted(found))
		assert.GreaterOrEqual(t, s.Objective, prev,
			"objective score decreased when found went from %d to %d", found-1, found)
		prev = s.Objective
	}
}

func TestAggregateRoundsToOneDecimal(t *testing.T) {
	// keywords 1/6 → 0.15/6 = 0.025 contribution; objective
	// (0.025+0.20+0.30+0.15+0.20)*100 = 87.5.
	weighted := canonicalWeighted(1)
	s := Aggregate(weighted)
	assert.Equal(t, 87.5, s.Objective)
	assert.Equal(t, 83.3, s.Total) // 87.5*0.6 + 77*0.4 = 52.5 + 30.8 = 83.3
}

func TestSubjectiveBreakdownPlaceholders(t *testing.T) {
	s := Aggregate(canonicalWeighted(6))
	assert.Equal(t, Subjective{
		Professional: 80,
		Tone:         75,
		Naturalness:  70,
		Emotion:      75,
		Originality:  85,
	}, s.Breakdown)
}

func TestVerdictFromScore(t *testing.T) {
	tests := []struct {
		score float64
		want  Verdict
	}{
		{95, VerdictExcellent},
		{90, VerdictExcellent},
		{89.9, VerdictGood},
		{75, VerdictGood},
		{74.9, VerdictNeedsWork},
		{60, VerdictNeedsWork},
		{59.9, VerdictNeedsRedo},
		{0, VerdictNeedsRedo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VerdictFromScore(tt.score), "score %.1f", tt.score)
	}
}

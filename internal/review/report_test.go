package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotcommander/copycheck/internal/check"
)

func TestGoodPointsSellingPointThreshold(t *testing.T) {
	tests := []struct {
		name  string
		found int
		total int
		want  bool
	}{
		{"complete coverage", 10, 10, true},
		{"exactly at threshold", 8, 10, true},
		{"just below threshold", 7, 10, false},
		{"nothing found", 0, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := []check.Result{{
				Name:   check.NameSellingPoints,
				Found:  tt.found,
				Total:  tt.total,
				Passed: tt.found == tt.total,
			}}
			points := goodPoints(results)
			if tt.want {
				assert.Contains(t, points, "core selling points well covered")
			} else {
				assert.NotContains(t, points, "core selling points well covered")
			}
		})
	}
}

func TestGoodPointsOnlyForPassingChecks(t *testing.T) {
	results := []check.Result{
		{Name: check.NameKeywords, Passed: true, Found: 6, Total: 6},
		{Name: check.NameForbidden, Passed: false, Issues: []string{"x"}},
		{Name: check.NameStructure, Passed: false, Found: 1, Total: 2},
		{Name: check.NameHashtags, Passed: true, Found: 8, Total: 8},
	}
	points := goodPoints(results)
	assert.Equal(t, []string{
		"complete keyword coverage",
		"all required hashtags present",
	}, points)
}

func TestResultFor(t *testing.T) {
	report := &Report{Results: []check.Result{
		{Name: check.NameKeywords, Passed: true},
	}}

	res, ok := report.ResultFor(check.NameKeywords)
	assert.True(t, ok)
	assert.Equal(t, check.NameKeywords, res.Name)

	_, ok = report.ResultFor(check.NameForbidden)
	assert.False(t, ok)
}

package review

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/copycheck/internal/check"
	"github.com/dotcommander/copycheck/internal/rules"
)

// compliantDraft builds a draft that satisfies every rule in the embedded
// default rulebook.
func compliantDraft(t *testing.T) string {
	t.Helper()
	rs := rules.Default()

	var lines []string
	lines = append(lines, "新手爸妈的适度水解防敏科普来啦")
	lines = append(lines, "能恩全护是我家宝宝的选择")
	for _, category := range []string{"防敏水解技术", "自护力", "基础营养"} {
		phrases, ok := rs.LockedSellingPoints[category]
		require.True(t, ok, "default rulebook category %s", category)
		lines = append(lines, phrases...)
	}
	tags := append([]string{}, rs.RequiredHashtags...)
	tags = append(tags, "#宝宝喂养", "#母婴好物")
	lines = append(lines, strings.Join(tags, " "))

	return strings.Join(lines, "\n")
}

func TestRunCompliantDraft(t *testing.T) {
	report, err := Run(compliantDraft(t), rules.Default(), Identity{
		Subject:  "小红薯妈妈",
		Version:  "V2",
		Reviewer: "客户",
	})
	require.NoError(t, err)

	require.Len(t, report.Results, 5)
	for _, res := range report.Results {
		assert.True(t, res.Passed, "%s should pass: %v", res.Name, res.Issues)
	}
	assert.True(t, report.Passed())

	assert.Equal(t, 100.0, report.Scores.Objective)
	assert.Equal(t, 77.0, report.Scores.Subjective)
	assert.Equal(t, 90.8, report.Scores.Total)
	assert.EqualValues(t, "excellent", report.Verdict)

	assert.Equal(t, []string{
		"complete keyword coverage",
		"no forbidden terms",
		"core selling points well covered",
		"structure within limits",
		"all required hashtags present",
	}, report.GoodPoints)

	assert.Equal(t, "小红薯妈妈", report.Identity.Subject)
	assert.Equal(t, "能恩全护", report.Project.Brand)
}

func TestRunOverlongBodyFailsOnlyWordCount(t *testing.T) {
	// All rules satisfied except the body grows past 900 CJK characters:
	// only the word-count sub-check fails, yielding half structure credit.
	draft := compliantDraft(t) + "\n" + strings.Repeat("水", 900)

	report, err := Run(draft, rules.Default(), Identity{})
	require.NoError(t, err)

	structure, ok := report.ResultFor(check.NameStructure)
	require.True(t, ok)
	assert.False(t, structure.Passed)
	assert.Equal(t, 1, structure.Found)

	wc := structure.Details[0].(check.StructureDetail)
	assert.Equal(t, check.ItemWordCount, wc.Item)
	assert.False(t, wc.OK)
	assert.Greater(t, wc.Value, 900)

	for _, name := range []string{check.NameKeywords, check.NameForbidden, check.NameSellingPoints, check.NameHashtags} {
		res, ok := report.ResultFor(name)
		require.True(t, ok)
		assert.True(t, res.Passed, "%s should still pass", name)
	}

	// 0.15 + 0.20 + 0.30 + 0.5*0.15 + 0.20 = 0.925
	assert.Equal(t, 92.5, report.Scores.Objective)
	assert.Equal(t, 86.3, report.Scores.Total)
	assert.EqualValues(t, "good", report.Verdict)
}

func TestRunIdempotent(t *testing.T) {
	draft := compliantDraft(t) + "\n新生儿不该出现"

	first, err := Run(draft, rules.Default(), Identity{Subject: "a"})
	require.NoError(t, err)
	second, err := Run(draft, rules.Default(), Identity{Subject: "a"})
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON, "same inputs must yield byte-identical reports")
}

func TestRunEmptyDraft(t *testing.T) {
	for _, draft := range []string{"", "   \n\t  "} {
		_, err := Run(draft, rules.Default(), Identity{})
		assert.ErrorIs(t, err, ErrEmptyDraft)
	}
}

func TestRunNilRuleSet(t *testing.T) {
	_, err := Run("正文", nil, Identity{})
	var cfgErr *rules.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestRunMisconfiguredWeights(t *testing.T) {
	rs := rules.Default()
	rs.Weights.Hashtags = 0.15 // sum 0.95

	_, err := Run("正文内容", rs, Identity{})
	var cfgErr *rules.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "weights", cfgErr.Field)
}

func TestRunFailingDraftIsNotAnError(t *testing.T) {
	// A draft violating every rule still produces a full report: failing
	// the review is a modeled outcome, not an engine error.
	report, err := Run("新生儿都说这是最好的", rules.Default(), Identity{})
	require.NoError(t, err)

	assert.False(t, report.Passed())
	forbidden, ok := report.ResultFor(check.NameForbidden)
	require.True(t, ok)
	assert.False(t, forbidden.Passed)
	assert.NotEmpty(t, forbidden.Issues)
	assert.Less(t, report.Scores.Objective, 50.0)
}

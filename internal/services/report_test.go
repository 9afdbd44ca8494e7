package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/models"
)

func analysisFixture(score float64, matched, missing []string) *models.AnalysisResult {
	return &models.AnalysisResult{
		MatchPercentage: score,
		MatchedSkills:   matched,
		MissingSkills:   missing,
	}
}

func TestHireSummaryFitTiers(t *testing.T) {
	report := NewReportService()

	tests := []struct {
		name       string
		score      float64
		wantLabel  string
		wantAdvice string
	}{
		{"strong", 80.0, "a strong fit", "proceeding to the interview stage"},
		{"strong boundary", 75.0, "a strong fit", "proceeding to the interview stage"},
		{"moderate boundary", 50.0, "a moderate fit", "screening call to assess the skill gaps"},
		{"weak just below boundary", 49.99, "a weak fit", "significant upskilling"},
		{"weak", 12.5, "a weak fit", "significant upskilling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := report.HireSummary(analysisFixture(tt.score, []string{"python"}, nil))
			assert.Contains(t, summary, tt.wantLabel)
			assert.Contains(t, summary, tt.wantAdvice)
		})
	}
}

func TestHireSummaryPreviewsSkillsAndGaps(t *testing.T) {
	report := NewReportService()

	matched := []string{"python", "docker", "kubernetes", "golang", "terraform", "ansible", "linux"}
	missing := []string{"rust", "kafka", "redis", "grafana"}

	summary := report.HireSummary(analysisFixture(62.5, matched, missing))

	assert.Contains(t, summary, "62.5% match")
	// Only the first 5 matched skills are shown.
	assert.Contains(t, summary, "python, docker, kubernetes, golang, terraform")
	assert.NotContains(t, summary, "ansible")
	// Only the first 3 gaps are shown.
	assert.Contains(t, summary, "Notable gaps include: rust, kafka, redis.")
	assert.NotContains(t, summary, "grafana")
}

func TestHireSummaryHandlesEmptyLists(t *testing.T) {
	report := NewReportService()

	summary := report.HireSummary(analysisFixture(30.0, nil, nil))
	assert.Contains(t, summary, "limited overlap with the required skill set")
	assert.Contains(t, summary, "No significant skill gaps were detected.")
}

func TestImprovementsUsesAdviceTable(t *testing.T) {
	report := NewReportService()

	result := analysisFixture(40.0, nil, []string{"python", "docker", "quantum"})
	improvements := report.Improvements(result)

	require.Len(t, improvements, 3)
	assert.Contains(t, improvements[0], "Python")
	assert.Contains(t, improvements[1], "Docker")
	// Unknown terms fall back to the generic template naming the term.
	assert.Contains(t, improvements[2], "'quantum'")
	assert.Contains(t, improvements[2], "projects, coursework, or certifications")
}

func TestImprovementsFirstMatchWins(t *testing.T) {
	// "javascript" contains "java", and the java entry sits earlier in
	// the ordered table, so it wins.
	advice := adviceFor("javascript")
	assert.Contains(t, advice, "Java experience")
}

func TestImprovementsEmptyMissingGivesSinglePositiveMessage(t *testing.T) {
	report := NewReportService()

	improvements := report.Improvements(analysisFixture(95.0, []string{"python"}, nil))

	require.Len(t, improvements, 1)
	assert.Contains(t, improvements[0], "well-aligned")
}

package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/models"
)

func resumeFixture(words int) string {
	base := "John Doe\n" +
		"john.doe@example.com | +1 555-123-4567 | linkedin.com/in/johndoe\n" +
		"Summary\nExperienced backend engineer.\n" +
		"Experience\nAcme Corp, 2019-2024.\n" +
		"Education\nBachelor of Science, State University.\n" +
		"Skills\nGo, Python, PostgreSQL.\n" +
		"Projects\nBuilt an internal search service.\n"

	padding := words - len(strings.Fields(base))
	if padding > 0 {
		base += strings.Repeat("golang ", padding)
	}
	return base
}

func jdFixture() string {
	return "Job Description: Backend Engineer\n" +
		"We are looking for an engineer to join our team.\n" +
		"Responsibilities\nDesign and build backend services.\n" +
		"Requirements\n5+ years of experience with Go.\n" +
		"Qualifications\nBachelor's degree preferred.\n" +
		"Benefits\nWe offer a salary of $150,000 per year. Apply now."
}

func TestValidateResumeRejectsWrongDocumentType(t *testing.T) {
	classifier := NewClassifierService()

	doc := models.NewRawDocument(
		"This is a recipe for chocolate cake with flour, sugar, and butter. Bake at 350 degrees.",
		models.LabelResume,
	)

	err := classifier.ValidateResume(doc)
	require.Error(t, err)

	ce, ok := AsClassificationError(err)
	require.True(t, ok)
	assert.Equal(t, LayerKeywordSignal, ce.Layer)
	assert.Equal(t, "insufficient_signal_keywords", ce.Reason)
	assert.Contains(t, ce.Message, "minimum required: 4")
}

func TestValidateResumePassesRealResume(t *testing.T) {
	classifier := NewClassifierService()

	doc := models.NewRawDocument(resumeFixture(500), models.LabelResume)
	require.Equal(t, 500, doc.WordCount)

	assert.NoError(t, classifier.ValidateResume(doc))
}

func TestValidateResumeRejectsOverlongDocument(t *testing.T) {
	classifier := NewClassifierService()

	doc := models.NewRawDocument(resumeFixture(3500), models.LabelResume)

	err := classifier.ValidateResume(doc)
	require.Error(t, err)

	ce, ok := AsClassificationError(err)
	require.True(t, ok)
	assert.Equal(t, LayerStructural, ce.Layer)
	assert.Equal(t, "too_long", ce.Reason)
	assert.Contains(t, ce.Message, "3500 words")
	assert.Contains(t, ce.Message, "3000 words")
}

func TestValidateResumeRequiresContactMarker(t *testing.T) {
	classifier := NewClassifierService()

	// Plenty of resume signals but no email, phone, or profile URL.
	text := "Summary of experience. Education and skills. Projects and certifications. Volunteer work."
	doc := models.NewRawDocument(text, models.LabelResume)

	err := classifier.ValidateResume(doc)
	require.Error(t, err)

	ce, ok := AsClassificationError(err)
	require.True(t, ok)
	assert.Equal(t, "missing_contact_info", ce.Reason)
	assert.Contains(t, ce.Message, "No contact information was detected")
}

func TestValidateJobDescriptionPasses(t *testing.T) {
	classifier := NewClassifierService()

	doc := models.NewRawDocument(jdFixture(), models.LabelJobDescription)
	assert.NoError(t, classifier.ValidateJobDescription(doc))
}

func TestValidateJobDescriptionCrossCheckCatchesSwappedResume(t *testing.T) {
	classifier := NewClassifierService()

	// A short document with contact details in the JD slot: the user
	// swapped the upload slots. It carries enough generic vocabulary
	// ("experience", "role", "team", "company", "hiring") to clear
	// Layer A, so the structural cross-check is what catches it.
	text := "Jane Smith — jane.smith@example.com\n" +
		"Experienced engineer seeking a senior backend role. " +
		"Worked with a platform team at a fintech company and led hiring panels.\n" +
		strings.Repeat("golang ", 260)
	doc := models.NewRawDocument(text, models.LabelJobDescription)
	require.LessOrEqual(t, doc.WordCount, 1200)

	err := classifier.ValidateJobDescription(doc)
	require.Error(t, err)

	ce, ok := AsClassificationError(err)
	require.True(t, ok)
	assert.Equal(t, LayerStructural, ce.Layer)
	assert.Equal(t, "looks_like_resume", ce.Reason)
	assert.Contains(t, ce.Message, "appears to be a Resume")
}

func TestValidateJobDescriptionRequiresPositiveSignal(t *testing.T) {
	classifier := NewClassifierService()

	// Enough Layer A keywords ("role", "position", "hiring", "team",
	// "company"), but none of the structural phrases, no years-of-
	// experience expression, and no compensation signal.
	text := "This role is an open position. We are hiring for our team at a growing company. " +
		strings.Repeat("grow ", 40)
	doc := models.NewRawDocument(text, models.LabelJobDescription)

	err := classifier.ValidateJobDescription(doc)
	require.Error(t, err)

	ce, ok := AsClassificationError(err)
	require.True(t, ok)
	assert.Equal(t, "missing_jd_markers", ce.Reason)
}

func TestHasContactMarker(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"email", "reach me at jane_smith+jobs@mail.example.org today", true},
		{"phone international", "call +91 98765 43210 anytime", true},
		{"phone dashed", "tel: 555-123-4567", true},
		{"linkedin", "see linkedin.com/in/jane-smith", true},
		{"github", "code at github.com/janesmith", true},
		{"none", "no personal details in this text", false},
		{"short digit run", "version 1.2.3 released", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasContactMarker(tt.text))
		})
	}
}

func TestHasYearsOfExperience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"simple", "3 years of experience required", true},
		{"plus", "5+ years of experience with go", true},
		{"range", "2 to 4 years of experience", true},
		{"qualified", "7 years of professional experience", true},
		{"absent", "years of hard work went into this", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasYearsOfExperience(tt.text))
		})
	}
}

func TestHasCompensationSignal(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"dollar amount", "base pay is $120,000", true},
		{"lpa", "ctc up to 18 lpa", true},
		{"per annum", "850000 per annum", true},
		{"k suffix", "up to 90k depending on level", true},
		{"no signal", "competitive compensation offered", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasCompensationSignal(tt.text))
		})
	}
}

func TestCountJDPhrases(t *testing.T) {
	text := "requirements and qualifications are listed below. what you'll do: build things."
	assert.Equal(t, 3, countJDPhrases(text))

	assert.Equal(t, 0, countJDPhrases("a plain paragraph with no section headers"))
}

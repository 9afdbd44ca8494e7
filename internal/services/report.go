package services

import (
	"fmt"
	"strings"

	"resume-analyzer/internal/models"
)

// ReportService turns an analysis result into role-specific narrative
// output. Everything here is template-based and deterministic.
type ReportService interface {
	HireSummary(result *models.AnalysisResult) string
	Improvements(result *models.AnalysisResult) []string
}

// skillAdvice pairs a keyword with its tailored advice template. The table
// is an ordered list evaluated first-match-wins so the behavior does not
// depend on map iteration order.
type skillAdvice struct {
	keyword string
	advice  string
}

var skillAdviceTable = []skillAdvice{
	// Languages & frameworks
	{"python", "Add Python projects or certifications (e.g. Python Institute PCEP/PCAP) to your resume."},
	{"sql", "Highlight SQL experience — include any database projects or query optimization work."},
	{"java", "Showcase Java experience; consider adding a Spring Boot or Android project."},
	{"javascript", "Include JavaScript projects; frameworks like React or Node.js are highly valued."},
	{"react", "Add a React project to your portfolio or mention any component-library experience."},
	{"docker", "Get hands-on with Docker: containerize one of your existing projects and document it."},
	{"kubernetes", "Add Kubernetes to your skill set — 'CKA' certification is widely recognized."},
	{"aws", "Pursue an AWS Cloud Practitioner certification and include any cloud projects."},
	{"azure", "Add Azure experience; Microsoft's AZ-900 certification is a good starting point."},
	{"git", "Ensure your GitHub profile is active and link it in your resume."},
	{"machine learning", "Add an ML project (e.g. Kaggle competition) or an online course certificate."},
	{"deep learning", "Highlight any neural-network projects; mention frameworks like TensorFlow or PyTorch."},
	{"nlp", "Add NLP work — even a sentiment analysis or text classification project counts."},
	{"agile", "Mention Agile/Scrum experience in your work history or list a relevant certification."},
	{"api", "Highlight any REST API design or consumption experience in your project descriptions."},
	// Soft / generic skills
	{"communication", "Strengthen your resume with examples of cross-functional collaboration or presentations."},
	{"leadership", "Include any mentoring, team-lead, or project-ownership experience."},
	{"management", "Add examples of project or people management responsibilities to your experience section."},
}

type reportService struct{}

func NewReportService() ReportService {
	return &reportService{}
}

// HireSummary builds the recruiter narrative: fit tier from the match
// percentage, up to five matched skills, up to three notable gaps, and the
// tier's recommendation.
func (s *reportService) HireSummary(result *models.AnalysisResult) string {
	score := result.MatchPercentage

	var fitLabel, recommendation string
	switch {
	case score >= 75:
		fitLabel = "a strong fit"
		recommendation = "We recommend proceeding to the interview stage."
	case score >= 50:
		fitLabel = "a moderate fit"
		recommendation = "Consider a screening call to assess the skill gaps."
	default:
		fitLabel = "a weak fit"
		recommendation = "The candidate may need significant upskilling before being considered."
	}

	matchedClause := "with limited overlap with the required skill set"
	if len(result.MatchedSkills) > 0 {
		preview := result.MatchedSkills
		if len(preview) > 5 {
			preview = preview[:5]
		}
		matchedClause = fmt.Sprintf("demonstrating proficiency in: %s", strings.Join(preview, ", "))
	}

	gapClause := "No significant skill gaps were detected."
	if len(result.MissingSkills) > 0 {
		preview := result.MissingSkills
		if len(preview) > 3 {
			preview = preview[:3]
		}
		gapClause = fmt.Sprintf("Notable gaps include: %s.", strings.Join(preview, ", "))
	}

	return fmt.Sprintf(
		"This candidate is %s for the role (%.1f%% match), %s. %s %s",
		fitLabel, score, matchedClause, gapClause, recommendation,
	)
}

// Improvements produces one advice string per missing skill, in the same
// order, via a case-insensitive substring lookup against the advice table.
// With nothing missing it returns a single positive message, never an
// empty list.
func (s *reportService) Improvements(result *models.AnalysisResult) []string {
	if len(result.MissingSkills) == 0 {
		return []string{"Your resume is well-aligned with this job description. No critical gaps detected!"}
	}

	improvements := make([]string, 0, len(result.MissingSkills))
	for _, skill := range result.MissingSkills {
		improvements = append(improvements, adviceFor(skill))
	}
	return improvements
}

func adviceFor(skill string) string {
	lowered := strings.ToLower(skill)
	for _, entry := range skillAdviceTable {
		if strings.Contains(lowered, entry.keyword) {
			return entry.advice
		}
	}
	return fmt.Sprintf(
		"Your resume is missing '%s' — add relevant projects, coursework, or certifications that demonstrate this skill.",
		skill,
	)
}

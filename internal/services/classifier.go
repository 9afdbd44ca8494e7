package services

import (
	"fmt"
	"regexp"
	"strings"

	"resume-analyzer/internal/models"
)

// ClassifierService heuristically verifies that each uploaded text really
// is the kind of document its slot claims. Two layers run per document:
// Layer A counts domain signal keywords, Layer B applies structural regex
// checks. Both operate on the raw lowercased text, because normalization
// strips the section headers and punctuation that carry the signal.
type ClassifierService interface {
	ValidateResume(doc models.RawDocument) error
	ValidateJobDescription(doc models.RawDocument) error
}

// Keywords that strongly signal a genuine resume. Matched as substrings of
// the raw lowercased text so "5+ years of experience" still hits
// "experience".
var resumeSignalKeywords = []string{
	"experience",
	"education",
	"skills",
	"projects",
	"university",
	"college",
	"employment",
	"work history",
	"certifications",
	"summary",
	"objective",
	"internship",
	"volunteer",
	"bachelor",
	"master",
	"degree",
	"gpa",
	"resume",
	"cv",
	"curriculum vitae",
}

// Keywords that strongly signal a genuine job description.
var jdSignalKeywords = []string{
	"requirements",
	"qualifications",
	"responsibilities",
	"role",
	"experience",
	"job description",
	"we are looking",
	"you will",
	"must have",
	"nice to have",
	"preferred",
	"position",
	"hiring",
	"salary",
	"benefits",
	"team",
	"company",
	"employer",
	"apply",
}

const (
	// minSignalMatches is the minimum number of signal keywords a document
	// must contain to pass Layer A.
	minSignalMatches = 4

	// resumeMaxWords rules out multi-page reports or JDs uploaded in the
	// resume slot. Resumes are typically 200-800 words, up to ~2000 for
	// senior engineers.
	resumeMaxWords = 3000

	// jdCrossCheckMaxWords: a document in the JD slot that is this short
	// AND carries personal contact details is almost certainly a resume
	// uploaded in the wrong slot. Deliberately looser than resumeMaxWords.
	jdCrossCheckMaxWords = 1200

	// jdMinStructuralPhrases is how many of the JD phrase patterns must
	// match for the phrase route of the positive-signal check.
	jdMinStructuralPhrases = 2
)

var (
	reEmail    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	rePhone    = regexp.MustCompile(`\+?\d[\d\s\-.]{7,}\d`)
	reLinkedIn = regexp.MustCompile(`linkedin\.com/in/[\w\-]+`)
	reGitHub   = regexp.MustCompile(`github\.com/[\w\-]+`)

	// "X+ years of experience" / "X to Y years of experience" — the single
	// most reliable structural marker of a JD.
	reYearsExp = regexp.MustCompile(`\d+\+?\s*(?:to\s*\d+\s*)?years?\s+of\s+(?:\w+\s+)?experience`)

	// Currency symbol plus digits, or digits plus a compensation unit.
	reSalary = regexp.MustCompile(`\$[\d,]+|\d[\d,]+\s*(?:usd|lpa|lakh|per\s+annum|per\s+year|per\s+month|k\b)`)

	jdStructuralPhrases = []*regexp.Regexp{
		regexp.MustCompile(`\brequirements\b`),
		regexp.MustCompile(`\bqualifications\b`),
		regexp.MustCompile(`\bresponsibilities\b`),
		regexp.MustCompile(`\bwhat you.ll do\b`),
		regexp.MustCompile(`\bwhat we.re looking\b`),
		regexp.MustCompile(`\bjob\s+description\b`),
		regexp.MustCompile(`\bequal opportunity\b`),
		regexp.MustCompile(`\bwe offer\b`),
		regexp.MustCompile(`\bbenefits\b`),
		regexp.MustCompile(`\bapply now\b`),
	}
)

type classifierService struct{}

func NewClassifierService() ClassifierService {
	return &classifierService{}
}

// ValidateResume runs both layers against a document in the resume slot.
func (s *classifierService) ValidateResume(doc models.RawDocument) error {
	lowered := strings.ToLower(doc.Text)

	if err := checkSignalKeywords(lowered, resumeSignalKeywords, doc.Label); err != nil {
		return err
	}

	if doc.WordCount > resumeMaxWords {
		return &ClassificationError{
			Label:  doc.Label,
			Layer:  LayerStructural,
			Reason: "too_long",
			Message: fmt.Sprintf(
				"This document does not appear to be a valid Resume. It contains %d words, which exceeds the maximum expected length for a resume (%d words). Please upload a standard 1-2 page resume.",
				doc.WordCount, resumeMaxWords,
			),
		}
	}

	if !hasContactMarker(lowered) {
		return &ClassificationError{
			Label:  doc.Label,
			Layer:  LayerStructural,
			Reason: "missing_contact_info",
			Message: "This document does not appear to be a valid Resume. " +
				"No contact information was detected (email address, phone number, LinkedIn profile, or GitHub URL). " +
				"Please upload a resume that includes your contact details.",
		}
	}

	return nil
}

// ValidateJobDescription runs both layers against a document in the JD
// slot. The structural layer first cross-checks for a swapped resume, then
// requires at least one positive JD signal.
func (s *classifierService) ValidateJobDescription(doc models.RawDocument) error {
	lowered := strings.ToLower(doc.Text)

	if err := checkSignalKeywords(lowered, jdSignalKeywords, doc.Label); err != nil {
		return err
	}

	// Cross-check: evaluated on its own, not by calling the resume rules.
	if doc.WordCount <= jdCrossCheckMaxWords && hasContactMarker(lowered) {
		return &ClassificationError{
			Label:  doc.Label,
			Layer:  LayerStructural,
			Reason: "looks_like_resume",
			Message: fmt.Sprintf(
				"The file uploaded as a Job Description appears to be a Resume (it is %d words long and contains personal contact information). Please check that you uploaded the files in the correct slots.",
				doc.WordCount,
			),
		}
	}

	phraseHits := countJDPhrases(lowered)
	if phraseHits < jdMinStructuralPhrases && !hasYearsOfExperience(lowered) && !hasCompensationSignal(lowered) {
		return &ClassificationError{
			Label:  doc.Label,
			Layer:  LayerStructural,
			Reason: "missing_jd_markers",
			Message: "This document does not appear to be a valid Job Description. " +
				"None of the expected structural markers were detected (e.g. 'requirements', 'qualifications', 'X years of experience', salary information). " +
				"Please upload a real Job Description.",
		}
	}

	return nil
}

// checkSignalKeywords is Layer A: count how many vocabulary terms appear as
// substrings of the lowered text and reject below the threshold.
func checkSignalKeywords(lowered string, keywords []string, label models.DocumentLabel) error {
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			matched++
		}
	}

	if matched < minSignalMatches {
		return &ClassificationError{
			Label:  label,
			Layer:  LayerKeywordSignal,
			Reason: "insufficient_signal_keywords",
			Message: fmt.Sprintf(
				"The uploaded file does not look like a valid %s. Only %d of the expected section keywords were detected (minimum required: %d). Please upload a real %s.",
				label, matched, minSignalMatches, label,
			),
		}
	}

	return nil
}

// hasContactMarker reports whether the lowered text contains an email
// address, a phone number, a LinkedIn profile, or a GitHub URL.
func hasContactMarker(lowered string) bool {
	return reEmail.MatchString(lowered) ||
		rePhone.MatchString(lowered) ||
		reLinkedIn.MatchString(lowered) ||
		reGitHub.MatchString(lowered)
}

func hasYearsOfExperience(lowered string) bool {
	return reYearsExp.MatchString(lowered)
}

func hasCompensationSignal(lowered string) bool {
	return reSalary.MatchString(lowered)
}

func countJDPhrases(lowered string) int {
	hits := 0
	for _, pattern := range jdStructuralPhrases {
		if pattern.MatchString(lowered) {
			hits++
		}
	}
	return hits
}

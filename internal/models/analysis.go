package models

import "strings"

// DocumentLabel names which upload slot a raw text is expected to fill.
// It is used by the classifier for error messages and signal selection.
type DocumentLabel string

const (
	LabelResume         DocumentLabel = "Resume"
	LabelJobDescription DocumentLabel = "Job Description"
)

// RawDocument is the extracted text of one uploaded file, before any
// normalization. Immutable and request-scoped.
type RawDocument struct {
	Text      string
	WordCount int
	Label     DocumentLabel
}

// NewRawDocument builds a RawDocument; WordCount is the number of
// whitespace-delimited units in text.
func NewRawDocument(text string, label DocumentLabel) RawDocument {
	return RawDocument{
		Text:      text,
		WordCount: len(strings.Fields(text)),
		Label:     label,
	}
}

// NormalizedDocument is the cleaned, stopword-filtered, lemmatized token
// stream derived from a RawDocument. Token order is preserved.
type NormalizedDocument struct {
	Tokens []string
}

func (d NormalizedDocument) IsEmpty() bool {
	return len(d.Tokens) == 0
}

// Text joins the tokens back into a single space-separated string.
func (d NormalizedDocument) Text() string {
	return strings.Join(d.Tokens, " ")
}

// AnalysisResult is the role-agnostic output of the analyzer. The handler
// shapes it into a recruiter or applier response; it is never persisted.
type AnalysisResult struct {
	MatchPercentage float64
	MatchedSkills   []string
	MissingSkills   []string
	ResumeClean     NormalizedDocument
	JDClean         NormalizedDocument
}

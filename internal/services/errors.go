package services

import (
	"errors"

	"resume-analyzer/internal/models"
)

var (
	// ErrNoExtractableText means the file opened fine but yielded no text,
	// e.g. a scanned image-only PDF.
	ErrNoExtractableText = errors.New("no extractable text found: the document may be image-based (scanned); please upload a text-selectable file")

	// ErrEmptyInput is an upstream-contract violation: the normalizer was
	// handed an empty or blank raw text.
	ErrEmptyInput = errors.New("input text must be a non-empty string")

	// ErrInsufficientContent means one or both normalized token streams are
	// empty, so no meaningful score exists. This is distinct from a
	// legitimate 0% match and must never be reported as one.
	ErrInsufficientContent = errors.New("not enough content after preprocessing to compute a match score")
)

// ClassificationLayer identifies which validation layer rejected a document.
type ClassificationLayer string

const (
	LayerKeywordSignal ClassificationLayer = "keyword_signal"
	LayerStructural    ClassificationLayer = "structural"
)

// ClassificationError is a rejection from the document intent classifier.
// Message is user-facing and states what was expected, what was found, and
// the relevant thresholds.
type ClassificationError struct {
	Label   models.DocumentLabel
	Layer   ClassificationLayer
	Reason  string
	Message string
}

func (e *ClassificationError) Error() string {
	return e.Message
}

// AsClassificationError unwraps err into a *ClassificationError if it is one.
func AsClassificationError(err error) (*ClassificationError, bool) {
	var ce *ClassificationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

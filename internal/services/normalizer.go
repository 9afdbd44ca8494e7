package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"

	"resume-analyzer/internal/models"
)

// NormalizerService turns raw extracted text into a clean token stream.
// The pipeline is fixed and deterministic: lowercase, strip CID font
// artifacts, strip punctuation, strip lone numbers, tokenize, remove
// stopwords, drop garbage tokens, lemmatize. Any text yields a (possibly
// empty) stream; only empty raw input is an error.
type NormalizerService interface {
	Clean(raw string) (models.NormalizedDocument, error)
}

var (
	// CID artifacts like "cid127" are font character-identifier leftovers
	// that PDF extraction occasionally leaks through. Replaced with a
	// space, not deleted, so adjacent tokens do not fuse.
	reCIDArtifact = regexp.MustCompile(`\bcid\d+\b`)

	reLoneNumber  = regexp.MustCompile(`\b\d+\b`)
	reWhitespace  = regexp.MustCompile(`\s+`)
	reASCIILetter = regexp.MustCompile(`[a-z]`)
)

// asciiPunctuation matches Python's string.punctuation set.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

type normalizerService struct {
	lemmatizer *golem.Lemmatizer
	lemmatize  bool
}

// NewNormalizerService loads the English lemmatizer dictionary once.
func NewNormalizerService() (NormalizerService, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load lemmatizer dictionary: %w", err)
	}

	return &normalizerService{
		lemmatizer: lemmatizer,
		lemmatize:  true,
	}, nil
}

func (s *normalizerService) Clean(raw string) (models.NormalizedDocument, error) {
	if strings.TrimSpace(raw) == "" {
		return models.NormalizedDocument{}, ErrEmptyInput
	}

	text := strings.ToLower(raw)
	text = reCIDArtifact.ReplaceAllString(text, " ")
	text = stripPunctuation(text)
	text = reLoneNumber.ReplaceAllString(text, " ")
	text = strings.TrimSpace(reWhitespace.ReplaceAllString(text, " "))

	tokens := make([]string, 0, len(text)/5)
	for _, token := range strings.Fields(text) {
		if isStopword(token) {
			continue
		}
		if !isValidToken(token) {
			continue
		}
		if s.lemmatize {
			token = s.lemmatizer.Lemma(token)
		}
		tokens = append(tokens, token)
	}

	return models.NormalizedDocument{Tokens: tokens}, nil
}

func stripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if r < 128 && strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, text)
}

// isValidToken is the single choke-point for artifact rejection. It judges
// token shape only, never meaning, so compound technical terms survive.
// Rules, all of which must hold:
//   - length between 2 and 40 characters inclusive
//   - at least one ASCII letter
//   - non-ASCII character ratio at most 0.60
//   - not a CID artifact that re-emerged after punctuation removal
func isValidToken(token string) bool {
	runes := []rune(token)

	if len(runes) < 2 || len(runes) > 40 {
		return false
	}

	if !reASCIILetter.MatchString(token) {
		return false
	}

	nonASCII := 0
	for _, r := range runes {
		if r > 127 {
			nonASCII++
		}
	}
	if float64(nonASCII)/float64(len(runes)) > 0.60 {
		return false
	}

	if reCIDArtifact.MatchString(token) {
		return false
	}

	return true
}

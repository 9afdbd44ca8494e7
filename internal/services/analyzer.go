package services

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"resume-analyzer/internal/models"
)

// AnalyzerService is the similarity and gap engine. It scores two
// normalized documents against each other and partitions the job
// description's top keywords into matched and missing skills.
type AnalyzerService interface {
	Run(resume, jd models.NormalizedDocument) (*models.AnalysisResult, error)
}

// topKeywordCount is how many JD keywords are surfaced for gap analysis.
const topKeywordCount = 20

type analyzerService struct{}

func NewAnalyzerService() AnalyzerService {
	return &analyzerService{}
}

func (a *analyzerService) Run(resume, jd models.NormalizedDocument) (*models.AnalysisResult, error) {
	// A 0% from "no overlap" and a 0% from "no data" are different things;
	// the latter must never come back as a number.
	if resume.IsEmpty() || jd.IsEmpty() {
		return nil, ErrInsufficientContent
	}

	score := matchScore(resume.Tokens, jd.Tokens)
	matched, missing := detectKeywordGap(resume.Tokens, jd.Tokens, topKeywordCount)

	return &models.AnalysisResult{
		MatchPercentage: score,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		ResumeClean:     resume,
		JDClean:         jd,
	}, nil
}

// matchScore builds a TF-IDF weighting model over exactly the two input
// documents — the pair is its own reference corpus, so the model is
// rebuilt fresh on every call — then returns the cosine similarity of the
// two vectors as a percentage rounded to two decimals.
func matchScore(resumeTokens, jdTokens []string) float64 {
	vocab := buildVocabulary(resumeTokens, jdTokens)

	resumeVec := vectorize(resumeTokens, vocab)
	jdVec := vectorize(jdTokens, vocab)

	idf := inverseDocumentFrequencies(resumeVec, jdVec)
	applyWeights(resumeVec, idf)
	applyWeights(jdVec, idf)

	normalizeL2(resumeVec)
	normalizeL2(jdVec)

	cos := floats.Dot(resumeVec, jdVec)
	cos = math.Min(math.Max(cos, 0), 1)

	return math.Round(cos*100*100) / 100
}

// buildVocabulary assigns an index to every distinct term across both
// documents, in first-occurrence order.
func buildVocabulary(docs ...[]string) map[string]int {
	vocab := make(map[string]int)
	for _, doc := range docs {
		for _, term := range doc {
			if _, ok := vocab[term]; !ok {
				vocab[term] = len(vocab)
			}
		}
	}
	return vocab
}

func vectorize(tokens []string, vocab map[string]int) []float64 {
	vec := make([]float64, len(vocab))
	for _, term := range tokens {
		vec[vocab[term]]++
	}
	return vec
}

// inverseDocumentFrequencies computes smoothed IDF weights over the
// two-document corpus: ln((1+n)/(1+df)) + 1 with n = 2.
func inverseDocumentFrequencies(vectors ...[]float64) []float64 {
	n := len(vectors)
	idf := make([]float64, len(vectors[0]))

	for i := range idf {
		df := 0
		for _, vec := range vectors {
			if vec[i] > 0 {
				df++
			}
		}
		idf[i] = math.Log(float64(1+n)/float64(1+df)) + 1
	}
	return idf
}

func applyWeights(vec, idf []float64) {
	floats.Mul(vec, idf)
}

func normalizeL2(vec []float64) {
	norm := floats.Norm(vec, 2)
	if norm > 0 {
		floats.Scale(1/norm, vec)
	}
}

// detectKeywordGap takes the top-N most frequent JD tokens and partitions
// them by presence in the resume. Both output lists preserve the keyword
// rank order.
func detectKeywordGap(resumeTokens, jdTokens []string, topN int) (matched, missing []string) {
	keywords := topKeywords(jdTokens, topN)

	resumeSet := make(map[string]struct{}, len(resumeTokens))
	for _, token := range resumeTokens {
		resumeSet[token] = struct{}{}
	}

	matched = []string{}
	missing = []string{}
	for _, kw := range keywords {
		if _, ok := resumeSet[kw]; ok {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return matched, missing
}

// topKeywords returns the topN most frequent tokens, ties broken by first
// occurrence (stable sort over first-occurrence order).
func topKeywords(tokens []string, topN int) []string {
	counts := make(map[string]int, len(tokens))
	distinct := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if counts[token] == 0 {
			distinct = append(distinct, token)
		}
		counts[token]++
	}

	sort.SliceStable(distinct, func(i, j int) bool {
		return counts[distinct[i]] > counts[distinct[j]]
	})

	if len(distinct) > topN {
		distinct = distinct[:topN]
	}
	return distinct
}

// Package similarity scores short texts against each other with TF-IDF
// vectors and cosine similarity.
package similarity

import (
	"math"
	"regexp"
	"strings"

	"soko/internal/domain/service"
)

// tokens of two or more letters, digits or underscores
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize lower-cases text and splits it into terms.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// TFIDF fits a vocabulary on the query plus documents of each call, so
// scores are only comparable within one call.
type TFIDF struct{}

// NewTFIDF returns the scorer.
func NewTFIDF() service.SimilarityScorer {
	return TFIDF{}
}

// Scores returns the cosine similarity between query and every document,
// in document order. Raw term counts are weighted by the smoothed inverse
// document frequency ln((1+n)/(1+df))+1 and l2-normalised.
func (TFIDF) Scores(query string, docs []string) []float64 {
	scores := make([]float64, len(docs))
	if len(docs) == 0 {
		return scores
	}

	corpus := make([]map[string]float64, 0, len(docs)+1)
	corpus = append(corpus, termCounts(query))
	for _, doc := range docs {
		corpus = append(corpus, termCounts(doc))
	}

	df := make(map[string]int)
	for _, counts := range corpus {
		for term := range counts {
			df[term]++
		}
	}

	n := float64(len(corpus))
	for _, counts := range corpus {
		var norm float64
		for term, tf := range counts {
			w := tf * (math.Log((1+n)/(1+float64(df[term]))) + 1)
			counts[term] = w
			norm += w * w
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for term := range counts {
			counts[term] /= norm
		}
	}

	q := corpus[0]
	for i, doc := range corpus[1:] {
		var dot float64
		for term, w := range q {
			dot += w * doc[term]
		}
		scores[i] = dot
	}

	return scores
}

func termCounts(text string) map[string]float64 {
	counts := make(map[string]float64)
	for _, term := range Tokenize(text) {
		counts[term]++
	}

	return counts
}

// Package vector implements the TF-IDF weighting and cosine-similarity
// arithmetic used to compare workflow documents. Weights follow the
// conventional smoothed formulation: raw term count multiplied by
// ln((1+n)/(1+df))+1, with every document vector scaled to unit length.
// Each document batch is fitted independently, so vectors from
// different FitTransform calls share no vocabulary and must not be
// compared.
package vector

import (
	"math"
	"sort"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/analysis/text"
	apperrors "github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/errors"
)

// Option configures a Vectorizer.
type Option func(*Vectorizer)

// WithMaxFeatures caps the vocabulary at the n terms with the highest
// total count across the batch, ties resolved alphabetically. n <= 0
// leaves the vocabulary uncapped.
func WithMaxFeatures(n int) Option {
	return func(v *Vectorizer) { v.maxFeatures = n }
}

// WithStopwords replaces the stopword set applied while building the
// vocabulary.
func WithStopwords(set text.StopwordSet) Option {
	return func(v *Vectorizer) { v.stopwords = set }
}

// Vectorizer turns a batch of normalized documents into L2-normalized
// TF-IDF vectors over a shared alphabetical vocabulary.
type Vectorizer struct {
	maxFeatures int
	stopwords   text.StopwordSet
}

// NewVectorizer returns a Vectorizer with the default English stopword
// list and no vocabulary cap.
func NewVectorizer(opts ...Option) *Vectorizer {
	v := &Vectorizer{stopwords: text.DefaultStopwords()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// FitTransform builds the vocabulary for docs and returns it together
// with one weight vector per document. Column i of every vector holds
// the weight of vocab[i]. Documents are expected to be normalized
// already; tokenization happens here.
func (v *Vectorizer) FitTransform(docs []string) ([]string, [][]float64, error) {
	if len(docs) == 0 {
		return nil, nil, apperrors.New(apperrors.ErrCodeDegenerateCorpus, "no documents to vectorize")
	}

	counts := make([]map[string]int, len(docs))
	totals := make(map[string]int)
	docFreq := make(map[string]int)
	for i, doc := range docs {
		counts[i] = make(map[string]int)
		for _, tok := range text.Tokenize(doc) {
			if v.stopwords.Contains(tok) {
				continue
			}
			counts[i][tok]++
		}
		for tok, c := range counts[i] {
			totals[tok] += c
			docFreq[tok]++
		}
	}
	if len(totals) == 0 {
		return nil, nil, apperrors.New(apperrors.ErrCodeEmptyVocabulary, "vocabulary is empty after stopword filtering")
	}

	vocab := make([]string, 0, len(totals))
	for tok := range totals {
		vocab = append(vocab, tok)
	}
	sort.Strings(vocab)
	if v.maxFeatures > 0 && len(vocab) > v.maxFeatures {
		// Stable sort over the alphabetical base keeps equal-count
		// terms in alphabetical order.
		sort.SliceStable(vocab, func(i, j int) bool {
			return totals[vocab[i]] > totals[vocab[j]]
		})
		vocab = vocab[:v.maxFeatures]
		sort.Strings(vocab)
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, tok := range vocab {
		idf[i] = math.Log((1+n)/(1+float64(docFreq[tok]))) + 1
	}

	matrix := make([][]float64, len(docs))
	for d := range docs {
		vec := make([]float64, len(vocab))
		for i, tok := range vocab {
			if c := counts[d][tok]; c > 0 {
				vec[i] = float64(c) * idf[i]
			}
		}
		normalizeL2(vec)
		matrix[d] = vec
	}
	return vocab, matrix, nil
}

// normalizeL2 scales vec to unit length in place. A zero vector is left
// untouched.
func normalizeL2(vec []float64) {
	var sum float64
	for _, x := range vec {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	length := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= length
	}
}

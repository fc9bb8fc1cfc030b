package vector

import (
	"sort"

	apperrors "github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/errors"
)

// TopTerms returns the k highest-weighted terms of vec, strongest
// first. Zero-weight terms never appear, so the result may hold fewer
// than k entries and is never padded. Equal weights resolve to the
// lower vocabulary index, i.e. alphabetical order.
func TopTerms(vocab []string, vec []float64, k int) ([]string, error) {
	if len(vocab) != len(vec) {
		return nil, apperrors.Newf(apperrors.ErrCodeDimensionMismatch,
			"vocabulary size %d does not match vector length %d", len(vocab), len(vec))
	}

	idx := make([]int, 0, len(vec))
	for i, w := range vec {
		if w > 0 {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return vec[idx[a]] > vec[idx[b]]
	})
	if k >= 0 && len(idx) > k {
		idx = idx[:k]
	}

	terms := make([]string, len(idx))
	for i, j := range idx {
		terms[i] = vocab[j]
	}
	return terms, nil
}

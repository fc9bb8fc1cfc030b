package vector

import (
	"math"

	apperrors "github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/errors"
)

// CosineSimilarity returns the cosine of the angle between a and b. A
// zero vector has no direction, so any pairing involving one yields 0.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, apperrors.Newf(apperrors.ErrCodeDimensionMismatch,
			"vector length mismatch: %d vs %d", len(a), len(b))
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}

// CosineMatrix returns the pairwise similarity matrix for rows. Each
// off-diagonal pair is computed once and mirrored; the diagonal is
// fixed at 1.0, including for zero rows.
func CosineMatrix(rows [][]float64) ([][]float64, error) {
	m := make([][]float64, len(rows))
	for i := range rows {
		m[i] = make([]float64, len(rows))
		m[i][i] = 1.0
	}
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			sim, err := CosineSimilarity(rows[i], rows[j])
			if err != nil {
				return nil, err
			}
			m[i][j] = sim
			m[j][i] = sim
		}
	}
	return m, nil
}

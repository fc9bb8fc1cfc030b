package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/analysis/text"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/analysis/vector"
	apperrors "github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/errors"
)

const weightDelta = 1e-12

func TestFitTransform_ComputesSmoothedTFIDF(t *testing.T) {
	t.Parallel()

	docs := []string{
		"surgery diet",
		"diet exercise",
		"diet",
	}
	v := vector.NewVectorizer()

	vocab, matrix, err := v.FitTransform(docs)
	require.NoError(t, err)

	assert.Equal(t, []string{"diet", "exercise", "surgery"}, vocab)
	require.Len(t, matrix, 3)

	// df(diet)=3, df(exercise)=1, df(surgery)=1 over n=3 documents.
	idfCommon := math.Log(4.0/4.0) + 1
	idfRare := math.Log(4.0/2.0) + 1

	rawLen := math.Sqrt(idfCommon*idfCommon + idfRare*idfRare)
	assert.InDelta(t, idfCommon/rawLen, matrix[0][0], weightDelta)
	assert.InDelta(t, 0.0, matrix[0][1], weightDelta)
	assert.InDelta(t, idfRare/rawLen, matrix[0][2], weightDelta)

	assert.InDelta(t, idfCommon/rawLen, matrix[1][0], weightDelta)
	assert.InDelta(t, idfRare/rawLen, matrix[1][1], weightDelta)
	assert.InDelta(t, 0.0, matrix[1][2], weightDelta)

	assert.InDelta(t, 1.0, matrix[2][0], weightDelta)
	assert.InDelta(t, 0.0, matrix[2][1], weightDelta)
	assert.InDelta(t, 0.0, matrix[2][2], weightDelta)
}

func TestFitTransform_VectorsHaveUnitLength(t *testing.T) {
	t.Parallel()

	docs := []string{
		"dialysis transplant monitoring dialysis",
		"medication lifestyle monitoring",
	}

	_, matrix, err := vector.NewVectorizer().FitTransform(docs)
	require.NoError(t, err)

	for i, row := range matrix {
		var sum float64
		for _, w := range row {
			sum += w * w
		}
		assert.InDelta(t, 1.0, sum, weightDelta, "row %d is not unit length", i)
	}
}

func TestFitTransform_FiltersStopwords(t *testing.T) {
	t.Parallel()

	docs := []string{
		"the patient should rest and recover",
		"rest is advised for the patient",
	}

	vocab, _, err := vector.NewVectorizer().FitTransform(docs)
	require.NoError(t, err)

	assert.NotContains(t, vocab, "the")
	assert.NotContains(t, vocab, "and")
	assert.NotContains(t, vocab, "should")
	assert.Contains(t, vocab, "patient")
	assert.Contains(t, vocab, "rest")
}

func TestFitTransform_MaxFeaturesKeepsMostFrequentTerms(t *testing.T) {
	t.Parallel()

	// Totals: diet=3, exercise=2, rest=2, surgery=1. With a cap of 2
	// the tie between exercise and rest resolves alphabetically, so
	// exercise survives and rest does not.
	docs := []string{
		"diet diet exercise",
		"diet rest exercise",
		"rest surgery",
	}

	v := vector.NewVectorizer(vector.WithMaxFeatures(2))
	vocab, matrix, err := v.FitTransform(docs)
	require.NoError(t, err)

	assert.Equal(t, []string{"diet", "exercise"}, vocab)
	for _, row := range matrix {
		assert.Len(t, row, 2)
	}
}

func TestFitTransform_MaxFeaturesLargerThanVocabularyIsNoop(t *testing.T) {
	t.Parallel()

	docs := []string{"diet exercise"}

	v := vector.NewVectorizer(vector.WithMaxFeatures(40))
	vocab, _, err := v.FitTransform(docs)
	require.NoError(t, err)

	assert.Equal(t, []string{"diet", "exercise"}, vocab)
}

func TestFitTransform_CustomStopwords(t *testing.T) {
	t.Parallel()

	docs := []string{"diet surgery", "diet radiation"}

	v := vector.NewVectorizer(vector.WithStopwords(text.NewStopwordSet([]string{"diet"})))
	vocab, _, err := v.FitTransform(docs)
	require.NoError(t, err)

	assert.Equal(t, []string{"radiation", "surgery"}, vocab)
}

func TestFitTransform_AllStopwordDocumentYieldsZeroVector(t *testing.T) {
	t.Parallel()

	docs := []string{
		"the and of",
		"dialysis monitoring",
	}

	_, matrix, err := vector.NewVectorizer().FitTransform(docs)
	require.NoError(t, err)

	for _, w := range matrix[0] {
		assert.Zero(t, w)
	}
}

func TestFitTransform_EmptyBatchFails(t *testing.T) {
	t.Parallel()

	_, _, err := vector.NewVectorizer().FitTransform(nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeDegenerateCorpus))
}

func TestFitTransform_NoSurvivingTermsFails(t *testing.T) {
	t.Parallel()

	_, _, err := vector.NewVectorizer().FitTransform([]string{"the of and", "a an"})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeEmptyVocabulary))
}

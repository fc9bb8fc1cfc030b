package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/application"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/corpus"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/testutil"
	apperrors "github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/errors"
)

func loadCorpus(t *testing.T, root string) *corpus.Corpus {
	t.Helper()
	c, err := corpus.NewLoader().Load(root)
	require.NoError(t, err)
	return c
}

func newSimilarityService(workers int) application.SimilarityService {
	return application.NewSimilarityService(application.SimilarityDeps{
		MaxFeatures: 40,
		TopTerms:    10,
		Workers:     workers,
	})
}

func TestCompare_BuildsPerDiseaseComparisons(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "mayowf", "wf_diabetes_plan.txt",
		"1. Diet changes\n2. Insulin therapy\n3. Surgery evaluation")
	testutil.WriteCorpusFile(t, root, "wikiwf", "wf_diabetes_plan.txt",
		"1. Diet changes\n2. Insulin therapy")
	testutil.WriteCorpusFile(t, root, "merckwf", "wf_diabetes_plan.txt",
		"1. Glucose monitoring\n2. Medication review")

	report, err := newSimilarityService(1).Compare(context.Background(), loadCorpus(t, root))
	require.NoError(t, err)

	require.Contains(t, report, "diabetes")
	cmp := report["diabetes"]

	assert.Equal(t, []string{"mayo", "merck", "wiki"}, cmp.Sources)

	require.Len(t, cmp.SimilarityMatrix, 3)
	for i := range cmp.SimilarityMatrix {
		require.Len(t, cmp.SimilarityMatrix[i], 3)
		assert.InDelta(t, 1.0, cmp.SimilarityMatrix[i][i], 1e-12)
		for j := range cmp.SimilarityMatrix {
			assert.InDelta(t, cmp.SimilarityMatrix[i][j], cmp.SimilarityMatrix[j][i], 1e-12)
		}
	}
	// mayo and wiki share most of their text; merck shares none of it.
	mayoWiki := cmp.SimilarityMatrix[0][2]
	mayoMerck := cmp.SimilarityMatrix[0][1]
	assert.Greater(t, mayoWiki, mayoMerck)

	require.Len(t, cmp.DistinctiveTerms, 3)
	for source, terms := range cmp.DistinctiveTerms {
		assert.NotEmpty(t, terms, "source %s has no distinctive terms", source)
		assert.LessOrEqual(t, len(terms), 10)
	}
	assert.Contains(t, cmp.DistinctiveTerms["merck"], "glucose")
}

func TestCompare_IdenticalDocumentsAreFullySimilar(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	doc := "1. Diet\n2. Exercise"
	testutil.WriteCorpusFile(t, root, "mayowf", "wf_flu_plan.txt", doc)
	testutil.WriteCorpusFile(t, root, "webmdwf", "wf_flu_plan.txt", doc)

	report, err := newSimilarityService(1).Compare(context.Background(), loadCorpus(t, root))
	require.NoError(t, err)

	cmp := report["flu"]
	require.NotNil(t, cmp)
	assert.InDelta(t, 1.0, cmp.SimilarityMatrix[0][1], 1e-12)
}

func TestCompare_SkipsDiseasesWithSingleDocument(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "mayowf", "wf_diabetes_plan.txt", "1. Diet")
	testutil.WriteCorpusFile(t, root, "wikiwf", "wf_diabetes_plan.txt", "1. Insulin")
	testutil.WriteCorpusFile(t, root, "mayowf", "wf_rare_plan.txt", "1. Referral")

	logger := testutil.NewMockLogger()
	svc := application.NewSimilarityService(application.SimilarityDeps{
		MaxFeatures: 40,
		TopTerms:    10,
		Logger:      logger,
	})

	report, err := svc.Compare(context.Background(), loadCorpus(t, root))
	require.NoError(t, err)

	assert.Contains(t, report, "diabetes")
	assert.NotContains(t, report, "rare")
	assert.True(t, logger.HasMessageContaining("debug", "fewer than two"))
}

func TestCompare_SkipsDiseaseWhenVocabularyIsEmpty(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "mayowf", "wf_odd_plan.txt", "the and of")
	testutil.WriteCorpusFile(t, root, "wikiwf", "wf_odd_plan.txt", "to a an")
	testutil.WriteCorpusFile(t, root, "mayowf", "wf_flu_plan.txt", "1. Rest")
	testutil.WriteCorpusFile(t, root, "wikiwf", "wf_flu_plan.txt", "1. Fluids")

	logger := testutil.NewMockLogger()
	svc := application.NewSimilarityService(application.SimilarityDeps{
		MaxFeatures: 40,
		TopTerms:    10,
		Logger:      logger,
	})

	report, err := svc.Compare(context.Background(), loadCorpus(t, root))
	require.NoError(t, err)

	assert.NotContains(t, report, "odd")
	assert.Contains(t, report, "flu")
	assert.True(t, logger.HasMessageContaining("warn", "skipping disease"))
}

func TestCompare_ParallelMatchesSerial(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	diseases := []string{"asthma", "diabetes", "flu", "gerd", "migraine"}
	for _, d := range diseases {
		testutil.WriteCorpusFile(t, root, "mayowf", "wf_"+d+"_plan.txt",
			"1. Diagnosis of "+d+"\n2. Medication\n3. Surgery review")
		testutil.WriteCorpusFile(t, root, "wikiwf", "wf_"+d+"_plan.txt",
			"1. Diagnosis of "+d+"\n2. Lifestyle advice")
	}
	c := loadCorpus(t, root)

	serial, err := newSimilarityService(1).Compare(context.Background(), c)
	require.NoError(t, err)
	parallel, err := newSimilarityService(4).Compare(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestCompare_CanceledContext(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "mayowf", "wf_flu_plan.txt", "1. Rest")
	testutil.WriteCorpusFile(t, root, "wikiwf", "wf_flu_plan.txt", "1. Fluids")
	c := loadCorpus(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newSimilarityService(1).Compare(ctx, c)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInternal))
}

func TestCompare_NilCorpus(t *testing.T) {
	t.Parallel()

	_, err := newSimilarityService(1).Compare(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidParam))
}

// Package application wires the corpus and analysis layers into the
// operations exposed by the CLI: cross-source similarity comparison,
// structural step analysis, and the combined run.
package application

import (
	"context"
	"sync"
	"time"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/analysis/text"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/analysis/vector"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/corpus"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/logging"
	apperrors "github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/errors"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/types"
)

// SimilarityService compares workflow documents across sources, one
// disease at a time.
type SimilarityService interface {
	// Compare builds the per-disease similarity report. Diseases with
	// fewer than two documents are skipped, as are diseases whose
	// documents reduce to an empty vocabulary; neither aborts the
	// comparison.
	Compare(ctx context.Context, c *corpus.Corpus) (types.SimilarityReport, error)
}

// SimilarityDeps carries the configuration of a SimilarityService.
type SimilarityDeps struct {
	// MaxFeatures caps the vocabulary used for distinctive-term
	// extraction. The similarity matrix always uses the full
	// vocabulary. Values below one fall back to 40.
	MaxFeatures int

	// TopTerms is the number of distinctive terms reported per source.
	// Values below one fall back to 10.
	TopTerms int

	// Workers bounds how many diseases are compared concurrently.
	// Values below one mean serial processing.
	Workers int

	// Stopwords overrides the default English stopword list.
	Stopwords text.StopwordSet

	// Logger defaults to a nop logger.
	Logger logging.Logger
}

type similarityService struct {
	maxFeatures int
	topTerms    int
	workers     int
	stopwords   text.StopwordSet
	logger      logging.Logger
}

// NewSimilarityService builds a SimilarityService from deps.
func NewSimilarityService(deps SimilarityDeps) SimilarityService {
	s := &similarityService{
		maxFeatures: deps.MaxFeatures,
		topTerms:    deps.TopTerms,
		workers:     deps.Workers,
		stopwords:   deps.Stopwords,
		logger:      deps.Logger,
	}
	if s.maxFeatures < 1 {
		s.maxFeatures = 40
	}
	if s.topTerms < 1 {
		s.topTerms = 10
	}
	if s.stopwords == nil {
		s.stopwords = text.DefaultStopwords()
	}
	if s.logger == nil {
		s.logger = logging.NewNopLogger()
	}
	if s.workers < 1 {
		s.workers = 1
	}
	return s
}

func (s *similarityService) Compare(ctx context.Context, c *corpus.Corpus) (types.SimilarityReport, error) {
	if c == nil {
		return nil, apperrors.InvalidParam("corpus is nil")
	}

	start := time.Now()
	diseases := c.Diseases()
	report := make(types.SimilarityReport, len(diseases))

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, s.workers)
	)
	for _, disease := range diseases {
		if ctx.Err() != nil {
			break
		}
		docs := c.Workflows(disease)
		if len(docs) < 2 {
			s.logger.Debug("skipping disease with fewer than two workflows",
				logging.String("disease", disease),
				logging.Int("workflows", len(docs)),
			)
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(disease string, docs []*corpus.WorkflowText) {
			defer wg.Done()
			defer func() { <-sem }()

			cmp, err := s.compareDisease(docs)
			if err != nil {
				s.logger.Warn("skipping disease",
					logging.String("disease", disease),
					logging.Err(err),
				)
				return
			}
			mu.Lock()
			report[disease] = cmp
			mu.Unlock()
		}(disease, docs)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "similarity comparison canceled")
	}

	s.logger.Info("similarity comparison complete",
		logging.Int("diseases_found", len(diseases)),
		logging.Int("diseases_compared", len(report)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return report, nil
}

// compareDisease vectorizes one disease's documents twice: once over
// the full vocabulary for the similarity matrix, once capped for
// distinctive terms.
func (s *similarityService) compareDisease(docs []*corpus.WorkflowText) (*types.DiseaseComparison, error) {
	sources := make([]string, len(docs))
	normalized := make([]string, len(docs))
	for i, doc := range docs {
		sources[i] = doc.Source
		normalized[i] = text.Normalize(doc.Text)
	}

	full := vector.NewVectorizer(vector.WithStopwords(s.stopwords))
	_, matrix, err := full.FitTransform(normalized)
	if err != nil {
		return nil, err
	}
	sim, err := vector.CosineMatrix(matrix)
	if err != nil {
		return nil, err
	}

	capped := vector.NewVectorizer(
		vector.WithStopwords(s.stopwords),
		vector.WithMaxFeatures(s.maxFeatures),
	)
	vocab, weights, err := capped.FitTransform(normalized)
	if err != nil {
		return nil, err
	}

	terms := make(map[string][]string, len(docs))
	for i, source := range sources {
		top, err := vector.TopTerms(vocab, weights[i], s.topTerms)
		if err != nil {
			return nil, err
		}
		terms[source] = top
	}

	return &types.DiseaseComparison{
		Sources:          sources,
		SimilarityMatrix: sim,
		DistinctiveTerms: terms,
	}, nil
}

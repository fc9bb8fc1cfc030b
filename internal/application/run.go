package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/corpus"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/logging"
	apperrors "github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/errors"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/types"
)

// RunResult bundles everything one combined analysis produces.
type RunResult struct {
	Summary    types.RunSummary
	Similarity types.SimilarityReport
	Structure  *types.StructureReport
	Corpus     *corpus.Corpus
}

// Runner loads a corpus and executes both analyses over it.
type Runner interface {
	Run(ctx context.Context, root string) (*RunResult, error)
}

// RunnerDeps carries the collaborators of a Runner.
type RunnerDeps struct {
	Loader     *corpus.Loader
	Similarity SimilarityService
	Structure  StructureService
	Logger     logging.Logger
}

type runner struct {
	loader     *corpus.Loader
	similarity SimilarityService
	structure  StructureService
	logger     logging.Logger
}

// NewRunner builds a Runner from deps. Loader, Similarity, and
// Structure are required.
func NewRunner(deps RunnerDeps) (Runner, error) {
	if deps.Loader == nil {
		return nil, apperrors.InvalidParam("loader is required")
	}
	if deps.Similarity == nil {
		return nil, apperrors.InvalidParam("similarity service is required")
	}
	if deps.Structure == nil {
		return nil, apperrors.InvalidParam("structure service is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &runner{
		loader:     deps.Loader,
		similarity: deps.Similarity,
		structure:  deps.Structure,
		logger:     logger,
	}, nil
}

func (r *runner) Run(ctx context.Context, root string) (*RunResult, error) {
	runID := uuid.NewString()
	started := time.Now()
	logger := r.logger.With(logging.String("run_id", runID))
	logger.Info("analysis run starting", logging.String("corpus_root", root))

	c, err := r.loader.Load(root)
	if err != nil {
		return nil, err
	}
	if c.TotalDocuments() == 0 {
		logger.Warn("corpus holds no workflow documents, reports will be empty")
	}

	similarity, err := r.similarity.Compare(ctx, c)
	if err != nil {
		return nil, err
	}
	structure, err := r.structure.Analyze(ctx, c)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Summary: types.RunSummary{
			RunID:            runID,
			StartedAt:        started.UTC(),
			ElapsedMs:        time.Since(started).Milliseconds(),
			Workflows:        c.TotalDocuments(),
			DiseasesFound:    len(c.Diseases()),
			DiseasesCompared: len(similarity),
		},
		Similarity: similarity,
		Structure:  structure,
		Corpus:     c,
	}
	logger.Info("analysis run complete",
		logging.Int("workflows", result.Summary.Workflows),
		logging.Int("diseases_compared", result.Summary.DiseasesCompared),
		logging.Int64("elapsed_ms", result.Summary.ElapsedMs),
	)
	return result, nil
}

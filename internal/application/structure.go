package application

import (
	"context"
	"time"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/analysis/rank"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/analysis/steps"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/corpus"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/logging"
	apperrors "github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/errors"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/types"
)

// StructureService aggregates step structure across every loaded
// workflow document and ranks the sources.
type StructureService interface {
	Analyze(ctx context.Context, c *corpus.Corpus) (*types.StructureReport, error)
}

// StructureDeps carries the configuration of a StructureService.
type StructureDeps struct {
	// Keywords overrides the built-in intervention keyword list.
	Keywords []string

	// Logger defaults to a nop logger.
	Logger logging.Logger
}

type structureService struct {
	parser *steps.Parser
	logger logging.Logger
}

// NewStructureService builds a StructureService from deps.
func NewStructureService(deps StructureDeps) StructureService {
	opts := []steps.Option{}
	if deps.Keywords != nil {
		opts = append(opts, steps.WithKeywords(deps.Keywords))
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &structureService{
		parser: steps.NewParser(opts...),
		logger: logger,
	}
}

func (s *structureService) Analyze(ctx context.Context, c *corpus.Corpus) (*types.StructureReport, error) {
	if c == nil {
		return nil, apperrors.InvalidParam("corpus is nil")
	}

	start := time.Now()
	acc := rank.NewAccumulator()
	for _, disease := range c.Diseases() {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "structure analysis canceled")
		}
		for _, doc := range c.Workflows(disease) {
			acc.Add(doc.Source, s.parser.Parse(doc.Text))
		}
	}

	rep := acc.Report()
	s.logger.Info("structure analysis complete",
		logging.Int("workflows", rep.TotalWorkflows),
		logging.Int("ranked_sources", len(rep.StepRanking)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return rep, nil
}

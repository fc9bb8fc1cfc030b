// Package report serializes analysis results to disk and renders them
// for the terminal. The JSON layout is consumed by downstream
// notebooks and must stay byte-stable for identical inputs; table
// rendering is presentation only.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/config"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/logging"
	apperrors "github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/errors"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/types"
)

// DefaultSimilarityFilename is the similarity report written by the
// analyze and run commands when no explicit output path is given.
const DefaultSimilarityFilename = "workflow_analysis.json"

// Writer persists and renders reports.
type Writer struct {
	outDir    string
	precision int
	logger    logging.Logger
}

// NewWriter builds a Writer from the report configuration.
func NewWriter(cfg config.ReportConfig, logger logging.Logger) *Writer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Writer{
		outDir:    cfg.OutDir,
		precision: cfg.Precision,
		logger:    logger,
	}
}

// WriteSimilarityJSON writes rep as indented JSON and returns the path
// written. A relative filename lands in the configured output
// directory, which is created as needed; an absolute filename is used
// as given.
func (w *Writer) WriteSimilarityJSON(rep types.SimilarityReport, filename string) (string, error) {
	if filename == "" {
		filename = DefaultSimilarityFilename
	}
	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.outDir, filename)
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeReportEncode, "encode similarity report")
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeReportWrite, "create report directory").WithDetail(filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeReportWrite, "write similarity report").WithDetail(path)
	}

	w.logger.Info("similarity report written",
		logging.String("path", path),
		logging.Int("diseases", len(rep)),
	)
	return path, nil
}

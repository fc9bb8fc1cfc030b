// Package config defines the configuration structures for the workflow
// analysis engine.  No I/O or parsing logic lives here, only plain data
// types and validation.
package config

import (
	"fmt"
)

// CorpusConfig locates the harvested workflow corpus on disk.
type CorpusConfig struct {
	// Root is the directory containing one folder per source
	// (mayowf, clevelandwf, ...).
	Root string `mapstructure:"root"`

	// Sources lists the source identifiers to load.  Each id maps to the
	// folder "<id>wf" under Root.
	Sources []string `mapstructure:"sources"`

	// Diseases optionally restricts the load to the listed disease ids.
	// Empty means every disease found on disk.
	Diseases []string `mapstructure:"diseases"`
}

// AnalysisConfig holds analysis tunables.
type AnalysisConfig struct {
	// MaxFeatures caps the vocabulary used for distinctive-term extraction
	// at the N most frequent corpus terms.
	MaxFeatures int `mapstructure:"max_features"`

	// TopTerms is the number of distinctive terms reported per source.
	TopTerms int `mapstructure:"top_terms"`

	// Workers bounds the number of diseases compared concurrently.
	// 1 keeps the analysis strictly sequential.
	Workers int `mapstructure:"workers"`

	// StopwordsFile optionally overrides the built-in English stopword
	// list; one token per line.
	StopwordsFile string `mapstructure:"stopwords_file"`

	// KeywordsFile optionally overrides the built-in intervention keyword
	// list; one token per line.
	KeywordsFile string `mapstructure:"keywords_file"`
}

// ReportConfig holds report output parameters.
type ReportConfig struct {
	// OutDir is the directory report files are written to.
	OutDir string `mapstructure:"out_dir"`

	// Precision is the number of decimal places in rendered averages.
	Precision int `mapstructure:"precision"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "console" | "json"
}

// Config is the root configuration structure for the engine.
type Config struct {
	Corpus   CorpusConfig   `mapstructure:"corpus"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Report   ReportConfig   `mapstructure:"report"`
	Log      LogConfig      `mapstructure:"log"`
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error
// as fatal and refuse to start.
func (c *Config) Validate() error {
	// Corpus
	if c.Corpus.Root == "" {
		return fmt.Errorf("config: corpus.root is required")
	}
	if len(c.Corpus.Sources) == 0 {
		return fmt.Errorf("config: corpus.sources must list at least one source")
	}
	seen := make(map[string]bool, len(c.Corpus.Sources))
	for _, s := range c.Corpus.Sources {
		if s == "" {
			return fmt.Errorf("config: corpus.sources contains an empty identifier")
		}
		if seen[s] {
			return fmt.Errorf("config: corpus.sources lists %q twice", s)
		}
		seen[s] = true
	}

	// Analysis
	if c.Analysis.MaxFeatures < 1 {
		return fmt.Errorf("config: analysis.max_features must be >= 1, got %d", c.Analysis.MaxFeatures)
	}
	if c.Analysis.TopTerms < 1 {
		return fmt.Errorf("config: analysis.top_terms must be >= 1, got %d", c.Analysis.TopTerms)
	}
	if c.Analysis.Workers < 1 {
		return fmt.Errorf("config: analysis.workers must be >= 1, got %d", c.Analysis.Workers)
	}

	// Report
	if c.Report.OutDir == "" {
		return fmt.Errorf("config: report.out_dir is required")
	}
	if c.Report.Precision < 0 || c.Report.Precision > 10 {
		return fmt.Errorf("config: report.precision %d is out of range [0, 10]", c.Report.Precision)
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected console|json", c.Log.Format)
	}

	return nil
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestNewDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := NewDefault()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultCorpusRoot, cfg.Corpus.Root)
	assert.Equal(t, []string{"mayo", "cleveland", "merck", "webmd", "wiki"}, cfg.Corpus.Sources)
	assert.Empty(t, cfg.Corpus.Diseases)
	assert.Equal(t, 40, cfg.Analysis.MaxFeatures)
	assert.Equal(t, 10, cfg.Analysis.TopTerms)
	assert.Equal(t, 1, cfg.Analysis.Workers)
	assert.Equal(t, 2, cfg.Report.Precision)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestApplyDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.Corpus.Root = "/data/workflows"
	cfg.Corpus.Sources = []string{"mayo", "wiki"}
	cfg.Analysis.Workers = 4
	cfg.Log.Level = "debug"

	ApplyDefaults(cfg)

	assert.Equal(t, "/data/workflows", cfg.Corpus.Root)
	assert.Equal(t, []string{"mayo", "wiki"}, cfg.Corpus.Sources)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched fields still receive defaults.
	assert.Equal(t, DefaultMaxFeatures, cfg.Analysis.MaxFeatures)
	assert.Equal(t, DefaultOutDir, cfg.Report.OutDir)
}

func TestApplyDefaults_NilConfigDoesNotPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { ApplyDefaults(nil) })
}

func TestValidate_RejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "empty corpus root",
			mutate:  func(c *Config) { c.Corpus.Root = "" },
			wantMsg: "corpus.root",
		},
		{
			name:    "no sources",
			mutate:  func(c *Config) { c.Corpus.Sources = nil },
			wantMsg: "corpus.sources",
		},
		{
			name:    "empty source id",
			mutate:  func(c *Config) { c.Corpus.Sources = []string{"mayo", ""} },
			wantMsg: "empty identifier",
		},
		{
			name:    "duplicate source id",
			mutate:  func(c *Config) { c.Corpus.Sources = []string{"mayo", "mayo"} },
			wantMsg: `"mayo" twice`,
		},
		{
			name:    "zero max features",
			mutate:  func(c *Config) { c.Analysis.MaxFeatures = 0 },
			wantMsg: "max_features",
		},
		{
			name:    "negative top terms",
			mutate:  func(c *Config) { c.Analysis.TopTerms = -1 },
			wantMsg: "top_terms",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Analysis.Workers = 0 },
			wantMsg: "workers",
		},
		{
			name:    "empty out dir",
			mutate:  func(c *Config) { c.Report.OutDir = "" },
			wantMsg: "out_dir",
		},
		{
			name:    "precision too large",
			mutate:  func(c *Config) { c.Report.Precision = 11 },
			wantMsg: "precision",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantMsg: "log.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantMsg: "log.format",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

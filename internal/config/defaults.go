package config

// Default value constants.  The source set and analysis parameters mirror the
// harvested corpus layout: five reference sites, a 40-term distinctive
// vocabulary, ten reported terms per source.
const (
	DefaultCorpusRoot = "./corpus"

	DefaultMaxFeatures = 40
	DefaultTopTerms    = 10
	DefaultWorkers     = 1

	DefaultOutDir    = "./reports"
	DefaultPrecision = 2

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// DefaultSourceIDs returns the identifiers of the five harvested sources in
// their canonical order.  The slice is a fresh copy on every call.
func DefaultSourceIDs() []string {
	return []string{"mayo", "cleveland", "merck", "webmd", "wiki"}
}

// NewDefault returns a Config populated entirely from defaults.  Used by the
// CLI when no configuration file is present.
func NewDefault() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every zero-value field in cfg with the engine default.
// Fields already set by the caller are left unchanged so explicit
// configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Corpus.Root == "" {
		cfg.Corpus.Root = DefaultCorpusRoot
	}
	if len(cfg.Corpus.Sources) == 0 {
		cfg.Corpus.Sources = DefaultSourceIDs()
	}

	if cfg.Analysis.MaxFeatures == 0 {
		cfg.Analysis.MaxFeatures = DefaultMaxFeatures
	}
	if cfg.Analysis.TopTerms == 0 {
		cfg.Analysis.TopTerms = DefaultTopTerms
	}
	if cfg.Analysis.Workers == 0 {
		cfg.Analysis.Workers = DefaultWorkers
	}

	if cfg.Report.OutDir == "" {
		cfg.Report.OutDir = DefaultOutDir
	}
	if cfg.Report.Precision == 0 {
		cfg.Report.Precision = DefaultPrecision
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

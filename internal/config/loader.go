// Package config provides configuration loading, defaults, and validation
// for the workflow analysis engine.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all engine settings.
const envPrefix = "WFA"

// newViper builds a pre-configured viper instance: YAML file type, WFA_ env
// prefix, automatic env binding, and a key replacer mapping "." → "_" so that
// nested keys like "corpus.root" resolve to "WFA_CORPUS_ROOT".
//
// Every key is registered with its default so that env-only loading sees the
// full key set.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("corpus.root", DefaultCorpusRoot)
	v.SetDefault("corpus.sources", DefaultSourceIDs())
	v.SetDefault("corpus.diseases", []string{})
	v.SetDefault("analysis.max_features", DefaultMaxFeatures)
	v.SetDefault("analysis.top_terms", DefaultTopTerms)
	v.SetDefault("analysis.workers", DefaultWorkers)
	v.SetDefault("analysis.stopwords_file", "")
	v.SetDefault("analysis.keywords_file", "")
	v.SetDefault("report.out_dir", DefaultOutDir)
	v.SetDefault("report.precision", DefaultPrecision)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	return v
}

// Load reads the YAML file at configPath, merges any WFA_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.  It returns a fully-populated *Config or a descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from WFA_* environment variables and defaults,
// with no config file required.
//
// Environment variable naming convention:
//
//	WFA_<SECTION>_<FIELD>   e.g.  WFA_CORPUS_ROOT, WFA_ANALYSIS_WORKERS
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// Intended for main(), where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

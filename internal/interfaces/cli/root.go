// Package cli implements the wfanalyze command tree. The root command
// owns global flags, configuration loading, and logger setup; the
// subcommands wire the corpus loader and analysis services together.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/analysis/steps"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/analysis/text"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/application"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/config"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/corpus"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/logging"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/report"
	apperrors "github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath   string
	CorpusRoot   string
	OutDir       string
	LogLevel     string
	OutputFormat string
	Verbose      bool
	NoColor      bool
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	OutputFormat string
	Verbose      bool
	NoColor      bool
}

// IsJSON reports whether the user asked for JSON output.
func (c *CLIContext) IsJSON() bool {
	return strings.EqualFold(c.OutputFormat, "json")
}

// NewRootCommand creates the root cobra command with all global flags
// and subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "wfanalyze",
		Short: "Compare disease treatment workflows across medical sources",
		Long: "wfanalyze compares scraped disease treatment workflows across medical\n" +
			"sources: it measures cross-source text similarity per disease, extracts\n" +
			"each source's distinctive vocabulary, and ranks the sources by workflow\n" +
			"granularity and intervention aggressiveness.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Register persistent flags.
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: ./wfanalyze.yaml)")
	pf.StringVar(&opts.CorpusRoot, "corpus", "", "corpus root directory (overrides config)")
	pf.StringVar(&opts.OutDir, "out-dir", "", "report output directory (overrides config)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "text", "output format (text, json)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newAnalyzeCmd(),
		newStructureCmd(),
		newRunCmd(),
		newSourcesCmd(),
	)

	return cmd
}

// persistentPreRun initializes config and logger, then stores the
// CLIContext on the command context.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := initConfig(opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	logging.SetDefault(logger)

	if opts.NoColor {
		color.NoColor = true
	}

	cliCtx := &CLIContext{
		Config:       cfg,
		Logger:       logger,
		OutputFormat: opts.OutputFormat,
		Verbose:      opts.Verbose,
		NoColor:      opts.NoColor,
	}

	ctx := context.WithValue(cmd.Context(), cliContextKey{}, cliCtx)
	cmd.SetContext(ctx)

	return nil
}

// initConfig loads configuration with priority: flags > env > file >
// defaults.
func initConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.CorpusRoot != "" {
		cfg.Corpus.Root = opts.CorpusRoot
	}
	if opts.OutDir != "" {
		cfg.Report.OutDir = opts.OutDir
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(opts.LogLevel)
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}

	// Flag overrides bypass the loader, so validate again.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	searchPaths := []string{"./wfanalyze.yaml"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(homeDir, ".wfanalyze", "config.yaml"))
	}
	searchPaths = append(searchPaths, "/etc/wfanalyze/config.yaml")

	for _, p := range searchPaths {
		if _, statErr := os.Stat(p); statErr == nil {
			return config.Load(p)
		}
	}

	// No config file found; environment and defaults still apply.
	return config.LoadFromEnv()
}

// initLogger creates a logger configured for CLI usage (output to
// stderr).
func initLogger(cfg *config.Config) (logging.Logger, error) {
	return logging.NewLogger(logging.Config{
		Level:            cfg.Log.Level,
		Format:           cfg.Log.Format,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
}

// commandDeps aggregates the collaborators built from configuration for
// one command invocation.
type commandDeps struct {
	loader     *corpus.Loader
	similarity application.SimilarityService
	structure  application.StructureService
	writer     *report.Writer
}

// buildDeps constructs the corpus loader, analysis services, and report
// writer from the loaded configuration.
func buildDeps(cliCtx *CLIContext) (*commandDeps, error) {
	cfg := cliCtx.Config
	logger := cliCtx.Logger

	stopwords, err := resolveStopwords(cfg.Analysis.StopwordsFile)
	if err != nil {
		return nil, err
	}
	keywords, err := resolveKeywords(cfg.Analysis.KeywordsFile)
	if err != nil {
		return nil, err
	}

	sources := corpus.DefaultSources()
	if len(cfg.Corpus.Sources) > 0 {
		sources = corpus.SourcesFromIDs(cfg.Corpus.Sources)
	}

	return &commandDeps{
		loader: corpus.NewLoader(
			corpus.WithSources(sources),
			corpus.WithDiseaseFilter(cfg.Corpus.Diseases),
			corpus.WithLogger(logger.Named("corpus")),
		),
		similarity: application.NewSimilarityService(application.SimilarityDeps{
			MaxFeatures: cfg.Analysis.MaxFeatures,
			TopTerms:    cfg.Analysis.TopTerms,
			Workers:     cfg.Analysis.Workers,
			Stopwords:   stopwords,
			Logger:      logger.Named("similarity"),
		}),
		structure: application.NewStructureService(application.StructureDeps{
			Keywords: keywords,
			Logger:   logger.Named("structure"),
		}),
		writer: report.NewWriter(cfg.Report, logger.Named("report")),
	}, nil
}

func resolveStopwords(path string) (text.StopwordSet, error) {
	if path == "" {
		return nil, nil
	}
	return text.LoadStopwords(path)
}

func resolveKeywords(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	return steps.LoadKeywords(path)
}

// GetCLIContext extracts CLIContext from a cobra command's context.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, apperrors.Internal("command context is nil")
	}

	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, apperrors.Internal("CLI context not initialized")
	}

	return cliCtx, nil
}

// Execute is the main entry point for the CLI application.
func Execute() error {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		PrintError(rootCmd, err)
		return err
	}

	return nil
}

// PrintResult outputs data in the format specified by CLIContext.
func PrintResult(cmd *cobra.Command, data interface{}) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		// Fallback to JSON if context unavailable.
		return printJSON(cmd, data)
	}

	if cliCtx.IsJSON() {
		return printJSON(cmd, data)
	}
	return printText(cmd, data)
}

// printJSON outputs data as indented JSON to stdout.
func printJSON(cmd *cobra.Command, data interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// printText outputs data as a simple string representation to stdout.
func printText(cmd *cobra.Command, data interface{}) error {
	switch v := data.(type) {
	case string:
		fmt.Fprintln(cmd.OutOrStdout(), v)
	case fmt.Stringer:
		fmt.Fprintln(cmd.OutOrStdout(), v.String())
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", v)
	}
	return nil
}

// PrintError writes a formatted error message to stderr.
func PrintError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
}

package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/testutil"
)

// writeTestConfig writes a minimal config pointing at corpusRoot and
// outDir, with logging quieted down.
func writeTestConfig(t *testing.T, corpusRoot, outDir string) string {
	t.Helper()
	content := fmt.Sprintf("corpus:\n  root: %s\nreport:\n  out_dir: %s\nlog:\n  level: error\n", corpusRoot, outDir)
	return testutil.WriteFile(t, t.TempDir(), "wfanalyze.yaml", content)
}

func seedCorpus(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "mayowf", "wf_diabetes_plan.txt",
		"1. Diet changes\n2. Medication\n3. Surgery evaluation")
	testutil.WriteCorpusFile(t, root, "wikiwf", "wf_diabetes_plan.txt",
		"1. Diet changes\n2. Insulin therapy")
	testutil.WriteCorpusFile(t, root, "webmdwf", "wf_diabetes_plan.txt",
		"1. Glucose monitoring\n- fasting checks\n2. Medication review")
	return root
}

func TestNewRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)

	assert.Equal(t, "wfanalyze", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Use] = true
	}
	for _, want := range []string{"analyze", "structure", "run", "sources"} {
		assert.True(t, names[want], "expected subcommand %q", want)
	}
}

func TestNewRootCommand_GlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	pf := cmd.PersistentFlags()

	for _, name := range []string{"config", "corpus", "out-dir", "log-level", "output", "verbose", "no-color"} {
		assert.NotNil(t, pf.Lookup(name), "expected flag %q", name)
	}
	assert.Equal(t, "text", pf.Lookup("output").DefValue)
	assert.Equal(t, "v", pf.Lookup("verbose").Shorthand)
}

func TestInitConfig_FlagsOverrideDefaults(t *testing.T) {
	cfg, err := initConfig(&RootOptions{
		CorpusRoot: "/data/workflows",
		OutDir:     "/data/reports",
		LogLevel:   "WARN",
	})
	require.NoError(t, err)

	assert.Equal(t, "/data/workflows", cfg.Corpus.Root)
	assert.Equal(t, "/data/reports", cfg.Report.OutDir)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestInitConfig_VerboseForcesDebugLevel(t *testing.T) {
	cfg, err := initConfig(&RootOptions{LogLevel: "error", Verbose: true})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitConfig_RejectsInvalidLogLevel(t *testing.T) {
	_, err := initConfig(&RootOptions{LogLevel: "chatty"})
	require.Error(t, err)
}

func TestInitConfig_ReadsConfigFile(t *testing.T) {
	path := writeTestConfig(t, "/from/file", t.TempDir())

	cfg, err := initConfig(&RootOptions{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "/from/file", cfg.Corpus.Root)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestGetCLIContext_MissingContext(t *testing.T) {
	_, err := GetCLIContext(&cobra.Command{})
	require.Error(t, err)
}

func TestRootCommand_MissingCorpusRootFails(t *testing.T) {
	cfgPath := writeTestConfig(t, filepath.Join(t.TempDir(), "absent"), t.TempDir())

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"structure", "--config", cfgPath, "--no-color"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corpus root")
}

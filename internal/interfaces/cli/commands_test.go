package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readJSONFile parses a JSON object file.
func readJSONFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetArgs(append(args, "--no-color"))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestStructureCommand_RendersRankings(t *testing.T) {
	corpusRoot := seedCorpus(t)
	cfgPath := writeTestConfig(t, corpusRoot, t.TempDir())

	out, err := runCommand(t, "structure", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "=== Workflow Granularity Ranking ===")
	assert.Contains(t, out, "=== Intervention Aggressiveness Ranking ===")
	assert.Contains(t, out, "mayo")
	assert.Contains(t, out, "Processed 3 workflow files.")
}

func TestStructureCommand_JSONOutput(t *testing.T) {
	corpusRoot := seedCorpus(t)
	cfgPath := writeTestConfig(t, corpusRoot, t.TempDir())

	out, err := runCommand(t, "structure", "--config", cfgPath, "-o", "json")
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Contains(t, payload, "step_ranking")
	assert.Contains(t, payload, "aggression_ranking")
	assert.EqualValues(t, 3, payload["total_workflows"])
}

func TestAnalyzeCommand_WritesSimilarityReport(t *testing.T) {
	corpusRoot := seedCorpus(t)
	outDir := t.TempDir()
	cfgPath := writeTestConfig(t, corpusRoot, outDir)

	out, err := runCommand(t, "analyze", "--config", cfgPath)
	require.NoError(t, err)

	reportPath := filepath.Join(outDir, "workflow_analysis.json")
	assert.Contains(t, out, "=== diabetes ===")
	assert.Contains(t, out, "Distinctive terms:")
	assert.Contains(t, out, "Report written to "+reportPath)

	data, err := readJSONFile(reportPath)
	require.NoError(t, err)
	disease, ok := data["diabetes"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, disease, "sites")
	assert.Contains(t, disease, "similarity_matrix")
	assert.Contains(t, disease, "unique_terms")
}

func TestAnalyzeCommand_ExplicitOutPath(t *testing.T) {
	corpusRoot := seedCorpus(t)
	cfgPath := writeTestConfig(t, corpusRoot, t.TempDir())
	target := filepath.Join(t.TempDir(), "custom.json")

	_, err := runCommand(t, "analyze", "--config", cfgPath, "--out", target)
	require.NoError(t, err)

	_, err = readJSONFile(target)
	assert.NoError(t, err)
}

func TestRunCommand_TextOutput(t *testing.T) {
	corpusRoot := seedCorpus(t)
	cfgPath := writeTestConfig(t, corpusRoot, t.TempDir())

	out, err := runCommand(t, "run", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "=== diabetes ===")
	assert.Contains(t, out, "=== Workflow Granularity Ranking ===")
	assert.Contains(t, out, "=== Run Summary ===")
	assert.Contains(t, out, "Diseases compared: 1")
}

func TestRunCommand_JSONOutput(t *testing.T) {
	corpusRoot := seedCorpus(t)
	cfgPath := writeTestConfig(t, corpusRoot, t.TempDir())

	out, err := runCommand(t, "run", "--config", cfgPath, "-o", "json")
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Contains(t, payload, "summary")
	assert.Contains(t, payload, "similarity")
	assert.Contains(t, payload, "structure")

	summary, ok := payload["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, summary["run_id"])
	assert.EqualValues(t, 3, summary["workflows"])
}

func TestSourcesCommand_TextOutput(t *testing.T) {
	corpusRoot := seedCorpus(t)
	cfgPath := writeTestConfig(t, corpusRoot, t.TempDir())

	out, err := runCommand(t, "sources", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "=== Corpus Sources ===")
	assert.Contains(t, out, "mayowf")
	assert.Contains(t, out, "Total workflows: 3")
}

func TestSourcesCommand_JSONOutput(t *testing.T) {
	corpusRoot := seedCorpus(t)
	cfgPath := writeTestConfig(t, corpusRoot, t.TempDir())

	out, err := runCommand(t, "sources", "--config", cfgPath, "-o", "json")
	require.NoError(t, err)

	var payload sourcesPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Sources, 5)
	assert.Equal(t, 3, payload.Total)
}

// Command wfanalyze compares disease treatment workflows across
// medical sources.
package main

import (
	"os"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/interfaces/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/application"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/types"
)

// runPayload is the JSON shape of one combined run.
type runPayload struct {
	Summary    types.RunSummary       `json:"summary"`
	Similarity types.SimilarityReport `json:"similarity"`
	Structure  *types.StructureReport `json:"structure"`
}

// newRunCmd builds the combined pipeline command.
func newRunCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full analysis pipeline",
		Long: "Run executes both analyses over the corpus in one pass: it writes the\n" +
			"per-disease similarity report as JSON and prints the similarity\n" +
			"matrices, both source rankings, and a run summary.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			deps, err := buildDeps(cliCtx)
			if err != nil {
				return err
			}

			runner, err := application.NewRunner(application.RunnerDeps{
				Loader:     deps.loader,
				Similarity: deps.similarity,
				Structure:  deps.structure,
				Logger:     cliCtx.Logger.Named("runner"),
			})
			if err != nil {
				return err
			}

			result, err := runner.Run(cmd.Context(), cliCtx.Config.Corpus.Root)
			if err != nil {
				return err
			}
			path, err := deps.writer.WriteSimilarityJSON(result.Similarity, outFile)
			if err != nil {
				return err
			}
			result.Summary.ReportPath = path

			if cliCtx.IsJSON() {
				return PrintResult(cmd, runPayload{
					Summary:    result.Summary,
					Similarity: result.Similarity,
					Structure:  result.Structure,
				})
			}

			out := cmd.OutOrStdout()
			if err := deps.writer.RenderSimilarity(out, result.Similarity); err != nil {
				return err
			}
			if err := deps.writer.RenderStructure(out, result.Structure); err != nil {
				return err
			}
			return deps.writer.RenderRunSummary(out, result.Summary)
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "similarity report path (default: <out-dir>/workflow_analysis.json)")

	return cmd
}

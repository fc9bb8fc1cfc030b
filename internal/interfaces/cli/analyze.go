package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newAnalyzeCmd builds the similarity analysis command.
func newAnalyzeCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compare workflow similarity across sources",
		Long: "Analyze loads every workflow document, compares the sources pairwise\n" +
			"per disease with TF-IDF cosine similarity, extracts each source's\n" +
			"distinctive terms, and writes the similarity report as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			deps, err := buildDeps(cliCtx)
			if err != nil {
				return err
			}

			c, err := deps.loader.Load(cliCtx.Config.Corpus.Root)
			if err != nil {
				return err
			}
			rep, err := deps.similarity.Compare(cmd.Context(), c)
			if err != nil {
				return err
			}
			path, err := deps.writer.WriteSimilarityJSON(rep, outFile)
			if err != nil {
				return err
			}

			if cliCtx.IsJSON() {
				return PrintResult(cmd, rep)
			}
			if err := deps.writer.RenderSimilarity(cmd.OutOrStdout(), rep); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nReport written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "similarity report path (default: <out-dir>/workflow_analysis.json)")

	return cmd
}

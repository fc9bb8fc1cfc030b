package cli

import (
	"github.com/spf13/cobra"
)

// newStructureCmd builds the structural ranking command.
func newStructureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "structure",
		Short: "Rank sources by workflow structure",
		Long: "Structure parses the numbered steps and bulleted sub-steps of every\n" +
			"workflow document and ranks the sources by granularity and by how\n" +
			"early they reach for definitive interventions.",
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
			rep, err := deps.structure.Analyze(cmd.Context(), c)
			if err != nil {
				return err
			}

			if cliCtx.IsJSON() {
				return PrintResult(cmd, rep)
			}
			return deps.writer.RenderStructure(cmd.OutOrStdout(), rep)
		},
	}
}

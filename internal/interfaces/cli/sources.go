package cli

import (
	"github.com/spf13/cobra"
)

// sourcePayload is the JSON shape of one source row.
type sourcePayload struct {
	ID        string `json:"id"`
	Folder    string `json:"folder"`
	Workflows int    `json:"workflows"`
}

// sourcesPayload is the JSON shape of the sources command output.
type sourcesPayload struct {
	Sources []sourcePayload `json:"sources"`
	Total   int             `json:"total"`
}

// newSourcesCmd builds the corpus inventory command.
func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "Show loaded workflow counts per source",
		Long: "Sources loads the corpus and reports how many workflow documents each\n" +
			"configured source contributed, which is the quickest way to spot a\n" +
			"misnamed or missing source folder.",
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
			counts := c.SourceCounts()

			if cliCtx.IsJSON() {
				payload := sourcesPayload{Sources: make([]sourcePayload, 0, len(c.Sources()))}
				for _, src := range c.Sources() {
					payload.Sources = append(payload.Sources, sourcePayload{
						ID:        src.ID,
						Folder:    src.Folder,
						Workflows: counts[src.ID],
					})
					payload.Total += counts[src.ID]
				}
				return PrintResult(cmd, payload)
			}
			return deps.writer.RenderSourceCounts(cmd.OutOrStdout(), c.Sources(), counts)
		},
	}
}

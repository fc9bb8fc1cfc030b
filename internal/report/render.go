package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/corpus"
	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/types"
)

func (w *Writer) formatFloat(v float64) string {
	return fmt.Sprintf("%.*f", w.precision, v)
}

// RenderStructure writes both source rankings as tables.
func (w *Writer) RenderStructure(out io.Writer, rep *types.StructureReport) error {
	var buf strings.Builder

	buf.WriteString("\n=== Workflow Granularity Ranking ===\n\n")
	if len(rep.StepRanking) == 0 {
		buf.WriteString("No workflow documents found.\n")
	} else {
		table := tablewriter.NewWriter(&buf)
		table.Header([]string{"Source", "Avg Major Steps", "Avg Sub-Steps", "Workflows"})
		for _, row := range rep.StepRanking {
			table.Append([]string{
				row.Source,
				w.formatFloat(row.AvgMajorSteps),
				w.formatFloat(row.AvgSubSteps),
				fmt.Sprintf("%d", row.Workflows),
			})
		}
		table.Render()
	}

	buf.WriteString("\n=== Intervention Aggressiveness Ranking ===\n\n")
	if len(rep.AggressionRanking) == 0 {
		buf.WriteString("No interventions detected.\n")
	} else {
		table := tablewriter.NewWriter(&buf)
		table.Header([]string{"Source", "Avg Intervention Step", "Workflows"})
		for _, row := range rep.AggressionRanking {
			table.Append([]string{
				row.Source,
				colorizeInterventionStep(w.formatFloat(row.AvgInterventionStep), row.AvgInterventionStep),
				fmt.Sprintf("%d", row.Workflows),
			})
		}
		table.Render()
	}

	buf.WriteString(fmt.Sprintf("\nProcessed %d workflow files.\n", rep.TotalWorkflows))

	_, err := io.WriteString(out, buf.String())
	return err
}

// RenderSimilarity writes one similarity matrix per disease, followed
// by each source's distinctive terms.
func (w *Writer) RenderSimilarity(out io.Writer, rep types.SimilarityReport) error {
	var buf strings.Builder

	if len(rep) == 0 {
		buf.WriteString("\nNo diseases with at least two workflow documents.\n")
	}

	diseases := make([]string, 0, len(rep))
	for d := range rep {
		diseases = append(diseases, d)
	}
	sort.Strings(diseases)

	for _, disease := range diseases {
		cmp := rep[disease]
		buf.WriteString(fmt.Sprintf("\n=== %s ===\n\n", disease))

		table := tablewriter.NewWriter(&buf)
		table.Header(append([]string{""}, cmp.Sources...))
		for i, src := range cmp.Sources {
			row := make([]string, 0, len(cmp.Sources)+1)
			row = append(row, src)
			for j := range cmp.Sources {
				cell := w.formatFloat(cmp.SimilarityMatrix[i][j])
				if i != j {
					cell = colorizeSimilarity(cell, cmp.SimilarityMatrix[i][j])
				}
				row = append(row, cell)
			}
			table.Append(row)
		}
		table.Render()

		buf.WriteString("\nDistinctive terms:\n")
		for _, src := range cmp.Sources {
			terms := cmp.DistinctiveTerms[src]
			if len(terms) == 0 {
				buf.WriteString(fmt.Sprintf("  %s: (none)\n", src))
				continue
			}
			buf.WriteString(fmt.Sprintf("  %s: %s\n", src, strings.Join(terms, ", ")))
		}
	}

	_, err := io.WriteString(out, buf.String())
	return err
}

// RenderRunSummary writes the metadata of one combined run.
func (w *Writer) RenderRunSummary(out io.Writer, s types.RunSummary) error {
	var buf strings.Builder
	buf.WriteString("\n=== Run Summary ===\n\n")
	buf.WriteString(fmt.Sprintf("Run ID:            %s\n", s.RunID))
	buf.WriteString(fmt.Sprintf("Workflows:         %d\n", s.Workflows))
	buf.WriteString(fmt.Sprintf("Diseases found:    %d\n", s.DiseasesFound))
	buf.WriteString(fmt.Sprintf("Diseases compared: %d\n", s.DiseasesCompared))
	if s.ReportPath != "" {
		buf.WriteString(fmt.Sprintf("Report:            %s\n", s.ReportPath))
	}
	buf.WriteString(fmt.Sprintf("Elapsed:           %dms\n", s.ElapsedMs))

	_, err := io.WriteString(out, buf.String())
	return err
}

// RenderSourceCounts writes one row per configured source with its
// loaded document count.
func (w *Writer) RenderSourceCounts(out io.Writer, sources []corpus.Source, counts map[string]int) error {
	var buf strings.Builder
	buf.WriteString("\n=== Corpus Sources ===\n\n")

	table := tablewriter.NewWriter(&buf)
	table.Header([]string{"Source", "Folder", "Workflows"})
	total := 0
	for _, src := range sources {
		n := counts[src.ID]
		total += n
		table.Append([]string{src.ID, src.Folder, fmt.Sprintf("%d", n)})
	}
	table.Render()

	buf.WriteString(fmt.Sprintf("\nTotal workflows: %d\n", total))

	_, err := io.WriteString(out, buf.String())
	return err
}

// An early average intervention step means the source escalates to
// definitive treatment sooner.
func colorizeInterventionStep(s string, avg float64) string {
	switch {
	case avg <= 2:
		return color.RedString(s)
	case avg <= 4:
		return color.YellowString(s)
	default:
		return color.GreenString(s)
	}
}

func colorizeSimilarity(s string, v float64) string {
	switch {
	case v >= 0.8:
		return color.GreenString(s)
	case v >= 0.5:
		return color.YellowString(s)
	default:
		return s
	}
}

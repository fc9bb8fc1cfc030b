// Package rank aggregates per-document step statistics into per-source
// averages and produces the two source rankings: workflow granularity
// and intervention aggressiveness.
package rank

import (
	"sort"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/types"
)

type sourceTotals struct {
	workflows       int
	majorSteps      int
	subSteps        int
	interventions   int
	interventionSum int
}

// Accumulator collects step statistics grouped by source. Not safe for
// concurrent use; callers aggregate from a single goroutine.
type Accumulator struct {
	bySource map[string]*sourceTotals
	total    int
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{bySource: make(map[string]*sourceTotals)}
}

// Add records the statistics of one workflow document for source.
func (a *Accumulator) Add(source string, st types.StepStats) {
	t := a.bySource[source]
	if t == nil {
		t = &sourceTotals{}
		a.bySource[source] = t
	}
	t.workflows++
	t.majorSteps += st.MajorSteps
	t.subSteps += st.SubSteps
	if st.HasIntervention() {
		t.interventions++
		t.interventionSum += *st.InterventionStep
	}
	a.total++
}

// TotalWorkflows returns the number of documents recorded so far.
func (a *Accumulator) TotalWorkflows() int {
	return a.total
}

// StepRanking returns one row per source ordered by average major
// steps, most detailed workflows first. Equal averages order by source
// id.
func (a *Accumulator) StepRanking() []types.StepRankingRow {
	rows := make([]types.StepRankingRow, 0, len(a.bySource))
	for source, t := range a.bySource {
		rows = append(rows, types.StepRankingRow{
			Source:        source,
			AvgMajorSteps: float64(t.majorSteps) / float64(t.workflows),
			AvgSubSteps:   float64(t.subSteps) / float64(t.workflows),
			Workflows:     t.workflows,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AvgMajorSteps != rows[j].AvgMajorSteps {
			return rows[i].AvgMajorSteps > rows[j].AvgMajorSteps
		}
		return rows[i].Source < rows[j].Source
	})
	return rows
}

// AggressionRanking returns one row per source ordered by average
// intervention position, earliest intervention first. The average runs
// over documents with a detected intervention only; sources with none
// are omitted. Equal averages order by source id.
func (a *Accumulator) AggressionRanking() []types.AggressionRankingRow {
	rows := make([]types.AggressionRankingRow, 0, len(a.bySource))
	for source, t := range a.bySource {
		if t.interventions == 0 {
			continue
		}
		rows = append(rows, types.AggressionRankingRow{
			Source:              source,
			AvgInterventionStep: float64(t.interventionSum) / float64(t.interventions),
			Workflows:           t.interventions,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AvgInterventionStep != rows[j].AvgInterventionStep {
			return rows[i].AvgInterventionStep < rows[j].AvgInterventionStep
		}
		return rows[i].Source < rows[j].Source
	})
	return rows
}

// Report bundles both rankings with the total document count.
func (a *Accumulator) Report() *types.StructureReport {
	return &types.StructureReport{
		StepRanking:       a.StepRanking(),
		AggressionRanking: a.AggressionRanking(),
		TotalWorkflows:    a.total,
	}
}

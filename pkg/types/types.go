// Package types holds the serializable result contract of the workflow
// analysis engine: step statistics, per-disease comparisons, and the two
// source rankings.  Everything here is plain data with stable JSON shapes;
// no behavior beyond small accessors.
package types

import "time"

// StepStats summarises the structure of a single workflow document.
type StepStats struct {
	// MajorSteps is the number of numbered top-level steps.
	MajorSteps int `json:"major_steps"`

	// SubSteps is the number of bulleted sub-steps across the whole
	// document.
	SubSteps int `json:"sub_steps"`

	// InterventionStep is the major-step position at which a definitive
	// intervention is first mentioned.  Nil when the document never
	// mentions one.
	InterventionStep *int `json:"intervention_step,omitempty"`
}

// HasIntervention reports whether a definitive intervention was detected.
func (s StepStats) HasIntervention() bool {
	return s.InterventionStep != nil
}

// DiseaseComparison is the cross-source comparison for one disease.
// JSON keys follow the on-disk report layout consumed by downstream
// notebooks: "sites", "similarity_matrix", "unique_terms".
type DiseaseComparison struct {
	// Sources lists the source identifiers compared, in corpus order.
	// Row/column i of SimilarityMatrix corresponds to Sources[i].
	Sources []string `json:"sites"`

	// SimilarityMatrix is the symmetric pairwise cosine-similarity matrix
	// with diagonal 1.0.
	SimilarityMatrix [][]float64 `json:"similarity_matrix"`

	// DistinctiveTerms maps each source to its highest-weighted terms for
	// this disease, strongest first.  Entries hold fewer than the requested
	// number of terms when a document has fewer nonzero weights.
	DistinctiveTerms map[string][]string `json:"unique_terms"`
}

// SimilarityReport maps disease id → comparison.  encoding/json emits map
// keys sorted, so serialized reports are byte-stable across runs.
type SimilarityReport map[string]*DiseaseComparison

// StepRankingRow is one line of the workflow-granularity ranking.
type StepRankingRow struct {
	Source        string  `json:"source"`
	AvgMajorSteps float64 `json:"avg_major_steps"`
	AvgSubSteps   float64 `json:"avg_sub_steps"`
	Workflows     int     `json:"workflows"`
}

// AggressionRankingRow is one line of the intervention-position ranking.
// Workflows counts only documents in which an intervention was detected.
type AggressionRankingRow struct {
	Source              string  `json:"source"`
	AvgInterventionStep float64 `json:"avg_intervention_step"`
	Workflows           int     `json:"workflows"`
}

// StructureReport aggregates the structural analysis across the corpus.
type StructureReport struct {
	// StepRanking orders sources by average major steps, most detailed
	// first.
	StepRanking []StepRankingRow `json:"step_ranking"`

	// AggressionRanking orders sources by average intervention position,
	// earliest first.  Sources with no detected interventions are absent.
	AggressionRanking []AggressionRankingRow `json:"aggression_ranking"`

	// TotalWorkflows is the number of workflow documents parsed.
	TotalWorkflows int `json:"total_workflows"`
}

// RunSummary captures metadata for one combined analysis run.
type RunSummary struct {
	RunID            string    `json:"run_id"`
	StartedAt        time.Time `json:"started_at"`
	ElapsedMs        int64     `json:"elapsed_ms"`
	Workflows        int       `json:"workflows"`
	DiseasesFound    int       `json:"diseases_found"`
	DiseasesCompared int       `json:"diseases_compared"`
	ReportPath       string    `json:"report_path,omitempty"`
}

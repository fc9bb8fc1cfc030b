// Package integration exercises the full analysis pipeline against a
// corpus laid out on disk, from loading through report rendering. The
// tests need nothing beyond a temp directory, so they run as part of
// the ordinary test suite.
package integration

import (
	"testing"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/internal/testutil"
)

// Fixture workflows for three diseases with uneven source coverage:
// diabetes appears in three sources, gerd in two, and asthma in a
// single source so the similarity stage has something to skip.
const (
	mayoDiabetes = `1. Lifestyle assessment
- diet review
- exercise plan
2. Metformin therapy
3. Insulin escalation
4. Bariatric surgery evaluation`

	clevelandDiabetes = `1. Blood glucose monitoring
2. Nutrition counseling
3. Oral medication
4. Insulin therapy
5. Follow-up every three months`

	wikiDiabetes = `1. Diagnosis confirmation
2. Lifestyle modification
3. Medication management`

	mayoGerd = `1. Dietary changes
- avoid trigger foods
2. Antacid therapy
3. Proton pump inhibitors
4. Fundoplication surgery`

	webmdGerd = `1. Lifestyle changes
2. Medication
- antacids
- h2 blockers
3. Surgical fundoplication if refractory`

	merckAsthma = `1. Inhaled corticosteroids
2. Bronchodilator therapy
3. Trigger avoidance`
)

// seedCorpus writes the fixture tree and returns its root. The merck
// folder also receives a file whose name omits the disease segment so
// loader error accounting is visible end to end.
func seedCorpus(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	testutil.WriteCorpusFile(t, root, "mayowf", "mayo_wf_diabetes_1.txt", mayoDiabetes)
	testutil.WriteCorpusFile(t, root, "clevelandwf", "cleveland_wf_diabetes_1.txt", clevelandDiabetes)
	testutil.WriteCorpusFile(t, root, "wikiwf", "wiki_wf_diabetes_1.txt", wikiDiabetes)
	testutil.WriteCorpusFile(t, root, "mayowf", "mayo_wf_gerd_1.txt", mayoGerd)
	testutil.WriteCorpusFile(t, root, "webmdwf", "webmd_wf_gerd_1.txt", webmdGerd)
	testutil.WriteCorpusFile(t, root, "merckwf", "merck_wf_asthma_1.txt", merckAsthma)
	testutil.WriteCorpusFile(t, root, "merckwf", "notes.txt", "scratch file without the naming convention")
	return root
}

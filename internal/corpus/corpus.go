// Package corpus loads workflow documents from the on-disk layout
// produced by the scraping stage: one folder per source, named
// "<id>wf", holding one text file per disease. Loading is fault
// tolerant; unreadable or misnamed files are recorded and skipped so a
// single bad file never aborts an analysis run.
package corpus

import (
	"fmt"
	"sort"
)

// Source identifies one workflow provider and the corpus folder its
// documents live in.
type Source struct {
	ID     string
	Folder string
}

// defaultSourceIDs lists the five scraped providers in presentation
// order.
var defaultSourceIDs = []string{"mayo", "cleveland", "merck", "webmd", "wiki"}

// DefaultSources returns the built-in source set. The folder for each
// source is its id with a "wf" suffix, e.g. "mayowf".
func DefaultSources() []Source {
	return SourcesFromIDs(defaultSourceIDs)
}

// SourcesFromIDs maps source ids onto their conventional corpus
// folders.
func SourcesFromIDs(ids []string) []Source {
	sources := make([]Source, len(ids))
	for i, id := range ids {
		sources[i] = Source{ID: id, Folder: id + "wf"}
	}
	return sources
}

// WorkflowText is one loaded workflow document.
type WorkflowText struct {
	// Disease is the identifier parsed from the filename.
	Disease string

	// Source is the id of the provider folder the file came from.
	Source string

	// Path is the file the text was read from.
	Path string

	// Text is the raw document content.
	Text string
}

// LoadError records one file that could not be ingested.
type LoadError struct {
	Path string
	Err  error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e LoadError) Unwrap() error { return e.Err }

// Corpus is the loaded document set, indexed by disease and source.
type Corpus struct {
	sources    []Source
	docs       map[string]map[string]*WorkflowText
	loadErrors []LoadError
	total      int
}

func newCorpus(sources []Source) *Corpus {
	return &Corpus{
		sources: sources,
		docs:    make(map[string]map[string]*WorkflowText),
	}
}

// add inserts doc, replacing any earlier document for the same disease
// and source. It reports whether a document was replaced.
func (c *Corpus) add(doc *WorkflowText) bool {
	bySource := c.docs[doc.Disease]
	if bySource == nil {
		bySource = make(map[string]*WorkflowText)
		c.docs[doc.Disease] = bySource
	}
	_, replaced := bySource[doc.Source]
	bySource[doc.Source] = doc
	if !replaced {
		c.total++
	}
	return replaced
}

// Sources returns the configured sources in presentation order.
func (c *Corpus) Sources() []Source {
	out := make([]Source, len(c.sources))
	copy(out, c.sources)
	return out
}

// Diseases returns every disease with at least one document, sorted.
func (c *Corpus) Diseases() []string {
	out := make([]string, 0, len(c.docs))
	for d := range c.docs {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Workflows returns the documents for disease in source presentation
// order. Sources without a document for this disease are absent.
func (c *Corpus) Workflows(disease string) []*WorkflowText {
	bySource := c.docs[disease]
	if bySource == nil {
		return nil
	}
	out := make([]*WorkflowText, 0, len(bySource))
	for _, s := range c.sources {
		if doc, ok := bySource[s.ID]; ok {
			out = append(out, doc)
		}
	}
	return out
}

// Document returns the workflow for a disease/source pair.
func (c *Corpus) Document(disease, source string) (*WorkflowText, bool) {
	doc, ok := c.docs[disease][source]
	return doc, ok
}

// SourceCounts returns the number of loaded documents per source id.
// Every configured source appears, including those with zero files.
func (c *Corpus) SourceCounts() map[string]int {
	counts := make(map[string]int, len(c.sources))
	for _, s := range c.sources {
		counts[s.ID] = 0
	}
	for _, bySource := range c.docs {
		for id := range bySource {
			counts[id]++
		}
	}
	return counts
}

// TotalDocuments returns the number of documents held.
func (c *Corpus) TotalDocuments() int {
	return c.total
}

// LoadErrors returns the files skipped during loading, in the order
// they were encountered.
func (c *Corpus) LoadErrors() []LoadError {
	out := make([]LoadError, len(c.loadErrors))
	copy(out, c.loadErrors)
	return out
}

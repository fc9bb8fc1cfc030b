// Package steps parses the structural skeleton of a workflow document:
// how many numbered major steps and bulleted sub-steps it has, and at
// which major step a definitive intervention first appears.
package steps

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/types"
)

var (
	// majorStep matches a numbered top-level step such as "3." or
	// "12)". The captured number becomes the current step position for
	// intervention tracking.
	majorStep = regexp.MustCompile(`^\s*([\p{Nd}]+)\s*[.)]\s*`)

	// subStep matches a bulleted line. Sub-steps accumulate across the
	// whole document; the counter never resets at major-step
	// boundaries.
	subStep = regexp.MustCompile(`^\s*[-*•]\s*`)
)

// Option configures a Parser.
type Option func(*Parser)

// WithKeywords replaces the intervention keyword list. Keywords are
// matched as lowercase substrings.
func WithKeywords(keywords []string) Option {
	return func(p *Parser) { p.keywords = keywords }
}

// Parser extracts step statistics from workflow documents. It holds no
// per-document state and is safe for concurrent use.
type Parser struct {
	keywords []string
}

// NewParser returns a Parser with the built-in intervention keywords.
func NewParser(opts ...Option) *Parser {
	p := &Parser{keywords: DefaultKeywords()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse scans doc line by line and returns its step statistics.
//
// A line is counted as a major step or a sub-step, never both. The
// intervention scan runs on every line until a position is recorded:
// when a keyword occurs while the current major-step number is known,
// that number is the intervention position; when steps have been seen
// but the current number is unusable, position 1 is recorded as a
// floor. Keyword mentions before the first step are ignored so that
// prose introductions do not trigger detection.
func (p *Parser) Parse(doc string) types.StepStats {
	var stats types.StepStats
	current := 0

	for _, line := range strings.Split(doc, "\n") {
		if m := majorStep.FindStringSubmatch(line); m != nil {
			stats.MajorSteps++
			if n, err := strconv.Atoi(m[1]); err == nil {
				current = n
			}
		} else if subStep.MatchString(line) {
			stats.SubSteps++
		}

		if stats.InterventionStep != nil {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range p.keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			if current > 0 {
				pos := current
				stats.InterventionStep = &pos
			} else if stats.MajorSteps > 0 {
				pos := 1
				stats.InterventionStep = &pos
			}
			break
		}
	}
	return stats
}

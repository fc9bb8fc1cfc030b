// Package text provides the normalization and tokenization primitives
// shared by the vectorization pipeline. Workflow documents arrive as
// numbered step lists scraped from medical sites; before any term
// statistics are computed the numbering is stripped so that step
// markers never surface as vocabulary terms.
package text

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// stepMarker matches a run of decimal digits directly followed by a dot
// or closing parenthesis, e.g. "3." or "12)". Markers are replaced with
// a single space so adjacent words do not fuse into one token.
var stepMarker = regexp.MustCompile(`[\p{Nd}]+[.)]`)

// wordToken matches a word of at least two letters, digits, or
// underscores. Single-character tokens carry no signal for treatment
// vocabulary and are dropped.
var wordToken = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Normalize prepares a raw workflow document for tokenization: the text
// is brought to NFC form, step markers are blanked out, and the result
// is lowercased. A cases.Caser is not safe for concurrent use, so a
// fresh one is created per call rather than shared.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = stepMarker.ReplaceAllString(s, " ")
	return cases.Lower(language.Und).String(s)
}

// Tokenize splits normalized text into word tokens. It performs no
// stopword filtering; callers decide which terms survive.
func Tokenize(s string) []string {
	return wordToken.FindAllString(s, -1)
}

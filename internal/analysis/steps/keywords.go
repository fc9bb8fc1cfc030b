package steps

import (
	"bufio"
	"os"
	"strings"

	apperrors "github.com/Joshitadhanireddy/LLM-Driven-Analysis-of-Structural-Divergence-in-Health-Treatment-Workflows/pkg/errors"
)

// defaultKeywords marks a treatment step as a definitive intervention
// when any of them occurs in the step text. Matching is by lowercase
// substring, so "surgical" also catches "nonsurgical" and "cut" catches
// "acute"; the list is tuned for recall over precision.
var defaultKeywords = []string{
	"surgery",
	"surgical",
	"transplant",
	"radiation",
	"dialysis",
	"fundoplication",
	"replacement",
	"ablation",
	"resection",
	"cut",
	"operative",
	"implant",
	"neuro",
	"graft",
	"laser",
	"artery",
	"steroids",
}

// DefaultKeywords returns the built-in intervention keyword list as a
// fresh copy.
func DefaultKeywords() []string {
	out := make([]string, len(defaultKeywords))
	copy(out, defaultKeywords)
	return out
}

// LoadKeywords reads an intervention keyword list from path, one
// keyword per line. Blank lines and lines starting with '#' are
// ignored; entries are lowercased. An empty file disables intervention
// detection.
func LoadKeywords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeMissingInput, "open keywords file")
	}
	defer f.Close()

	var keywords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnreadableFile, "read keywords file")
	}
	return keywords, nil
}

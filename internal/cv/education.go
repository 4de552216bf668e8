package cv

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cv-analyzer/internal/nlp"
	"cv-analyzer/internal/types"
)

// Sentences at or above this many characters are treated as run-ons and skipped.
const maxEducationSentenceLen = 120

var educationKeywords = []string{"bachelor", "master", "phd", "degree", "university", "college", "education"}

// ExtractEducation keeps short sentences that mention an education keyword.
// Sentences are returned lower-cased.
func ExtractEducation(text string, tagger nlp.Tagger) (types.Field[[]string], error) {
	sentences, err := tagger.Sentences(strings.ToLower(text))
	if err != nil {
		return types.Missing[[]string](), fmt.Errorf("education: %w", err)
	}

	var out []string
	for _, s := range sentences {
		if utf8.RuneCountInString(s) >= maxEducationSentenceLen {
			continue
		}
		if mentionsEducation(s) {
			out = append(out, s)
		}
	}
	return nonEmpty(out), nil
}

func mentionsEducation(sentence string) bool {
	for _, kw := range educationKeywords {
		if strings.Contains(sentence, kw) {
			return true
		}
	}
	return false
}

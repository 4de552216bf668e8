package cv

import (
	"fmt"
	"sort"
	"strings"

	"cv-analyzer/internal/nlp"
	"cv-analyzer/internal/types"
)

// Vocabulary is a closed, lower-cased set of skill terms.
type Vocabulary map[string]struct{}

func NewVocabulary(terms []string) Vocabulary {
	v := make(Vocabulary, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			v[t] = struct{}{}
		}
	}
	return v
}

func (v Vocabulary) Contains(term string) bool {
	_, ok := v[term]
	return ok
}

// ExtractSkills lower-cases text, tokenizes it and keeps tokens that are
// exactly a vocabulary term. Multi-word terms only match if the tokenizer
// keeps them as one token, which it normally does not.
func ExtractSkills(text string, tagger nlp.Tagger, vocab Vocabulary) (types.Field[[]string], error) {
	tokens, err := tagger.Tokens(strings.ToLower(text))
	if err != nil {
		return types.Missing[[]string](), fmt.Errorf("skills: %w", err)
	}

	found := map[string]struct{}{}
	for _, tok := range tokens {
		if vocab.Contains(tok) {
			found[tok] = struct{}{}
		}
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return nonEmpty(skills), nil
}

package cv

import (
	"context"
	"fmt"

	"cv-analyzer/internal/nlp"
	"cv-analyzer/internal/types"
)

// Only this many characters are sent to the recognizer.
const entityInputLimit = 1000

// EntityRecognizer is the NER collaborator.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]nlp.Entity, error)
}

// AnalyzeEntities maps each recognized surface form to its label. A later
// entity with the same text overwrites an earlier one.
func AnalyzeEntities(ctx context.Context, text string, rec EntityRecognizer) (types.Field[map[string]string], error) {
	entities, err := rec.Recognize(ctx, Truncate(text, entityInputLimit))
	if err != nil {
		return types.Missing[map[string]string](), fmt.Errorf("entities: %w", err)
	}
	if len(entities) == 0 {
		return types.Missing[map[string]string](), nil
	}

	m := make(map[string]string, len(entities))
	for _, e := range entities {
		m[e.Text] = e.Label
	}
	return types.Found(m), nil
}

// Truncate returns at most n characters of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

package cv

import (
	"context"
	"errors"
	"testing"

	"cv-analyzer/internal/nlp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEndToEnd(t *testing.T) {
	rec := &stubRecognizer{entities: []nlp.Entity{{Text: "State University", Label: "ORG"}}}
	ex := NewExtractor(nlp.NewProseTagger(), rec, defaultVocab, nil)

	a := ex.Analyze(context.Background(), sampleCV)

	assert.Equal(t, []string{"jane@example.com"}, a.Contact.Emails.Value())
	assert.Equal(t, []string{"555-123-4567"}, a.Contact.PhoneNumbers.Value())
	assert.Equal(t, 4, a.Experience.Value())
	assert.Contains(t, a.Skills.Value(), "python")
	assert.Contains(t, a.Skills.Value(), "aws")
	require.True(t, a.Education.IsFound())
	assert.True(t, containsSubstring(a.Education.Value(), "bachelor"))
	assert.Equal(t, "ORG", a.Entities.Value()["State University"])
}

func TestAnalyzeDegradesCollaboratorFailures(t *testing.T) {
	rec := &stubRecognizer{err: errors.New("model unavailable")}
	ex := NewExtractor(stubTagger{err: errors.New("tagger down")}, rec, defaultVocab, nil)

	a := ex.Analyze(context.Background(), sampleCV)

	assert.False(t, a.Skills.IsFound())
	assert.False(t, a.Education.IsFound())
	assert.False(t, a.Entities.IsFound())
	// Regex-only fields are unaffected.
	assert.True(t, a.Contact.Emails.IsFound())
	assert.Equal(t, 4, a.Experience.Value())
}

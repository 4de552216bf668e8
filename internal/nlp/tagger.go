// Package nlp wraps the general-purpose language tooling the extractors rely on:
// tokenization, sentence segmentation and an in-process entity recognizer.
package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Tagger splits text into tokens and sentences.
type Tagger interface {
	Tokens(text string) ([]string, error)
	Sentences(text string) ([]string, error)
}

// Entity is one recognized span with its type label.
type Entity struct {
	Text  string
	Label string
}

// ProseTagger implements Tagger and entity recognition with prose.
// It holds no state and is safe for concurrent use.
type ProseTagger struct{}

func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

func (p *ProseTagger) Tokens(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	toks := doc.Tokens()
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		out = append(out, splitSlashes(tok.Text)...)
	}
	return out, nil
}

// splitSlashes breaks "docker/kubernetes" into its parts. prose keeps such
// words whole.
func splitSlashes(tok string) []string {
	if !strings.Contains(tok, "/") {
		return []string{tok}
	}
	parts := strings.FieldsFunc(tok, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return []string{tok}
	}
	return parts
}

// Sentences segments each non-blank line on its own. CVs are laid out in
// lines without terminal punctuation, so a line break always ends a sentence.
func (p *ProseTagger) Sentences(text string) ([]string, error) {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		doc, err := prose.NewDocument(line,
			prose.WithTokenization(false),
			prose.WithTagging(false),
			prose.WithExtraction(false))
		if err != nil {
			return nil, fmt.Errorf("segment: %w", err)
		}
		for _, s := range doc.Sentences() {
			if t := strings.TrimSpace(s.Text); t != "" {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

// Recognize runs prose's averaged-perceptron entity extractor (PERSON, GPE, ...).
func (p *ProseTagger) Recognize(ctx context.Context, text string) ([]Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("extract entities: %w", err)
	}

	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}

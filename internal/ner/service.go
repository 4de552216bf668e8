// Package ner talks to the named-entity-recognition model.
package ner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cv-analyzer/internal/logger"
	"cv-analyzer/internal/nlp"
	pkghttp "cv-analyzer/pkg/http"
)

type Provider string

const (
	ProviderHuggingFace Provider = "huggingface"
	ProviderProse       Provider = "prose"
	ProviderNone        Provider = "none"
)

// DefaultModel is a BERT model fine-tuned for CoNLL-2003 entities (PER, ORG, LOC, MISC).
const DefaultModel = "dslim/bert-base-NER"

// UnknownLabel is used when the model omits a word or group.
const UnknownLabel = "UNKNOWN"

type Config struct {
	Provider Provider
	Endpoint string
	Model    string
	APIKey   string
	Timeout  time.Duration
}

type Service struct {
	provider Provider
	endpoint string
	model    string
	apiKey   string
	client   *pkghttp.Client
	local    *nlp.ProseTagger
}

// hfEntity is one item of a token-classification response with
// aggregation_strategy=simple.
type hfEntity struct {
	EntityGroup string  `json:"entity_group"`
	Word        string  `json:"word"`
	Score       float64 `json:"score"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
}

func NewService(cfg Config) *Service {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Service{
		provider: cfg.Provider,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
		client:   pkghttp.NewClient(cfg.Timeout),
		local:    nlp.NewProseTagger(),
	}
}

func (s *Service) Provider() Provider { return s.provider }

// Recognize returns the entities found in text. The caller is responsible
// for truncating text to the model's budget.
func (s *Service) Recognize(ctx context.Context, text string) ([]nlp.Entity, error) {
	switch s.provider {
	case ProviderHuggingFace:
		return s.callHuggingFace(ctx, text)
	case ProviderProse:
		return s.local.Recognize(ctx, text)
	case ProviderNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown NER provider: %s", s.provider)
	}
}

func (s *Service) callHuggingFace(ctx context.Context, text string) ([]nlp.Entity, error) {
	url := fmt.Sprintf("%s/models/%s", s.endpoint, s.model)

	reqBody := map[string]interface{}{
		"inputs": text,
		"parameters": map[string]string{
			"aggregation_strategy": "simple",
		},
	}

	headers := map[string]string{}
	if s.apiKey != "" {
		headers["Authorization"] = "Bearer " + s.apiKey
	}

	startTime := time.Now()
	var result []hfEntity
	err := s.client.PostJSON(ctx, url, headers, reqBody, &result)
	logger.Ctx(ctx).Debug().
		Str("model", s.model).
		Int("input_chars", len(text)).
		Dur("elapsed", time.Since(startTime)).
		Msg("ner request finished")
	if err != nil {
		return nil, fmt.Errorf("huggingface NER: %w", err)
	}

	entities := make([]nlp.Entity, 0, len(result))
	for _, e := range result {
		word, group := e.Word, e.EntityGroup
		if word == "" {
			word = UnknownLabel
		}
		if group == "" {
			group = UnknownLabel
		}
		entities = append(entities, nlp.Entity{Text: word, Label: group})
	}
	return entities, nil
}

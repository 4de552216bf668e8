// Package dashboard is the companion view of the analyzer: it sends a CV to
// the API, re-derives a few fields locally and renders a readable report.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	pkghttp "cv-analyzer/pkg/http"
)

// AnalyzeResult mirrors the /analyze_cv response. Keys that may hold a
// sentinel string are kept raw.
type AnalyzeResult struct {
	Message     string `json:"message"`
	ContactInfo struct {
		Emails       []string `json:"emails"`
		PhoneNumbers []string `json:"phone_numbers"`
	} `json:"contact_info"`
	Skills              []string        `json:"skills"`
	ExperienceYears     json.RawMessage `json:"experience_years"`
	Education           []string        `json:"education"`
	BertAnalysis        json.RawMessage `json:"bert_analysis"`
	JobRecommendations  json.RawMessage `json:"job_recommendations"`
	ExtractedTextSample string          `json:"extracted_text_sample"`
}

type Client struct {
	baseURL string
	http    *pkghttp.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    pkghttp.NewClient(timeout),
	}
}

// Health checks that the API answers GET /health before anything is uploaded.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.http.Get(ctx, c.baseURL+"/health")
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: %w", &pkghttp.StatusError{StatusCode: resp.StatusCode, Body: resp.Status})
	}
	return nil
}

// Analyze uploads a PDF and returns both the decoded result and the raw body.
func (c *Client) Analyze(ctx context.Context, filename string, data []byte) (*AnalyzeResult, json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.http.PostFile(ctx, c.baseURL+"/analyze_cv", "file", filename, data, &raw); err != nil {
		return nil, nil, fmt.Errorf("analyze %s: %w", filename, err)
	}

	var res AnalyzeResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, raw, fmt.Errorf("decode analysis: %w", err)
	}
	return &res, raw, nil
}

// Package gemini implements embedding, answer generation and token
// counting on top of the Google Gemini API.
package gemini

import (
	"context"

	"google.golang.org/genai"
)

// Default models.
const (
	DefaultAnswerModel    = "gemini-2.5-flash"
	DefaultEmbeddingModel = "gemini-embedding-001"
)

// NewClient creates a Gemini API client. An empty baseURL uses the public
// endpoint.
func NewClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	return genai.NewClient(ctx, cfg)
}

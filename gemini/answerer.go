package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/ciagent"
	"google.golang.org/genai"
)

// SystemPrompt instructs the model to answer from the supplied context only.
const SystemPrompt = "You are an expert business analyst. Answer the user's question based *only* on the provided text context. If the context does not contain the answer, state that the information is not available."

// Generation defaults.
const (
	DefaultMaxOutputTokens = 512
	DefaultTemperature     = 0.7
)

// ContextSeparator joins retrieved passages in the prompt.
const ContextSeparator = "\n---\n"

// ErrClientUnavailable is the answer text when no client is configured.
const ErrClientUnavailable = "### 🚨 Error\n**Could not initialize the Gemini client.** Set GEMINI_API_KEY and try again."

var _ ciagent.Answerer = (*Answerer)(nil)

// Answerer implements ciagent.Answerer using Gemini.
type Answerer struct {
	client          *genai.Client
	model           string
	maxOutputTokens int32
	temperature     float32
}

// AnswererOption configures an Answerer.
type AnswererOption func(*Answerer)

// WithModel sets the generation model.
func WithModel(model string) AnswererOption {
	return func(a *Answerer) {
		if model != "" {
			a.model = model
		}
	}
}

// WithMaxOutputTokens caps the answer length.
func WithMaxOutputTokens(n int) AnswererOption {
	return func(a *Answerer) {
		if n > 0 {
			a.maxOutputTokens = int32(n)
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) AnswererOption {
	return func(a *Answerer) {
		a.temperature = float32(t)
	}
}

// NewAnswerer creates a new Answerer. A nil client is allowed; every
// answer then reports that the client is unavailable.
func NewAnswerer(client *genai.Client, opts ...AnswererOption) *Answerer {
	a := &Answerer{
		client:          client,
		model:           DefaultAnswerModel,
		maxOutputTokens: DefaultMaxOutputTokens,
		temperature:     DefaultTemperature,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Answer generates an answer grounded on passages. Failures are returned
// as markdown text rather than errors.
func (a *Answerer) Answer(ctx context.Context, question string, passages []string) string {
	if a.client == nil {
		return ErrClientUnavailable
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromText(BuildUserPrompt(question, passages), genai.RoleUser)},
		a.BuildConfig(),
	)
	if err != nil {
		return fmt.Sprintf("API Error: Could not connect to the model. Details: %v", err)
	}
	if result == nil {
		return "An unexpected error occurred: empty response from model"
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "An unexpected error occurred: empty response from model"
	}
	return text
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func (a *Answerer) BuildConfig() *genai.GenerateContentConfig {
	temp := a.temperature
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: SystemPrompt}},
		},
		Temperature:     &temp,
		MaxOutputTokens: a.maxOutputTokens,
	}
}

// BuildUserPrompt builds the user message containing the retrieved context
// and the question.
func BuildUserPrompt(question string, passages []string) string {
	return fmt.Sprintf("CONTEXT:\n%s\n\nQUESTION:\n%s", strings.Join(passages, ContextSeparator), question)
}

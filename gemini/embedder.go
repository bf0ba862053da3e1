package gemini

import (
	"context"

	"github.com/fwojciec/ciagent"
	"google.golang.org/genai"
)

// Embedding task types understood by the Gemini embedding models.
const (
	taskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	taskRetrievalQuery    = "RETRIEVAL_QUERY"
)

var _ ciagent.Embedder = (*Embedder)(nil)

// Embedder implements ciagent.Embedder using Gemini embedding models.
type Embedder struct {
	client     *genai.Client
	model      string
	dimensions int32
}

// EmbedderOption configures an Embedder.
type EmbedderOption func(*Embedder)

// WithEmbeddingModel sets the embedding model.
func WithEmbeddingModel(model string) EmbedderOption {
	return func(e *Embedder) {
		if model != "" {
			e.model = model
		}
	}
}

// WithDimensions truncates embeddings to n dimensions. Zero keeps the
// model's native size.
func WithDimensions(n int) EmbedderOption {
	return func(e *Embedder) {
		e.dimensions = int32(n)
	}
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client, opts ...EmbedderOption) *Embedder {
	e := &Embedder{client: client, model: DefaultEmbeddingModel}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model returns the embedding model name.
func (e *Embedder) Model() string {
	return e.model
}

// EmbedDocuments embeds texts for storage in a knowledge base.
func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	return e.embed(ctx, texts, taskRetrievalDocument)
}

// EmbedQuery embeds a search query.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, ciagent.Errorf(ciagent.EINVALID, "query required")
	}
	vecs, err := e.embed(ctx, []string{text}, taskRetrievalQuery)
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (e *Embedder) embed(ctx context.Context, texts []string, task string) ([][]float32, error) {
	if e.client == nil {
		return nil, ciagent.Errorf(ciagent.EUNAVAILABLE, "gemini client not configured")
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	cfg := &genai.EmbedContentConfig{TaskType: task}
	if e.dimensions > 0 {
		cfg.OutputDimensionality = &e.dimensions
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, cfg)
	if err != nil {
		return nil, ciagent.Errorf(ciagent.EUNAVAILABLE, "embedding request failed: %v", err)
	}
	if result == nil || len(result.Embeddings) != len(texts) {
		return nil, ciagent.Errorf(ciagent.EINTERNAL, "expected %d embeddings from %s", len(texts), e.model)
	}

	vecs := make([][]float32, len(result.Embeddings))
	for i, emb := range result.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, ciagent.Errorf(ciagent.EINTERNAL, "empty embedding at index %d", i)
		}
		vecs[i] = emb.Values
	}
	return vecs, nil
}

package mock

import (
	"context"

	"github.com/fwojciec/ciagent"
)

var _ ciagent.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of ciagent.Embedder.
type Embedder struct {
	EmbedDocumentsFn func(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQueryFn     func(ctx context.Context, text string) ([]float32, error)
	ModelFn          func() string
}

func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedDocumentsFn(ctx, texts)
}

func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedQueryFn(ctx, text)
}

func (e *Embedder) Model() string {
	return e.ModelFn()
}

package ciagent

import "context"

// Embedder maps text to vectors in a fixed embedding space.
// Documents and queries must be embedded by the same model for similarity
// scores to be meaningful.
type Embedder interface {
	// EmbedDocuments returns one vector per text, in input order.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery returns the vector for a search query.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)

	// Model identifies the embedding space.
	Model() string
}

package ciagent

import (
	"context"
	"fmt"
	"time"
)

// Collection is a company's knowledge base: the set of embedded chunks
// built from one crawl of the company website.
type Collection struct {
	// Name is the company identifier (see CompanyID).
	Name string `json:"name"`

	// EmbeddingModel and Dimensions describe the embedding space the
	// collection was built in. Queries must use the same space.
	EmbeddingModel string `json:"embeddingModel"`
	Dimensions     int    `json:"dimensions"`

	// ChunkCount is populated on reads.
	ChunkCount int `json:"chunkCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the collection contains invalid fields.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "collection name required")
	}
	if c.EmbeddingModel == "" {
		return Errorf(EINVALID, "collection embedding model required")
	}
	if c.Dimensions <= 0 {
		return Errorf(EINVALID, "collection dimensions must be positive")
	}
	return nil
}

// CollectionService represents a service for managing knowledge base
// collections.
type CollectionService interface {
	// GetOrCreateCollection returns the existing collection with the same
	// name or creates it. Returns ECONFLICT if the existing collection was
	// built with a different embedding model or dimensionality.
	GetOrCreateCollection(ctx context.Context, c *Collection) (*Collection, error)

	// FindCollectionByName retrieves a collection by name.
	// Returns ENOTFOUND if the collection does not exist.
	FindCollectionByName(ctx context.Context, name string) (*Collection, error)

	// FindCollections retrieves all collections ordered by name.
	FindCollections(ctx context.Context) ([]*Collection, error)

	// DeleteCollection permanently removes a collection and its chunks.
	// Returns ENOTFOUND if the collection does not exist.
	DeleteCollection(ctx context.Context, name string) error
}

// Chunk is a passage of the corpus together with its embedding.
type Chunk struct {
	// ID is "{collection}_{index}" (see ChunkID).
	ID          string    `json:"id"`
	Collection  string    `json:"collection"`
	Index       int       `json:"index"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Embedding   []float32 `json:"embedding,omitempty"`
}

// ChunkID returns the stable identifier of the chunk at index within a
// collection. Rebuilding a collection reuses the same identifiers.
func ChunkID(collection string, index int) string {
	return fmt.Sprintf("%s_%d", collection, index)
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.Collection == "" {
		return Errorf(EINVALID, "chunk collection required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	if len(c.Embedding) == 0 {
		return Errorf(EINVALID, "chunk embedding required")
	}
	return nil
}

// ChunkMatch is a chunk returned by a similarity query.
type ChunkMatch struct {
	Chunk *Chunk  `json:"chunk"`
	Score float32 `json:"score"`
}

// ChunkService represents a service for storing and querying chunks.
type ChunkService interface {
	// UpsertChunks inserts chunks, overwriting any existing chunk with the
	// same ID. Returns ENOTFOUND if a chunk's collection does not exist.
	UpsertChunks(ctx context.Context, chunks []*Chunk) error

	// QueryChunks returns up to k chunks of the collection closest to the
	// query embedding by cosine similarity, closest first.
	// Returns ENOTFOUND if the collection does not exist and ECONFLICT if
	// the embedding dimensionality does not match the collection.
	QueryChunks(ctx context.Context, collection string, embedding []float32, k int) ([]ChunkMatch, error)

	// CountChunks returns the number of chunks in the collection.
	CountChunks(ctx context.Context, collection string) (int, error)
}

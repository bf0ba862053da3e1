package knowledge

import (
	"context"
	"fmt"

	"github.com/fwojciec/ciagent"
	"github.com/fwojciec/ciagent/crawl"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchSize is the number of chunks embedded per request.
const DefaultBatchSize = 100

// Builder turns a crawled corpus into an embedded knowledge base.
type Builder struct {
	Collections ciagent.CollectionService
	Chunks      ciagent.ChunkService
	Embedder    ciagent.Embedder

	// TokenCounter is optional. When set, BuildResult reports the corpus
	// token count.
	TokenCounter ciagent.TokenCounter

	// Zero values use the package defaults.
	ChunkSize    int
	ChunkOverlap int
	BatchSize    int

	// Concurrency bounds the number of embedding requests in flight.
	// Zero or one embeds batches sequentially.
	Concurrency int

	// Replace deletes any existing knowledge base before writing, instead
	// of overwriting chunks by ID.
	Replace bool
}

// BuildResult summarizes a knowledge base build.
type BuildResult struct {
	Collection *ciagent.Collection
	Chunks     int
	Tokens     int
}

// Build splits the corpus, embeds every chunk and stores the result in the
// company's collection. Returns EEMPTY without touching storage when the
// corpus yields no chunks.
func (b *Builder) Build(ctx context.Context, companyID, corpus string) (*BuildResult, error) {
	if companyID == "" {
		return nil, ciagent.Errorf(ciagent.EINVALID, "company ID required")
	}

	size, overlap := b.ChunkSize, b.ChunkOverlap
	if size == 0 {
		size = ciagent.DefaultChunkSize
	}
	if overlap == 0 && b.ChunkSize == 0 {
		overlap = ciagent.DefaultChunkOverlap
	}

	texts, err := ciagent.SplitText(corpus, size, overlap)
	if err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, ciagent.Errorf(ciagent.EEMPTY, "no text to build a knowledge base for %q", companyID)
	}

	vectors, err := b.embed(ctx, texts)
	if err != nil {
		return nil, err
	}

	if b.Replace {
		err := b.Collections.DeleteCollection(ctx, companyID)
		if err != nil && ciagent.ErrorCode(err) != ciagent.ENOTFOUND {
			return nil, err
		}
	}

	collection, err := b.Collections.GetOrCreateCollection(ctx, &ciagent.Collection{
		Name:           companyID,
		EmbeddingModel: b.Embedder.Model(),
		Dimensions:     len(vectors[0]),
	})
	if err != nil {
		return nil, err
	}

	chunks := make([]*ciagent.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = &ciagent.Chunk{
			ID:          ciagent.ChunkID(companyID, i),
			Collection:  companyID,
			Index:       i,
			Content:     text,
			ContentHash: crawl.ComputeHash(text),
			Embedding:   vectors[i],
		}
	}
	if err := b.Chunks.UpsertChunks(ctx, chunks); err != nil {
		return nil, err
	}

	result := &BuildResult{Collection: collection, Chunks: len(chunks)}
	if b.TokenCounter != nil {
		n, err := b.TokenCounter.CountTokens(ctx, corpus)
		if err != nil {
			return nil, fmt.Errorf("count tokens: %w", err)
		}
		result.Tokens = n
	}
	return result, nil
}

// embed embeds texts in batches, preserving input order.
func (b *Builder) embed(ctx context.Context, texts []string) ([][]float32, error) {
	batchSize := b.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	vectors := make([][]float32, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(b.Concurrency, 1))

	for start := 0; start < len(texts); start += batchSize {
		end := min(start+batchSize, len(texts))
		g.Go(func() error {
			vecs, err := b.Embedder.EmbedDocuments(ctx, texts[start:end])
			if err != nil {
				return err
			}
			if len(vecs) != end-start {
				return ciagent.Errorf(ciagent.EINTERNAL, "embedder returned %d vectors for %d texts", len(vecs), end-start)
			}
			copy(vectors[start:end], vecs)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dims := len(vectors[0])
	for i, v := range vectors {
		if len(v) == 0 || len(v) != dims {
			return nil, ciagent.Errorf(ciagent.EINTERNAL, "embedding %d has %d dimensions, expected %d", i, len(v), dims)
		}
	}
	return vectors, nil
}

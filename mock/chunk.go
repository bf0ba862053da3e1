package mock

import (
	"context"

	"github.com/fwojciec/ciagent"
)

var _ ciagent.CollectionService = (*CollectionService)(nil)

// CollectionService is a mock implementation of ciagent.CollectionService.
type CollectionService struct {
	GetOrCreateCollectionFn func(ctx context.Context, c *ciagent.Collection) (*ciagent.Collection, error)
	FindCollectionByNameFn  func(ctx context.Context, name string) (*ciagent.Collection, error)
	FindCollectionsFn       func(ctx context.Context) ([]*ciagent.Collection, error)
	DeleteCollectionFn      func(ctx context.Context, name string) error
}

func (s *CollectionService) GetOrCreateCollection(ctx context.Context, c *ciagent.Collection) (*ciagent.Collection, error) {
	return s.GetOrCreateCollectionFn(ctx, c)
}

func (s *CollectionService) FindCollectionByName(ctx context.Context, name string) (*ciagent.Collection, error) {
	return s.FindCollectionByNameFn(ctx, name)
}

func (s *CollectionService) FindCollections(ctx context.Context) ([]*ciagent.Collection, error) {
	return s.FindCollectionsFn(ctx)
}

func (s *CollectionService) DeleteCollection(ctx context.Context, name string) error {
	return s.DeleteCollectionFn(ctx, name)
}

var _ ciagent.ChunkService = (*ChunkService)(nil)

// ChunkService is a mock implementation of ciagent.ChunkService.
type ChunkService struct {
	UpsertChunksFn func(ctx context.Context, chunks []*ciagent.Chunk) error
	QueryChunksFn  func(ctx context.Context, collection string, embedding []float32, k int) ([]ciagent.ChunkMatch, error)
	CountChunksFn  func(ctx context.Context, collection string) (int, error)
}

func (s *ChunkService) UpsertChunks(ctx context.Context, chunks []*ciagent.Chunk) error {
	return s.UpsertChunksFn(ctx, chunks)
}

func (s *ChunkService) QueryChunks(ctx context.Context, collection string, embedding []float32, k int) ([]ciagent.ChunkMatch, error) {
	return s.QueryChunksFn(ctx, collection, embedding, k)
}

func (s *ChunkService) CountChunks(ctx context.Context, collection string) (int, error) {
	return s.CountChunksFn(ctx, collection)
}

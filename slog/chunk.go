package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ciagent"
)

// Ensure LoggingChunkService implements ciagent.ChunkService.
var _ ciagent.ChunkService = (*LoggingChunkService)(nil)

// LoggingChunkService wraps a ChunkService with logging.
type LoggingChunkService struct {
	next   ciagent.ChunkService
	logger *slog.Logger
}

// NewLoggingChunkService creates a new LoggingChunkService.
func NewLoggingChunkService(next ciagent.ChunkService, logger *slog.Logger) *LoggingChunkService {
	return &LoggingChunkService{next: next, logger: logger}
}

// UpsertChunks delegates to the wrapped service and logs the write.
func (s *LoggingChunkService) UpsertChunks(ctx context.Context, chunks []*ciagent.Chunk) (err error) {
	defer func(begin time.Time) {
		collection := ""
		if len(chunks) > 0 {
			collection = chunks[0].Collection
		}
		s.logger.Info("upsert chunks",
			"collection", collection,
			"count", len(chunks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpsertChunks(ctx, chunks)
}

// QueryChunks delegates to the wrapped service and logs the top score.
func (s *LoggingChunkService) QueryChunks(ctx context.Context, collection string, embedding []float32, k int) (matches []ciagent.ChunkMatch, err error) {
	defer func(begin time.Time) {
		var top float32
		if len(matches) > 0 {
			top = matches[0].Score
		}
		s.logger.Info("query chunks",
			"collection", collection,
			"k", k,
			"count", len(matches),
			"top_score", top,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.QueryChunks(ctx, collection, embedding, k)
}

// CountChunks delegates to the wrapped service.
func (s *LoggingChunkService) CountChunks(ctx context.Context, collection string) (int, error) {
	return s.next.CountChunks(ctx, collection)
}

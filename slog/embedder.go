package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ciagent"
)

// Ensure LoggingEmbedder implements ciagent.Embedder.
var _ ciagent.Embedder = (*LoggingEmbedder)(nil)

// LoggingEmbedder wraps an Embedder with logging.
type LoggingEmbedder struct {
	next   ciagent.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next ciagent.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// EmbedDocuments delegates to the wrapped embedder and logs the batch.
func (e *LoggingEmbedder) EmbedDocuments(ctx context.Context, texts []string) (vecs [][]float32, err error) {
	defer func(begin time.Time) {
		e.logger.Info("embed documents",
			"model", e.next.Model(),
			"count", len(texts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EmbedDocuments(ctx, texts)
}

// EmbedQuery delegates to the wrapped embedder and logs the query.
func (e *LoggingEmbedder) EmbedQuery(ctx context.Context, text string) (vec []float32, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("embed query",
			"model", e.next.Model(),
			"dimensions", len(vec),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EmbedQuery(ctx, text)
}

// Model delegates to the wrapped embedder.
func (e *LoggingEmbedder) Model() string {
	return e.next.Model()
}

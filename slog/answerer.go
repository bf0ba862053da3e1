package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ciagent"
)

// Ensure LoggingAnswerer implements ciagent.Answerer.
var _ ciagent.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer with logging.
type LoggingAnswerer struct {
	next   ciagent.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next ciagent.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// Answer delegates to the wrapped answerer and logs the exchange size.
func (a *LoggingAnswerer) Answer(ctx context.Context, question string, passages []string) (answer string) {
	defer func(begin time.Time) {
		a.logger.Info("answer",
			"passages", len(passages),
			"question_bytes", len(question),
			"answer_bytes", len(answer),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return a.next.Answer(ctx, question, passages)
}

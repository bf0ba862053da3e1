package mock

import (
	"context"

	"github.com/fwojciec/ciagent"
)

var _ ciagent.Asker = (*Asker)(nil)

// Asker is a mock implementation of ciagent.Asker.
type Asker struct {
	AskFn func(ctx context.Context, companyID, question string) (*ciagent.Answer, error)
}

func (a *Asker) Ask(ctx context.Context, companyID, question string) (*ciagent.Answer, error) {
	return a.AskFn(ctx, companyID, question)
}

var _ ciagent.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of ciagent.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, question string, passages []string) string
}

func (a *Answerer) Answer(ctx context.Context, question string, passages []string) string {
	return a.AnswerFn(ctx, question, passages)
}

var _ ciagent.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of ciagent.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, companyID, query string, k int) ([]string, error)
}

func (r *Retriever) Retrieve(ctx context.Context, companyID, query string, k int) ([]string, error) {
	return r.RetrieveFn(ctx, companyID, query, k)
}

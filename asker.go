package ciagent

import (
	"context"
	"fmt"
)

// DefaultTopK is the number of passages retrieved per question.
const DefaultTopK = 3

// MissingKnowledgeBase returns the placeholder passage retrieved when no
// knowledge base exists for a company. It is returned in place of chunks
// so the answer step can still run and explain the situation.
func MissingKnowledgeBase(companyID string) string {
	return fmt.Sprintf("Knowledge base for '%s' not found. Please build it first.", companyID)
}

// Answer is a generated answer together with the passages it was grounded
// on.
type Answer struct {
	Text    string   `json:"text"`
	Context []string `json:"context"`
}

// Answerer generates an answer to a question from retrieved passages.
type Answerer interface {
	// Answer never fails: remote errors are rendered into the returned
	// text so they can be shown to the user like any other answer.
	Answer(ctx context.Context, question string, passages []string) string
}

// Retriever finds the passages most relevant to a query.
type Retriever interface {
	// Retrieve returns up to k passages from the company's knowledge base,
	// most relevant first. When the knowledge base does not exist it
	// returns a single MissingKnowledgeBase passage and no error.
	Retrieve(ctx context.Context, companyID, query string, k int) ([]string, error)
}

// Asker answers natural language questions about a company.
type Asker interface {
	// Ask retrieves context for the question and generates an answer.
	// Returns EINVALID if the company or question is empty.
	Ask(ctx context.Context, companyID, question string) (*Answer, error)
}

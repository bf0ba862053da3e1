package knowledge

import (
	"context"

	"github.com/fwojciec/ciagent"
)

var _ ciagent.Asker = (*Asker)(nil)

// Asker answers questions by retrieving passages and handing them to an
// Answerer.
type Asker struct {
	Retriever ciagent.Retriever
	Answerer  ciagent.Answerer

	// TopK is the number of passages retrieved. Zero uses DefaultTopK.
	TopK int
}

// Ask retrieves context for the question and generates an answer.
func (a *Asker) Ask(ctx context.Context, companyID, question string) (*ciagent.Answer, error) {
	if companyID == "" {
		return nil, ciagent.Errorf(ciagent.EINVALID, "company required")
	}
	if question == "" {
		return nil, ciagent.Errorf(ciagent.EINVALID, "question required")
	}

	k := a.TopK
	if k <= 0 {
		k = ciagent.DefaultTopK
	}

	passages, err := a.Retriever.Retrieve(ctx, companyID, question, k)
	if err != nil {
		return nil, err
	}

	return &ciagent.Answer{
		Text:    a.Answerer.Answer(ctx, question, passages),
		Context: passages,
	}, nil
}

package knowledge

import (
	"context"

	"github.com/fwojciec/ciagent"
)

var _ ciagent.Retriever = (*Retriever)(nil)

// Retriever finds the chunks of a company's knowledge base closest to a
// query.
type Retriever struct {
	Collections ciagent.CollectionService
	Chunks      ciagent.ChunkService
	Embedder    ciagent.Embedder
}

// Retrieve returns up to k passages, most similar first. A missing
// knowledge base yields the MissingKnowledgeBase placeholder.
func (r *Retriever) Retrieve(ctx context.Context, companyID, query string, k int) ([]string, error) {
	if query == "" {
		return nil, ciagent.Errorf(ciagent.EINVALID, "query required")
	}
	if k <= 0 {
		k = ciagent.DefaultTopK
	}

	collection, err := r.Collections.FindCollectionByName(ctx, companyID)
	if ciagent.ErrorCode(err) == ciagent.ENOTFOUND {
		return []string{ciagent.MissingKnowledgeBase(companyID)}, nil
	}
	if err != nil {
		return nil, err
	}
	if model := r.Embedder.Model(); collection.EmbeddingModel != model {
		return nil, ciagent.Errorf(ciagent.ECONFLICT,
			"knowledge base %q was built with %s but queries use %s; rebuild it with --force",
			companyID, collection.EmbeddingModel, model)
	}

	vec, err := r.Embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	matches, err := r.Chunks.QueryChunks(ctx, companyID, vec, k)
	if ciagent.ErrorCode(err) == ciagent.ENOTFOUND {
		return []string{ciagent.MissingKnowledgeBase(companyID)}, nil
	}
	if err != nil {
		return nil, err
	}

	passages := make([]string, len(matches))
	for i, m := range matches {
		passages[i] = m.Chunk.Content
	}
	return passages, nil
}

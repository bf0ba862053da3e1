package gemini_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fwojciec/ciagent"
	"github.com/fwojciec/ciagent/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedder_EmbedDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns one vector per text in order", func(t *testing.T) {
		t.Parallel()

		api, client := newFakeAPI(t, fakeResponse{Embeddings: [][]float32{{1, 0}, {0, 1}}})

		e := gemini.NewEmbedder(client)
		vecs, err := e.EmbedDocuments(context.Background(), []string{"first", "second"})

		require.NoError(t, err)
		assert.Equal(t, [][]float32{{1, 0}, {0, 1}}, vecs)

		req := api.lastRequest()
		assert.Contains(t, req.Path, gemini.DefaultEmbeddingModel)
		assert.Contains(t, toJSON(t, req.Body), "RETRIEVAL_DOCUMENT")
	})

	t.Run("returns nil for no texts", func(t *testing.T) {
		t.Parallel()

		e := gemini.NewEmbedder(nil)
		vecs, err := e.EmbedDocuments(context.Background(), nil)

		require.NoError(t, err)
		assert.Nil(t, vecs)
	})

	t.Run("returns EINTERNAL on count mismatch", func(t *testing.T) {
		t.Parallel()

		_, client := newFakeAPI(t, fakeResponse{Embeddings: [][]float32{{1, 0}}})

		_, err := gemini.NewEmbedder(client).EmbedDocuments(context.Background(), []string{"a", "b"})

		require.Error(t, err)
		assert.Equal(t, ciagent.EINTERNAL, ciagent.ErrorCode(err))
	})

	t.Run("returns EUNAVAILABLE on API error", func(t *testing.T) {
		t.Parallel()

		_, client := newFakeAPI(t, fakeResponse{Status: http.StatusBadRequest})

		_, err := gemini.NewEmbedder(client).EmbedDocuments(context.Background(), []string{"a"})

		require.Error(t, err)
		assert.Equal(t, ciagent.EUNAVAILABLE, ciagent.ErrorCode(err))
	})

	t.Run("returns EUNAVAILABLE without client", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.NewEmbedder(nil).EmbedDocuments(context.Background(), []string{"a"})

		require.Error(t, err)
		assert.Equal(t, ciagent.EUNAVAILABLE, ciagent.ErrorCode(err))
	})
}

func TestEmbedder_EmbedQuery(t *testing.T) {
	t.Parallel()

	t.Run("uses query task type", func(t *testing.T) {
		t.Parallel()

		api, client := newFakeAPI(t, fakeResponse{Embeddings: [][]float32{{0.5, 0.5}}})

		vec, err := gemini.NewEmbedder(client).EmbedQuery(context.Background(), "who founded the company?")

		require.NoError(t, err)
		assert.Equal(t, []float32{0.5, 0.5}, vec)
		assert.Contains(t, toJSON(t, api.lastRequest().Body), "RETRIEVAL_QUERY")
	})

	t.Run("returns EINVALID for empty query", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.NewEmbedder(nil).EmbedQuery(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, ciagent.EINVALID, ciagent.ErrorCode(err))
	})
}

func TestEmbedder_Model(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gemini.DefaultEmbeddingModel, gemini.NewEmbedder(nil).Model())
	assert.Equal(t, "text-embedding-004", gemini.NewEmbedder(nil, gemini.WithEmbeddingModel("text-embedding-004")).Model())
	assert.Equal(t, gemini.DefaultEmbeddingModel, gemini.NewEmbedder(nil, gemini.WithEmbeddingModel("")).Model())
}

func TestEmbedder_WithDimensions(t *testing.T) {
	t.Parallel()

	api, client := newFakeAPI(t, fakeResponse{Embeddings: [][]float32{{1, 2, 3}}})

	_, err := gemini.NewEmbedder(client, gemini.WithDimensions(3)).EmbedDocuments(context.Background(), []string{"a"})

	require.NoError(t, err)
	assert.Contains(t, toJSON(t, api.lastRequest().Body), "outputDimensionality")
}

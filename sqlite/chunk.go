package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"slices"

	"github.com/fwojciec/ciagent"
)

// Compile-time interface verification.
var _ ciagent.ChunkService = (*ChunkService)(nil)

// ChunkService implements ciagent.ChunkService using SQLite. Similarity
// search is an exact scan over the collection's vectors.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// UpsertChunks inserts chunks, replacing any chunk with the same ID.
// All chunks are written in one transaction.
func (s *ChunkService) UpsertChunks(ctx context.Context, chunks []*ciagent.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	for _, c := range chunks {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	dims := make(map[string]int)
	for _, c := range chunks {
		want, ok := dims[c.Collection]
		if !ok {
			err := tx.QueryRowContext(ctx, "SELECT dimensions FROM collections WHERE name = ?", c.Collection).Scan(&want)
			if errors.Is(err, sql.ErrNoRows) {
				return ciagent.Errorf(ciagent.ENOTFOUND, "knowledge base %q not found", c.Collection)
			}
			if err != nil {
				return err
			}
			dims[c.Collection] = want
		}
		if len(c.Embedding) != want {
			return ciagent.Errorf(ciagent.ECONFLICT, "chunk %q has %d dimensions, knowledge base %q expects %d",
				c.ID, len(c.Embedding), c.Collection, want)
		}

		id := c.ID
		if id == "" {
			id = ciagent.ChunkID(c.Collection, c.Index)
			c.ID = id
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO chunks (id, collection, idx, content, content_hash, embedding)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				collection = excluded.collection,
				idx = excluded.idx,
				content = excluded.content,
				content_hash = excluded.content_hash,
				embedding = excluded.embedding
		`, id, c.Collection, c.Index, c.Content, c.ContentHash, encodeVector(c.Embedding))
		if err != nil {
			return err
		}
	}

	for name := range dims {
		if err := touchCollection(ctx, tx, name); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// QueryChunks returns the k chunks most similar to embedding.
func (s *ChunkService) QueryChunks(ctx context.Context, collection string, embedding []float32, k int) ([]ciagent.ChunkMatch, error) {
	if k <= 0 {
		return nil, ciagent.Errorf(ciagent.EINVALID, "k must be positive")
	}

	var dims int
	err := s.db.QueryRowContext(ctx, "SELECT dimensions FROM collections WHERE name = ?", collection).Scan(&dims)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ciagent.Errorf(ciagent.ENOTFOUND, "knowledge base %q not found", collection)
	}
	if err != nil {
		return nil, err
	}
	if len(embedding) != dims {
		return nil, ciagent.Errorf(ciagent.ECONFLICT, "query has %d dimensions, knowledge base %q expects %d",
			len(embedding), collection, dims)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, idx, content, content_hash, embedding
		FROM chunks
		WHERE collection = ?
		ORDER BY idx
	`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []ciagent.ChunkMatch
	for rows.Next() {
		c := &ciagent.Chunk{Collection: collection}
		var blob []byte
		if err := rows.Scan(&c.ID, &c.Index, &c.Content, &c.ContentHash, &blob); err != nil {
			return nil, err
		}
		if c.Embedding, err = decodeVector(blob); err != nil {
			return nil, err
		}
		matches = append(matches, ciagent.ChunkMatch{
			Chunk: c,
			Score: cosineSimilarity(embedding, c.Embedding),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(matches, func(a, b ciagent.ChunkMatch) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// CountChunks returns the number of chunks in the collection.
func (s *ChunkService) CountChunks(ctx context.Context, collection string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks WHERE collection = ?", collection).Scan(&n)
	return n, err
}

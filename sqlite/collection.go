package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/ciagent"
)

// Compile-time interface verification.
var _ ciagent.CollectionService = (*CollectionService)(nil)

// CollectionService implements ciagent.CollectionService using SQLite.
type CollectionService struct {
	db *DB
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(db *DB) *CollectionService {
	return &CollectionService{db: db}
}

// GetOrCreateCollection returns the named collection, creating it if needed.
func (s *CollectionService) GetOrCreateCollection(ctx context.Context, c *ciagent.Collection) (*ciagent.Collection, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.FindCollectionByName(ctx, c.Name)
	if err == nil {
		if existing.EmbeddingModel != c.EmbeddingModel || existing.Dimensions != c.Dimensions {
			return nil, ciagent.Errorf(ciagent.ECONFLICT,
				"collection %q was built with %s (%d dimensions), not %s (%d dimensions); rebuild it with --force",
				c.Name, existing.EmbeddingModel, existing.Dimensions, c.EmbeddingModel, c.Dimensions)
		}
		return existing, nil
	}
	if ciagent.ErrorCode(err) != ciagent.ENOTFOUND {
		return nil, err
	}

	now := time.Now().UTC()
	created := &ciagent.Collection{
		Name:           c.Name,
		EmbeddingModel: c.EmbeddingModel,
		Dimensions:     c.Dimensions,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, embedding_model, dimensions, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, created.Name, created.EmbeddingModel, created.Dimensions,
		created.CreatedAt.Format(time.RFC3339), created.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return created, nil
}

// FindCollectionByName retrieves a collection by name.
func (s *CollectionService) FindCollectionByName(ctx context.Context, name string) (*ciagent.Collection, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT c.name, c.embedding_model, c.dimensions, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM chunks WHERE collection = c.name)
		FROM collections c
		WHERE c.name = ?
	`, name)

	c, err := scanCollection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ciagent.Errorf(ciagent.ENOTFOUND, "knowledge base %q not found", name)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindCollections retrieves all collections ordered by name.
func (s *CollectionService) FindCollections(ctx context.Context) ([]*ciagent.Collection, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name, c.embedding_model, c.dimensions, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM chunks WHERE collection = c.name)
		FROM collections c
		ORDER BY c.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*ciagent.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}

	return collections, rows.Err()
}

// DeleteCollection permanently removes a collection and its chunks.
func (s *CollectionService) DeleteCollection(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE name = ?", name)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ciagent.Errorf(ciagent.ENOTFOUND, "knowledge base %q not found", name)
	}

	return nil
}

// touchCollection bumps a collection's updated_at timestamp.
func touchCollection(ctx context.Context, tx *sql.Tx, name string) error {
	_, err := tx.ExecContext(ctx, "UPDATE collections SET updated_at = ? WHERE name = ?",
		time.Now().UTC().Format(time.RFC3339), name)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCollection(row scanner) (*ciagent.Collection, error) {
	var c ciagent.Collection
	var createdAt, updatedAt string

	if err := row.Scan(&c.Name, &c.EmbeddingModel, &c.Dimensions, &createdAt, &updatedAt, &c.ChunkCount); err != nil {
		return nil, err
	}

	var err error
	if c.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &c, nil
}

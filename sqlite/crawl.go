package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/ciagent"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ciagent.CrawlService = (*CrawlService)(nil)

// CrawlService implements ciagent.CrawlService using SQLite.
type CrawlService struct {
	db *DB
}

// NewCrawlService creates a new CrawlService.
func NewCrawlService(db *DB) *CrawlService {
	return &CrawlService{db: db}
}

// CreateCrawl stores a crawl and its pages in one transaction.
func (s *CrawlService) CreateCrawl(ctx context.Context, crawl *ciagent.Crawl) error {
	if err := crawl.Validate(); err != nil {
		return err
	}

	crawl.ID = uuid.New().String()
	if crawl.StartedAt.IsZero() {
		crawl.StartedAt = time.Now().UTC()
	}
	if crawl.FinishedAt.IsZero() {
		crawl.FinishedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO crawls (id, company_id, start_url, max_pages, failed, corpus_bytes, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, crawl.ID, crawl.CompanyID, crawl.StartURL, crawl.MaxPages, crawl.Failed, crawl.CorpusBytes,
		crawl.StartedAt.UTC().Format(time.RFC3339), crawl.FinishedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	for _, p := range crawl.Pages {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO crawl_pages (crawl_id, position, url, content_hash, bytes)
			VALUES (?, ?, ?, ?, ?)
		`, crawl.ID, p.Position, p.URL, p.ContentHash, p.Bytes)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindLatestCrawl returns the most recent crawl of a company with its pages.
func (s *CrawlService) FindLatestCrawl(ctx context.Context, companyID string) (*ciagent.Crawl, error) {
	var crawl ciagent.Crawl
	var startedAt, finishedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, company_id, start_url, max_pages, failed, corpus_bytes, started_at, finished_at
		FROM crawls
		WHERE company_id = ?
		ORDER BY started_at DESC, rowid DESC
		LIMIT 1
	`, companyID).Scan(&crawl.ID, &crawl.CompanyID, &crawl.StartURL, &crawl.MaxPages,
		&crawl.Failed, &crawl.CorpusBytes, &startedAt, &finishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ciagent.Errorf(ciagent.ENOTFOUND, "no crawl found for %q", companyID)
	}
	if err != nil {
		return nil, err
	}

	if crawl.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if crawl.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT position, url, content_hash, bytes
		FROM crawl_pages
		WHERE crawl_id = ?
		ORDER BY position
	`, crawl.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p ciagent.CrawlPage
		if err := rows.Scan(&p.Position, &p.URL, &p.ContentHash, &p.Bytes); err != nil {
			return nil, err
		}
		crawl.Pages = append(crawl.Pages, p)
	}

	return &crawl, rows.Err()
}

// DeleteCrawls removes every crawl of a company. Deleting a company
// that was never crawled is not an error.
func (s *CrawlService) DeleteCrawls(ctx context.Context, companyID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM crawls WHERE company_id = ?", companyID)
	return err
}

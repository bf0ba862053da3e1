package ciagent

import "context"

// Page is the extracted text of a crawled page.
type Page struct {
	URL  string
	Text string
}

// PageStore persists crawled pages with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}

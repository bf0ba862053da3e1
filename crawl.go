package ciagent

import (
	"context"
	"time"
)

// Crawl is the record of one crawl of a company website.
type Crawl struct {
	ID          string      `json:"id"`
	CompanyID   string      `json:"companyId"`
	StartURL    string      `json:"startUrl"`
	MaxPages    int         `json:"maxPages"`
	Pages       []CrawlPage `json:"pages"`
	Failed      int         `json:"failed"`
	CorpusBytes int         `json:"corpusBytes"`
	StartedAt   time.Time   `json:"startedAt"`
	FinishedAt  time.Time   `json:"finishedAt"`
}

// CrawlPage is a page fetched during a crawl, in fetch order.
type CrawlPage struct {
	Position int    `json:"position"`
	URL      string `json:"url"`
	// ContentHash is empty when no text could be extracted from the page.
	ContentHash string `json:"contentHash"`
	Bytes       int    `json:"bytes"`
}

// Validate returns an error if the crawl contains invalid fields.
func (c *Crawl) Validate() error {
	if c.CompanyID == "" {
		return Errorf(EINVALID, "crawl company ID required")
	}
	if c.StartURL == "" {
		return Errorf(EINVALID, "crawl start URL required")
	}
	if c.MaxPages <= 0 {
		return Errorf(EINVALID, "crawl max pages must be positive")
	}
	return nil
}

// CrawlService represents a service for recording crawls.
type CrawlService interface {
	// CreateCrawl stores a crawl and its pages, assigning an ID.
	CreateCrawl(ctx context.Context, crawl *Crawl) error

	// FindLatestCrawl returns the most recent crawl of a company.
	// Returns ENOTFOUND if the company was never crawled.
	FindLatestCrawl(ctx context.Context, companyID string) (*Crawl, error)

	// DeleteCrawls removes every crawl of a company.
	DeleteCrawls(ctx context.Context, companyID string) error
}

package mock

import (
	"context"

	"github.com/fwojciec/ciagent"
)

var _ ciagent.CrawlService = (*CrawlService)(nil)

// CrawlService is a mock implementation of ciagent.CrawlService.
type CrawlService struct {
	CreateCrawlFn     func(ctx context.Context, crawl *ciagent.Crawl) error
	FindLatestCrawlFn func(ctx context.Context, companyID string) (*ciagent.Crawl, error)
	DeleteCrawlsFn    func(ctx context.Context, companyID string) error
}

func (s *CrawlService) CreateCrawl(ctx context.Context, crawl *ciagent.Crawl) error {
	return s.CreateCrawlFn(ctx, crawl)
}

func (s *CrawlService) FindLatestCrawl(ctx context.Context, companyID string) (*ciagent.Crawl, error) {
	return s.FindLatestCrawlFn(ctx, companyID)
}

func (s *CrawlService) DeleteCrawls(ctx context.Context, companyID string) error {
	return s.DeleteCrawlsFn(ctx, companyID)
}

var _ ciagent.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of ciagent.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *ciagent.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *ciagent.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}

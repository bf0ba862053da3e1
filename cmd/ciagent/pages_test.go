package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/ciagent"
	main "github.com/fwojciec/ciagent/cmd/ciagent"
	"github.com/fwojciec/ciagent/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists pages of latest crawl", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps()
		deps.Crawls = &mock.CrawlService{
			FindLatestCrawlFn: func(_ context.Context, companyID string) (*ciagent.Crawl, error) {
				assert.Equal(t, "acme_com", companyID)
				return &ciagent.Crawl{
					CompanyID: "acme_com",
					StartURL:  "https://acme.com",
					Pages: []ciagent.CrawlPage{
						{Position: 0, URL: "https://acme.com", ContentHash: "abc", Bytes: 2048},
						{Position: 1, URL: "https://acme.com/empty"},
					},
					Failed:      1,
					CorpusBytes: 2048,
					StartedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
				}, nil
			},
		}

		err := (&main.PagesCmd{Company: "https://acme.com"}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Crawl of https://acme.com")
		assert.Contains(t, output, "2 pages, 1 failed, 2.0 KB")
		assert.Contains(t, output, "https://acme.com/empty")
		assert.Contains(t, output, "URL")
	})

	t.Run("reports company that was never crawled", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps()
		deps.Crawls = &mock.CrawlService{
			FindLatestCrawlFn: func(context.Context, string) (*ciagent.Crawl, error) {
				return nil, ciagent.Errorf(ciagent.ENOTFOUND, "no crawl found")
			},
		}

		err := (&main.PagesCmd{Company: "acme_com"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, ciagent.ENOTFOUND, ciagent.ErrorCode(err))
		assert.Contains(t, stderr.String(), `"acme_com" has not been crawled`)
	})
}

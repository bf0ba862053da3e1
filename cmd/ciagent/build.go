package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/ciagent"
	"github.com/fwojciec/ciagent/crawl"
)

// Page budget bounds accepted by build.
const (
	minMaxPages = 1
	maxMaxPages = 50
)

// crawlFailedMessage is shown when a crawl produces no text.
const crawlFailedMessage = "Failed to fetch content. The website may be blocking crawlers or requires JavaScript."

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	startURL := c.URL
	if !strings.Contains(startURL, "://") {
		startURL = "https://" + startURL
	}

	companyID, err := ciagent.CompanyID(startURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		return err
	}

	if c.MaxPages < minMaxPages || c.MaxPages > maxMaxPages {
		err := ciagent.Errorf(ciagent.EINVALID, "--max-pages must be between %d and %d", minMaxPages, maxMaxPages)
		fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		return err
	}

	var pages []*ciagent.Page
	started := time.Now().UTC()

	spin := startSpinner(deps.Stderr, "Crawling "+startURL)
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressFetched:
			pages = append(pages, &ciagent.Page{URL: event.URL, Text: event.Text})
		case crawl.ProgressFailed:
			deps.Logger.Debug("skip page", "url", event.URL, "err", event.Error)
		}
		spin.Lock()
		spin.Suffix = " " + crawl.FormatProgress(event)
		spin.Unlock()
	}

	result, err := deps.Crawler.Crawl(deps.Ctx, startURL, c.MaxPages, progress)
	spin.Stop()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %s\n", ciagent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Visited %d pages (%d failed)\n", len(result.Visited), result.Failed)
	if len(result.Pages) > 0 {
		fmt.Fprintln(deps.Stdout, pagesTable(result.Pages))
	}

	record := &ciagent.Crawl{
		CompanyID:   companyID,
		StartURL:    startURL,
		MaxPages:    c.MaxPages,
		Pages:       result.Pages,
		Failed:      result.Failed,
		CorpusBytes: len(result.Corpus),
		StartedAt:   started,
		FinishedAt:  time.Now().UTC(),
	}
	if err := deps.Crawls.CreateCrawl(deps.Ctx, record); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		return err
	}

	if result.Empty() {
		fmt.Fprintf(deps.Stderr, "Crawling failed. %s\n", crawlFailedMessage)
		return ciagent.Errorf(ciagent.EEMPTY, "no content crawled from %s", startURL)
	}

	if c.Export != "" {
		if err := exportPages(deps, c.Export, companyID, pages); err != nil {
			fmt.Fprintf(deps.Stderr, "error exporting pages: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", len(pages), c.Export)
	}

	deps.Builder.Replace = c.Force

	spin = startSpinner(deps.Stderr, "Building knowledge base for "+companyID)
	built, err := deps.Builder.Build(deps.Ctx, companyID, result.Corpus)
	spin.Stop()
	if ciagent.ErrorCode(err) == ciagent.EEMPTY {
		fmt.Fprintf(deps.Stderr, "Crawling failed. %s\n", crawlFailedMessage)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ciagent.ErrorMessage(err))
		if ciagent.ErrorCode(err) == ciagent.ECONFLICT {
			fmt.Fprintf(deps.Stderr, "Hint: run 'ciagent build %s --force' to rebuild\n", c.URL)
		}
		return err
	}

	summary := fmt.Sprintf("Built knowledge base %q: %d chunks from %s", companyID, built.Chunks, crawl.FormatBytes(len(result.Corpus)))
	if built.Tokens > 0 {
		summary += ", " + crawl.FormatTokens(built.Tokens)
	}
	fmt.Fprintln(deps.Stdout, summary)
	fmt.Fprintln(deps.Stdout, ciagent.Greeting(companyID))
	return nil
}

// exportPages writes crawled pages below dir/companyID atomically.
func exportPages(deps *Dependencies, dir, companyID string, pages []*ciagent.Page) error {
	store := deps.NewPageStore(dir, companyID)
	for _, p := range pages {
		if err := store.Save(deps.Ctx, p); err != nil {
			_ = store.Abort()
			return err
		}
	}
	return store.Commit()
}

// Package crawl provides breadth-first crawling of a single website.
// It coordinates the frontier, politeness limiting, fetching, text
// extraction and link discovery, and assembles the crawled text into a
// corpus.
package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/ciagent"
)

// Politeness defaults.
const (
	// DefaultRequestsPerSecond spaces consecutive fetches to the same host
	// by at least half a second.
	DefaultRequestsPerSecond = 2.0

	// DefaultMaxPages is the page budget used when none is given.
	DefaultMaxPages = 10
)

// PageSeparator joins the texts of consecutive pages in the corpus.
const PageSeparator = "\n\n"

// Crawler performs a sequential breadth-first crawl restricted to the host
// of the start URL.
type Crawler struct {
	Fetcher     ciagent.Fetcher
	Extractor   ciagent.Extractor
	Links       ciagent.LinkExtractor
	RateLimiter ciagent.DomainLimiter

	// Frontier queues URLs for a single crawl. It must be empty when Crawl
	// is called. Nil uses a new in-memory Frontier per crawl.
	Frontier ciagent.URLFrontier

	// ExcludeEmptyFromBudget stops pages that yield no text from counting
	// against the page budget. By default every successfully fetched page
	// counts.
	ExcludeEmptyFromBudget bool
}

// Result holds the outcome of a crawl.
type Result struct {
	// Corpus is the extracted text of every page that produced text, in
	// fetch order, joined by PageSeparator.
	Corpus string

	// Visited lists every successfully fetched URL in fetch order.
	Visited []string

	// Pages describes each visited URL.
	Pages []ciagent.CrawlPage

	// Failed counts fetch attempts that were skipped after an error.
	Failed int
}

// Empty reports whether the crawl produced no text.
func (r *Result) Empty() bool {
	return strings.TrimSpace(r.Corpus) == ""
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type ProgressType
	URL  string

	// Visited is the number of pages fetched so far and MaxPages the budget.
	Visited  int
	MaxPages int

	// Text is the extracted text of a fetched page.
	Text  string
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressFetched ProgressType = iota
	ProgressEmpty
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl visits pages breadth-first from startURL until the frontier is
// empty or maxPages pages have been fetched. Only links whose host equals
// the start URL's host are followed; each URL is fetched at most once.
// Pages that fail to fetch are skipped without consuming budget.
//
// If ctx is canceled the partial result is returned along with ctx.Err().
func (c *Crawler) Crawl(ctx context.Context, startURL string, maxPages int, progress ProgressFunc) (*Result, error) {
	start, err := parseStartURL(startURL)
	if err != nil {
		return nil, err
	}
	if maxPages < 1 {
		return nil, ciagent.Errorf(ciagent.EINVALID, "max pages must be at least 1, got %d", maxPages)
	}

	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	var frontier ciagent.URLFrontier = NewFrontier()
	if c.Frontier != nil {
		frontier = c.Frontier
	}

	w := &walk{
		crawler:  c,
		start:    start,
		maxPages: maxPages,
		progress: progress,
		frontier: frontier,
		visited:  make(map[string]struct{}),
		result:   &Result{},
	}
	w.frontier.Push(start.String())

	err = w.run(ctx)
	w.result.Corpus = strings.Join(w.texts, PageSeparator)
	progress(ProgressEvent{
		Type:     ProgressFinished,
		Visited:  len(w.result.Visited),
		MaxPages: maxPages,
	})
	return w.result, err
}

// walk holds the state of a single crawl.
type walk struct {
	crawler  *Crawler
	start    *url.URL
	maxPages int
	progress ProgressFunc

	frontier ciagent.URLFrontier
	visited  map[string]struct{}
	budget   int
	texts    []string
	result   *Result
}

func (w *walk) run(ctx context.Context) error {
	for w.frontier.Len() > 0 && w.budget < w.maxPages {
		if err := ctx.Err(); err != nil {
			return err
		}

		link, _ := w.frontier.Pop()
		if _, ok := w.visited[link]; ok {
			continue
		}

		if w.crawler.RateLimiter != nil {
			if err := w.crawler.RateLimiter.Wait(ctx, w.start.Host); err != nil {
				return err
			}
		}

		html, err := w.crawler.Fetcher.Fetch(ctx, link)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.result.Failed++
			w.progress(ProgressEvent{
				Type:     ProgressFailed,
				URL:      link,
				Visited:  len(w.result.Visited),
				MaxPages: w.maxPages,
				Error:    err,
			})
			continue
		}

		w.visit(link, html)
	}
	return nil
}

// visit records a fetched page, collects its text and enqueues its links.
func (w *walk) visit(link, html string) {
	w.visited[link] = struct{}{}
	w.result.Visited = append(w.result.Visited, link)

	text, err := w.crawler.Extractor.Extract(html)
	if err != nil || strings.TrimSpace(text) == "" {
		text = ""
	}

	page := ciagent.CrawlPage{
		Position: len(w.result.Pages),
		URL:      link,
		Bytes:    len(text),
	}

	event := ProgressEvent{
		Type:     ProgressFetched,
		URL:      link,
		Visited:  len(w.result.Visited),
		MaxPages: w.maxPages,
		Text:     text,
	}
	if text == "" {
		event.Type = ProgressEmpty
		event.Error = err
		if !w.crawler.ExcludeEmptyFromBudget {
			w.budget++
		}
	} else {
		page.ContentHash = ComputeHash(text)
		w.texts = append(w.texts, text)
		w.budget++
	}
	w.result.Pages = append(w.result.Pages, page)
	w.progress(event)

	w.enqueueLinks(html)
}

func (w *walk) enqueueLinks(html string) {
	links, err := w.crawler.Links.ExtractLinks(html, w.start.String())
	if err != nil {
		return
	}
	for _, raw := range links {
		link, ok := w.normalize(raw)
		if !ok {
			continue
		}
		if _, seen := w.visited[link]; seen {
			continue
		}
		if w.frontier.Contains(link) {
			continue
		}
		w.frontier.Push(link)
	}
}

// normalize resolves a link against the start URL, strips its fragment and
// reports whether it belongs to the crawled host.
func (w *walk) normalize(raw string) (string, bool) {
	ref, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	u := w.start.ResolveReference(ref)
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path == "" {
		u.Path = "/"
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host != w.start.Host {
		return "", false
	}
	return u.String(), true
}

func parseStartURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, ciagent.Errorf(ciagent.EINVALID, "invalid start URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, ciagent.Errorf(ciagent.EINVALID, "start URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return nil, ciagent.Errorf(ciagent.EINVALID, "start URL %q has no host", raw)
	}
	u.Fragment = ""
	u.RawFragment = ""
	// The root page is always "/" so links back to it match the start URL.
	if u.Path == "" {
		u.Path = "/"
	}
	return u, nil
}

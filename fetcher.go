package ciagent

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET for the URL and returns the body.
	// Network failures and non-2xx responses are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

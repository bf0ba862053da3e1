package ciagent

import "context"

// URLFrontier is the FIFO queue of URLs waiting to be fetched.
type URLFrontier interface {
	// Push appends a URL to the back of the queue.
	// Returns false if the URL is already queued.
	Push(url string) bool

	// Pop removes and returns the earliest queued URL.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of URLs in the queue.
	Len() int

	// Contains reports whether the URL is currently queued.
	Contains(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

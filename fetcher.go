package artcrawl

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body.
	// Transport errors, timeouts and non-2xx statuses are all returned as
	// EUNAVAILABLE errors naming the URL. Implementations never retry.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Pacer spaces out requests with a fixed delay.
type Pacer interface {
	// Wait blocks until the next request may be issued.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}

package docscrape

import "context"

// Fetcher retrieves the raw body of a URL.
// Implementations report transport failures as *FetchError.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases transport resources.
	Close() error
}

// ResponseCache persists fetched response bodies keyed by URL.
type ResponseCache interface {
	// Get returns the cached body for url. The boolean is false on a miss.
	Get(ctx context.Context, url string) ([]byte, bool, error)

	// Put stores body for url, replacing any previous entry.
	Put(ctx context.Context, url string, body []byte) error

	// Clear removes every cached response.
	Clear(ctx context.Context) error
}

// Progress reports per-item progress of an extraction routine.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called after each item is processed.
type ProgressFunc func(Progress)

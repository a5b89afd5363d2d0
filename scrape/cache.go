package scrape

import (
	"context"
	"log/slog"

	"github.com/fwojciec/docscrape"
)

// Ensure CachedFetcher implements docscrape.Fetcher at compile time.
var _ docscrape.Fetcher = (*CachedFetcher)(nil)

// CachedFetcher serves bodies from a ResponseCache and falls through to the
// wrapped Fetcher on a miss. Cache failures are logged and never fail a fetch.
type CachedFetcher struct {
	next   docscrape.Fetcher
	cache  docscrape.ResponseCache
	logger *slog.Logger
}

// NewCachedFetcher wraps next with cache. A nil logger discards warnings.
func NewCachedFetcher(next docscrape.Fetcher, cache docscrape.ResponseCache, logger *slog.Logger) *CachedFetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CachedFetcher{next: next, cache: cache, logger: logger}
}

// Fetch returns the cached body for url or fetches and caches it.
func (f *CachedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	body, ok, err := f.cache.Get(ctx, url)
	if err != nil {
		f.logger.Warn("cache read failed", "url", url, "err", err)
	} else if ok {
		return body, nil
	}

	body, err = f.next.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := f.cache.Put(ctx, url, body); err != nil {
		f.logger.Warn("cache write failed", "url", url, "err", err)
	}
	return body, nil
}

// Close closes the wrapped fetcher.
func (f *CachedFetcher) Close() error {
	return f.next.Close()
}

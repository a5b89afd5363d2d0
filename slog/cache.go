package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
)

// Ensure LoggingResponseCache implements docscrape.ResponseCache.
var _ docscrape.ResponseCache = (*LoggingResponseCache)(nil)

// LoggingResponseCache wraps a ResponseCache, logging hits at debug level
// and clears at info level.
type LoggingResponseCache struct {
	next   docscrape.ResponseCache
	logger *slog.Logger
}

// NewLoggingResponseCache creates a new LoggingResponseCache.
func NewLoggingResponseCache(next docscrape.ResponseCache, logger *slog.Logger) *LoggingResponseCache {
	return &LoggingResponseCache{next: next, logger: logger}
}

// fetchTimer is implemented by caches that record when a body was stored.
type fetchTimer interface {
	FetchedAt(ctx context.Context, url string) (time.Time, error)
}

// Get delegates to the wrapped cache. Hits include the stored body's
// fetch time when the wrapped cache records one.
func (c *LoggingResponseCache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	body, ok, err := c.next.Get(ctx, url)
	attrs := []any{"url", url, "hit", ok, "err", err}
	if ft, isTimer := c.next.(fetchTimer); ok && isTimer {
		if at, ferr := ft.FetchedAt(ctx, url); ferr == nil {
			attrs = append(attrs, "fetched_at", at)
		}
	}
	c.logger.Debug("cache lookup", attrs...)
	return body, ok, err
}

// Put delegates to the wrapped cache.
func (c *LoggingResponseCache) Put(ctx context.Context, url string, body []byte) error {
	return c.next.Put(ctx, url, body)
}

// Clear delegates to the wrapped cache and logs the operation.
func (c *LoggingResponseCache) Clear(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache cleared",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Clear(ctx)
}

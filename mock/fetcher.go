// Package mock provides function-field test doubles for docscrape interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/docscrape"
)

var (
	_ docscrape.Fetcher       = (*Fetcher)(nil)
	_ docscrape.ResponseCache = (*ResponseCache)(nil)
)

// Fetcher is a mock implementation of docscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// ResponseCache is a mock implementation of docscrape.ResponseCache.
type ResponseCache struct {
	GetFn   func(ctx context.Context, url string) ([]byte, bool, error)
	PutFn   func(ctx context.Context, url string, body []byte) error
	ClearFn func(ctx context.Context) error
}

func (c *ResponseCache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	return c.GetFn(ctx, url)
}

func (c *ResponseCache) Put(ctx context.Context, url string, body []byte) error {
	return c.PutFn(ctx, url, body)
}

func (c *ResponseCache) Clear(ctx context.Context) error {
	return c.ClearFn(ctx)
}

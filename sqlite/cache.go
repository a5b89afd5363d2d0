package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docscrape"
)

// Compile-time interface verification.
var _ docscrape.ResponseCache = (*ResponseCache)(nil)

// ResponseCache implements docscrape.ResponseCache using SQLite.
// Entries never expire; use Clear to start fresh.
type ResponseCache struct {
	db  *DB
	now func() time.Time
}

// NewResponseCache creates a new ResponseCache.
func NewResponseCache(db *DB) *ResponseCache {
	return &ResponseCache{db: db, now: time.Now}
}

// Get returns the cached body for url.
func (c *ResponseCache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	var body []byte
	err := c.db.QueryRowContext(ctx, `SELECT body FROM responses WHERE url = ?`, url).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached response: %w", err)
	}
	return body, true, nil
}

// Put stores body for url. An entry whose content hash is unchanged is
// left untouched.
func (c *ResponseCache) Put(ctx context.Context, url string, body []byte) error {
	if body == nil {
		body = []byte{}
	}
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO responses (url, body, content_hash, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			body = excluded.body,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
		WHERE responses.content_hash != excluded.content_hash
	`, url, body, contentHash(body), c.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to cache response: %w", err)
	}
	return nil
}

// Clear removes all cached responses.
func (c *ResponseCache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM responses`); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// FetchedAt returns when the cached body for url was last changed.
// Returns ENOTFOUND if url is not cached.
func (c *ResponseCache) FetchedAt(ctx context.Context, url string) (time.Time, error) {
	var value string
	err := c.db.QueryRowContext(ctx, `SELECT fetched_at FROM responses WHERE url = ?`, url).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, docscrape.Errorf(docscrape.ENOTFOUND, "url %q is not cached", url)
	}
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse fetched_at: %w", err)
	}
	return t, nil
}

func contentHash(body []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(body))
}

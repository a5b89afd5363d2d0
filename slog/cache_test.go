package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/docscrape/mock"
	dsslog "github.com/fwojciec/docscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingResponseCache_Clear(t *testing.T) {
	t.Parallel()

	t.Run("logs clear with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cleared := false
		inner := &mock.ResponseCache{
			ClearFn: func(context.Context) error {
				cleared = true
				return nil
			},
		}

		cache := dsslog.NewLoggingResponseCache(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		err := cache.Clear(context.Background())

		require.NoError(t, err)
		assert.True(t, cleared)
		assert.Contains(t, buf.String(), "cache cleared")
		assert.Contains(t, buf.String(), "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ResponseCache{
			ClearFn: func(context.Context) error { return errors.New("locked") },
		}

		cache := dsslog.NewLoggingResponseCache(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		err := cache.Clear(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=locked")
	})
}

func TestLoggingResponseCache_Get(t *testing.T) {
	t.Parallel()

	t.Run("logs hits at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ResponseCache{
			GetFn: func(context.Context, string) ([]byte, bool, error) {
				return []byte("cached"), true, nil
			},
		}

		cache := dsslog.NewLoggingResponseCache(inner, debugLogger(&buf))
		body, ok, err := cache.Get(context.Background(), "https://peps.python.org/")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "cached", string(body))
		assert.Contains(t, buf.String(), "hit=true")
		assert.NotContains(t, buf.String(), "fetched_at=")
	})

	t.Run("logs when a hit was fetched", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &timedCache{
			ResponseCache: mock.ResponseCache{
				GetFn: func(context.Context, string) ([]byte, bool, error) {
					return []byte("cached"), true, nil
				},
			},
			at: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		}

		cache := dsslog.NewLoggingResponseCache(inner, debugLogger(&buf))
		_, ok, err := cache.Get(context.Background(), "https://peps.python.org/")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, buf.String(), "fetched_at=2026-10-01T12:00:00.000Z")
	})

	t.Run("skips the fetch time on a miss", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &timedCache{
			ResponseCache: mock.ResponseCache{
				GetFn: func(context.Context, string) ([]byte, bool, error) {
					return nil, false, nil
				},
			},
			at: time.Now(),
		}

		cache := dsslog.NewLoggingResponseCache(inner, debugLogger(&buf))
		_, ok, err := cache.Get(context.Background(), "https://peps.python.org/")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, buf.String(), "hit=false")
		assert.NotContains(t, buf.String(), "fetched_at=")
	})
}

// timedCache is a response cache that records a fixed fetch time.
type timedCache struct {
	mock.ResponseCache
	at time.Time
}

func (c *timedCache) FetchedAt(context.Context, string) (time.Time, error) {
	return c.at, nil
}

func TestLoggingResponseCache_Put(t *testing.T) {
	t.Parallel()

	var gotURL string
	inner := &mock.ResponseCache{
		PutFn: func(_ context.Context, url string, _ []byte) error {
			gotURL = url
			return nil
		},
	}

	cache := dsslog.NewLoggingResponseCache(inner, slog.New(slog.DiscardHandler))
	require.NoError(t, cache.Put(context.Background(), "https://peps.python.org/", []byte("x")))
	assert.Equal(t, "https://peps.python.org/", gotURL)
}

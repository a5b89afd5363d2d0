package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docscrape/mock"
	dsslog "github.com/fwojciec/docscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) ([]byte, error) {
				return []byte("<html>content</html>"), nil
			},
		}

		fetcher := dsslog.NewLoggingFetcher(inner, debugLogger(&buf))
		body, err := fetcher.Fetch(context.Background(), "https://docs.python.org/3/")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", string(body))
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://docs.python.org/3/")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) ([]byte, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := dsslog.NewLoggingFetcher(inner, debugLogger(&buf))
		_, err := fetcher.Fetch(context.Background(), "https://docs.python.org/3/")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})

	t.Run("stays quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) ([]byte, error) {
				return []byte("x"), nil
			},
		}

		fetcher := dsslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := fetcher.Fetch(context.Background(), "https://docs.python.org/3/")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := dsslog.NewLoggingFetcher(inner, debugLogger(&buf))
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}

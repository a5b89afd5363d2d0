package docscrape_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docscrape.Errorf(docscrape.EMISSING, "tag %q not found", "dl")

	assert.Equal(t, docscrape.EMISSING, docscrape.ErrorCode(err))
	assert.Equal(t, "tag \"dl\" not found", docscrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docscrape.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docscrape.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, docscrape.EINTERNAL, docscrape.ErrorCode(err))
	assert.Equal(t, "Internal error", docscrape.ErrorMessage(err))
}

func TestFetchError(t *testing.T) {
	t.Parallel()

	t.Run("carries the URL and reports EFETCH", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		err := fmt.Errorf("whats-new: %w", &docscrape.FetchError{URL: "https://example.com/a", Err: cause})

		assert.Equal(t, docscrape.EFETCH, docscrape.ErrorCode(err))
		assert.Contains(t, docscrape.ErrorMessage(err), "https://example.com/a")
		assert.ErrorIs(t, err, cause)
	})
}

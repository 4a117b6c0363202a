package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/wikimd"
	"github.com/fwojciec/wikimd/mock"
	wikislog "github.com/fwojciec/wikimd/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return `<div id="bodyContent"></div>`, nil
			},
		}

		fetcher := wikislog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://en.wikipedia.org/wiki/Go")

		require.NoError(t, err)
		assert.Equal(t, `<div id="bodyContent"></div>`, html)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url=https://en.wikipedia.org/wiki/Go")
		assert.Contains(t, output, "bytes=28")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs fetch error message", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", &wikimd.FetchError{URL: url, StatusCode: 404}
			},
		}

		fetcher := wikislog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://en.wikipedia.org/wiki/Nope")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, `err="HTTP 404: Unable to fetch content from https://en.wikipedia.org/wiki/Nope"`)
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := wikislog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}

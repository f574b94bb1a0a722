package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/mock"
	miseslog "github.com/fwojciec/mise/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with status, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string, headers map[string]string) (*mise.Response, error) {
				assert.Equal(t, "test-agent", headers["User-Agent"])
				return &mise.Response{StatusCode: 200, Body: []byte("<html>content</html>")}, nil
			},
		}

		fetcher := miseslog.NewLoggingFetcher(inner, logger)
		resp, err := fetcher.Fetch(context.Background(), "https://example.com/soup", map[string]string{"User-Agent": "test-agent"})

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", string(resp.Body))
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/soup")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(context.Context, string, map[string]string) (*mise.Response, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := miseslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/soup", nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "status=0")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

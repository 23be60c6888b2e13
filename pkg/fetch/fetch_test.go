package fetch

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/glorpus-work/gogalaxy/pkg/auth"
	"github.com/glorpus-work/gogalaxy/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) AccessToken() string { return string(s) }
func (s staticToken) IsExpired() bool     { return false }

func newTestFetcher(maxRetries int, authenticator auth.Authenticator) *HTTPFetcher {
	return NewHTTPFetcher(Options{
		Timeout:    5 * time.Second,
		MaxRetries: maxRetries,
		Auth:       authenticator,
		NewBackOff: func() backoff.BackOff { return &backoff.ZeroBackOff{} },
	})
}

func TestHTTPFetcher_Success(t *testing.T) {
	var gotAuth, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	f := newTestFetcher(3, auth.BearerAuth{Source: staticToken("abc")})
	body := f.Fetch(context.Background(), server.URL+"/products/1", false)

	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, DefaultUserAgent, gotAgent)
}

func TestHTTPFetcher_Anonymous(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	f := newTestFetcher(0, nil)
	assert.Equal(t, "{}", string(f.Fetch(context.Background(), server.URL, false)))
	assert.Empty(t, gotAuth)
}

func TestHTTPFetcher_Decompress(t *testing.T) {
	payload := []byte(`{"depot":{"items":[]}}`)
	compressed := testutil.Zlib(t, payload)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(compressed)
	}))
	defer server.Close()

	f := newTestFetcher(0, nil)
	assert.Equal(t, payload, f.Fetch(context.Background(), server.URL, true))
	assert.Equal(t, compressed, f.Fetch(context.Background(), server.URL, false))
}

func TestHTTPFetcher_DecompressGarbage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not zlib at all"))
	}))
	defer server.Close()

	f := newTestFetcher(0, nil)
	assert.Nil(t, f.Fetch(context.Background(), server.URL, true))
}

func TestHTTPFetcher_RetryBudget(t *testing.T) {
	tests := []struct {
		name          string
		maxRetries    int
		status        int
		expectedCalls int32
	}{
		{name: "no retries", maxRetries: 0, status: http.StatusInternalServerError, expectedCalls: 1},
		{name: "two retries", maxRetries: 2, status: http.StatusBadGateway, expectedCalls: 3},
		{name: "retries are capped", maxRetries: 10, status: http.StatusServiceUnavailable, expectedCalls: 4},
		{name: "negative treated as zero", maxRetries: -1, status: http.StatusInternalServerError, expectedCalls: 1},
		{name: "too many requests is retried", maxRetries: 1, status: http.StatusTooManyRequests, expectedCalls: 2},
		{name: "not found is permanent", maxRetries: 3, status: http.StatusNotFound, expectedCalls: 1},
		{name: "unauthorized is permanent", maxRetries: 3, status: http.StatusUnauthorized, expectedCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			f := newTestFetcher(tt.maxRetries, nil)
			assert.Nil(t, f.Fetch(context.Background(), server.URL, false))
			assert.Equal(t, tt.expectedCalls, calls.Load())
		})
	}
}

func TestHTTPFetcher_RecoversAfterTransientFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"attempt":3}`))
	}))
	defer server.Close()

	f := newTestFetcher(3, nil)
	assert.Equal(t, `{"attempt":3}`, string(f.Fetch(context.Background(), server.URL, false)))
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPFetcher_InvalidURL(t *testing.T) {
	f := newTestFetcher(3, nil)
	assert.Nil(t, f.Fetch(context.Background(), "://bad", false))
}

func TestHTTPFetcher_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newTestFetcher(3, nil)
	assert.Nil(t, f.Fetch(ctx, server.URL, false))
}

func TestNewHTTPFetcher_Defaults(t *testing.T) {
	f := NewHTTPFetcher(Options{UserAgent: "custom/2.0", MaxRetries: 7, Logger: slog.Default()})
	require.NotNil(t, f.client)
	assert.Equal(t, "custom/2.0", f.userAgent)
	assert.Equal(t, MaxRetryBound, f.retries)
	assert.Equal(t, auth.NoAuthType, f.auth.Type())
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "https://example.com/a?token=%2A%2A%2A", redactURL("https://example.com/a?token=secret"))
	assert.Equal(t, "https://example.com/a?x=1", redactURL("https://example.com/a?x=1"))
}

// Package fetch implements the response fetcher used by the galaxy client:
// authenticated GET requests with a bounded retry budget, optional zlib
// inflation and an in-process memo cache for content-addressed bodies.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/glorpus-work/gogalaxy/pkg/auth"
	"github.com/glorpus-work/gogalaxy/pkg/errors"
	"github.com/mholt/archives"
)

// MaxRetryBound caps the configured retry count.
const MaxRetryBound = 3

// DefaultUserAgent is sent when Options.UserAgent is empty.
const DefaultUserAgent = "gogalaxy/1.0"

// Options configure an HTTPFetcher.
type Options struct {
	Timeout    time.Duration
	MaxRetries int
	UserAgent  string
	Auth       auth.Authenticator
	Logger     *slog.Logger

	// Client overrides the HTTP client built from Timeout.
	Client *http.Client
	// NewBackOff overrides the retry schedule.
	NewBackOff func() backoff.BackOff
}

// HTTPFetcher is the net/http implementation of Fetcher.
type HTTPFetcher struct {
	client     *http.Client
	userAgent  string
	auth       auth.Authenticator
	retries    int
	log        *slog.Logger
	newBackOff func() backoff.BackOff
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher from opts.
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	f := &HTTPFetcher{
		client:     opts.Client,
		userAgent:  opts.UserAgent,
		auth:       opts.Auth,
		retries:    min(MaxRetryBound, max(0, opts.MaxRetries)),
		log:        opts.Logger,
		newBackOff: opts.NewBackOff,
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: opts.Timeout}
	}
	if f.userAgent == "" {
		f.userAgent = DefaultUserAgent
	}
	if f.auth == nil {
		f.auth = auth.Anonymous{}
	}
	if f.log == nil {
		f.log = slog.New(slog.DiscardHandler)
	}
	if f.newBackOff == nil {
		f.newBackOff = func() backoff.BackOff { return backoff.NewExponentialBackOff() }
	}
	return f
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string, decompress bool) []byte {
	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		return f.get(ctx, rawURL)
	},
		backoff.WithBackOff(f.newBackOff()),
		backoff.WithMaxTries(uint(f.retries+1)),
	)
	if err != nil {
		f.log.Warn("request failed", "url", redactURL(rawURL), "error", err)
		return nil
	}

	if !decompress || len(body) == 0 {
		return body
	}
	inflated, err := inflate(body)
	if err != nil {
		f.log.Warn("failed to decompress response", "url", redactURL(rawURL), "error", err)
		return nil
	}
	return inflated
}

func (f *HTTPFetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, backoff.Permanent(errors.Wrap(err, "failed to create request"))
	}
	req.Header.Set("User-Agent", f.userAgent)
	if err := f.auth.Apply(req); err != nil {
		return nil, backoff.Permanent(errors.Wrap(err, "failed to authenticate request"))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, backoff.Permanent(statusErr)
		}
		return nil, statusErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	return data, nil
}

func inflate(data []byte) ([]byte, error) {
	r, err := archives.Zlib{}.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return io.ReadAll(r)
}

// redactURL hides credentials carried in query parameters.
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	changed := false
	for _, key := range []string{"token", "access_token", "refresh_token", "client_secret"} {
		if q.Has(key) {
			q.Set(key, "***")
			changed = true
		}
	}
	if !changed {
		return rawURL
	}
	u.RawQuery = q.Encode()
	return u.String()
}

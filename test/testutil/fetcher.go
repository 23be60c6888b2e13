// Package testutil provides fixtures shared by the package tests.
package testutil

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/mholt/archives"
	"github.com/stretchr/testify/require"
)

// Response is a canned body served by FakeFetcher.
type Response struct {
	Body []byte
	// Compressed marks bodies that are only served when decompress is set.
	Compressed bool
}

// Call records one Fetch invocation.
type Call struct {
	URL        string
	Decompress bool
}

// FakeFetcher serves canned bodies by exact URL. Unknown URLs and
// decompress mismatches yield a nil body, like a failed request would.
// It is safe for concurrent use.
type FakeFetcher struct {
	mu     sync.Mutex
	routes map[string]Response
	calls  []Call
}

// NewFakeFetcher creates an empty fake.
func NewFakeFetcher() *FakeFetcher {
	return &FakeFetcher{routes: make(map[string]Response)}
}

// JSON registers a plain body for url.
func (f *FakeFetcher) JSON(url, body string) *FakeFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[url] = Response{Body: []byte(body)}
	return f
}

// Compressed registers a body that must be fetched with decompress set.
func (f *FakeFetcher) Compressed(url, body string) *FakeFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[url] = Response{Body: []byte(body), Compressed: true}
	return f
}

// Fetch implements fetch.Fetcher.
func (f *FakeFetcher) Fetch(_ context.Context, url string, decompress bool) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{URL: url, Decompress: decompress})
	resp, ok := f.routes[url]
	if !ok || resp.Compressed != decompress {
		return nil
	}
	return resp.Body
}

// Calls returns a copy of the recorded invocations.
func (f *FakeFetcher) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallCount returns how often url was requested.
func (f *FakeFetcher) CallCount(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.URL == url {
			n++
		}
	}
	return n
}

// Zlib compresses data the way the CDN serves manifests.
func Zlib(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := archives.Zlib{}.OpenWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// Package galaxy resolves GOG Galaxy manifests and product downloads into a
// single file model: games with files, and depot items with chunks.
//
// Every operation degrades instead of failing. Transport and decode problems
// yield empty documents or shorter result lists, and are reported only on the
// client's logger. An empty result is therefore inconclusive rather than
// proof that upstream has no data.
package galaxy

import (
	"context"
	"log/slog"

	"github.com/glorpus-work/gogalaxy/pkg/document"
	"github.com/glorpus-work/gogalaxy/pkg/fetch"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel downlink and depot resolution.
const DefaultConcurrency = 8

// Client talks to the content API through a fetch.Fetcher. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	fetcher     fetch.Fetcher
	log         *slog.Logger
	concurrency int
	endpoints   Endpoints
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the diagnostic logger. Suppressed failures are reported here.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithConcurrency bounds the number of parallel round trips.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithEndpoints overrides the upstream base URLs.
func WithEndpoints(e Endpoints) Option {
	return func(c *Client) {
		c.endpoints = e
	}
}

// NewClient creates a client on top of f.
func NewClient(f fetch.Fetcher, opts ...Option) *Client {
	c := &Client{
		fetcher:     f,
		log:         slog.New(slog.DiscardHandler),
		concurrency: DefaultConcurrency,
		endpoints:   DefaultEndpoints,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) document(ctx context.Context, url string, decompress bool) document.Document {
	body := c.fetcher.Fetch(ctx, url, decompress)
	if len(body) == 0 {
		c.log.Debug("empty response", "url", url)
		return document.Document{}
	}
	return document.Decode(body, c.log.With("url", url))
}

// parallel runs fn for every index in [0, n) with at most c.concurrency
// calls in flight. fn must store its result by index; completion order is
// unspecified.
func (c *Client) parallel(ctx context.Context, n int, fn func(ctx context.Context, i int)) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(gctx, i)
			return nil
		})
	}
	_ = g.Wait()
}

//go:generate mockgen -destination=mocks/fetcher.go . Fetcher
package fetch

import "context"

// Fetcher retrieves response bodies from the content API.
type Fetcher interface {
	// Fetch performs an authenticated GET of rawURL and returns the body,
	// zlib-inflated when decompress is set. Failures that survive the retry
	// budget produce a nil body; they are never returned as errors.
	Fetch(ctx context.Context, rawURL string, decompress bool) []byte
}

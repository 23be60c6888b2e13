package galaxy

import (
	"context"

	"github.com/glorpus-work/gogalaxy/pkg/document"
)

// UserData returns the account document of the authenticated user.
func (c *Client) UserData(ctx context.Context) document.Document {
	return c.document(ctx, c.endpoints.userDataURL(), false)
}

// DependenciesRepository returns the shared dependency listing. The
// repository endpoint only points at the listing through its
// "repository_manifest" member, which is followed and decompressed.
func (c *Client) DependenciesRepository(ctx context.Context) document.Document {
	pointer := c.document(ctx, c.endpoints.dependenciesRepositoryURL(), false)
	if pointer.IsEmpty() || !pointer.Has("repository_manifest") {
		c.log.Debug("dependency repository pointer missing")
		return document.Document{}
	}

	manifestURL := pointer.Get("repository_manifest").String()
	if manifestURL == "" {
		return document.Document{}
	}
	return c.document(ctx, manifestURL, true)
}

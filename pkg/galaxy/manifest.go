package galaxy

import (
	"context"

	"github.com/glorpus-work/gogalaxy/pkg/document"
)

// ResolveManifestV1 fetches a generation 1 manifest by its identifiers.
func (c *Client) ResolveManifestV1(ctx context.Context, productID, buildID, manifestID, platform string) document.Document {
	return c.ResolveManifestV1URL(ctx, c.endpoints.manifestV1URL(productID, buildID, manifestID, platform))
}

// ResolveManifestV1URL fetches a generation 1 manifest from an explicit URL.
// Generation 1 bodies are served uncompressed.
func (c *Client) ResolveManifestV1URL(ctx context.Context, manifestURL string) document.Document {
	if manifestURL == "" {
		return document.Document{}
	}
	return c.document(ctx, manifestURL, false)
}

// ResolveManifestV2 fetches a generation 2 manifest. hash may be a raw
// content hash or an already sharded "ab/cd/<hash>" path. isDependency
// selects the shared dependency store.
func (c *Client) ResolveManifestV2(ctx context.Context, hash string, isDependency bool) document.Document {
	if hash == "" {
		c.log.Debug("skipping manifest without hash", "dependency", isDependency)
		return document.Document{}
	}
	return c.document(ctx, c.endpoints.manifestV2URL(hash, isDependency), true)
}

// SecureLink returns the secure link document for a product depot path.
func (c *Client) SecureLink(ctx context.Context, productID, path string) document.Document {
	return c.document(ctx, c.endpoints.secureLinkURL(productID, path), false)
}

// DependencyLink returns the open link document for a dependency store path.
func (c *Client) DependencyLink(ctx context.Context, path string) document.Document {
	return c.document(ctx, c.endpoints.dependencyLinkURL(path), false)
}

// BuildManifest fetches the manifest a build links to. Generation 2 links
// point at compressed content-addressed bodies; older generations do not.
func (c *Client) BuildManifest(ctx context.Context, b Build) document.Document {
	if b.Link == "" {
		c.log.Debug("build has no manifest link", "build_id", b.ID)
		return document.Document{}
	}
	if b.Generation >= 2 {
		return c.document(ctx, b.Link, true)
	}
	return c.ResolveManifestV1URL(ctx, b.Link)
}

// ManifestDependencies lists the dependency ids a generation 2 build
// manifest declares.
func ManifestDependencies(manifest document.Document) []string {
	return manifest.Get("dependencies").Strings()
}

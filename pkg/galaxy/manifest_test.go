package galaxy

import (
	"context"
	"testing"

	"github.com/glorpus-work/gogalaxy/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveManifestV2(t *testing.T) {
	fake := testutil.NewFakeFetcher().
		Compressed("https://cdn.gog.com/content-system/v2/meta/ab/cd/abcdef123456", `{"version":2,"depot":{"items":[]}}`).
		Compressed("https://cdn.gog.com/content-system/v2/dependencies/meta/ab/cd/abcdef123456", `{"version":2,"dependency":true}`)
	c := NewClient(fake)
	ctx := context.Background()

	doc := c.ResolveManifestV2(ctx, "abcdef123456", false)
	assert.Equal(t, int64(2), doc.Get("version").Int())

	sharded := c.ResolveManifestV2(ctx, "ab/cd/abcdef123456", false)
	assert.Equal(t, doc.Raw(), sharded.Raw(), "raw hash and sharded path resolve alike")

	dep := c.ResolveManifestV2(ctx, "abcdef123456", true)
	assert.True(t, dep.Get("dependency").Bool())

	for _, call := range fake.Calls() {
		assert.True(t, call.Decompress, "v2 bodies are always requested decompressed")
	}

	before := len(fake.Calls())
	assert.True(t, c.ResolveManifestV2(ctx, "", false).IsEmpty())
	assert.Len(t, fake.Calls(), before)
}

func TestResolveManifestV2_Failures(t *testing.T) {
	fake := testutil.NewFakeFetcher().
		Compressed("https://cdn.gog.com/content-system/v2/meta/00/11/0011broken", `{"depot":`)
	c := NewClient(fake)

	assert.True(t, c.ResolveManifestV2(context.Background(), "0011broken", false).IsEmpty())
	assert.True(t, c.ResolveManifestV2(context.Background(), "ffffffff", false).IsEmpty())
	assert.Empty(t, c.NormalizeDepot(context.Background(), "ffffffff", false))
}

func TestResolveManifestV1(t *testing.T) {
	const url = "https://cdn.gog.com/content-system/v1/manifests/1207658924/windows/37794096/5b7b2ef2.json"
	fake := testutil.NewFakeFetcher().JSON(url, `{"product":{"timestamp":1}}`)
	c := NewClient(fake)

	doc := c.ResolveManifestV1(context.Background(), "1207658924", "37794096", "5b7b2ef2", "windows")
	assert.Equal(t, int64(1), doc.Path("product.timestamp").Int())

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.False(t, calls[0].Decompress)

	assert.True(t, c.ResolveManifestV1URL(context.Background(), "").IsEmpty())
}

func TestBuildManifest(t *testing.T) {
	fake := testutil.NewFakeFetcher().
		Compressed("https://cdn.gog.com/content-system/v2/meta/92/ab/92ab42631ff4742b309bb62c175e6306", `{"version":2,"depots":[]}`).
		JSON("https://cdn.gog.com/content-system/v1/manifests/1207658924/windows/1/repository.json", `{"version":1}`)
	c := NewClient(fake)
	ctx := context.Background()

	v2 := c.BuildManifest(ctx, Build{Generation: 2, Link: "https://cdn.gog.com/content-system/v2/meta/92/ab/92ab42631ff4742b309bb62c175e6306"})
	assert.Equal(t, int64(2), v2.Get("version").Int())

	v1 := c.BuildManifest(ctx, Build{Generation: 1, Link: "https://cdn.gog.com/content-system/v1/manifests/1207658924/windows/1/repository.json"})
	assert.Equal(t, int64(1), v1.Get("version").Int())

	assert.True(t, c.BuildManifest(ctx, Build{ID: "x", Generation: 2}).IsEmpty())
}

func TestLinks(t *testing.T) {
	fake := testutil.NewFakeFetcher().
		JSON("https://content-system.gog.com/products/1207658924/secure_link?generation=2&path=/&_version=2",
			`{"product_id":1207658924,"urls":[{"endpoint_name":"fastly"}]}`).
		JSON("https://content-system.gog.com/open_link?generation=2&_version=2&path=/dependencies/store/ab/cd",
			`{"urls":[{"endpoint_name":"akamai"}]}`)
	c := NewClient(fake)

	secure := c.SecureLink(context.Background(), "1207658924", "/")
	assert.Equal(t, "fastly", secure.Get("urls").Array()[0].Get("endpoint_name").String())

	open := c.DependencyLink(context.Background(), "ab/cd")
	assert.Equal(t, "akamai", open.Path("urls.0.endpoint_name").String())
}

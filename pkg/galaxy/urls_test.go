package galaxy

import (
	"context"
	"testing"

	"github.com/glorpus-work/gogalaxy/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashToPath(t *testing.T) {
	tests := []struct {
		name     string
		hash     string
		expected string
	}{
		{name: "raw hash is sharded", hash: "abcdef123456", expected: "ab/cd/abcdef123456"},
		{name: "sharded path unchanged", hash: "ab/cd/abcdef123456", expected: "ab/cd/abcdef123456"},
		{name: "any separator counts", hash: "abcdef/123456", expected: "abcdef/123456"},
		{name: "exactly four chars", hash: "abcd", expected: "ab/cd/abcd"},
		{name: "too short", hash: "abc", expected: "abc"},
		{name: "empty", hash: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HashToPath(tt.hash))
		})
	}
}

func TestEndpointURLs(t *testing.T) {
	e := DefaultEndpoints
	assert.Equal(t,
		"https://content-system.gog.com/products/1207658924/os/windows/builds?generation=2",
		e.buildsURL("1207658924", "windows", 2))
	assert.Equal(t,
		"https://cdn.gog.com/content-system/v1/manifests/1207658924/windows/37794096/5b7b2ef2-f31e.json",
		e.manifestV1URL("1207658924", "37794096", "5b7b2ef2-f31e", "windows"))
	assert.Equal(t,
		"https://cdn.gog.com/content-system/v2/meta/ab/cd/abcdef123456",
		e.manifestV2URL("abcdef123456", false))
	assert.Equal(t,
		"https://cdn.gog.com/content-system/v2/dependencies/meta/ab/cd/abcdef123456",
		e.manifestV2URL("abcdef123456", true))
	assert.Equal(t,
		"https://content-system.gog.com/products/1207658924/secure_link?generation=2&path=/&_version=2",
		e.secureLinkURL("1207658924", "/"))
	assert.Equal(t,
		"https://content-system.gog.com/open_link?generation=2&_version=2&path=/dependencies/store/ab/cd/abcdef",
		e.dependencyLinkURL("ab/cd/abcdef"))
	assert.Equal(t,
		"https://api.gog.com/products/1207658924?expand=downloads,expanded_dlcs,description,screenshots,videos,related_products,changelog&locale=en-US",
		e.productInfoURL("1207658924"))
	assert.Equal(t, "https://embed.gog.com/userData.json", e.userDataURL())
	assert.Equal(t,
		"https://content-system.gog.com/dependencies/repository?generation=2",
		e.dependenciesRepositoryURL())
}

func TestWithEndpoints(t *testing.T) {
	fake := testutil.NewFakeFetcher().JSON("http://mirror.local/userData.json", `{"isLoggedIn":true}`)
	c := NewClient(fake, WithEndpoints(Endpoints{Embed: "http://mirror.local"}))

	doc := c.UserData(context.Background())
	require.True(t, doc.Exists())
	assert.True(t, doc.Get("isLoggedIn").Bool())
}

func TestNewClient_Options(t *testing.T) {
	c := NewClient(testutil.NewFakeFetcher(), WithConcurrency(0), WithLogger(nil))
	assert.Equal(t, DefaultConcurrency, c.concurrency)
	assert.NotNil(t, c.log)

	c = NewClient(testutil.NewFakeFetcher(), WithConcurrency(2))
	assert.Equal(t, 2, c.concurrency)
}

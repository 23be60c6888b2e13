package galaxy

import (
	"context"
	"testing"

	"github.com/glorpus-work/gogalaxy/test/testutil"
	"github.com/stretchr/testify/assert"
)

const repositoryURL = "https://content-system.gog.com/dependencies/repository?generation=2"

func TestDependenciesRepository(t *testing.T) {
	const listing = "https://cdn.gog.com/content-system/v2/dependencies/repository/aa/bb/aabbcc"
	fake := testutil.NewFakeFetcher().
		JSON(repositoryURL, `{"repository_manifest":"`+listing+`"}`).
		Compressed(listing, `{"depots":[{"dependencyId":"DirectX","manifest":"d2d2d2"}]}`)

	doc := NewClient(fake).DependenciesRepository(context.Background())
	assert.Equal(t, "DirectX", doc.Path("depots.0.dependencyId").String())
	assert.Equal(t, 1, fake.CallCount(listing))
}

func TestDependenciesRepository_MissingPointer(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no pointer field", body: `{"generation":2}`},
		{name: "null pointer", body: `{"repository_manifest":null}`},
		{name: "malformed", body: `{"repository_manifest":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := testutil.NewFakeFetcher().JSON(repositoryURL, tt.body)
			doc := NewClient(fake).DependenciesRepository(context.Background())
			assert.True(t, doc.IsEmpty())
			assert.Len(t, fake.Calls(), 1, "pointer failures stop after the first round trip")
		})
	}

	assert.True(t, NewClient(testutil.NewFakeFetcher()).DependenciesRepository(context.Background()).IsEmpty())
}

func TestUserData(t *testing.T) {
	fake := testutil.NewFakeFetcher().JSON("https://embed.gog.com/userData.json", `{"username":"gogfan","isLoggedIn":true}`)
	doc := NewClient(fake).UserData(context.Background())
	assert.Equal(t, "gogfan", doc.Get("username").String())
}

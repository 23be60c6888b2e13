package fetch

import (
	"context"
	"sync"
	"testing"

	mock_fetch "github.com/glorpus-work/gogalaxy/pkg/fetch/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCache_MemoizesCompressedBodies(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_fetch.NewMockFetcher(ctrl)

	const url = "https://cdn.gog.com/content-system/v2/meta/ab/cd/abcdef"
	next.EXPECT().Fetch(gomock.Any(), url, true).Return([]byte(`{"depot":{}}`)).Times(1)

	c := NewCache(next)
	first := c.Fetch(context.Background(), url, true)
	second := c.Fetch(context.Background(), url, true)

	assert.Equal(t, `{"depot":{}}`, string(first))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len())
}

func TestCache_PassesThroughPlainRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_fetch.NewMockFetcher(ctrl)

	const url = "https://api.gog.com/products/1?expand=downloads"
	next.EXPECT().Fetch(gomock.Any(), url, false).Return([]byte(`{}`)).Times(2)

	c := NewCache(next)
	c.Fetch(context.Background(), url, false)
	c.Fetch(context.Background(), url, false)
	assert.Equal(t, 0, c.Len())
}

func TestCache_SkipsEmptyBodies(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_fetch.NewMockFetcher(ctrl)

	const url = "https://cdn.gog.com/content-system/v2/meta/00/11/0011"
	gomock.InOrder(
		next.EXPECT().Fetch(gomock.Any(), url, true).Return(nil),
		next.EXPECT().Fetch(gomock.Any(), url, true).Return([]byte(`{"ok":1}`)),
	)

	c := NewCache(next)
	assert.Nil(t, c.Fetch(context.Background(), url, true))
	assert.Equal(t, `{"ok":1}`, string(c.Fetch(context.Background(), url, true)))
	assert.Equal(t, 1, c.Len())
}

func TestCache_ConcurrentUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_fetch.NewMockFetcher(ctrl)
	next.EXPECT().Fetch(gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(_ context.Context, url string, _ bool) []byte {
			return []byte(url)
		}).AnyTimes()

	c := NewCache(next)
	urls := []string{"https://a/1", "https://a/2", "https://a/3"}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(u string) {
			defer wg.Done()
			assert.Equal(t, u, string(c.Fetch(context.Background(), u, true)))
		}(urls[i%len(urls)])
	}
	wg.Wait()
	assert.Equal(t, len(urls), c.Len())
}

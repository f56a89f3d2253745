package rest

import (
	"net/http"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/robotstxt"
	"go.uber.org/mock/gomock"

	"grandriver/domain"
)

func TestRSSHandler(t *testing.T) {
	env := newHandlerTestEnv(t)

	published := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)
	post := samplePost(1, "Rates & Banks", "rates-and-banks", true)
	post.PublishDate = &published
	env.fetch.EXPECT().FetchPublishedPosts(gomock.Any(), 15, 0).
		Return([]*domain.Post{post}, nil)

	rec := env.get("/rss.xml")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/rss+xml")

	feed, err := gofeed.NewParser().ParseString(rec.Body.String())
	require.NoError(t, err)
	assert.Equal(t, "Grand River Analytics", feed.Title)
	require.Len(t, feed.Items, 1)
	item := feed.Items[0]
	assert.Equal(t, "Rates & Banks", item.Title)
	assert.Equal(t, "http://example.test/post/rates-and-banks", item.Link)
	assert.Contains(t, item.Description, "A short look at")
	require.NotNil(t, item.PublishedParsed)
	assert.True(t, item.PublishedParsed.Equal(published))
}

func TestSitemapHandler(t *testing.T) {
	env := newHandlerTestEnv(t)

	updated := time.Date(2024, 4, 18, 0, 0, 0, 0, time.UTC)
	env.fetch.EXPECT().FetchPublishedSlugs(gomock.Any()).Return([]domain.SitemapEntry{
		{Slug: "rates-and-banks", UpdatedAt: updated},
	}, nil)

	rec := env.get("/sitemap.xml")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>http://example.test/</loc>")
	assert.Contains(t, body, "<loc>http://example.test/team</loc>")
	assert.Contains(t, body, "<loc>http://example.test/contact</loc>")
	assert.Contains(t, body, "<loc>http://example.test/blog</loc>")
	assert.Contains(t, body, "<loc>http://example.test/post/rates-and-banks</loc>")
	assert.Contains(t, body, "<lastmod>2024-04-18</lastmod>")
}

func TestRobotsHandler(t *testing.T) {
	env := newHandlerTestEnv(t)

	rec := env.get("/robots.txt")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: http://example.test/sitemap.xml")

	robots, err := robotstxt.FromBytes(rec.Body.Bytes())
	require.NoError(t, err)
	assert.True(t, robots.TestAgent("/post/anything", "Googlebot"))
	assert.True(t, robots.TestAgent("/", "*"))
}

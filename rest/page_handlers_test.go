package rest

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandriver/config"
	"grandriver/domain"
	apperrors "grandriver/utils/errors"
)

func samplePost(id int64, title, slug string, published bool) *domain.Post {
	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	return &domain.Post{
		ID:        id,
		Title:     title,
		Slug:      slug,
		Excerpt:   "A short look at " + title + ".",
		Content:   "<h2>Thesis</h2><p>" + title + " body copy with enough words to read.</p>",
		Tags:      "banks, rates",
		Published: published,
		CreatedAt: created,
		UpdatedAt: created,
		HeroStyle: domain.HeroStyleLight,
	}
}

func TestHomeHandler(t *testing.T) {
	env := newHandlerTestEnv(t)

	featured := samplePost(1, "Regional Banks Revisited", "regional-banks-revisited", true)
	featured.Featured = true
	second := samplePost(2, "Cloud Margins", "cloud-margins", true)
	env.fetch.EXPECT().FetchHomePosts(gomock.Any(), 6).
		Return([]*domain.Post{featured, second}, nil)

	rec := env.get("/")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Regional Banks Revisited")
	assert.Contains(t, body, "Cloud Margins")
	assert.Contains(t, body, `href="/post/regional-banks-revisited"`)
	assert.Contains(t, body, "Featured")
	assert.Contains(t, body, "application/ld+json")
}

func TestHomeHandler_FontsKitConfigured(t *testing.T) {
	env := newHandlerTestEnv(t)
	env.container.Assets = config.AssetsConfig{AdobeFontsKitID: "kit42ab"}
	env.fetch.EXPECT().FetchHomePosts(gomock.Any(), 6).Return([]*domain.Post{}, nil)

	rec := env.get("/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="https://use.typekit.net/kit42ab.css"`)
}

func TestHomeHandler_DatabaseError(t *testing.T) {
	env := newHandlerTestEnv(t)
	env.fetch.EXPECT().FetchHomePosts(gomock.Any(), 6).
		Return(nil, apperrors.DatabaseError("query failed", nil, nil))

	rec := env.get("/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "500")
}

func TestBlogIndexHandler_FirstPage(t *testing.T) {
	env := newHandlerTestEnv(t)

	posts := []*domain.Post{samplePost(1, "Post One", "post-one", true)}
	env.fetch.EXPECT().FetchPublishedPosts(gomock.Any(), 10, 0).Return(posts, nil)
	env.fetch.EXPECT().CountPublishedPosts(gomock.Any()).Return(25, nil)
	env.fetch.EXPECT().FetchPublishedTagColumns(gomock.Any()).Return([]string{"banks, rates", "ai"}, nil)

	rec := env.get("/blog")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Post One")
	assert.Contains(t, body, `<span class="page-current">1</span>`)
	assert.Contains(t, body, `href="/blog?page=2"`)
	assert.NotContains(t, body, `rel="prev"`)
	assert.Contains(t, body, "banks")
	assert.Contains(t, body, "ai")
	assert.Contains(t, body, `data-tags="banks|rates|"`)
	assert.Contains(t, body, "/static/js/blog_filter.js")
}

func TestBlogIndexHandler_HugePageClamped(t *testing.T) {
	env := newHandlerTestEnv(t)

	env.fetch.EXPECT().FetchPublishedPosts(gomock.Any(), 10, 9_999_990).Return([]*domain.Post{}, nil)
	env.fetch.EXPECT().CountPublishedPosts(gomock.Any()).Return(25, nil)
	env.fetch.EXPECT().FetchPublishedTagColumns(gomock.Any()).Return(nil, nil)

	rec := env.get("/blog?page=2000000000000000000")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBlogIndexHandler_MiddlePage(t *testing.T) {
	env := newHandlerTestEnv(t)

	env.fetch.EXPECT().FetchPublishedPosts(gomock.Any(), 10, 10).Return([]*domain.Post{}, nil)
	env.fetch.EXPECT().CountPublishedPosts(gomock.Any()).Return(25, nil)
	env.fetch.EXPECT().FetchPublishedTagColumns(gomock.Any()).Return(nil, nil)

	rec := env.get("/blog?page=2")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<span class="page-current">2</span>`)
	assert.Contains(t, body, `href="/blog?page=1"`)
	assert.Contains(t, body, `href="/blog?page=3"`)
}

func TestPostDetailHandler_Published(t *testing.T) {
	env := newHandlerTestEnv(t)

	post := samplePost(5, "Oil Majors", "oil-majors", true)
	post.SummaryPoints = "Capex discipline\nDividend cover"
	env.fetch.EXPECT().FetchPostBySlug(gomock.Any(), "oil-majors").Return(post, nil)
	env.fetch.EXPECT().FetchRelatedPosts(gomock.Any(), "oil-majors", 3).
		Return([]*domain.Post{samplePost(6, "Refining Spreads", "refining-spreads", true)}, nil)

	rec := env.get("/post/oil-majors")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Oil Majors")
	assert.Contains(t, body, "min read")
	assert.Contains(t, body, "Capex discipline")
	assert.Contains(t, body, "Refining Spreads")
	assert.Contains(t, body, `id="thesis"`)
	assert.NotContains(t, body, "Preview")
}

func TestPostDetailHandler_DraftHiddenFromPublic(t *testing.T) {
	env := newHandlerTestEnv(t)

	draft := samplePost(7, "Unreleased Note", "unreleased-note", false)
	env.fetch.EXPECT().FetchPostBySlug(gomock.Any(), "unreleased-note").Return(draft, nil)

	rec := env.get("/post/unreleased-note")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "That page does not exist.")
}

func TestPostDetailHandler_DraftVisibleToAdmin(t *testing.T) {
	env := newHandlerTestEnv(t)

	draft := samplePost(7, "Unreleased Note", "unreleased-note", false)
	env.fetch.EXPECT().FetchPostBySlug(gomock.Any(), "unreleased-note").Return(draft, nil)
	env.fetch.EXPECT().FetchRelatedPosts(gomock.Any(), "unreleased-note", 3).Return(nil, nil)

	rec := env.get("/post/unreleased-note", env.sessionCookie(t))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unreleased Note")
}

func TestPostDetailHandler_Missing(t *testing.T) {
	env := newHandlerTestEnv(t)
	env.fetch.EXPECT().FetchPostBySlug(gomock.Any(), "nope").Return(nil, apperrors.ErrPostNotFound)

	rec := env.get("/post/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTeamHandler(t *testing.T) {
	env := newHandlerTestEnv(t)

	rec := env.get("/team")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Alex Morgan")
	assert.Contains(t, body, "Priya Desai")
	assert.Contains(t, body, "Ethan Clarke")
}

func TestContactHandler_Submit(t *testing.T) {
	env := newHandlerTestEnv(t)
	token, csrfCookie := env.csrfPair(t)

	form := url.Values{
		"csrf_token": {token},
		"name":       {"Dana"},
		"email":      {"dana@example.test"},
		"message":    {"Interested in your coverage."},
	}
	rec := env.postForm("/contact", form, csrfCookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thanks for reaching out.")
}

func TestContactHandler_MissingFields(t *testing.T) {
	env := newHandlerTestEnv(t)
	token, csrfCookie := env.csrfPair(t)

	form := url.Values{
		"csrf_token": {token},
		"name":       {"Dana"},
		"email":      {"not-an-email"},
		"message":    {""},
	}
	rec := env.postForm("/contact", form, csrfCookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "All fields are required.")
}

func TestContactHandler_MalformedEmailStillAccepted(t *testing.T) {
	env := newHandlerTestEnv(t)
	token, csrfCookie := env.csrfPair(t)

	form := url.Values{
		"csrf_token": {token},
		"name":       {"Dana"},
		"email":      {"not-an-email"},
		"message":    {"Interested in your coverage."},
	}
	rec := env.postForm("/contact", form, csrfCookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thanks for reaching out.")
	assert.NotContains(t, rec.Body.String(), "All fields are required.")
}

func TestContactHandler_HoneypotRejected(t *testing.T) {
	env := newHandlerTestEnv(t)
	token, csrfCookie := env.csrfPair(t)

	form := url.Values{
		"csrf_token": {token},
		"name":       {"Bot"},
		"email":      {"bot@example.test"},
		"message":    {"buy now"},
		"website":    {"http://spam.example"},
	}
	rec := env.postForm("/contact", form, csrfCookie)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactHandler_RejectsMissingCSRFToken(t *testing.T) {
	env := newHandlerTestEnv(t)

	form := url.Values{
		"name":    {"Dana"},
		"email":   {"dana@example.test"},
		"message": {"hello"},
	}
	rec := env.postForm("/contact", form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package blog_db

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"grandriver/domain"
	apperrors "grandriver/utils/errors"
	"grandriver/utils/logger"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestLogger() {
	var buf bytes.Buffer
	logger.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

var postRowColumns = []string{
	"id", "title", "slug", "excerpt", "content",
	"cover_url", "tags", "published",
	"created_at", "updated_at", "publish_date",
	"meta_title", "meta_description",
	"hero_kicker", "hero_style",
	"highlight_quote", "summary_points",
	"cta_label", "cta_url", "featured",
}

func addPostRow(rows *pgxmock.Rows, id int64, title, slug string, published bool, heroStyle string) *pgxmock.Rows {
	now := time.Now()
	publishDate := now.Add(-24 * time.Hour)
	return rows.AddRow(
		id, title, slug, "excerpt", "<p>content</p>",
		"", "Large-Cap, Tech", published,
		now, now, &publishDate,
		"", "",
		"", heroStyle,
		"", "",
		"", "", false,
	)
}

func TestBlogDBRepository_FetchPostBySlug(t *testing.T) {
	initTestLogger()

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &BlogDBRepository{pool: mock}

		rows := pgxmock.NewRows(postRowColumns)
		addPostRow(rows, 1, "AAPL Deep Dive", "aapl-deep-dive", true, "midnight")

		mock.ExpectQuery("SELECT.*FROM posts.*WHERE slug = \\$1").
			WithArgs("aapl-deep-dive").
			WillReturnRows(rows)

		post, err := repo.FetchPostBySlug(context.Background(), "aapl-deep-dive")

		require.NoError(t, err)
		assert.Equal(t, int64(1), post.ID)
		assert.Equal(t, "AAPL Deep Dive", post.Title)
		assert.Equal(t, domain.HeroStyleMidnight, post.HeroStyle)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found maps to sentinel", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &BlogDBRepository{pool: mock}

		mock.ExpectQuery("SELECT.*FROM posts.*WHERE slug = \\$1").
			WithArgs("missing").
			WillReturnRows(pgxmock.NewRows(postRowColumns))

		post, err := repo.FetchPostBySlug(context.Background(), "missing")

		require.Nil(t, post)
		assert.True(t, apperrors.IsPostNotFound(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown hero style degrades to light", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &BlogDBRepository{pool: mock}

		rows := pgxmock.NewRows(postRowColumns)
		addPostRow(rows, 2, "Legacy Post", "legacy-post", true, "neon")

		mock.ExpectQuery("SELECT.*FROM posts.*WHERE slug = \\$1").
			WithArgs("legacy-post").
			WillReturnRows(rows)

		post, err := repo.FetchPostBySlug(context.Background(), "legacy-post")

		require.NoError(t, err)
		assert.Equal(t, domain.HeroStyleLight, post.HeroStyle)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBlogDBRepository_FetchHomePosts_OrdersFeaturedFirst(t *testing.T) {
	initTestLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}

	rows := pgxmock.NewRows(postRowColumns)
	addPostRow(rows, 1, "Featured Post", "featured-post", true, "light")
	addPostRow(rows, 2, "Regular Post", "regular-post", true, "light")

	mock.ExpectQuery("SELECT.*FROM posts.*WHERE published = TRUE.*ORDER BY featured DESC, COALESCE\\(publish_date, created_at\\) DESC").
		WithArgs(6).
		WillReturnRows(rows)

	posts, err := repo.FetchHomePosts(context.Background(), 6)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Featured Post", posts[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogDBRepository_FetchPublishedPosts_Paginates(t *testing.T) {
	initTestLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}

	rows := pgxmock.NewRows(postRowColumns)
	addPostRow(rows, 11, "Page Two Post", "page-two-post", true, "light")

	mock.ExpectQuery("SELECT.*FROM posts.*WHERE published = TRUE.*LIMIT \\$1 OFFSET \\$2").
		WithArgs(10, 10).
		WillReturnRows(rows)

	posts, err := repo.FetchPublishedPosts(context.Background(), 10, 10)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "page-two-post", posts[0].Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogDBRepository_CountPublishedPosts(t *testing.T) {
	initTestLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM posts WHERE published = TRUE").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountPublishedPosts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogDBRepository_FetchRelatedPosts_ExcludesSlug(t *testing.T) {
	initTestLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}

	rows := pgxmock.NewRows(postRowColumns)
	addPostRow(rows, 3, "Other Post", "other-post", true, "light")

	mock.ExpectQuery("SELECT.*FROM posts.*WHERE published = TRUE AND slug != \\$1").
		WithArgs("current-post", 3).
		WillReturnRows(rows)

	posts, err := repo.FetchRelatedPosts(context.Background(), "current-post", 3)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "other-post", posts[0].Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogDBRepository_NilPool(t *testing.T) {
	var repo *BlogDBRepository

	_, err := repo.FetchPostBySlug(context.Background(), "any")
	assert.Error(t, err)

	_, err = repo.FetchHomePosts(context.Background(), 6)
	assert.Error(t, err)
}

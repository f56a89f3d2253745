package blog_db

import (
	"context"
	"errors"

	"grandriver/domain"
	"grandriver/utils/logger"
)

// FetchHomePosts retrieves the newest published posts with featured
// posts sorted first, for the home page.
func (r *BlogDBRepository) FetchHomePosts(ctx context.Context, limit int) ([]*domain.Post, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE published = TRUE
		ORDER BY featured DESC, COALESCE(publish_date, created_at) DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching home posts", "error", err, "limit", limit)
		return nil, errors.New("error fetching home posts")
	}

	return scanPosts(rows)
}

// FetchPublishedPosts retrieves one page of published posts, newest
// first by display date.
func (r *BlogDBRepository) FetchPublishedPosts(ctx context.Context, limit, offset int) ([]*domain.Post, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE published = TRUE
		ORDER BY COALESCE(publish_date, created_at) DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching published posts", "error", err, "limit", limit, "offset", offset)
		return nil, errors.New("error fetching published posts")
	}

	return scanPosts(rows)
}

// FetchRelatedPosts retrieves published posts other than the given slug,
// newest first, for the "more research" rail on the post page.
func (r *BlogDBRepository) FetchRelatedPosts(ctx context.Context, excludeSlug string, limit int) ([]*domain.Post, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE published = TRUE AND slug != $1
		ORDER BY COALESCE(publish_date, created_at) DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, excludeSlug, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching related posts", "error", err, "exclude_slug", excludeSlug)
		return nil, errors.New("error fetching related posts")
	}

	return scanPosts(rows)
}

// FetchAllPosts retrieves every post regardless of publication state,
// newest first, for the admin dashboard and the CSV backup.
func (r *BlogDBRepository) FetchAllPosts(ctx context.Context) ([]*domain.Post, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT ` + postColumns + `
		FROM posts
		ORDER BY COALESCE(publish_date, created_at) DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching all posts", "error", err)
		return nil, errors.New("error fetching all posts")
	}

	return scanPosts(rows)
}

// CountPublishedPosts returns the number of published posts.
func (r *BlogDBRepository) CountPublishedPosts(ctx context.Context) (int, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}

	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE published = TRUE`).Scan(&count)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error counting published posts", "error", err)
		return 0, errors.New("error counting published posts")
	}
	return count, nil
}

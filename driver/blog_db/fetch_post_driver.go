package blog_db

import (
	"context"
	"errors"

	"grandriver/domain"
	"grandriver/utils/logger"
	apperrors "grandriver/utils/errors"

	"github.com/jackc/pgx/v5"
)

// FetchPostBySlug retrieves a single post by slug, published or not.
// Publication visibility is decided a layer up.
func (r *BlogDBRepository) FetchPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE slug = $1
	`

	post, err := scanPost(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		logger.Logger.ErrorContext(ctx, "error fetching post by slug", "error", err, "slug", slug)
		return nil, errors.New("error fetching post by slug")
	}
	return post, nil
}

// FetchPostByID retrieves a single post by primary key.
func (r *BlogDBRepository) FetchPostByID(ctx context.Context, id int64) (*domain.Post, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE id = $1
	`

	post, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		logger.Logger.ErrorContext(ctx, "error fetching post by id", "error", err, "post_id", id)
		return nil, errors.New("error fetching post by id")
	}
	return post, nil
}

package blog_db

import (
	"context"
	"errors"
	"time"

	"grandriver/domain"
	"grandriver/utils/logger"
)

// InsertPost stores a new post and returns its assigned ID. Optional
// text fields arrive as empty strings and are stored as NULL.
func (r *BlogDBRepository) InsertPost(ctx context.Context, post *domain.Post) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}

	query := `
		INSERT INTO posts (
			title, slug, excerpt, content, cover_url, tags, published,
			created_at, updated_at, publish_date, meta_title, meta_description,
			hero_kicker, hero_style, highlight_quote, summary_points,
			cta_label, cta_url, featured
		) VALUES (
			$1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7,
			$8, $9, $10, NULLIF($11, ''), NULLIF($12, ''),
			NULLIF($13, ''), NULLIF($14, ''), NULLIF($15, ''), NULLIF($16, ''),
			NULLIF($17, ''), NULLIF($18, ''), $19
		)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		post.Title, post.Slug, post.Excerpt, post.Content, post.CoverURL, post.Tags, post.Published,
		post.CreatedAt, post.UpdatedAt, post.PublishDate, post.MetaTitle, post.MetaDescription,
		post.HeroKicker, string(post.HeroStyle), post.HighlightQuote, post.SummaryPoints,
		post.CTALabel, post.CTAURL, post.Featured,
	).Scan(&id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error inserting post", "error", err, "slug", post.Slug)
		return 0, errors.New("error inserting post")
	}

	logger.Logger.InfoContext(ctx, "post inserted", "post_id", id, "slug", post.Slug)
	return id, nil
}

// UpdatePost rewrites an existing post in place.
func (r *BlogDBRepository) UpdatePost(ctx context.Context, post *domain.Post) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	query := `
		UPDATE posts SET
			title = $1, slug = $2, excerpt = $3, content = $4,
			cover_url = NULLIF($5, ''), tags = NULLIF($6, ''), published = $7,
			updated_at = $8, publish_date = $9,
			meta_title = NULLIF($10, ''), meta_description = NULLIF($11, ''),
			hero_kicker = NULLIF($12, ''), hero_style = NULLIF($13, ''),
			highlight_quote = NULLIF($14, ''), summary_points = NULLIF($15, ''),
			cta_label = NULLIF($16, ''), cta_url = NULLIF($17, ''), featured = $18
		WHERE id = $19
	`

	tag, err := r.pool.Exec(ctx, query,
		post.Title, post.Slug, post.Excerpt, post.Content,
		post.CoverURL, post.Tags, post.Published,
		time.Now().UTC(), post.PublishDate,
		post.MetaTitle, post.MetaDescription,
		post.HeroKicker, string(post.HeroStyle),
		post.HighlightQuote, post.SummaryPoints,
		post.CTALabel, post.CTAURL, post.Featured,
		post.ID,
	)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error updating post", "error", err, "post_id", post.ID)
		return errors.New("error updating post")
	}
	if tag.RowsAffected() == 0 {
		return errors.New("post not found for update")
	}

	logger.Logger.InfoContext(ctx, "post updated", "post_id", post.ID, "slug", post.Slug)
	return nil
}

// DeletePost removes a post by ID. Deleting a missing post is not an
// error; the admin flow treats it as already gone.
func (r *BlogDBRepository) DeletePost(ctx context.Context, id int64) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error deleting post", "error", err, "post_id", id)
		return errors.New("error deleting post")
	}

	logger.Logger.InfoContext(ctx, "post deleted", "post_id", id)
	return nil
}

// SlugExists reports whether another post already uses the slug.
// excludeID skips the post being edited; pass 0 for new posts.
func (r *BlogDBRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("database connection not available")
	}

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE slug = $1 AND id != $2)`,
		slug, excludeID,
	).Scan(&exists)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error checking slug", "error", err, "slug", slug)
		return false, errors.New("error checking slug")
	}
	return exists, nil
}

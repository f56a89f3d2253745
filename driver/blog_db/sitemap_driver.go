package blog_db

import (
	"context"
	"errors"

	"grandriver/domain"
	"grandriver/utils/logger"
)

// FetchPublishedSlugs returns slug and updated_at for every published
// post, newest first. Feeds the sitemap and the static exporter.
func (r *BlogDBRepository) FetchPublishedSlugs(ctx context.Context) ([]domain.SitemapEntry, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT slug, updated_at
		FROM posts
		WHERE published = TRUE
		ORDER BY COALESCE(publish_date, created_at) DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching published slugs", "error", err)
		return nil, errors.New("error fetching published slugs")
	}
	defer rows.Close()

	entries := make([]domain.SitemapEntry, 0)
	for rows.Next() {
		var entry domain.SitemapEntry
		if err := rows.Scan(&entry.Slug, &entry.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

package blog_db

import (
	"context"
	"errors"

	"grandriver/domain"
	"grandriver/utils/logger"
)

// FetchPostStats returns the dashboard counters in one round trip.
func (r *BlogDBRepository) FetchPostStats(ctx context.Context) (*domain.PostStats, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT
			COUNT(*) FILTER (WHERE published),
			COUNT(*) FILTER (WHERE NOT published),
			COUNT(*) FILTER (WHERE featured)
		FROM posts
	`

	var stats domain.PostStats
	err := r.pool.QueryRow(ctx, query).Scan(&stats.Published, &stats.Draft, &stats.Featured)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching post stats", "error", err)
		return nil, errors.New("error fetching post stats")
	}
	return &stats, nil
}

// FetchPublishedTagColumns returns the raw tags column of every
// published post. The distinct tag set is assembled a layer up.
func (r *BlogDBRepository) FetchPublishedTagColumns(ctx context.Context) ([]string, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	rows, err := r.pool.Query(ctx, `SELECT COALESCE(tags, '') FROM posts WHERE published = TRUE`)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching tag columns", "error", err)
		return nil, errors.New("error fetching tag columns")
	}
	defer rows.Close()

	columns := make([]string, 0)
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		columns = append(columns, tags)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return columns, nil
}

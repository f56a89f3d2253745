package blog_db

import (
	"context"
	"errors"

	"grandriver/domain"
	"grandriver/utils/logger"

	"github.com/jackc/pgx/v5"
)

// FetchSettings loads the single settings row. Callers supply fallback
// defaults when the row is missing.
func (r *BlogDBRepository) FetchSettings(ctx context.Context) (*domain.Settings, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	var settings domain.Settings
	err := r.pool.QueryRow(ctx,
		`SELECT site_name, site_description, base_url FROM settings WHERE id = 1`,
	).Scan(&settings.SiteName, &settings.SiteDescription, &settings.BaseURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Logger.ErrorContext(ctx, "error fetching settings", "error", err)
		return nil, errors.New("error fetching settings")
	}
	return &settings, nil
}

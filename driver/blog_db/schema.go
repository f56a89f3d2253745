package blog_db

import (
	"context"
	"fmt"

	"grandriver/utils/logger"
)

const createPostsTable = `
CREATE TABLE IF NOT EXISTS posts (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	title TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	excerpt TEXT NOT NULL,
	content TEXT NOT NULL,
	cover_url TEXT,
	tags TEXT,
	published BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	publish_date TIMESTAMPTZ,
	meta_title TEXT,
	meta_description TEXT,
	hero_kicker TEXT,
	hero_style TEXT,
	highlight_quote TEXT,
	summary_points TEXT,
	cta_label TEXT,
	cta_url TEXT,
	featured BOOLEAN NOT NULL DEFAULT FALSE
)`

const createSettingsTable = `
CREATE TABLE IF NOT EXISTS settings (
	id INT PRIMARY KEY CHECK (id = 1),
	site_name TEXT NOT NULL,
	site_description TEXT NOT NULL,
	base_url TEXT NOT NULL
)`

const insertDefaultSettings = `
INSERT INTO settings (id, site_name, site_description, base_url)
VALUES (1, $1, $2, $3)
ON CONFLICT (id) DO NOTHING`

// EnsureSchema creates the posts and settings tables when missing and
// installs the default settings row.
func (r *BlogDBRepository) EnsureSchema(ctx context.Context, siteName, siteDescription, baseURL string) error {
	if _, err := r.pool.Exec(ctx, createPostsTable); err != nil {
		return fmt.Errorf("creating posts table: %w", err)
	}

	if _, err := r.pool.Exec(ctx, createSettingsTable); err != nil {
		return fmt.Errorf("creating settings table: %w", err)
	}

	if _, err := r.pool.Exec(ctx, insertDefaultSettings, siteName, siteDescription, baseURL); err != nil {
		return fmt.Errorf("installing default settings: %w", err)
	}

	logger.Logger.Info("Database schema ensured")
	return nil
}

package domain

import "time"

// Settings is the single-row site identity record.
type Settings struct {
	SiteName        string `json:"site_name" db:"site_name"`
	SiteDescription string `json:"site_description" db:"site_description"`
	BaseURL         string `json:"base_url" db:"base_url"`
}

// PostStats summarizes the dashboard counters.
type PostStats struct {
	Published int `json:"published"`
	Draft     int `json:"draft"`
	Featured  int `json:"featured"`
}

// SitemapEntry pairs a published slug with its last modification time.
type SitemapEntry struct {
	Slug      string    `json:"slug"`
	UpdatedAt time.Time `json:"updated_at"`
}

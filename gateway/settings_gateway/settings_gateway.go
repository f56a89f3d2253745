package settings_gateway

import (
	"context"

	"grandriver/domain"
	"grandriver/driver/blog_db"
)

// SettingsGateway adapts the blog_db repository to the settings port.
type SettingsGateway struct {
	repo *blog_db.BlogDBRepository
}

func NewSettingsGateway(repo *blog_db.BlogDBRepository) *SettingsGateway {
	return &SettingsGateway{repo: repo}
}

func (g *SettingsGateway) FetchSettings(ctx context.Context) (*domain.Settings, error) {
	return g.repo.FetchSettings(ctx)
}

package settings_usecase

import (
	"context"

	"grandriver/config"
	"grandriver/domain"
	"grandriver/port/settings_port"
)

// FetchSettingsUsecase resolves the site identity: the settings row
// when present, the compiled configuration fallbacks otherwise.
type FetchSettingsUsecase struct {
	settingsPort settings_port.FetchSettingsPort
	site         config.SiteConfig
}

func NewFetchSettingsUsecase(settingsPort settings_port.FetchSettingsPort, site config.SiteConfig) *FetchSettingsUsecase {
	return &FetchSettingsUsecase{settingsPort: settingsPort, site: site}
}

func (u *FetchSettingsUsecase) Execute(ctx context.Context) (*domain.Settings, error) {
	settings, err := u.settingsPort.FetchSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &domain.Settings{}
	}
	if settings.SiteName == "" {
		settings.SiteName = u.site.Name
	}
	if settings.SiteDescription == "" {
		settings.SiteDescription = u.site.Description
	}
	if settings.BaseURL == "" {
		settings.BaseURL = u.site.BaseURL
	}
	return settings, nil
}

package settings_port

import (
	"context"

	"grandriver/domain"
)

// FetchSettingsPort reads the single-row site settings. A nil Settings
// with nil error means the row is absent and defaults apply.
type FetchSettingsPort interface {
	FetchSettings(ctx context.Context) (*domain.Settings, error)
}

package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"grandriver/config"
	"grandriver/di"
	"grandriver/domain"
	"grandriver/seo"
	apperrors "grandriver/utils/errors"
	"grandriver/utils/logger"
)

// loadSettings resolves the site identity for rendering. A failing
// settings read degrades to the compiled defaults so public pages stay
// up while the database is misbehaving.
func loadSettings(c echo.Context, container *di.ApplicationComponents, cfg *config.Config) *domain.Settings {
	settings, err := container.FetchSettingsUsecase.Execute(c.Request().Context())
	if err != nil {
		logger.Logger.ErrorContext(c.Request().Context(), "settings unavailable, using defaults", "error", err)
		return &domain.Settings{
			SiteName:        cfg.Site.Name,
			SiteDescription: cfg.Site.Description,
			BaseURL:         cfg.Site.BaseURL,
		}
	}
	return settings
}

// handleError renders the error page with a status derived from the
// error's classification.
func handleError(c echo.Context, container *di.ApplicationComponents, cfg *config.Config, err error, operation string) error {
	status := http.StatusInternalServerError
	message := "Something went wrong on our side."

	var appErr *apperrors.AppError
	switch {
	case apperrors.IsPostNotFound(err):
		status = http.StatusNotFound
		message = "That page does not exist."
	case errors.As(err, &appErr):
		status = appErr.HTTPStatusCode()
		message = appErr.Message
	}

	if status >= 500 {
		apperrors.LogError(logger.Logger, err, operation)
	}

	settings := loadSettings(c, container, cfg)
	meta := seo.BuildMeta(
		http.StatusText(status)+" · "+settings.SiteName,
		settings.SiteDescription,
		settings.BaseURL+c.Request().URL.Path,
		"", "",
	)
	page := errorPage{
		pageContext: newPageContext(c, container, settings, meta, nil),
		Status:      status,
		Message:     message,
	}
	return c.Render(status, "error", page)
}

func renderNotFound(c echo.Context, container *di.ApplicationComponents, cfg *config.Config) error {
	return handleError(c, container, cfg, apperrors.ErrPostNotFound, "renderNotFound")
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"grandriver/utils/flash"
)

const csrfContextKey = "csrf"

// CSRF wraps echo's double-submit token middleware: the token rides a
// cookie and mutating requests must echo it back in the csrf_token
// form field. Rejections flash a retry hint so the re-rendered form
// explains itself.
func CSRF() echo.MiddlewareFunc {
	return echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "form:csrf_token",
		ContextKey:     csrfContextKey,
		CookieName:     "csrf_token",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
		ErrorHandler: func(err error, c echo.Context) error {
			flash.Add(c, "error", "Your session expired. Please try again.")
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid CSRF token")
		},
	})
}

// CSRFToken returns the request's token for embedding in forms.
func CSRFToken(c echo.Context) string {
	token, _ := c.Get(csrfContextKey).(string)
	return token
}

package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"grandriver/usecase/auth_usecase"
	"grandriver/utils/flash"
)

// SessionCookieName holds the signed admin session token.
const SessionCookieName = "admin_session"

// RequireAdmin redirects to the login page when no live admin session
// cookie accompanies the request.
func RequireAdmin(auth *auth_usecase.AuthUsecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !HasAdminSession(c, auth) {
				flash.Add(c, "error", "Please log in to continue.")
				return c.Redirect(http.StatusFound, "/admin/login")
			}
			return next(c)
		}
	}
}

// HasAdminSession reports whether the request carries a valid admin
// session. Public handlers use it to decide draft visibility without
// forcing a login.
func HasAdminSession(c echo.Context, auth *auth_usecase.AuthUsecase) bool {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	return auth.ValidateSession(cookie.Value) == nil
}

// SetSessionCookie stores a freshly issued session token.
func SetSessionCookie(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie logs the admin out.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

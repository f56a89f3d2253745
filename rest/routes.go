package rest

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"grandriver/config"
	"grandriver/di"
	custommiddleware "grandriver/middleware"
	"grandriver/utils/logger"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) error {
	renderer, err := NewRenderer()
	if err != nil {
		return err
	}
	e.Renderer = renderer

	// Request ID first so every later log line carries one.
	e.Use(custommiddleware.RequestIDMiddleware())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))
	e.Use(echomiddleware.BodyLimit("2M"))
	e.Use(custommiddleware.LoggingMiddleware(logger.Logger))
	e.Use(custommiddleware.CSRF())
	e.Use(echomiddleware.GzipWithConfig(echomiddleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
	}))

	e.StaticFS("/static", echo.MustSubFS(StaticFS, "static"))

	// Public pages
	e.GET("/", homeHandler(container, cfg))
	e.GET("/blog", blogIndexHandler(container, cfg))
	e.GET("/post/:slug", postDetailHandler(container, cfg))
	e.GET("/team", teamHandler(container, cfg))
	e.GET("/contact", contactHandler(container, cfg))
	e.POST("/contact", contactHandler(container, cfg))
	e.GET("/admin-unavailable/", adminUnavailableHandler(container, cfg))

	// SEO artifacts
	e.GET("/rss.xml", rssHandler(container, cfg))
	e.GET("/sitemap.xml", sitemapHandler(container, cfg))
	e.GET("/robots.txt", robotsHandler(container, cfg))
	e.GET("/health", healthHandler())

	// Admin console. Login sits outside the session gate.
	e.GET("/admin/login", adminLoginHandler(container, cfg))
	e.POST("/admin/login", adminLoginHandler(container, cfg))
	e.GET("/admin/logout", adminLogoutHandler())

	admin := e.Group("/admin", custommiddleware.RequireAdmin(container.AuthUsecase))
	admin.GET("", adminDashboardHandler(container, cfg))
	admin.GET("/new", adminNewHandler(container, cfg))
	admin.POST("/new", adminNewHandler(container, cfg))
	admin.GET("/edit/:id", adminEditHandler(container, cfg))
	admin.POST("/edit/:id", adminEditHandler(container, cfg))
	admin.POST("/delete/:id", adminDeleteHandler(container, cfg))
	admin.POST("/duplicate/:id", adminDuplicateHandler(container, cfg))
	admin.GET("/preview/:id", adminPreviewHandler(container, cfg))

	return nil
}

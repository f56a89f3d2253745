// Command export renders every public route to a static site directory
// suitable for a CDN deploy. The admin console is replaced by a stub
// page; content changes still require the live server.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"grandriver/config"
	"grandriver/di"
	"grandriver/driver/blog_db"
	"grandriver/rest"
	"grandriver/utils/logger"
)

const renderConcurrency = 8

func main() {
	_ = godotenv.Load()

	log := logger.InitLogger()

	outDir := flag.String("out", "public", "output directory for the exported site")
	flag.Parse()

	if err := run(*outDir); err != nil {
		log.Error("Export failed", "error", err)
		os.Exit(1)
	}
	log.Info("Export complete", "dir", *outDir)
}

func run(outDir string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := context.Background()
	pool, err := blog_db.InitDBPool(ctx, cfg.Database.MaxConnections, cfg.Database.ConnectionTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	container, err := di.NewApplicationComponents(pool, cfg)
	if err != nil {
		return fmt.Errorf("failed to build application components: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	if err := rest.RegisterRoutes(e, container, cfg); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	routes, err := collectRoutes(ctx, container, cfg)
	if err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(renderConcurrency)
	for _, route := range routes {
		group.Go(func() error {
			return renderRoute(groupCtx, e, outDir, route)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	return copyStaticTree(outDir)
}

// exportRoute pairs the URL requested from the handler with the file
// the response body is written to.
type exportRoute struct {
	URL  string
	File string
}

func collectRoutes(ctx context.Context, container *di.ApplicationComponents, cfg *config.Config) ([]exportRoute, error) {
	routes := []exportRoute{
		{URL: "/", File: "index.html"},
		{URL: "/blog", File: "blog/index.html"},
		{URL: "/team", File: "team/index.html"},
		{URL: "/contact", File: "contact/index.html"},
		{URL: "/admin-unavailable/", File: "admin-unavailable/index.html"},
		{URL: "/rss.xml", File: "rss.xml"},
		{URL: "/sitemap.xml", File: "sitemap.xml"},
		{URL: "/robots.txt", File: "robots.txt"},
	}

	index, err := container.FetchBlogIndexUsecase.Execute(ctx, 1, cfg.Blog.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to page the blog index: %w", err)
	}
	for page := 2; page <= index.TotalPages; page++ {
		routes = append(routes, exportRoute{
			URL:  fmt.Sprintf("/blog?page=%d", page),
			File: fmt.Sprintf("blog/page/%d/index.html", page),
		})
	}

	entries, err := container.FetchSitemapUsecase.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}
	for _, entry := range entries {
		routes = append(routes, exportRoute{
			URL:  "/post/" + entry.Slug,
			File: path.Join("post", entry.Slug, "index.html"),
		})
	}

	return routes, nil
}

func renderRoute(ctx context.Context, e *echo.Echo, outDir string, route exportRoute) error {
	req := httptest.NewRequest(http.MethodGet, route.URL, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code >= http.StatusBadRequest {
		return fmt.Errorf("route %s returned %d", route.URL, rec.Code)
	}

	target := filepath.Join(outDir, filepath.FromSlash(route.File))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, rec.Body.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	logger.Logger.Info("Rendered", "url", route.URL, "file", route.File)
	return nil
}

func copyStaticTree(outDir string) error {
	return fs.WalkDir(rest.StaticFS, "static", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(outDir, filepath.FromSlash(name))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(rest.StaticFS, name)
		if err != nil {
			return fmt.Errorf("failed to read embedded %s: %w", name, err)
		}
		return os.WriteFile(target, data, 0o644)
	})
}

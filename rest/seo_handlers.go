package rest

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"grandriver/config"
	"grandriver/di"
)

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	PubDate     string   `xml:"pubDate"`
	Description rssCDATA `xml:"description"`
}

type rssCDATA struct {
	Text string `xml:",cdata"`
}

func rssHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := container.FetchFeedPostsUsecase.Execute(c.Request().Context(), cfg.Blog.FeedLimit)
		if err != nil {
			return handleError(c, container, cfg, err, "rss")
		}

		settings := loadSettings(c, container, cfg)
		feed := rssFeed{
			Version: "2.0",
			Channel: rssChannel{
				Title:       settings.SiteName,
				Link:        settings.BaseURL,
				Description: settings.SiteDescription,
				Items:       make([]rssItem, 0, len(posts)),
			},
		}
		for _, post := range posts {
			link := settings.BaseURL + "/post/" + post.Slug
			feed.Channel.Items = append(feed.Channel.Items, rssItem{
				Title:       post.Title,
				Link:        link,
				GUID:        link,
				PubDate:     post.DisplayDate().UTC().Format(time.RFC1123Z),
				Description: rssCDATA{Text: post.Excerpt},
			})
		}

		body, err := xml.Marshal(feed)
		if err != nil {
			return handleError(c, container, cfg, err, "rss")
		}
		return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8",
			append([]byte(xml.Header), body...))
	}
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// staticSitemapPaths are the fixed public routes listed ahead of the
// per-post entries.
var staticSitemapPaths = []string{"/", "/team", "/contact", "/blog"}

func sitemapHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		entries, err := container.FetchSitemapUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, container, cfg, err, "sitemap")
		}

		settings := loadSettings(c, container, cfg)
		today := time.Now().UTC().Format("2006-01-02")

		urlSet := sitemapURLSet{
			Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
			URLs:  make([]sitemapURL, 0, len(staticSitemapPaths)+len(entries)),
		}
		for _, path := range staticSitemapPaths {
			urlSet.URLs = append(urlSet.URLs, sitemapURL{Loc: settings.BaseURL + path, LastMod: today})
		}
		for _, entry := range entries {
			lastMod := today
			if !entry.UpdatedAt.IsZero() {
				lastMod = entry.UpdatedAt.UTC().Format("2006-01-02")
			}
			urlSet.URLs = append(urlSet.URLs, sitemapURL{
				Loc:     settings.BaseURL + "/post/" + entry.Slug,
				LastMod: lastMod,
			})
		}

		body, err := xml.Marshal(urlSet)
		if err != nil {
			return handleError(c, container, cfg, err, "sitemap")
		}
		return c.Blob(http.StatusOK, "application/xml; charset=utf-8",
			append([]byte(xml.Header), body...))
	}
}

func robotsHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		settings := loadSettings(c, container, cfg)
		body := "User-agent: *\nAllow: /\nSitemap: " + settings.BaseURL + "/sitemap.xml\n"
		return c.String(http.StatusOK, body)
	}
}

func healthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

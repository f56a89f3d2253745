package rest

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"grandriver/config"
	"grandriver/di"
	"grandriver/domain"
	"grandriver/middleware"
	"grandriver/seo"
	"grandriver/usecase/fetch_post_usecase"
	"grandriver/utils/flash"
	"grandriver/utils/logger"
)

var formValidator = validator.New()

// maxBlogPage bounds the ?page= parameter so an absurd value cannot
// overflow the pagination offset arithmetic.
const maxBlogPage = 1_000_000

// contactForm is the public contact submission. Website is a honeypot
// field: real visitors leave it empty.
type contactForm struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required"`
	Message string `form:"message" validate:"required"`
	Website string `form:"website"`
}

func homeHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := container.FetchHomePostsUsecase.Execute(c.Request().Context(), cfg.Blog.HomeLimit)
		if err != nil {
			return handleError(c, container, cfg, err, "home")
		}

		settings := loadSettings(c, container, cfg)
		coverURL := ""
		if len(posts) > 0 {
			coverURL = posts[0].CoverURL
		}
		meta := seo.BuildMeta(
			settings.SiteName+" · Independent Equity Research",
			settings.SiteDescription,
			settings.BaseURL,
			coverURL, "",
		)

		page := homePage{
			pageContext: newPageContext(c, container, settings, meta, []seo.Crumb{{Label: "Home", Path: "/"}}),
			Posts:       posts,
		}
		page.OrgJSON = seo.RenderJSON(seo.Organization(
			settings.BaseURL,
			settings.SiteName,
			settings.SiteDescription,
			settings.BaseURL+"/static/img/logo.svg",
		))
		return c.Render(http.StatusOK, "home", page)
	}
}

func blogIndexHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		pageNum := 1
		if raw := c.QueryParam("page"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				pageNum = min(parsed, maxBlogPage)
			}
		}

		index, err := container.FetchBlogIndexUsecase.Execute(c.Request().Context(), pageNum, cfg.Blog.PageSize)
		if err != nil {
			return handleError(c, container, cfg, err, "blogIndex")
		}

		settings := loadSettings(c, container, cfg)
		canonical := settings.BaseURL + "/blog"
		if index.Page > 1 {
			canonical += "?page=" + strconv.Itoa(index.Page)
		}
		meta := seo.BuildMeta(
			"Blog · "+settings.SiteName,
			"Stock write-ups and sector notes from "+settings.SiteName+".",
			canonical,
			"", "",
		)

		page := blogIndexPage{
			pageContext: newPageContext(c, container, settings, meta, []seo.Crumb{
				{Label: "Home", Path: "/"},
				{Label: "Blog", Path: "/blog"},
			}),
			Posts:      index.Posts,
			Page:       index.Page,
			TotalPages: index.TotalPages,
			AllTags:    index.AllTags,
		}
		if index.Page > 1 {
			page.PrevURL = "/blog?page=" + strconv.Itoa(index.Page-1)
		}
		if index.Page < index.TotalPages {
			page.NextURL = "/blog?page=" + strconv.Itoa(index.Page+1)
		}
		return c.Render(http.StatusOK, "blog_index", page)
	}
}

func postDetailHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		includeDrafts := middleware.HasAdminSession(c, container.AuthUsecase)
		detail, err := container.FetchPostDetailUsecase.Execute(
			c.Request().Context(), c.Param("slug"), includeDrafts, cfg.Blog.RelatedLimit)
		if err != nil {
			return handleError(c, container, cfg, err, "postDetail")
		}

		settings := loadSettings(c, container, cfg)
		return renderPostPage(c, container, settings, detail, false)
	}
}

// renderPostPage is shared by the public post route and the admin
// preview; preview adds the draft banner and a noindex-friendly title.
func renderPostPage(c echo.Context, container *di.ApplicationComponents, settings *domain.Settings, detail *fetch_post_usecase.PostDetail, preview bool) error {
	post := detail.Post
	canonical := settings.BaseURL + "/post/" + post.Slug
	title := post.SEOTitle() + " · " + settings.SiteName
	if preview {
		title = "Preview · " + title
	}
	meta := seo.BuildMeta(
		title,
		post.SEODescription(settings.SiteDescription),
		canonical,
		post.CoverURL,
		"article",
	)

	page := postPage{
		pageContext: newPageContext(c, container, settings, meta, []seo.Crumb{
			{Label: "Home", Path: "/"},
			{Label: "Blog", Path: "/blog"},
			{Label: post.Title, Path: "/post/" + post.Slug},
		}),
		Post:          post,
		ContentHTML:   template.HTML(detail.ContentHTML),
		ReadTime:      detail.ReadTime,
		TOC:           detail.TOC,
		SummaryPoints: detail.SummaryPoints,
		MorePosts:     detail.MorePosts,
		Preview:       preview,
	}
	page.BlogJSON = seo.RenderJSON(seo.BlogPosting(settings.BaseURL, post, settings.SiteName, settings.SiteDescription))
	return c.Render(http.StatusOK, "post", page)
}

func teamHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	members := []TeamMember{
		{
			Name:     "Alex Morgan",
			Title:    "Founder & Lead Analyst",
			Bio:      "Covers U.S. financials with a focus on bank asset sensitivity and fintech disruption.",
			Photo:    "/static/img/team/alex-morgan.svg",
			LinkedIn: "https://www.linkedin.com/",
		},
		{
			Name:     "Priya Desai",
			Title:    "Technology Strategist",
			Bio:      "Analyzes enterprise software and AI monetization frameworks across hyperscalers.",
			Photo:    "/static/img/team/priya-desai.svg",
			LinkedIn: "https://www.linkedin.com/",
		},
		{
			Name:     "Ethan Clarke",
			Title:    "Energy & Industrials Analyst",
			Bio:      "Frames upstream capital allocation and energy transition implications for integrated majors.",
			Photo:    "/static/img/team/ethan-clarke.svg",
			LinkedIn: "https://www.linkedin.com/",
		},
	}

	return func(c echo.Context) error {
		settings := loadSettings(c, container, cfg)
		meta := seo.BuildMeta(
			"Team · "+settings.SiteName,
			"Meet the sector specialists behind our research.",
			settings.BaseURL+"/team",
			"", "",
		)
		page := teamPage{
			pageContext: newPageContext(c, container, settings, meta, []seo.Crumb{
				{Label: "Home", Path: "/"},
				{Label: "Team", Path: "/team"},
			}),
			Members: members,
		}
		return c.Render(http.StatusOK, "team", page)
	}
}

func contactHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		settings := loadSettings(c, container, cfg)
		meta := seo.BuildMeta(
			"Contact · "+settings.SiteName,
			"Connect with the "+settings.SiteName+" team for research access and inquiries.",
			settings.BaseURL+"/contact",
			"", "",
		)

		success := false
		if c.Request().Method == http.MethodPost {
			var form contactForm
			if err := c.Bind(&form); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
			}
			if form.Website != "" {
				// Honeypot tripped, treat as a bot.
				return echo.NewHTTPError(http.StatusBadRequest, "rejected")
			}
			if err := formValidator.Struct(form); err != nil {
				flash.Add(c, "error", "All fields are required.")
			} else {
				logger.Logger.InfoContext(c.Request().Context(), "contact form submitted",
					"name", form.Name, "email", form.Email)
				flash.Add(c, "success", "Thanks for reaching out. We'll be in touch soon.")
				success = true
			}
		}

		page := contactPage{
			pageContext: newPageContext(c, container, settings, meta, []seo.Crumb{
				{Label: "Home", Path: "/"},
				{Label: "Contact", Path: "/contact"},
			}),
			Success: success,
		}
		return c.Render(http.StatusOK, "contact", page)
	}
}

func adminUnavailableHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		settings := loadSettings(c, container, cfg)
		meta := seo.BuildMeta(
			"Admin Offline · "+settings.SiteName,
			"This deployment exposes the public site only.",
			settings.BaseURL+"/admin-unavailable/",
			"", "",
		)
		page := struct{ pageContext }{
			newPageContext(c, container, settings, meta, []seo.Crumb{
				{Label: "Home", Path: "/"},
				{Label: "Admin", Path: "/admin-unavailable/"},
			}),
		}
		return c.Render(http.StatusOK, "admin_unavailable", page)
	}
}

package rest

import (
	"html/template"
	"time"

	"github.com/labstack/echo/v4"

	"grandriver/di"
	"grandriver/domain"
	"grandriver/middleware"
	"grandriver/seo"
	"grandriver/utils/flash"
	html_parser "grandriver/utils/html_parser"
)

// pageContext carries everything the base layout needs: head metadata,
// site identity, flash messages, the CSRF token for forms, and the
// JSON-LD payloads emitted in the footer.
type pageContext struct {
	Meta            seo.Meta
	Settings        *domain.Settings
	CurrentYear     int
	Flashes         []flash.Message
	CSRFToken       string
	IsAdmin         bool
	FontsURL        string
	BreadcrumbsJSON template.JS
	WebsiteJSON     template.JS
	OrgJSON         template.JS
	BlogJSON        template.JS
}

func newPageContext(c echo.Context, container *di.ApplicationComponents, settings *domain.Settings, meta seo.Meta, crumbs []seo.Crumb) pageContext {
	ctx := pageContext{
		Meta:        meta,
		Settings:    settings,
		CurrentYear: time.Now().UTC().Year(),
		Flashes:     flash.Pop(c),
		CSRFToken:   middleware.CSRFToken(c),
		IsAdmin:     middleware.HasAdminSession(c, container.AuthUsecase),
		FontsURL:    container.Assets.FontsCSSURL(),
		WebsiteJSON: seo.RenderJSON(seo.WebsiteSearch(settings.BaseURL)),
	}
	if len(crumbs) > 0 {
		ctx.BreadcrumbsJSON = seo.RenderJSON(seo.Breadcrumbs(settings.BaseURL, crumbs))
	}
	return ctx
}

type homePage struct {
	pageContext
	Posts []*domain.Post
}

type blogIndexPage struct {
	pageContext
	Posts      []*domain.Post
	Page       int
	TotalPages int
	AllTags    []string
	PrevURL    string
	NextURL    string
}

type postPage struct {
	pageContext
	Post          *domain.Post
	ContentHTML   template.HTML
	ReadTime      int
	TOC           []html_parser.Heading
	SummaryPoints []string
	MorePosts     []*domain.Post
	Preview       bool
}

// TeamMember is a static profile shown on the team page.
type TeamMember struct {
	Name     string
	Title    string
	Bio      string
	Photo    string
	LinkedIn string
}

type teamPage struct {
	pageContext
	Members []TeamMember
}

type contactPage struct {
	pageContext
	Success bool
}

type adminLoginPage struct {
	pageContext
	UsingDefaultPassword bool
}

type adminDashboardPage struct {
	pageContext
	Posts []*domain.Post
	Stats *domain.PostStats
}

type adminEditPage struct {
	pageContext
	Post            *domain.Post
	Mode            string
	EditorScriptURL string
}

type errorPage struct {
	pageContext
	Status  int
	Message string
}

package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"grandriver/config"
	"grandriver/di"
	"grandriver/middleware"
	"grandriver/seo"
	"grandriver/usecase/save_post_usecase"
	apperrors "grandriver/utils/errors"
	"grandriver/utils/flash"
)

// postForm mirrors the editor fields. Validation beyond presence lives
// in the save usecase so the rules hold for any caller.
type postForm struct {
	Title           string `form:"title"`
	Slug            string `form:"slug"`
	Excerpt         string `form:"excerpt"`
	Content         string `form:"content"`
	CoverURL        string `form:"cover_url"`
	Tags            string `form:"tags"`
	PublishDate     string `form:"publish_date"`
	Action          string `form:"action"`
	MetaTitle       string `form:"meta_title"`
	MetaDescription string `form:"meta_description"`
	HeroKicker      string `form:"hero_kicker"`
	HeroStyle       string `form:"hero_style"`
	HighlightQuote  string `form:"highlight_quote"`
	SummaryPoints   string `form:"summary_points"`
	CTALabel        string `form:"cta_label"`
	CTAURL          string `form:"cta_url"`
	Featured        string `form:"featured"`
}

func (f *postForm) toInput(id int64) save_post_usecase.SavePostInput {
	return save_post_usecase.SavePostInput{
		ID:               id,
		Title:            f.Title,
		SlugInput:        f.Slug,
		Excerpt:          f.Excerpt,
		Content:          f.Content,
		CoverURL:         f.CoverURL,
		Tags:             f.Tags,
		PublishDateInput: f.PublishDate,
		Action:           save_post_usecase.ParseSaveAction(f.Action),
		MetaTitle:        f.MetaTitle,
		MetaDescription:  f.MetaDescription,
		HeroKicker:       f.HeroKicker,
		HeroStyle:        f.HeroStyle,
		HighlightQuote:   f.HighlightQuote,
		SummaryPoints:    f.SummaryPoints,
		CTALabel:         f.CTALabel,
		CTAURL:           f.CTAURL,
		Featured:         f.Featured != "",
	}
}

func adminLoginHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		if middleware.HasAdminSession(c, container.AuthUsecase) {
			return c.Redirect(http.StatusFound, "/admin")
		}

		if c.Request().Method == http.MethodPost {
			token, expires, err := container.AuthUsecase.Login(c.FormValue("password"))
			if err == nil {
				middleware.SetSessionCookie(c, token, expires)
				flash.Add(c, "success", "Welcome back.")
				return c.Redirect(http.StatusFound, "/admin")
			}
			if appErr, ok := err.(*apperrors.AppError); ok && appErr.Code == apperrors.ErrCodeRateLimit {
				flash.Add(c, "error", appErr.Message)
			} else {
				flash.Add(c, "error", "Invalid credentials.")
			}
		}

		settings := loadSettings(c, container, cfg)
		meta := seo.BuildMeta(
			"Admin Login",
			"Secure login for "+settings.SiteName+".",
			settings.BaseURL+"/admin/login",
			"", "",
		)
		page := adminLoginPage{
			pageContext:          newPageContext(c, container, settings, meta, nil),
			UsingDefaultPassword: container.AuthUsecase.UsedDefaultPassword(),
		}
		return c.Render(http.StatusOK, "admin_login", page)
	}
}

func adminLogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		middleware.ClearSessionCookie(c)
		flash.Add(c, "success", "You have been logged out.")
		return c.Redirect(http.StatusFound, "/admin/login")
	}
}

func adminDashboardHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		dashboard, err := container.FetchAdminDashboardUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, container, cfg, err, "adminDashboard")
		}

		settings := loadSettings(c, container, cfg)
		meta := seo.BuildMeta("Admin Dashboard", "Manage research posts.", settings.BaseURL+"/admin", "", "")
		page := adminDashboardPage{
			pageContext: newPageContext(c, container, settings, meta, nil),
			Posts:       dashboard.Posts,
			Stats:       dashboard.Stats,
		}
		return c.Render(http.StatusOK, "admin_dashboard", page)
	}
}

func adminNewHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method == http.MethodPost {
			return handlePostSave(c, container, cfg, 0)
		}

		settings := loadSettings(c, container, cfg)
		meta := seo.BuildMeta("New Post", "Create a research post.", settings.BaseURL+"/admin/new", "", "")
		page := adminEditPage{
			pageContext:     newPageContext(c, container, settings, meta, nil),
			Post:            nil,
			Mode:            "new",
			EditorScriptURL: container.Assets.EditorScriptURL(),
		}
		return c.Render(http.StatusOK, "admin_edit", page)
	}
}

func adminEditHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return renderNotFound(c, container, cfg)
		}

		if c.Request().Method == http.MethodPost {
			return handlePostSave(c, container, cfg, id)
		}

		detail, err := container.FetchPostDetailUsecase.ExecuteByID(c.Request().Context(), id, 0)
		if err != nil {
			return handleError(c, container, cfg, err, "adminEdit")
		}

		settings := loadSettings(c, container, cfg)
		meta := seo.BuildMeta(
			"Edit "+detail.Post.Title,
			"Edit research post.",
			settings.BaseURL+"/admin/edit/"+strconv.FormatInt(id, 10),
			"", "",
		)
		page := adminEditPage{
			pageContext:     newPageContext(c, container, settings, meta, nil),
			Post:            detail.Post,
			Mode:            "edit",
			EditorScriptURL: container.Assets.EditorScriptURL(),
		}
		return c.Render(http.StatusOK, "admin_edit", page)
	}
}

// handlePostSave runs the shared create/edit flow: validate through the
// usecase, flash the outcome, and redirect to the editor or preview.
func handlePostSave(c echo.Context, container *di.ApplicationComponents, cfg *config.Config, id int64) error {
	var form postForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}

	post, err := container.SavePostUsecase.Execute(c.Request().Context(), form.toInput(id))
	if err != nil {
		returnTo := "/admin/new"
		if id != 0 {
			returnTo = "/admin/edit/" + strconv.FormatInt(id, 10)
		}
		switch {
		case apperrors.IsSlugTaken(err):
			flash.Add(c, "error", "Slug already in use.")
		default:
			var appErr *apperrors.AppError
			if ok := errors.As(err, &appErr); ok && appErr.Code == apperrors.ErrCodeValidation {
				flash.Add(c, "error", appErr.Message)
			} else {
				return handleError(c, container, cfg, err, "savePost")
			}
		}
		return c.Redirect(http.StatusFound, returnTo)
	}

	container.BackupPostsUsecase.Execute(c.Request().Context())

	if id == 0 {
		flash.Add(c, "success", "Post created.")
	} else {
		flash.Add(c, "success", "Post updated.")
	}
	if save_post_usecase.ParseSaveAction(form.Action) == save_post_usecase.ActionPreview {
		return c.Redirect(http.StatusFound, "/admin/preview/"+strconv.FormatInt(post.ID, 10))
	}
	return c.Redirect(http.StatusFound, "/admin/edit/"+strconv.FormatInt(post.ID, 10))
}

func adminDeleteHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return renderNotFound(c, container, cfg)
		}

		if err := container.DeletePostUsecase.Execute(c.Request().Context(), id); err != nil {
			return handleError(c, container, cfg, err, "adminDelete")
		}
		container.BackupPostsUsecase.Execute(c.Request().Context())

		flash.Add(c, "success", "Post deleted.")
		return c.Redirect(http.StatusFound, "/admin")
	}
}

func adminDuplicateHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return renderNotFound(c, container, cfg)
		}

		clone, err := container.DuplicatePostUsecase.Execute(c.Request().Context(), id)
		if err != nil {
			return handleError(c, container, cfg, err, "adminDuplicate")
		}
		container.BackupPostsUsecase.Execute(c.Request().Context())

		flash.Add(c, "success", "Draft copied.")
		return c.Redirect(http.StatusFound, "/admin/edit/"+strconv.FormatInt(clone.ID, 10))
	}
}

func adminPreviewHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return renderNotFound(c, container, cfg)
		}

		detail, err := container.FetchPostDetailUsecase.ExecuteByID(c.Request().Context(), id, cfg.Blog.RelatedLimit)
		if err != nil {
			return handleError(c, container, cfg, err, "adminPreview")
		}

		settings := loadSettings(c, container, cfg)
		return renderPostPage(c, container, settings, detail, true)
	}
}

package rest

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

// pageNames are the templates rendered inside the shared layout.
var pageNames = []string{
	"home",
	"blog_index",
	"post",
	"team",
	"contact",
	"admin_login",
	"admin_dashboard",
	"admin_edit",
	"admin_unavailable",
	"error",
}

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
	"until": func(n int) []int {
		pages := make([]int, n)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	},
}

// Renderer implements echo.Renderer over the embedded template set.
// Every page template is parsed together with the base layout so the
// layout's blocks resolve per page.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("base.html").Funcs(templateFuncs).ParseFS(
			TemplateFS,
			"templates/base.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "base.html", data)
}

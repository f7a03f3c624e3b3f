// Package web renders the public About Us page and the admin pages from
// embedded html/template files.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"kedai/internal/display"
	"kedai/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageAbout      = "about.html"
	PageAdminAbout = "admin_about.html"
	PageAdminLogin = "admin_login.html"
)

// AboutPageData feeds the public page.
type AboutPageData struct {
	Title string
	View  display.View
}

type SlotField struct {
	Name  string
	Label string
	Src   string
}

type GalleryField struct {
	Category string
	Title    string
	Items    []GalleryItemField
}

type GalleryItemField struct {
	Ref   string
	Index int
	Src   string
}

// AdminAboutData feeds the admin edit form.
type AdminAboutData struct {
	Title     string
	Record    *models.AboutUs
	Slots     []SlotField
	Galleries []GalleryField
	Message   string
	Error     string
}

type AdminLoginData struct {
	Title string
	Email string
	Error string
}

type TemplateEngine struct {
	templates map[string]*template.Template
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"imgsrc": imageSrc,
	}
}

// imageSrc lets inline images and http(s) URLs through html/template's URL
// filter; anything else renders empty.
func imageSrc(s string) template.URL {
	switch {
	case strings.HasPrefix(s, "data:image/"),
		strings.HasPrefix(s, "https://"),
		strings.HasPrefix(s, "http://"):
		return template.URL(s)
	}
	return ""
}

func NewTemplateEngine() (*TemplateEngine, error) {
	funcs := templateFuncs()
	engine := &TemplateEngine{templates: make(map[string]*template.Template)}
	for _, page := range []string{PageAbout, PageAdminAbout, PageAdminLogin} {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		engine.templates[page] = t
	}
	return engine, nil
}

// Render writes the page wrapped in the layout and sets the HTML content type.
func (e *TemplateEngine) Render(w http.ResponseWriter, name string, data any) error {
	t, ok := e.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, "layout.html", data)
}

func (e *TemplateEngine) RenderTo(w io.Writer, name string, data any) error {
	t, ok := e.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// Package render turns the site document into HTML pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// SitePage is the data for the public site.
type SitePage struct {
	Config       domain.SiteConfig
	Nav          []domain.NavLink
	Contact      domain.ContactMessage
	ContactSent  bool
	ContactError string
	Year         int
}

type LoginPage struct {
	Username string
	Error    string
}

type EditorPage struct {
	Config   domain.SiteConfig
	Section  view.Section
	Sections []view.Section
}

// Renderer holds the parsed page templates.
type Renderer struct {
	site   *template.Template
	login  *template.Template
	editor *template.Template
}

func New() (*Renderer, error) {
	md := NewMarkdown()
	funcs := template.FuncMap{
		"markdown": md.HTML,
		"title":    titleCase,
	}

	parse := func(name string) (*template.Template, error) {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return t, nil
	}

	r := &Renderer{}
	var err error
	if r.site, err = parse("site.html"); err != nil {
		return nil, err
	}
	if r.login, err = parse("login.html"); err != nil {
		return nil, err
	}
	if r.editor, err = parse("editor.html"); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) Site(w http.ResponseWriter, status int, p SitePage) error {
	if p.Nav == nil {
		p.Nav = domain.NavLinks()
	}
	return execute(w, status, r.site, p)
}

func (r *Renderer) Login(w http.ResponseWriter, status int, p LoginPage) error {
	return execute(w, status, r.login, p)
}

func (r *Renderer) Editor(w http.ResponseWriter, status int, p EditorPage) error {
	if p.Sections == nil {
		p.Sections = view.Sections
	}
	return execute(w, status, r.editor, p)
}

// execute renders into a buffer first so a template error never leaves a
// half-written page behind a 200.
func execute(w http.ResponseWriter, status int, t *template.Template, data any) error {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", t.Name(), err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	// A failed write means the client went away; nothing left to report to it.
	_, _ = buf.WriteTo(w)
	return nil
}

// titleCase upper-cases the first letter of a section or field name.
func titleCase(v any) string {
	s := fmt.Sprint(v)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Package view renders the HTML pages of the blog from embedded templates.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/MKhiriev/go-blog/models"
)

// Page names accepted by [Renderer.Render].
const (
	PageIndex  = "index"
	PageLogin  = "login"
	PageSignup = "signup"
	PagePost   = "post"
	PageError  = "error"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = []string{PageIndex, PageLogin, PageSignup, PagePost, PageError}

// Page is the data passed to every template.
type Page struct {
	Title string

	// User is the authenticated user, nil for anonymous requests.
	User *models.User

	Posts []models.Post
	Post  models.Post

	// Form echoes submitted values back into a re-rendered form.
	Form map[string]string

	Errors models.ValidationErrors

	Status  int
	Message string
}

// Renderer executes the page templates.
type Renderer struct {
	templates map[string]*template.Template
	markdown  goldmark.Markdown
}

// New parses every page together with the shared layout.
func New() (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template, len(pages)),
		markdown:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}

	funcs := template.FuncMap{
		"markdown":    r.renderMarkdown,
		"date":        formatDate,
		"fieldErrors": fieldErrors,
	}

	for _, name := range pages {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParsingTemplate, name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Render executes page into a buffer and, only if that succeeds, writes it
// with status.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExecutingTemplate, page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// renderMarkdown converts post content to HTML. Raw HTML in the source is
// dropped by the default goldmark renderer.
func (r *Renderer) renderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("Jan 2, 2006 15:04")
}

func fieldErrors(errs models.ValidationErrors, field string) []string {
	return errs.ForField(field)
}

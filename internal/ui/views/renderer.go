package views

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders page view models with the embedded HTML templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderPage writes the tabbed page for the given view model.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", page)
}

package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/vinhyan/midland-library/internal/models"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var pageNames = []string{"home", "login", "profile", "error", "logout"}

// Page carries the session identity every view needs for the navbar.
type Page struct {
	IsLoggedIn bool
	Username   string
}

type HomeData struct {
	Page
	Books []models.Book
}

type ProfileData struct {
	Page
	Books []models.Book
}

type ErrorData struct {
	Page
	Message string
	Success bool
}

// Renderer executes a named page inside the primary layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tpl, err := template.ParseFS(templateFS,
			"templates/primary.gohtml",
			"templates/"+name+".gohtml",
		)
		if err != nil {
			return nil, fmt.Errorf("parsing view %q: %w", name, err)
		}
		pages[name] = tpl
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}
	return tpl.ExecuteTemplate(w, "primary", data)
}

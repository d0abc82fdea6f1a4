// Package render renders portfolios with embedded html templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/m-zajac/portfoliogen/internal/app"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Catalog lists all built in templates.
var Catalog = []app.TemplateInfo{
	{Name: "Modern", File: "modern.html", Description: "Modern glassmorphism design with gradient background"},
	{Name: "Creative", File: "creative.html", Description: "Creative design with animations and unique layouts"},
	{Name: "Minimal", File: "minimal.html", Description: "Clean minimal design focused on content"},
}

var funcs = template.FuncMap{
	"initials": initials,
	"year": func(p app.Portfolio) int {
		return p.GeneratedAt.Year()
	},
}

// Renderer renders portfolio pages.
type Renderer struct {
	templates map[string]*template.Template
}

var _ app.Renderer = &Renderer{}

// New parses all catalog templates.
func New() (*Renderer, error) {
	r := Renderer{
		templates: make(map[string]*template.Template, len(Catalog)),
	}
	for _, info := range Catalog {
		t, err := template.New(info.File).
			Funcs(funcs).
			ParseFS(templatesFS, "templates/partials.html", "templates/"+info.File)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", info.Name, err)
		}
		r.templates[info.Name] = t
	}

	return &r, nil
}

// Templates returns templates catalog.
func (r *Renderer) Templates() []app.TemplateInfo {
	infos := make([]app.TemplateInfo, len(Catalog))
	copy(infos, Catalog)
	return infos
}

// Render executes named template with portfolio data.
func (r *Renderer) Render(name string, p app.Portfolio) ([]byte, error) {
	t, ok := r.templates[name]
	if !ok {
		return nil, app.NotFoundError(fmt.Sprintf("template %s not found", name))
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

func initials(name string) string {
	var letters []rune
	for _, part := range strings.Fields(name) {
		letters = append(letters, []rune(part)[0])
		if len(letters) == 2 {
			break
		}
	}

	return strings.ToUpper(string(letters))
}

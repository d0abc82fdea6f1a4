package http

import (
	"context"
	"net/http"
	"time"

	"github.com/m-zajac/portfoliogen/internal/app"
	"github.com/sirupsen/logrus"
)

// Service generates portfolios.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/portfoliogen/internal/api/http Service
type Service interface {
	Generate(ctx context.Context, req app.PortfolioRequest) (*app.GeneratedPortfolio, error)
	Preview(ctx context.Context, req app.PortfolioRequest) ([]byte, error)
	LatestPage(ctx context.Context) ([]byte, error)
	Templates() []app.TemplateInfo
	Template(name string) (app.TemplateInfo, error)
}

// Exporters convert the latest page for downloads. Nil converter disables its download.
type Exporters struct {
	Markdown Converter
	PDF      Converter
}

// NewMux creates router for app's http server
func NewMux(
	service Service,
	sessions *Sessions,
	validator *PayloadValidator,
	exporters Exporters,
	timeout time.Duration,
	l logrus.FieldLogger,
) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	generate := timeoutMiddleware(NewGenerateHandler(service, validator, nil, l))
	generateWithSession := timeoutMiddleware(NewGenerateHandler(service, validator, sessions.Template, l))
	templates := NewTemplatesHandler(service, nil)
	sessionTemplates := NewTemplatesHandler(service, sessions)

	m := http.NewServeMux()
	m.HandleFunc("GET /{$}", NewInfoHandler(service))
	m.HandleFunc("POST /{$}", generate)
	m.HandleFunc("POST /generate", generate)
	m.HandleFunc("POST /generate-portfolio", generateWithSession)
	m.HandleFunc("POST /preview", timeoutMiddleware(NewPreviewHandler(service, validator, l)))

	m.HandleFunc("GET /templates", templates)
	m.HandleFunc("GET /api/templates", templates)
	m.HandleFunc("GET /api/template/{name}", NewTemplateHandler(
		func(r *http.Request) string {
			return r.PathValue("name")
		},
		service,
		l,
	))
	m.HandleFunc("GET /template", sessionTemplates)
	m.HandleFunc("POST /template", NewTemplateSelectionHandler(service, sessions, generate, l))
	m.HandleFunc("GET /portfolio-templates", sessionTemplates)
	m.HandleFunc("POST /portfolio-templates", NewTemplateSelectionHandler(service, sessions, nil, l))

	m.HandleFunc("GET /download-html", timeoutMiddleware(
		NewDownloadHandler(service, "portfolio.html", "text/html; charset=utf-8", nil, l),
	))
	if exporters.Markdown != nil {
		m.HandleFunc("GET /download-md", timeoutMiddleware(
			NewDownloadHandler(service, "portfolio.md", "text/markdown; charset=utf-8", exporters.Markdown, l),
		))
	}
	if exporters.PDF != nil {
		m.HandleFunc("GET /download-pdf", timeoutMiddleware(
			NewDownloadHandler(service, "portfolio.pdf", "application/pdf", exporters.PDF, l),
		))
	}

	return m
}

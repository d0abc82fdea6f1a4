package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/portfoliogen/internal/app"
	"github.com/sirupsen/logrus"
)

const maxBodySize = 1 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Converter converts generated html page to another format.
type Converter func(ctx context.Context, html []byte) ([]byte, error)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type templatesResponse struct {
	Success          bool           `json:"success"`
	Templates        []templateInfo `json:"templates"`
	SelectedTemplate *string        `json:"selected_template,omitempty"`
}

type templateResponse struct {
	Success  bool         `json:"success"`
	Template templateInfo `json:"template"`
}

type templateInfo struct {
	Name        string `json:"name"`
	File        string `json:"file"`
	Description string `json:"description"`
}

type selectionResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	SelectedTemplate string `json:"selected_template"`
}

type generateResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TemplateUsed  string `json:"template_used"`
	ProjectsCount int    `json:"projects_count"`
	DownloadURL   string `json:"download_url"`
}

type previewRequest struct {
	TemplateName string              `json:"templateName"`
	Data         jsoniter.RawMessage `json:"data"`
}

type previewResponse struct {
	Success     bool   `json:"success"`
	HTMLContent string `json:"html_content"`
}

type infoResponse struct {
	Message            string            `json:"message"`
	AvailableTemplates []templateInfo    `json:"available_templates"`
	Endpoints          map[string]string `json:"endpoints"`
}

func newTemplateInfos(ts []app.TemplateInfo) []templateInfo {
	infos := make([]templateInfo, 0, len(ts))
	for _, t := range ts {
		infos = append(infos, templateInfo(t))
	}

	return infos
}

// NewInfoHandler creates handlerfunc describing the api.
func NewInfoHandler(service Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, infoResponse{
			Message:            "Portfolio generator API",
			AvailableTemplates: newTemplateInfos(service.Templates()),
			Endpoints: map[string]string{
				"GET /templates":                "Get available templates",
				"GET /api/templates":            "Template API - Get available templates",
				"GET /api/template/{name}":      "Template API - Get specific template",
				"POST /template":                "Select template for session or generate portfolio",
				"POST /":                        "Generate portfolio with template and data",
				"POST /generate":                "Generate portfolio with template and data",
				"POST /generate-portfolio":      "Generate portfolio with template selected in session",
				"POST /preview":                 "Preview portfolio without saving",
				"GET /download-html":            "Download generated portfolio as html",
				"GET /download-md":              "Download generated portfolio as markdown",
				"GET /download-pdf":             "Download generated portfolio as pdf",
				"GET|POST /portfolio-templates": "Get templates or select template for session",
			},
		})
	}
}

// NewTemplatesHandler creates handlerfunc returning templates catalog.
// If sessions is not nil, session's selected template is returned too.
func NewTemplatesHandler(service Service, sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := templatesResponse{
			Success:   true,
			Templates: newTemplateInfos(service.Templates()),
		}
		if sessions != nil {
			selected := sessions.Template(r)
			resp.SelectedTemplate = &selected
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewTemplateHandler creates handlerfunc returning single template's details.
func NewTemplateHandler(getName func(*http.Request) string, service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := service.Template(getName(r))
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, templateResponse{
			Success:  true,
			Template: templateInfo(t),
		})
	}
}

// NewTemplateSelectionHandler creates handlerfunc storing template selection in session.
//
// If generate is not nil and request carries more than template name, the request is
// passed to generate instead.
func NewTemplateSelectionHandler(
	service Service,
	sessions *Sessions,
	generate http.HandlerFunc,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(r)
		if err != nil {
			writeError(w, err, l)
			return
		}

		var fields map[string]jsoniter.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			writeError(w, app.InvalidRequestError("invalid json: "+err.Error()), l)
			return
		}
		if _, ok := fields["templateName"]; generate != nil && (!ok || len(fields) > 1) {
			r.Body = io.NopCloser(bytes.NewReader(body))
			generate(w, r)
			return
		}

		var req struct {
			TemplateName string `json:"templateName"`
		}
		if err := json.Unmarshal(body, &req); err != nil || req.TemplateName == "" {
			writeError(w, app.InvalidRequestError("templateName is required"), l)
			return
		}
		if _, err := service.Template(req.TemplateName); err != nil {
			writeError(w, app.InvalidRequestError(err.Error()), l)
			return
		}

		sessions.SetTemplate(w, r, req.TemplateName)
		writeJSON(w, http.StatusOK, selectionResponse{
			Success:          true,
			Message:          fmt.Sprintf("Template %s selected", req.TemplateName),
			SelectedTemplate: req.TemplateName,
		})
	}
}

// NewGenerateHandler creates handlerfunc generating portfolio from request body.
// If sessionTemplate is not nil, template selected in session is used instead of the one from body.
func NewGenerateHandler(
	service Service,
	validator *PayloadValidator,
	sessionTemplate func(*http.Request) string,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodePortfolioRequest(r, validator)
		if err != nil {
			writeError(w, err, l)
			return
		}
		if sessionTemplate != nil {
			req.TemplateName = sessionTemplate(r)
		}

		generated, err := service.Generate(r.Context(), req)
		if err != nil {
			writeError(w, err, l)
			return
		}

		l.Infof("generated portfolio of %s with template %s", generated.Portfolio.Name, generated.Portfolio.Template)
		writeJSON(w, http.StatusOK, generateResponse{
			Success:       true,
			Message:       "Portfolio generated successfully",
			TemplateUsed:  generated.Portfolio.Template,
			ProjectsCount: len(generated.Portfolio.Projects),
			DownloadURL:   "/download-html",
		})
	}
}

// NewPreviewHandler creates handlerfunc rendering portfolio without saving it.
func NewPreviewHandler(service Service, validator *PayloadValidator, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(r)
		if err != nil {
			writeError(w, err, l)
			return
		}

		var preq previewRequest
		if err := json.Unmarshal(body, &preq); err != nil {
			writeError(w, app.InvalidRequestError("invalid json: "+err.Error()), l)
			return
		}
		if preq.TemplateName == "" || len(preq.Data) == 0 || string(preq.Data) == "null" {
			writeError(w, app.InvalidRequestError("template name and data are required"), l)
			return
		}

		req, err := decodePortfolioData(preq.Data, validator)
		if err != nil {
			writeError(w, err, l)
			return
		}
		req.TemplateName = preq.TemplateName

		html, err := service.Preview(r.Context(), req)
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, http.StatusOK, previewResponse{
			Success:     true,
			HTMLContent: string(html),
		})
	}
}

// NewDownloadHandler creates handlerfunc serving the latest generated page as attachment.
// Nil convert serves html as is.
func NewDownloadHandler(
	service Service,
	filename string,
	contentType string,
	convert Converter,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := service.LatestPage(r.Context())
		if err != nil {
			writeError(w, err, l)
			return
		}
		if convert != nil {
			if data, err = convert(r.Context(), data); err != nil {
				writeError(w, fmt.Errorf("converting %s: %w", filename, err), l)
				return
			}
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func decodePortfolioRequest(r *http.Request, validator *PayloadValidator) (app.PortfolioRequest, error) {
	body, err := readBody(r)
	if err != nil {
		return app.PortfolioRequest{}, err
	}

	return decodePortfolioData(body, validator)
}

func decodePortfolioData(data []byte, validator *PayloadValidator) (app.PortfolioRequest, error) {
	var req app.PortfolioRequest
	if err := validator.Validate(data); err != nil {
		return req, app.InvalidRequestError(err.Error())
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, app.InvalidRequestError("invalid portfolio data: " + err.Error())
	}

	return req, nil
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	if len(body) == 0 {
		return nil, app.InvalidRequestError("no json data provided")
	}
	if len(body) > maxBodySize {
		return nil, app.InvalidRequestError("request body too large")
	}

	return body, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error, l logrus.FieldLogger) {
	switch {
	case app.IsInvalidRequestError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case app.IsNotFoundError(err):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		l.Errorf("handling request: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTemplate is used when request doesn't name any template.
const DefaultTemplate = "Modern"

const (
	aboutInstruction         = "Rewrite this about section to be more professional and engaging for a portfolio:"
	projectInstruction       = "Improve this project description to be more compelling and professional:"
	experienceInstruction    = "Rewrite this experience as concise, resume-style accomplishments:"
	certificationInstruction = "Rewrite this certification title professionally, keeping it short:"
	skillInstruction         = "Return only the skill name:"
)

// RepositoryRanker returns user's top repositories.
type RepositoryRanker interface {
	FetchTopRepositories(ctx context.Context, handle string, maxCount int) []RepositoryRecord
}

// Renderer renders portfolio with named template.
type Renderer interface {
	Templates() []TemplateInfo
	Render(template string, p Portfolio) ([]byte, error)
}

// PageStore keeps the latest generated page.
// LatestPage returns nil data if nothing was saved yet.
type PageStore interface {
	SavePage(html []byte) error
	LatestPage() ([]byte, error)
}

// Service is main apps entry point. Provides all app functionality.
type Service struct {
	ranker          RepositoryRanker
	enhancer        Enhancer
	renderer        Renderer
	store           PageStore
	maxRepositories int
	l               logrus.FieldLogger
	now             func() time.Time
}

// NewService creates new Service instance.
// maxRepositories limits number of projects taken from user's github profile.
func NewService(
	ranker RepositoryRanker,
	enhancer Enhancer,
	renderer Renderer,
	store PageStore,
	maxRepositories int,
	l logrus.FieldLogger,
) *Service {
	return &Service{
		ranker:          ranker,
		enhancer:        enhancer,
		renderer:        renderer,
		store:           store,
		maxRepositories: maxRepositories,
		l:               l,
		now:             time.Now,
	}
}

// Generate assembles portfolio from request data, enhances its texts, renders it and saves
// the result as the latest page.
//
// When github url is given and request has no projects, projects are taken from user's
// top github repositories. Enhancement and github failures don't fail the call.
func (s *Service) Generate(ctx context.Context, req PortfolioRequest) (*GeneratedPortfolio, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, InvalidRequestError("portfolio data with name is required")
	}
	template, err := s.requestTemplate(req.TemplateName)
	if err != nil {
		return nil, err
	}

	p := s.assemble(req, template)

	if len(p.Projects) == 0 && req.GithubURL != "" {
		if handle, ok := GithubHandle(req.GithubURL); ok {
			for _, rec := range s.ranker.FetchTopRepositories(ctx, handle, s.maxRepositories) {
				p.Projects = append(p.Projects, ProjectFromRecord(rec))
			}
			s.l.Infof("fetched %d github projects of %s", len(p.Projects), handle)
		}
	}

	s.enhance(ctx, &p)

	html, err := s.renderer.Render(template, p)
	if err != nil {
		return nil, fmt.Errorf("rendering portfolio: %w", err)
	}
	if err := s.store.SavePage(html); err != nil {
		return nil, fmt.Errorf("saving portfolio: %w", err)
	}

	return &GeneratedPortfolio{
		Portfolio: p,
		HTML:      html,
	}, nil
}

// Preview renders portfolio as is, without enhancing and saving it.
func (s *Service) Preview(ctx context.Context, req PortfolioRequest) ([]byte, error) {
	if req.TemplateName == "" {
		return nil, InvalidRequestError("template name and data are required")
	}
	template, err := s.requestTemplate(req.TemplateName)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(template, s.assemble(req, template))
	if err != nil {
		return nil, fmt.Errorf("rendering preview: %w", err)
	}

	return html, nil
}

// LatestPage returns the most recently generated page.
func (s *Service) LatestPage(ctx context.Context) ([]byte, error) {
	html, err := s.store.LatestPage()
	if err != nil {
		return nil, fmt.Errorf("reading latest page: %w", err)
	}
	if html == nil {
		return nil, NotFoundError("portfolio not found, please generate a portfolio first")
	}

	return html, nil
}

// Templates returns all available templates.
func (s *Service) Templates() []TemplateInfo {
	return s.renderer.Templates()
}

// Template returns template info by its name.
func (s *Service) Template(name string) (TemplateInfo, error) {
	for _, t := range s.renderer.Templates() {
		if t.Name == name {
			return t, nil
		}
	}

	return TemplateInfo{}, NotFoundError(fmt.Sprintf("template %s not found", name))
}

func (s *Service) requestTemplate(name string) (string, error) {
	if name == "" {
		name = DefaultTemplate
	}
	if _, err := s.Template(name); err != nil {
		names := make([]string, 0)
		for _, t := range s.renderer.Templates() {
			names = append(names, t.Name)
		}
		return "", InvalidRequestError(fmt.Sprintf(
			"template %s not supported, available: %s",
			name,
			strings.Join(names, ", "),
		))
	}

	return name, nil
}

func (s *Service) assemble(req PortfolioRequest, template string) Portfolio {
	p := Portfolio{
		Name:        strings.TrimSpace(req.Name),
		Title:       req.Title,
		About:       req.About,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		GithubURL:   req.GithubURL,
		LinkedinURL: req.LinkedinURL,
		Website:     req.Website,
		Education:   req.EducationLine(),
		Template:    template,
		GeneratedAt: s.now(),
	}

	for _, skill := range req.Skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			p.Skills = append(p.Skills, skill)
		}
	}
	p.Projects = append(p.Projects, req.Projects...)
	p.Experiences = append(p.Experiences, req.AllExperiences()...)
	p.Certifications = append(p.Certifications, req.Certifications...)

	return p
}

// enhance rewrites portfolio texts. Lists are enhanced with one batched call each.
func (s *Service) enhance(ctx context.Context, p *Portfolio) {
	if strings.TrimSpace(p.About) != "" {
		p.About = s.enhancer.Enhance(ctx, aboutInstruction, p.About)
	}

	p.Skills = s.enhanceFields(ctx, skillInstruction, p.Skills)

	descriptions := make([]string, len(p.Projects))
	for i, pr := range p.Projects {
		descriptions[i] = pr.Description
	}
	for i, d := range s.enhanceFields(ctx, projectInstruction, descriptions) {
		p.Projects[i].Description = d
	}

	descriptions = make([]string, len(p.Experiences))
	for i, e := range p.Experiences {
		descriptions[i] = e.Description
	}
	for i, d := range s.enhanceFields(ctx, experienceInstruction, descriptions) {
		p.Experiences[i].Description = d
	}

	names := make([]string, len(p.Certifications))
	for i, c := range p.Certifications {
		names[i] = c.Name
	}
	for i, n := range s.enhanceFields(ctx, certificationInstruction, names) {
		p.Certifications[i].Name = n
	}
}

// enhanceFields batch enhances non blank values. Blank values are kept as they are.
// Returned slice has always the same length as values.
func (s *Service) enhanceFields(ctx context.Context, instruction string, values []string) []string {
	var (
		idx   []int
		items []string
	)
	for i, v := range values {
		if strings.TrimSpace(v) != "" {
			idx = append(idx, i)
			items = append(items, v)
		}
	}
	if len(items) == 0 {
		return values
	}

	enhanced := s.enhancer.EnhanceBatch(ctx, instruction, items)

	result := make([]string, len(values))
	copy(result, values)
	for i, pos := range idx {
		if i < len(enhanced) {
			result[pos] = enhanced[i]
		}
	}

	return result
}

// GithubHandle extracts user handle from github profile url.
// Bare handles are accepted too.
func GithubHandle(profileURL string) (string, bool) {
	s := strings.TrimSpace(profileURL)
	if i := strings.Index(s, "github.com/"); i >= 0 {
		s = s[i+len("github.com/"):]
	} else if strings.ContainsAny(s, ":/. ") {
		return "", false
	}

	s = strings.TrimPrefix(s, "@")
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "", false
	}

	return s, true
}

package app

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// LanguageNotSpecified is reported for repositories without a detected primary language.
const LanguageNotSpecified = "Not specified"

// Repository entity, as returned by the repository listing.
type Repository struct {
	Owner       string
	Name        string
	Description string
	URL         string
	Language    string
	Stars       int
	Forks       int
	Size        int
	Fork        bool
}

// Score returns engagement score used for ranking. Stars weigh twice as much as forks.
func (r Repository) Score() int {
	return r.Stars*2 + r.Forks
}

// RepositoryRecord is a ranked repository enriched with activity counts.
type RepositoryRecord struct {
	Name        string
	Description string
	URL         string
	Language    string
	Commits     int
	Branches    int
	Stars       int
	Forks       int
}

// Project entity.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Language    string `json:"language,omitempty"`
	Commits     int    `json:"commits,omitempty"`
	Branches    int    `json:"branches,omitempty"`
	Stars       int    `json:"stars,omitempty"`
	Forks       int    `json:"forks,omitempty"`
}

// UnmarshalJSON accepts either project object or plain string, which becomes project's description.
func (p *Project) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Project{Description: s}
		return nil
	}

	type project Project
	var v project
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decoding project: %w", err)
	}
	*p = Project(v)

	return nil
}

// ProjectFromRecord converts ranked repository into displayable project.
func ProjectFromRecord(r RepositoryRecord) Project {
	return Project{
		Name:        r.Name,
		Description: r.Description,
		URL:         r.URL,
		Language:    r.Language,
		Commits:     r.Commits,
		Branches:    r.Branches,
		Stars:       r.Stars,
		Forks:       r.Forks,
	}
}

// Experience entity.
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// UnmarshalJSON accepts either experience object or plain string, which becomes experience's description.
func (e *Experience) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*e = Experience{Description: s}
		return nil
	}

	type experience Experience
	var v experience
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decoding experience: %w", err)
	}
	*e = Experience(v)

	return nil
}

// Certification entity.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
	URL    string `json:"url,omitempty"`
}

// UnmarshalJSON accepts either certification object or plain string, which becomes certification's name.
func (c *Certification) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Certification{Name: s}
		return nil
	}

	type certification Certification
	var v certification
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decoding certification: %w", err)
	}
	*c = Certification(v)

	return nil
}

// Skills is a list of skill names.
// Can be decoded from json list or from comma separated string.
type Skills []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Skills) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = SplitSkills(str)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("decoding skills: %w", err)
	}
	*s = list

	return nil
}

// SplitSkills splits comma separated skills, dropping blank entries.
func SplitSkills(s string) Skills {
	var skills Skills
	for _, skill := range strings.Split(s, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}

	return skills
}

// PortfolioRequest holds user submitted portfolio data.
type PortfolioRequest struct {
	TemplateName string `json:"templateName,omitempty"`

	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	About       string `json:"about,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	GithubURL   string `json:"githubUrl,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
	Website     string `json:"website,omitempty"`

	Education     string `json:"education,omitempty"`
	Degree        string `json:"degree,omitempty"`
	CollegeName   string `json:"collegeName,omitempty"`
	YearOfPassing string `json:"yearOfPassing,omitempty"`

	Skills         Skills          `json:"skills,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Experiences    []Experience    `json:"experiences,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}

// EducationLine returns education summary. Structured fields take precedence over free form text.
func (r PortfolioRequest) EducationLine() string {
	if r.Degree == "" && r.CollegeName == "" && r.YearOfPassing == "" {
		return strings.TrimSpace(r.Education)
	}

	return fmt.Sprintf("%s - %s, %s", r.Degree, r.CollegeName, r.YearOfPassing)
}

// AllExperiences returns experiences given under either of accepted keys.
func (r PortfolioRequest) AllExperiences() []Experience {
	if len(r.Experiences) > 0 {
		return r.Experiences
	}

	return r.Experience
}

// Portfolio is the assembled record passed to the renderer.
type Portfolio struct {
	Name        string
	Title       string
	About       string
	Email       string
	Phone       string
	Location    string
	GithubURL   string
	LinkedinURL string
	Website     string
	Education   string

	Skills         []string
	Projects       []Project
	Experiences    []Experience
	Certifications []Certification

	Template    string
	GeneratedAt time.Time
}

// GeneratedPortfolio is a rendered portfolio.
type GeneratedPortfolio struct {
	Portfolio Portfolio
	HTML      []byte
}

// TemplateInfo describes available portfolio template.
type TemplateInfo struct {
	Name        string
	File        string
	Description string
}

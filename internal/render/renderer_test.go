package render

import (
	"testing"
	"time"

	"github.com/m-zajac/portfoliogen/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererRender(t *testing.T) {
	t.Parallel()

	r, err := New()
	require.NoError(t, err)

	p := app.Portfolio{
		Name:      "Jane Doe",
		Title:     "Backend Engineer",
		About:     "I build <reliable> services.",
		Email:     "jane@example.com",
		GithubURL: "https://github.com/jane",
		Education: "BSc - MIT, 2020",
		Skills:    []string{"Go", "PostgreSQL"},
		Projects: []app.Project{
			{Name: "tool", Description: "Handy tool.", URL: "https://github.com/jane/tool", Language: "Go", Commits: 137, Stars: 4},
		},
		Experiences:    []app.Experience{{Title: "Engineer", Company: "Acme", Duration: "2021-2024", Description: "Led a team."}},
		Certifications: []app.Certification{{Name: "CKA", Issuer: "CNCF"}},
		GeneratedAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, info := range r.Templates() {
		t.Run(info.Name, func(t *testing.T) {
			html, err := r.Render(info.Name, p)
			require.NoError(t, err)

			s := string(html)
			assert.Contains(t, s, "<title>Jane Doe")
			assert.Contains(t, s, "Backend Engineer")
			assert.Contains(t, s, "I build &lt;reliable&gt; services.")
			assert.Contains(t, s, `href="mailto:jane@example.com"`)
			assert.Contains(t, s, "BSc - MIT, 2020")
			assert.Contains(t, s, "<li>PostgreSQL</li>")
			assert.Contains(t, s, `<a href="https://github.com/jane/tool">tool</a>`)
			assert.Contains(t, s, "137 commits")
			assert.Contains(t, s, "Led a team.")
			assert.Contains(t, s, "CKA")
			assert.Contains(t, s, "2024 Jane Doe")
		})
	}
}

func TestRendererRenderEmptySections(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	html, err := r.Render("Minimal", app.Portfolio{Name: "Jane"})
	require.NoError(t, err)

	s := string(html)
	assert.NotContains(t, s, `id="projects"`)
	assert.NotContains(t, s, `id="skills"`)
	assert.NotContains(t, s, `id="about"`)
}

func TestRendererUnknownTemplate(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	_, err = r.Render("Retro", app.Portfolio{Name: "Jane"})
	require.Error(t, err)
	assert.True(t, app.IsNotFoundError(err))
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Jane Doe":          "JD",
		"jane":              "J",
		"Jane Mary Doe":     "JM",
		"":                  "",
		"  émile   zola   ": "ÉZ",
	}
	for name, want := range tests {
		assert.Equal(t, want, initials(name), name)
	}
}

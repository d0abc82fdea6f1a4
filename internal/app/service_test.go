package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/portfoliogen/internal/app"
	"github.com/m-zajac/portfoliogen/internal/app/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTemplates = []app.TemplateInfo{
	{Name: "Modern", File: "modern.html", Description: "modern"},
	{Name: "Minimal", File: "minimal.html", Description: "minimal"},
}

type serviceMocks struct {
	ranker   *mock.MockRepositoryRanker
	enhancer *mock.MockEnhancer
	renderer *mock.MockRenderer
	store    *mock.MockPageStore
}

func newTestService(t *testing.T, maxRepositories int) (*app.Service, serviceMocks, func()) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		ranker:   mock.NewMockRepositoryRanker(ctrl),
		enhancer: mock.NewMockEnhancer(ctrl),
		renderer: mock.NewMockRenderer(ctrl),
		store:    mock.NewMockPageStore(ctrl),
	}
	m.renderer.EXPECT().Templates().Return(testTemplates).AnyTimes()

	s := app.NewService(m.ranker, m.enhancer, m.renderer, m.store, maxRepositories, newTestLogger())
	return s, m, ctrl.Finish
}

func TestServiceGenerate(t *testing.T) {
	t.Parallel()

	t.Run("name is required", func(t *testing.T) {
		s, _, finish := newTestService(t, 3)
		defer finish()

		_, err := s.Generate(context.Background(), app.PortfolioRequest{Name: "  "})
		require.Error(t, err)
		assert.True(t, app.IsInvalidRequestError(err))
	})

	t.Run("unknown template", func(t *testing.T) {
		s, _, finish := newTestService(t, 3)
		defer finish()

		_, err := s.Generate(context.Background(), app.PortfolioRequest{Name: "Jane", TemplateName: "Retro"})
		require.Error(t, err)
		assert.True(t, app.IsInvalidRequestError(err))
		assert.Equal(t, "template Retro not supported, available: Modern, Minimal", err.Error())
	})

	t.Run("github projects are fetched and enhanced", func(t *testing.T) {
		s, m, finish := newTestService(t, 2)
		defer finish()

		m.ranker.EXPECT().
			FetchTopRepositories(gomock.Any(), "jane", 2).
			Return([]app.RepositoryRecord{
				{Name: "B", Description: "b desc", Language: "Rust", Stars: 2, Forks: 20},
				{Name: "A", Description: "a desc", Language: "Go", Stars: 10, Forks: 1},
			})
		m.enhancer.EXPECT().
			Enhance(gomock.Any(), gomock.Any(), "i code").
			Return("I like code.")
		m.enhancer.EXPECT().
			EnhanceBatch(gomock.Any(), "Return only the skill name:", []string{"go", "sql"}).
			Return([]string{"Go", "SQL"})
		m.enhancer.EXPECT().
			EnhanceBatch(gomock.Any(), gomock.Any(), []string{"b desc", "a desc"}).
			Return([]string{"B!", "A!"})

		var rendered app.Portfolio
		m.renderer.EXPECT().
			Render("Modern", gomock.Any()).
			DoAndReturn(func(template string, p app.Portfolio) ([]byte, error) {
				rendered = p
				return []byte("<html>Jane</html>"), nil
			})
		m.store.EXPECT().SavePage([]byte("<html>Jane</html>")).Return(nil)

		got, err := s.Generate(context.Background(), app.PortfolioRequest{
			Name:      "Jane",
			About:     "i code",
			GithubURL: "https://github.com/jane",
			Skills:    app.SplitSkills("go, sql,"),
		})
		require.NoError(t, err)
		assert.Equal(t, []byte("<html>Jane</html>"), got.HTML)
		assert.Equal(t, rendered, got.Portfolio)
		assert.Equal(t, "I like code.", rendered.About)
		assert.Equal(t, []string{"Go", "SQL"}, rendered.Skills)
		assert.Equal(t, "Modern", rendered.Template)
		assert.False(t, rendered.GeneratedAt.IsZero())
		require.Len(t, rendered.Projects, 2)
		assert.Equal(t, "B", rendered.Projects[0].Name)
		assert.Equal(t, "B!", rendered.Projects[0].Description)
		assert.Equal(t, "A", rendered.Projects[1].Name)
		assert.Equal(t, "A!", rendered.Projects[1].Description)
	})

	t.Run("given projects skip github", func(t *testing.T) {
		s, m, finish := newTestService(t, 2)
		defer finish()

		m.enhancer.EXPECT().
			EnhanceBatch(gomock.Any(), gomock.Any(), []string{"first", "third"}).
			Return([]string{"First", "Third"})
		m.enhancer.EXPECT().
			EnhanceBatch(gomock.Any(), gomock.Any(), []string{"led team"}).
			Return([]string{"Led a team of 5."})
		m.enhancer.EXPECT().
			EnhanceBatch(gomock.Any(), "Rewrite this certification title professionally, keeping it short:", []string{"cka"}).
			Return([]string{"Certified Kubernetes Administrator"})

		var rendered app.Portfolio
		m.renderer.EXPECT().
			Render("Minimal", gomock.Any()).
			DoAndReturn(func(template string, p app.Portfolio) ([]byte, error) {
				rendered = p
				return []byte("html"), nil
			})
		m.store.EXPECT().SavePage(gomock.Any()).Return(nil)

		_, err := s.Generate(context.Background(), app.PortfolioRequest{
			Name:           "Jane",
			TemplateName:   "Minimal",
			GithubURL:      "https://github.com/jane",
			Degree:         "BSc",
			CollegeName:    "MIT",
			YearOfPassing:  "2020",
			Projects:       []app.Project{{Name: "p1", Description: "first"}, {Name: "p2"}, {Name: "p3", Description: "third"}},
			Experience:     []app.Experience{{Title: "Lead", Description: "led team"}},
			Certifications: []app.Certification{{Name: "cka", Issuer: "CNCF"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "BSc - MIT, 2020", rendered.Education)
		assert.Equal(t, []app.Project{
			{Name: "p1", Description: "First"},
			{Name: "p2"},
			{Name: "p3", Description: "Third"},
		}, rendered.Projects)
		assert.Equal(t, []app.Experience{{Title: "Lead", Description: "Led a team of 5."}}, rendered.Experiences)
		assert.Equal(t, []app.Certification{{Name: "Certified Kubernetes Administrator", Issuer: "CNCF"}}, rendered.Certifications)
	})

	t.Run("short batch result keeps remaining originals", func(t *testing.T) {
		s, m, finish := newTestService(t, 2)
		defer finish()

		m.enhancer.EXPECT().
			EnhanceBatch(gomock.Any(), "Return only the skill name:", []string{"golang", "postgres", "k8s"}).
			Return([]string{"Go"})
		m.enhancer.EXPECT().
			EnhanceBatch(gomock.Any(), gomock.Any(), []string{"first", "third"}).
			Return([]string{"First"})

		var rendered app.Portfolio
		m.renderer.EXPECT().
			Render("Modern", gomock.Any()).
			DoAndReturn(func(template string, p app.Portfolio) ([]byte, error) {
				rendered = p
				return []byte("html"), nil
			})
		m.store.EXPECT().SavePage(gomock.Any()).Return(nil)

		_, err := s.Generate(context.Background(), app.PortfolioRequest{
			Name:     "Jane",
			Skills:   app.Skills{"golang", "postgres", "k8s"},
			Projects: []app.Project{{Name: "p1", Description: "first"}, {Name: "p2"}, {Name: "p3", Description: "third"}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "postgres", "k8s"}, rendered.Skills)
		assert.Equal(t, []app.Project{
			{Name: "p1", Description: "First"},
			{Name: "p2"},
			{Name: "p3", Description: "third"},
		}, rendered.Projects)
	})

	t.Run("render error", func(t *testing.T) {
		s, m, finish := newTestService(t, 2)
		defer finish()

		m.renderer.EXPECT().Render("Modern", gomock.Any()).Return(nil, errors.New("boom"))

		_, err := s.Generate(context.Background(), app.PortfolioRequest{Name: "Jane"})
		require.Error(t, err)
		assert.False(t, app.IsInvalidRequestError(err))
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("store error", func(t *testing.T) {
		s, m, finish := newTestService(t, 2)
		defer finish()

		m.renderer.EXPECT().Render("Modern", gomock.Any()).Return([]byte("html"), nil)
		m.store.EXPECT().SavePage([]byte("html")).Return(errors.New("disk full"))

		_, err := s.Generate(context.Background(), app.PortfolioRequest{Name: "Jane"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestServicePreview(t *testing.T) {
	t.Parallel()

	t.Run("template is required", func(t *testing.T) {
		s, _, finish := newTestService(t, 2)
		defer finish()

		_, err := s.Preview(context.Background(), app.PortfolioRequest{Name: "Jane"})
		require.Error(t, err)
		assert.True(t, app.IsInvalidRequestError(err))
	})

	t.Run("renders without enhancing and saving", func(t *testing.T) {
		s, m, finish := newTestService(t, 2)
		defer finish()

		m.renderer.EXPECT().
			Render("Minimal", gomock.Any()).
			DoAndReturn(func(template string, p app.Portfolio) ([]byte, error) {
				assert.Equal(t, "raw about", p.About)
				return []byte("preview"), nil
			})

		got, err := s.Preview(context.Background(), app.PortfolioRequest{
			Name:         "Jane",
			TemplateName: "Minimal",
			About:        "raw about",
			GithubURL:    "https://github.com/jane",
		})
		require.NoError(t, err)
		assert.Equal(t, []byte("preview"), got)
	})
}

func TestServiceLatestPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		stored       []byte
		storeErr     error
		want         []byte
		wantNotFound bool
		wantErr      bool
	}{
		{
			name:   "found",
			stored: []byte("page"),
			want:   []byte("page"),
		},
		{
			name:         "nothing generated",
			wantNotFound: true,
			wantErr:      true,
		},
		{
			name:     "store error",
			storeErr: errors.New("closed"),
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m, finish := newTestService(t, 2)
			defer finish()

			m.store.EXPECT().LatestPage().Return(tt.stored, tt.storeErr)

			got, err := s.LatestPage(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantNotFound, app.IsNotFoundError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceTemplate(t *testing.T) {
	s, _, finish := newTestService(t, 2)
	defer finish()

	assert.Equal(t, testTemplates, s.Templates())

	got, err := s.Template("Minimal")
	require.NoError(t, err)
	assert.Equal(t, testTemplates[1], got)

	_, err = s.Template("Retro")
	require.Error(t, err)
	assert.True(t, app.IsNotFoundError(err))
}

func TestGithubHandle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{url: "https://github.com/jane", want: "jane", wantOK: true},
		{url: "https://github.com/jane/", want: "jane", wantOK: true},
		{url: "http://www.github.com/jane/repo", want: "jane", wantOK: true},
		{url: "github.com/jane?tab=repositories", want: "jane", wantOK: true},
		{url: " jane ", want: "jane", wantOK: true},
		{url: "@jane", want: "jane", wantOK: true},
		{url: "https://github.com/", wantOK: false},
		{url: "https://gitlab.com/jane", wantOK: false},
		{url: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok := app.GithubHandle(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

package app_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/portfoliogen/internal/app"
	"github.com/m-zajac/portfoliogen/internal/app/mock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func TestRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		repos []app.Repository
		n     int
		want  []string
	}{
		{
			name: "empty",
			n:    3,
			want: []string{},
		},
		{
			name: "forks and empty repositories are dropped",
			repos: []app.Repository{
				{Name: "fork", Stars: 100, Size: 10, Fork: true},
				{Name: "empty", Stars: 100, Size: 0},
				{Name: "own", Stars: 1, Size: 1},
			},
			n:    3,
			want: []string{"own"},
		},
		{
			name: "stars weigh twice as much as forks",
			repos: []app.Repository{
				{Name: "forked", Forks: 5, Size: 1},
				{Name: "starred", Stars: 3, Size: 1},
			},
			n:    2,
			want: []string{"starred", "forked"},
		},
		{
			name: "ties keep listing order",
			repos: []app.Repository{
				{Name: "a", Stars: 1, Forks: 1, Size: 1},
				{Name: "b", Forks: 3, Size: 1},
				{Name: "c", Stars: 1, Forks: 1, Size: 1},
				{Name: "d", Stars: 2, Size: 1},
			},
			n:    4,
			want: []string{"d", "a", "b", "c"},
		},
		{
			name: "truncated to n",
			repos: []app.Repository{
				{Name: "a", Stars: 1, Size: 1},
				{Name: "b", Stars: 2, Size: 1},
				{Name: "c", Stars: 3, Size: 1},
			},
			n:    2,
			want: []string{"c", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := app.Rank(tt.repos, tt.n)
			names := make([]string, 0, len(got))
			for _, r := range got {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestRankerFetchTopRepositories(t *testing.T) {
	t.Parallel()

	listing := []app.Repository{
		{Name: "A", Description: "repo a", URL: "https://github.com/octo/A", Language: "Go", Stars: 10, Forks: 1, Size: 5},
		{Name: "B", Description: "repo b", URL: "https://github.com/octo/B", Language: "Rust", Stars: 2, Forks: 20, Size: 3},
		{Name: "C", Description: "repo c", URL: "https://github.com/octo/C", Stars: 0, Forks: 0, Size: 1, Fork: true},
	}

	tests := []struct {
		name      string
		handle    string
		maxCount  int
		setupMock func(*mock.MockGithubClient, *mock.MockEnhancer)
		want      []app.RepositoryRecord
	}{
		{
			name:     "blank handle",
			handle:   "  ",
			maxCount: 3,
			want:     []app.RepositoryRecord{},
		},
		{
			name:     "zero max count",
			handle:   "octo",
			maxCount: 0,
			want:     []app.RepositoryRecord{},
		},
		{
			name:     "listing error",
			handle:   "octo",
			maxCount: 3,
			setupMock: func(c *mock.MockGithubClient, e *mock.MockEnhancer) {
				c.EXPECT().
					UserRepositories(gomock.Any(), "octo", app.ListingPageSize).
					Return(nil, errors.New("connection refused"))
			},
			want: []app.RepositoryRecord{},
		},
		{
			name:     "ranked by score, forks excluded",
			handle:   "octo",
			maxCount: 2,
			setupMock: func(c *mock.MockGithubClient, e *mock.MockEnhancer) {
				c.EXPECT().
					UserRepositories(gomock.Any(), "octo", app.ListingPageSize).
					Return(listing, nil)
				c.EXPECT().CommitsCount(gomock.Any(), "octo", "B").Return(42, nil)
				c.EXPECT().BranchesCount(gomock.Any(), "octo", "B").Return(3, nil)
				c.EXPECT().CommitsCount(gomock.Any(), "octo", "A").Return(7, nil)
				c.EXPECT().BranchesCount(gomock.Any(), "octo", "A").Return(1, nil)
			},
			want: []app.RepositoryRecord{
				{Name: "B", Description: "repo b", URL: "https://github.com/octo/B", Language: "Rust", Commits: 42, Branches: 3, Stars: 2, Forks: 20},
				{Name: "A", Description: "repo a", URL: "https://github.com/octo/A", Language: "Go", Commits: 7, Branches: 1, Stars: 10, Forks: 1},
			},
		},
		{
			name:     "failing lookups degrade to zero",
			handle:   "octo",
			maxCount: 2,
			setupMock: func(c *mock.MockGithubClient, e *mock.MockEnhancer) {
				c.EXPECT().
					UserRepositories(gomock.Any(), "octo", app.ListingPageSize).
					Return(listing, nil)
				c.EXPECT().CommitsCount(gomock.Any(), "octo", "B").Return(0, errors.New("timeout"))
				c.EXPECT().BranchesCount(gomock.Any(), "octo", "B").Return(0, errors.New("timeout"))
				c.EXPECT().CommitsCount(gomock.Any(), "octo", "A").Return(7, nil)
				c.EXPECT().BranchesCount(gomock.Any(), "octo", "A").Return(2, nil)
			},
			want: []app.RepositoryRecord{
				{Name: "B", Description: "repo b", URL: "https://github.com/octo/B", Language: "Rust", Commits: 0, Branches: 0, Stars: 2, Forks: 20},
				{Name: "A", Description: "repo a", URL: "https://github.com/octo/A", Language: "Go", Commits: 7, Branches: 2, Stars: 10, Forks: 1},
			},
		},
		{
			name:     "missing description is generated",
			handle:   "octo",
			maxCount: 5,
			setupMock: func(c *mock.MockGithubClient, e *mock.MockEnhancer) {
				c.EXPECT().
					UserRepositories(gomock.Any(), "octo", app.ListingPageSize).
					Return([]app.Repository{{Name: "tool", URL: "https://github.com/octo/tool", Stars: 1, Size: 1}}, nil)
				e.EXPECT().
					Enhance(
						gomock.Any(),
						"Create a professional project description for a Not specified repository named 'tool'. Make it concise and highlight potential features:",
						"tool - Not specified project",
					).
					Return("A handy tool.")
				c.EXPECT().CommitsCount(gomock.Any(), "octo", "tool").Return(1, nil)
				c.EXPECT().BranchesCount(gomock.Any(), "octo", "tool").Return(1, nil)
			},
			want: []app.RepositoryRecord{
				{Name: "tool", Description: "A handy tool.", URL: "https://github.com/octo/tool", Language: app.LanguageNotSpecified, Commits: 1, Branches: 1, Stars: 1},
			},
		},
		{
			name:     "repositories owned by organization keep their owner",
			handle:   "octo",
			maxCount: 1,
			setupMock: func(c *mock.MockGithubClient, e *mock.MockEnhancer) {
				c.EXPECT().
					UserRepositories(gomock.Any(), "octo", app.ListingPageSize).
					Return([]app.Repository{{Owner: "octo-org", Name: "lib", Description: "d", Language: "C", Size: 1}}, nil)
				c.EXPECT().CommitsCount(gomock.Any(), "octo-org", "lib").Return(-1, nil)
				c.EXPECT().BranchesCount(gomock.Any(), "octo-org", "lib").Return(4, nil)
			},
			want: []app.RepositoryRecord{
				{Name: "lib", Description: "d", Language: "C", Commits: 0, Branches: 4},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockGithubClient(ctrl)
			enhancer := mock.NewMockEnhancer(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(client, enhancer)
			}

			r := app.NewRanker(client, enhancer, time.Second, time.Second, newTestLogger())
			got := r.FetchTopRepositories(context.Background(), tt.handle, tt.maxCount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRankerLookupTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	client.EXPECT().
		UserRepositories(gomock.Any(), "octo", app.ListingPageSize).
		Return([]app.Repository{{Name: "slow", Description: "d", Language: "Go", Size: 1}}, nil)
	client.EXPECT().
		CommitsCount(gomock.Any(), "octo", "slow").
		DoAndReturn(func(ctx context.Context, owner, name string) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})
	client.EXPECT().
		BranchesCount(gomock.Any(), "octo", "slow").
		Return(2, nil)

	r := app.NewRanker(client, mock.NewMockEnhancer(ctrl), time.Second, 10*time.Millisecond, newTestLogger())
	got := r.FetchTopRepositories(context.Background(), "octo", 1)
	assert.Equal(t, []app.RepositoryRecord{
		{Name: "slow", Description: "d", Language: "Go", Commits: 0, Branches: 2},
	}, got)
}

package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ListingPageSize is the number of most recently updated repositories considered for ranking.
const ListingPageSize = 30

// GithubClient returns repositories of github users and their activity counts.
//go:generate mockgen -destination mock/app.go -package mock github.com/m-zajac/portfoliogen/internal/app GithubClient,Enhancer,RepositoryRanker,Renderer,PageStore
type GithubClient interface {
	UserRepositories(ctx context.Context, handle string, count int) ([]Repository, error)
	CommitsCount(ctx context.Context, owner string, name string) (int, error)
	BranchesCount(ctx context.Context, owner string, name string) (int, error)
}

// Enhancer rewrites text with language model.
// Implementations never fail, on any error original text is returned.
type Enhancer interface {
	Enhance(ctx context.Context, instruction string, text string) string
	EnhanceBatch(ctx context.Context, instruction string, items []string) []string
}

// Ranker selects user's most engaging repositories and enriches them for display.
type Ranker struct {
	client        GithubClient
	enhancer      Enhancer
	listTimeout   time.Duration
	lookupTimeout time.Duration
	l             logrus.FieldLogger
}

// NewRanker creates new Ranker instance.
// listTimeout limits the repositories listing call, lookupTimeout limits each commits/branches lookup.
func NewRanker(
	client GithubClient,
	enhancer Enhancer,
	listTimeout time.Duration,
	lookupTimeout time.Duration,
	l logrus.FieldLogger,
) *Ranker {
	return &Ranker{
		client:        client,
		enhancer:      enhancer,
		listTimeout:   listTimeout,
		lookupTimeout: lookupTimeout,
		l:             l,
	}
}

// FetchTopRepositories returns at most maxCount of handle's own, non empty repositories,
// ordered by engagement score. Ties keep listing order (most recently updated first).
//
// Errors are never returned. Failed listing yields empty result, failed commits or branches
// lookup yields 0 for that repository only.
func (r *Ranker) FetchTopRepositories(ctx context.Context, handle string, maxCount int) []RepositoryRecord {
	handle = strings.TrimSpace(handle)
	if handle == "" || maxCount <= 0 {
		return []RepositoryRecord{}
	}

	repos, err := r.listRepositories(ctx, handle)
	if err != nil {
		r.l.Warnf("listing repositories of %s: %v", handle, err)
		return []RepositoryRecord{}
	}

	ranked := Rank(repos, maxCount)
	records := make([]RepositoryRecord, 0, len(ranked))
	for _, repo := range ranked {
		records = append(records, r.enrich(ctx, handle, repo))
	}

	return records
}

// Rank drops forks and empty repositories, then returns top n by score.
// Sorting is stable.
func Rank(repos []Repository, n int) []Repository {
	filtered := make([]Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.Fork || repo.Size <= 0 {
			continue
		}
		filtered = append(filtered, repo)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score() > filtered[j].Score()
	})

	if len(filtered) > n {
		filtered = filtered[:n]
	}

	return filtered
}

func (r *Ranker) listRepositories(ctx context.Context, handle string) ([]Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, r.listTimeout)
	defer cancel()

	return r.client.UserRepositories(ctx, handle, ListingPageSize)
}

func (r *Ranker) enrich(ctx context.Context, handle string, repo Repository) RepositoryRecord {
	language := repo.Language
	if language == "" {
		language = LanguageNotSpecified
	}

	description := repo.Description
	if strings.TrimSpace(description) == "" {
		description = r.enhancer.Enhance(
			ctx,
			fmt.Sprintf(
				"Create a professional project description for a %s repository named '%s'. Make it concise and highlight potential features:",
				language,
				repo.Name,
			),
			fmt.Sprintf("%s - %s project", repo.Name, language),
		)
	}

	owner := repo.Owner
	if owner == "" {
		owner = handle
	}

	return RepositoryRecord{
		Name:        repo.Name,
		Description: description,
		URL:         repo.URL,
		Language:    language,
		Commits:     r.lookup(ctx, "commits", owner, repo.Name, r.client.CommitsCount),
		Branches:    r.lookup(ctx, "branches", owner, repo.Name, r.client.BranchesCount),
		Stars:       repo.Stars,
		Forks:       repo.Forks,
	}
}

func (r *Ranker) lookup(
	ctx context.Context,
	what string,
	owner string,
	name string,
	count func(context.Context, string, string) (int, error),
) int {
	ctx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
	defer cancel()

	n, err := count(ctx, owner, name)
	if err != nil {
		r.l.Debugf("counting %s of %s/%s: %v", what, owner, name, err)
		return 0
	}
	if n < 0 {
		return 0
	}

	return n
}

package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/m-zajac/portfoliogen/internal/app"
	"github.com/m-zajac/portfoliogen/internal/limiter"
	"golang.org/x/oauth2"
)

// Client returns github user's repositories and their activity counts.
// This struct is an adapter for app.GithubClient.
type Client struct {
	gh *gh.Client
}

var _ app.GithubClient = &Client{}

// NewHTTPClient creates http client for github api calls, limited to maxRate requests per second.
// authToken is optional. Nil base means http.DefaultTransport.
func NewHTTPClient(base http.RoundTripper, authToken string, maxRate float64, timeout time.Duration) *http.Client {
	transport := limiter.NewTransport(base, maxRate)
	if authToken != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: authToken}),
			Base:   transport,
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// NewClient creates new github client.
// Empty address means public github api.
func NewClient(httpClient *http.Client, address string) (*Client, error) {
	c := gh.NewClient(httpClient)
	if address != "" {
		u, err := url.Parse(strings.TrimSuffix(address, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid github api address: %w", err)
		}
		c.BaseURL = u
	}

	return &Client{gh: c}, nil
}

// UserRepositories returns handle's own repositories, most recently updated first.
func (c *Client) UserRepositories(ctx context.Context, handle string, count int) ([]app.Repository, error) {
	if handle == "" {
		return nil, app.InvalidRequestError("handle cannot be empty")
	}
	if count < 1 || count > 100 {
		return nil, app.InvalidRequestError("count must be in range <1..100>")
	}

	repos, _, err := c.gh.Repositories.ListByUser(ctx, handle, &gh.RepositoryListByUserOptions{
		Type: "owner",
		Sort: "updated",
		ListOptions: gh.ListOptions{
			PerPage: count,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("listing repositories: %w", err)
	}

	result := make([]app.Repository, 0, len(repos))
	for _, r := range repos {
		result = append(result, app.Repository{
			Owner:       r.GetOwner().GetLogin(),
			Name:        r.GetName(),
			Description: r.GetDescription(),
			URL:         r.GetHTMLURL(),
			Language:    r.GetLanguage(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			Size:        r.GetSize(),
			Fork:        r.GetFork(),
		})
	}

	return result, nil
}

// CommitsCount returns approximate number of commits in repository's default branch.
//
// Commits are listed one per page, so the number of the last page reported in Link header
// is the number of commits. Without Link header the count is 0.
func (c *Client) CommitsCount(ctx context.Context, owner string, name string) (int, error) {
	if err := validateRepo(owner, name); err != nil {
		return 0, err
	}

	_, resp, err := c.gh.Repositories.ListCommits(ctx, owner, name, &gh.CommitsListOptions{
		ListOptions: gh.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("listing commits: %w", err)
	}

	return resp.LastPage, nil
}

// BranchesCount returns number of repository's branches.
// Only the first page of branches is counted.
func (c *Client) BranchesCount(ctx context.Context, owner string, name string) (int, error) {
	if err := validateRepo(owner, name); err != nil {
		return 0, err
	}

	branches, _, err := c.gh.Repositories.ListBranches(ctx, owner, name, nil)
	if err != nil {
		return 0, fmt.Errorf("listing branches: %w", err)
	}

	return len(branches), nil
}

func validateRepo(owner string, name string) error {
	if owner == "" {
		return app.InvalidRequestError("repository's owner login cannot be empty")
	}
	if name == "" {
		return app.InvalidRequestError("repository's name cannot be empty")
	}

	return nil
}

package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/portfoliogen/internal/app"
)

// CachedClient wraps github client with caching layer.
type CachedClient struct {
	client      app.GithubClient
	reposCache  *lru.Cache
	countsCache *lru.Cache
	ttl         time.Duration
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	reposCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for repositories: %w", err)
	}
	countsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for counts: %w", err)
	}

	return &CachedClient{
		client:      client,
		reposCache:  reposCache,
		countsCache: countsCache,
		ttl:         ttl,
	}, nil
}

// UserRepositories returns handle's repositories.
// Cached listing is reused for calls with the same or smaller count.
func (c *CachedClient) UserRepositories(ctx context.Context, handle string, count int) ([]app.Repository, error) {
	val, ok := c.reposCache.Get(handle)
	if ok {
		entry := val.(reposCacheEntry)
		if entry.count >= count && entry.created.Add(c.ttl).After(time.Now()) {
			repos := entry.data
			if len(repos) > count {
				repos = repos[:count]
			}
			return repos, nil
		}
	}

	repos, err := c.client.UserRepositories(ctx, handle, count)
	if err != nil {
		return repos, err
	}

	c.reposCache.Add(handle, reposCacheEntry{
		created: time.Now(),
		count:   count,
		data:    repos,
	})

	return repos, nil
}

// CommitsCount returns number of repository's commits.
func (c *CachedClient) CommitsCount(ctx context.Context, owner string, name string) (int, error) {
	return c.count(ctx, "commits", owner, name, c.client.CommitsCount)
}

// BranchesCount returns number of repository's branches.
func (c *CachedClient) BranchesCount(ctx context.Context, owner string, name string) (int, error) {
	return c.count(ctx, "branches", owner, name, c.client.BranchesCount)
}

func (c *CachedClient) count(
	ctx context.Context,
	kind string,
	owner string,
	name string,
	fetch func(context.Context, string, string) (int, error),
) (int, error) {
	key := kind + ":" + owner + "/" + name
	val, ok := c.countsCache.Get(key)
	if ok {
		entry := val.(countCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.n, nil
		}
	}

	n, err := fetch(ctx, owner, name)
	if err != nil {
		return n, err
	}

	c.countsCache.Add(key, countCacheEntry{
		created: time.Now(),
		n:       n,
	})

	return n, nil
}

type reposCacheEntry struct {
	created time.Time
	count   int
	data    []app.Repository
}

type countCacheEntry struct {
	created time.Time
	n       int
}

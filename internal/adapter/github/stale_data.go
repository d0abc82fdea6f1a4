package github

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m-zajac/portfoliogen/internal/app"
	"github.com/sirupsen/logrus"
)

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// ClientWithStaleData wraps GithubClient and saves every successful response in db.
//
// If the wrapped client fails and saved data is not older than ttl, saved data is returned
// instead of the error. Otherwise the error is returned as is.
// Zero ttl disables the fallback, nothing is saved or read then.
type ClientWithStaleData struct {
	client app.GithubClient
	store  KVStore
	ttl    time.Duration
	l      logrus.FieldLogger
	now    func() time.Time
}

var _ app.GithubClient = &ClientWithStaleData{}

// NewClientWithStaleData creates new ClientWithStaleData instance.
func NewClientWithStaleData(
	client app.GithubClient,
	store KVStore,
	ttl time.Duration,
	l logrus.FieldLogger,
) *ClientWithStaleData {
	return &ClientWithStaleData{
		client: client,
		store:  store,
		ttl:    ttl,
		l:      l,
		now:    time.Now,
	}
}

// UserRepositories returns handle's repositories.
func (c *ClientWithStaleData) UserRepositories(ctx context.Context, handle string, count int) ([]app.Repository, error) {
	if !c.enabled() {
		return c.client.UserRepositories(ctx, handle, count)
	}
	key := []byte("repos/" + handle)

	repos, err := c.client.UserRepositories(ctx, handle, count)
	if err == nil {
		c.save(key, reposDBEntry{
			Created: c.now().Unix(),
			Count:   count,
			Data:    repos,
		})
		return repos, nil
	}

	var entry reposDBEntry
	if !c.load(key, &entry) || entry.Count < count || !c.fresh(entry.Created) {
		return nil, err
	}
	c.l.Warnf("listing repositories of %s failed, using data saved at %s: %v", handle, time.Unix(entry.Created, 0).Format(time.RFC3339), err)

	repos = entry.Data
	if len(repos) > count {
		repos = repos[:count]
	}

	return repos, nil
}

// CommitsCount returns number of repository's commits.
func (c *ClientWithStaleData) CommitsCount(ctx context.Context, owner string, name string) (int, error) {
	return c.count(ctx, []byte("commits/"+owner+"/"+name), owner, name, c.client.CommitsCount)
}

// BranchesCount returns number of repository's branches.
func (c *ClientWithStaleData) BranchesCount(ctx context.Context, owner string, name string) (int, error) {
	return c.count(ctx, []byte("branches/"+owner+"/"+name), owner, name, c.client.BranchesCount)
}

func (c *ClientWithStaleData) count(
	ctx context.Context,
	key []byte,
	owner string,
	name string,
	fetch func(context.Context, string, string) (int, error),
) (int, error) {
	if !c.enabled() {
		return fetch(ctx, owner, name)
	}

	n, err := fetch(ctx, owner, name)
	if err == nil {
		c.save(key, countDBEntry{
			Created: c.now().Unix(),
			N:       n,
		})
		return n, nil
	}

	var entry countDBEntry
	if !c.load(key, &entry) || !c.fresh(entry.Created) {
		return 0, err
	}

	return entry.N, nil
}

func (c *ClientWithStaleData) enabled() bool {
	return c.ttl > 0
}

func (c *ClientWithStaleData) fresh(created int64) bool {
	return time.Unix(created, 0).Add(c.ttl).After(c.now())
}

func (c *ClientWithStaleData) save(key []byte, entry interface{}) {
	data, err := json.Marshal(entry)
	if err != nil {
		c.l.Errorf("ClientWithStaleData: marshalling %s: %v", key, err)
		return
	}
	if err := c.store.UpdateKey(key, data); err != nil {
		c.l.Errorf("ClientWithStaleData: saving %s: %v", key, err)
	}
}

func (c *ClientWithStaleData) load(key []byte, entry interface{}) bool {
	data, err := c.store.ReadKey(key)
	if err != nil {
		c.l.Errorf("ClientWithStaleData: reading %s: %v", key, err)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, entry); err != nil {
		c.l.Errorf("ClientWithStaleData: %v", fmt.Errorf("unmarshalling %s: %w", key, err))
		return false
	}

	return true
}

type reposDBEntry struct {
	Created int64
	Count   int
	Data    []app.Repository
}

type countDBEntry struct {
	Created int64
	N       int
}

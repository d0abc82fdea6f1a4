package database

import (
	"fmt"

	"github.com/m-zajac/portfoliogen/internal/app"
)

var latestPageKey = []byte("latest")

// KVStore provides simple kv data storage.
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// PageStore keeps the latest generated portfolio page.
type PageStore struct {
	kv KVStore
}

var _ app.PageStore = &PageStore{}

// NewPageStore creates new PageStore instance.
func NewPageStore(kv KVStore) *PageStore {
	return &PageStore{kv: kv}
}

// SavePage overwrites the latest page.
func (s *PageStore) SavePage(html []byte) error {
	if err := s.kv.UpdateKey(latestPageKey, html); err != nil {
		return fmt.Errorf("saving page: %w", err)
	}

	return nil
}

// LatestPage returns the latest saved page, nil if there's none.
func (s *PageStore) LatestPage() ([]byte, error) {
	html, err := s.kv.ReadKey(latestPageKey)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}

	return html, nil
}

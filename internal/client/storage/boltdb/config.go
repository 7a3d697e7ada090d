package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/campusctl/internal/client/storage"
)

var keyBaseURL = []byte("base_url")

// GetBaseURL returns the persisted backend base URL
func (s *Storage) GetBaseURL(ctx context.Context) (string, error) {
	var baseURL string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConfig)
		if bucket == nil {
			return fmt.Errorf("config bucket not found")
		}

		data := bucket.Get(keyBaseURL)
		if data == nil {
			return storage.ErrConfigNotFound
		}

		baseURL = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return baseURL, nil
}

// SetBaseURL persists the backend base URL
func (s *Storage) SetBaseURL(ctx context.Context, baseURL string) error {
	if baseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConfig)
		if bucket == nil {
			return fmt.Errorf("config bucket not found")
		}

		if err := bucket.Put(keyBaseURL, []byte(baseURL)); err != nil {
			return fmt.Errorf("failed to save base URL: %w", err)
		}

		return nil
	})
}

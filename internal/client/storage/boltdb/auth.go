package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/campusctl/internal/client/storage"
	"github.com/iudanet/campusctl/pkg/api"
)

var (
	keyTokens  = []byte("tokens")
	keyProfile = []byte("profile")
)

// SaveAuth stores the token pair with its metadata
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if auth == nil {
		return fmt.Errorf("auth data is nil")
	}
	// Пара хранится только целиком
	if auth.AccessToken == "" || auth.RefreshToken == "" {
		return storage.ErrPartialTokenPair
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(auth)
		if err != nil {
			return fmt.Errorf("failed to marshal auth data: %w", err)
		}

		if err := bucket.Put(keyTokens, data); err != nil {
			return fmt.Errorf("failed to save auth data: %w", err)
		}

		return nil
	})
}

// GetAuth retrieves the stored token pair
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	var auth *storage.AuthData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(keyTokens)
		if data == nil {
			return storage.ErrAuthNotFound
		}

		auth = &storage.AuthData{}
		if err := json.Unmarshal(data, auth); err != nil {
			return fmt.Errorf("failed to unmarshal auth data: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return auth, nil
}

// SaveProfile caches the user profile for session restore
func (s *Storage) SaveProfile(ctx context.Context, profile *api.StudentProfile) error {
	if profile == nil {
		return fmt.Errorf("profile is nil")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}

		if err := bucket.Put(keyProfile, data); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		return nil
	})
}

// GetProfile retrieves the cached user profile
func (s *Storage) GetProfile(ctx context.Context) (*api.StudentProfile, error) {
	var profile *api.StudentProfile

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(keyProfile)
		if data == nil {
			return storage.ErrProfileNotFound
		}

		profile = &api.StudentProfile{}
		if err := json.Unmarshal(data, profile); err != nil {
			return fmt.Errorf("failed to unmarshal profile: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return profile, nil
}

// ClearSession removes tokens and the cached profile in one transaction,
// so no reader can observe a partially cleared session. Idempotent.
func (s *Storage) ClearSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete(keyTokens); err != nil {
			return fmt.Errorf("failed to delete auth data: %w", err)
		}
		if err := bucket.Delete(keyProfile); err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}

		return nil
	})
}

package storage

import (
	"context"

	"github.com/iudanet/campusctl/pkg/api"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing the session state on the client.
// Implementations persist the token pair, the role tag, the device ID and the
// cached profile; swapping the medium (bbolt, in-memory) must not change the
// observable contract.
type AuthStorage interface {
	// SaveAuth stores the token pair with its metadata.
	// A pair is stored whole: implementations reject partial pairs.
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored token pair.
	// Returns ErrAuthNotFound if no session is persisted.
	GetAuth(ctx context.Context) (*AuthData, error)

	// SaveProfile caches the user profile for session restore.
	SaveProfile(ctx context.Context, profile *api.StudentProfile) error

	// GetProfile retrieves the cached user profile.
	// Returns ErrProfileNotFound if nothing is cached.
	GetProfile(ctx context.Context) (*api.StudentProfile, error)

	// ClearSession removes tokens, role tag, device ID and the cached
	// profile in one step. Idempotent: clearing an empty store is not
	// an error. No partial state is observable afterwards.
	ClearSession(ctx context.Context) error
}

// ConfigStorage defines interface for client settings that survive logout.
type ConfigStorage interface {
	// GetBaseURL returns the persisted backend base URL.
	// Returns ErrConfigNotFound if none was saved.
	GetBaseURL(ctx context.Context) (string, error)

	// SetBaseURL persists the backend base URL.
	SetBaseURL(ctx context.Context, baseURL string) error
}

// AuthData represents the persisted session in storage.
// Invariant: AccessToken and RefreshToken are either both present or the
// whole record is absent; SaveAuth enforces this.
type AuthData struct {
	AccessToken  string `json:"access_token"`  // короткоживущий access token
	RefreshToken string `json:"refresh_token"` // долгоживущий refresh token
	Role         string `json:"role"`          // роль, под которой выдана пара токенов
	DeviceID     string `json:"device_id"`     // стабильный ID этой установки клиента
	SavedAt      int64  `json:"saved_at"`      // unix-время последней записи пары
}

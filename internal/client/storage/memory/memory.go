package memory

import (
	"context"
	"sync"

	"github.com/iudanet/campusctl/internal/client/storage"
	"github.com/iudanet/campusctl/pkg/api"
)

// Storage is an in-memory AuthStorage/ConfigStorage implementation.
// Used in tests and as the degraded fallback when the persistent medium
// cannot be opened: the client stays usable, the session just does not
// survive a restart.
type Storage struct {
	mu      sync.Mutex
	auth    *storage.AuthData
	profile *api.StudentProfile
	baseURL string
}

// Compile-time interface checks
var (
	_ storage.AuthStorage   = (*Storage)(nil)
	_ storage.ConfigStorage = (*Storage)(nil)
)

// New creates an empty in-memory storage
func New() *Storage {
	return &Storage{}
}

// SaveAuth stores the token pair with its metadata
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if auth == nil {
		return storage.ErrPartialTokenPair
	}
	if auth.AccessToken == "" || auth.RefreshToken == "" {
		return storage.ErrPartialTokenPair
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Храним копию, чтобы вызывающий не мог мутировать состояние напрямую
	cp := *auth
	s.auth = &cp
	return nil
}

// GetAuth retrieves the stored token pair
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auth == nil {
		return nil, storage.ErrAuthNotFound
	}

	cp := *s.auth
	return &cp, nil
}

// SaveProfile caches the user profile
func (s *Storage) SaveProfile(ctx context.Context, profile *api.StudentProfile) error {
	if profile == nil {
		return storage.ErrProfileNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *profile
	s.profile = &cp
	return nil
}

// GetProfile retrieves the cached user profile
func (s *Storage) GetProfile(ctx context.Context) (*api.StudentProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return nil, storage.ErrProfileNotFound
	}

	cp := *s.profile
	return &cp, nil
}

// ClearSession removes tokens and the cached profile atomically
func (s *Storage) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auth = nil
	s.profile = nil
	return nil
}

// GetBaseURL returns the stored backend base URL
func (s *Storage) GetBaseURL(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.baseURL == "" {
		return "", storage.ErrConfigNotFound
	}
	return s.baseURL, nil
}

// SetBaseURL stores the backend base URL
func (s *Storage) SetBaseURL(ctx context.Context, baseURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.baseURL = baseURL
	return nil
}

package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/campusctl/internal/client/storage"
	"github.com/iudanet/campusctl/pkg/api"
)

// создаём тестовое BoltDB хранилище во временной директории
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "campusctl_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func testAuthData() *storage.AuthData {
	return &storage.AuthData{
		AccessToken:  "access-token-1",
		RefreshToken: "refresh-token-1",
		Role:         "student",
		DeviceID:     "device-1",
		SavedAt:      time.Now().Unix(),
	}
}

func TestStorage_SaveGetAuth(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// До сохранения GetAuth возвращает ErrAuthNotFound
	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	auth := testAuthData()
	require.NoError(t, store.SaveAuth(ctx, auth))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, auth.AccessToken, got.AccessToken)
	assert.Equal(t, auth.RefreshToken, got.RefreshToken)
	assert.Equal(t, auth.Role, got.Role)
	assert.Equal(t, auth.DeviceID, got.DeviceID)
	assert.Equal(t, auth.SavedAt, got.SavedAt)
}

func TestStorage_SaveAuth_RejectsPartialPair(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tests := []struct {
		name string
		auth *storage.AuthData
	}{
		{name: "no refresh token", auth: &storage.AuthData{AccessToken: "a"}},
		{name: "no access token", auth: &storage.AuthData{RefreshToken: "r"}},
		{name: "empty pair", auth: &storage.AuthData{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveAuth(ctx, tt.auth)
			assert.ErrorIs(t, err, storage.ErrPartialTokenPair)

			// Частичная пара не должна попасть в хранилище
			_, err = store.GetAuth(ctx)
			assert.ErrorIs(t, err, storage.ErrAuthNotFound)
		})
	}
}

func TestStorage_SaveGetProfile(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetProfile(ctx)
	assert.ErrorIs(t, err, storage.ErrProfileNotFound)

	profile := &api.StudentProfile{
		UserID:   "user-123",
		Username: "alice",
		Email:    "alice@college.edu",
		Role:     "student",
		Branch:   "CSE",
		Semester: 4,
		Section:  "B",
	}
	require.NoError(t, store.SaveProfile(ctx, profile))

	got, err := store.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestStorage_ClearSession(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveAuth(ctx, testAuthData()))
	require.NoError(t, store.SaveProfile(ctx, &api.StudentProfile{UserID: "user-123", Username: "alice", Role: "student"}))

	require.NoError(t, store.ClearSession(ctx))

	// Токены и профиль удаляются вместе
	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
	_, err = store.GetProfile(ctx)
	assert.ErrorIs(t, err, storage.ErrProfileNotFound)
}

func TestStorage_ClearSession_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Очистка пустого хранилища не является ошибкой
	require.NoError(t, store.ClearSession(ctx))
	require.NoError(t, store.ClearSession(ctx))
}

func TestStorage_AuthSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "campusctl_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	auth := testAuthData()
	require.NoError(t, store.SaveAuth(ctx, auth))
	require.NoError(t, store.SaveProfile(ctx, &api.StudentProfile{UserID: "user-123", Username: "alice", Role: "student"}))
	require.NoError(t, store.Close())

	// Переоткрываем файл: сессия должна пережить перезапуск клиента
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.AccessToken, got.AccessToken)
	assert.Equal(t, auth.RefreshToken, got.RefreshToken)

	profile, err := reopened.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
}

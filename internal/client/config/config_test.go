package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/campusctl/internal/client/storage/memory"
)

func TestResolver_Precedence(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		flagValue string
		envValue  string
		stored    string
		want      string
	}{
		{
			name: "default when nothing set",
			want: DefaultBaseURL,
		},
		{
			name:   "stored value used",
			stored: "https://portal.college.edu/api",
			want:   "https://portal.college.edu/api",
		},
		{
			name:     "env overrides stored",
			stored:   "https://portal.college.edu/api",
			envValue: "https://staging.college.edu/api",
			want:     "https://staging.college.edu/api",
		},
		{
			name:      "flag overrides env and stored",
			stored:    "https://portal.college.edu/api",
			envValue:  "https://staging.college.edu/api",
			flagValue: "http://localhost:9000/api",
			want:      "http://localhost:9000/api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			if tt.stored != "" {
				require.NoError(t, store.SetBaseURL(ctx, tt.stored))
			}

			resolver := NewResolver(store)
			got, err := resolver.BaseURL(ctx, tt.flagValue, tt.envValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_SetBaseURL(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	resolver := NewResolver(store)

	// Завершающий слэш убирается при сохранении
	got, err := resolver.SetBaseURL(ctx, "https://portal.college.edu/api/")
	require.NoError(t, err)
	assert.Equal(t, "https://portal.college.edu/api", got)

	stored, err := store.GetBaseURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://portal.college.edu/api", stored)
}

func TestResolver_SetBaseURL_Invalid(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(memory.New())

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "no scheme", raw: "portal.college.edu"},
		{name: "bad scheme", raw: "ftp://portal.college.edu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.SetBaseURL(ctx, tt.raw)
			assert.Error(t, err)
		})
	}
}

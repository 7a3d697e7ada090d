package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/iudanet/campusctl/internal/client/storage"
)

const (
	// DefaultBaseURL используется, пока адрес сервера не настроен
	DefaultBaseURL = "http://localhost:8000/api"

	// EnvBaseURL переменная окружения с адресом сервера
	EnvBaseURL = "CAMPUSCTL_SERVER"
)

// Resolver определяет базовый URL сервера для всех исходящих запросов.
// Приоритет источников (от высшего к низшему):
//  1. значение флага --server
//  2. переменная окружения CAMPUSCTL_SERVER
//  3. сохранённое значение в хранилище
//  4. DefaultBaseURL
type Resolver struct {
	store storage.ConfigStorage
}

// NewResolver создает Resolver поверх хранилища настроек
func NewResolver(store storage.ConfigStorage) *Resolver {
	return &Resolver{store: store}
}

// BaseURL возвращает действующий базовый URL
// flagValue и envValue передаются явно, чтобы логика была тестируемой
func (r *Resolver) BaseURL(ctx context.Context, flagValue, envValue string) (string, error) {
	if flagValue != "" {
		return normalizeBaseURL(flagValue)
	}

	if envValue != "" {
		return normalizeBaseURL(envValue)
	}

	stored, err := r.store.GetBaseURL(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrConfigNotFound) {
			return DefaultBaseURL, nil
		}
		return "", fmt.Errorf("failed to read stored base URL: %w", err)
	}

	return normalizeBaseURL(stored)
}

// SetBaseURL валидирует и сохраняет базовый URL
func (r *Resolver) SetBaseURL(ctx context.Context, raw string) (string, error) {
	normalized, err := normalizeBaseURL(raw)
	if err != nil {
		return "", err
	}

	if err := r.store.SetBaseURL(ctx, normalized); err != nil {
		return "", fmt.Errorf("failed to persist base URL: %w", err)
	}

	return normalized, nil
}

// normalizeBaseURL проверяет схему и убирает завершающий слэш
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("base URL cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("base URL must use http or https scheme")
	}
	if u.Host == "" {
		return "", fmt.Errorf("base URL must include a host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	clientapi "github.com/iudanet/campusctl/internal/client/api"
	"github.com/iudanet/campusctl/internal/client/storage"
	"github.com/iudanet/campusctl/internal/validation"
	pkgapi "github.com/iudanet/campusctl/pkg/api"
)

// RoleStudent единственная роль, которую обслуживает этот клиент.
// Валидные credentials с другой ролью не создают сессию: это граница
// авторизации, а не ошибка ввода.
const RoleStudent = "student"

//go:generate moq -out portal_api_mock.go . PortalAPI

// PortalAPI defines the transport operations the gateway needs
type PortalAPI interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenGrant, error)
	VerifyOTP(ctx context.Context, req pkgapi.VerifyOTPRequest) (*pkgapi.TokenGrant, error)
	Logout(ctx context.Context, accessToken string) error
}

// Service предоставляет функции авторизации: login, подтверждение OTP, logout.
// Единственный компонент, который записывает сессию в хранилище.
type Service struct {
	api   PortalAPI
	store storage.AuthStorage
}

// NewService создает новый сервис авторизации
func NewService(api PortalAPI, store storage.AuthStorage) *Service {
	return &Service{
		api:   api,
		store: store,
	}
}

// LoginResult содержит результат логина.
// Либо Profile заполнен (сессия установлена), либо OTPRequired=true
// (нужен второй шаг, ничего не сохранено).
type LoginResult struct {
	Profile     *pkgapi.StudentProfile
	OTPRequired bool
}

// Login выполняет аутентификацию пользователя
// На успехе токены и профиль уже сохранены в хранилище
func (s *Service) Login(ctx context.Context, identifier, secret string) (*LoginResult, error) {
	// Валидация входных данных
	if err := validation.ValidateIdentifier(identifier); err != nil {
		return nil, fmt.Errorf("invalid identifier: %w", err)
	}
	if err := validation.ValidatePassword(secret); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	deviceID, err := s.getOrCreateDeviceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create device ID: %w", err)
	}

	grant, err := s.api.Login(ctx, pkgapi.LoginRequest{
		Username: identifier,
		Password: secret,
		DeviceID: deviceID,
	})
	if err != nil {
		return nil, mapLoginError(err)
	}

	// Сервер запросил второй шаг: токенов ещё нет, ничего не сохраняем
	if grant.OTPRequired {
		return &LoginResult{OTPRequired: true}, nil
	}

	return s.establishSession(ctx, grant, deviceID)
}

// VerifyOTP подтверждает одноразовый код и завершает логин
// Успех ведёт себя ровно как успех Login: токены и профиль сохранены
func (s *Service) VerifyOTP(ctx context.Context, identifier, code string) (*LoginResult, error) {
	if err := validation.ValidateIdentifier(identifier); err != nil {
		return nil, fmt.Errorf("invalid identifier: %w", err)
	}
	if err := validation.ValidateOTP(code); err != nil {
		return nil, fmt.Errorf("invalid code: %w", err)
	}

	deviceID, err := s.getOrCreateDeviceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create device ID: %w", err)
	}

	grant, err := s.api.VerifyOTP(ctx, pkgapi.VerifyOTPRequest{
		Username: identifier,
		Code:     code,
		DeviceID: deviceID,
	})
	if err != nil {
		return nil, mapOTPError(err)
	}

	return s.establishSession(ctx, grant, deviceID)
}

// Logout выполняет выход из системы
// Сервер уведомляется best effort; локальная сессия очищается всегда
func (s *Service) Logout(ctx context.Context) error {
	authData, err := s.store.GetAuth(ctx)
	if err != nil {
		// Если данных нет, просто логируем и продолжаем
		slog.Debug("no auth data found during logout", "error", err)
	} else {
		// Пытаемся уведомить сервер о logout (best effort)
		if logoutErr := s.api.Logout(ctx, authData.AccessToken); logoutErr != nil {
			// Не прерываем процесс, если сервер недоступен
			slog.Warn("failed to logout on server", "error", logoutErr)
		}
	}

	// Всегда очищаем локальную сессию, даже если сервер недоступен
	if err := s.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("failed to clear local session: %w", err)
	}

	return nil
}

// establishSession проверяет grant, применяет границу роли и фиксирует сессию
func (s *Service) establishSession(ctx context.Context, grant *pkgapi.TokenGrant, deviceID string) (*LoginResult, error) {
	if grant.Profile == nil {
		return nil, fmt.Errorf("login response missing profile")
	}
	if grant.AccessToken == "" || grant.RefreshToken == "" {
		return nil, fmt.Errorf("login response missing token pair")
	}

	// Граница роли: валидный grant с чужой ролью не создаёт сессию,
	// токены этого обмена не сохраняются
	if grant.Profile.Role != RoleStudent {
		return nil, ErrWrongRole
	}

	authData := &storage.AuthData{
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		Role:         grant.Profile.Role,
		DeviceID:     deviceID,
		SavedAt:      time.Now().Unix(),
	}
	if err := s.store.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	if err := s.store.SaveProfile(ctx, grant.Profile); err != nil {
		return nil, fmt.Errorf("failed to cache profile: %w", err)
	}

	return &LoginResult{Profile: grant.Profile}, nil
}

// getOrCreateDeviceID возвращает сохранённый ID установки или создаёт новый
// ID уникален для каждой установки клиента и передаётся в auth-обменах
func (s *Service) getOrCreateDeviceID(ctx context.Context) (string, error) {
	authData, err := s.store.GetAuth(ctx)
	if err != nil {
		// Первый логин на этой установке
		if errors.Is(err, storage.ErrAuthNotFound) {
			return uuid.New().String(), nil
		}
		return "", fmt.Errorf("failed to get auth data: %w", err)
	}

	// Повторный логин на той же установке: используем прежний ID
	if authData.DeviceID != "" {
		return authData.DeviceID, nil
	}

	return uuid.New().String(), nil
}

// mapLoginError переводит транспортные ошибки логина в типизированные исходы
func mapLoginError(err error) error {
	var serverErr *clientapi.ServerError
	if errors.As(err, &serverErr) {
		switch serverErr.StatusCode {
		case http.StatusUnauthorized:
			return ErrInvalidCredentials
		case http.StatusForbidden:
			return ErrWrongRole
		}
	}
	return fmt.Errorf("login failed: %w", err)
}

// mapOTPError переводит транспортные ошибки подтверждения кода
// Контракт сервера не различает протухший и неверный код статусом,
// поэтому дополнительно смотрим на сообщение
func mapOTPError(err error) error {
	var serverErr *clientapi.ServerError
	if errors.As(err, &serverErr) {
		switch {
		case serverErr.StatusCode == http.StatusGone:
			return ErrOTPExpired
		case serverErr.StatusCode == http.StatusBadRequest,
			serverErr.StatusCode == http.StatusUnauthorized:
			if strings.Contains(strings.ToLower(serverErr.Message), "expired") {
				return ErrOTPExpired
			}
			return ErrOTPInvalid
		}
	}
	return fmt.Errorf("otp verification failed: %w", err)
}

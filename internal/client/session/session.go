package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	clientapi "github.com/iudanet/campusctl/internal/client/api"
	"github.com/iudanet/campusctl/internal/client/auth"
	"github.com/iudanet/campusctl/internal/client/storage"
	pkgapi "github.com/iudanet/campusctl/pkg/api"
)

//go:generate moq -out gateway_mock.go . Gateway

// Gateway defines the authentication operations the session delegates to
type Gateway interface {
	Login(ctx context.Context, identifier, secret string) (*auth.LoginResult, error)
	VerifyOTP(ctx context.Context, identifier, code string) (*auth.LoginResult, error)
	Logout(ctx context.Context) error
}

// Manager владеет состоянием "кто залогинен" для всего клиента.
// Состояние читается из хранилища при старте и мутируется только через
// Login/VerifyOTP/Logout и HandleSessionExpired; напрямую профиль не
// изменяет никто.
type Manager struct {
	mu      sync.Mutex
	gateway Gateway
	store   storage.AuthStorage
	user    *pkgapi.StudentProfile
	lastErr error
	loading bool
}

// NewManager создает менеджер сессии в состоянии loading
func NewManager(gateway Gateway, store storage.AuthStorage) *Manager {
	return &Manager{
		gateway: gateway,
		store:   store,
		loading: true,
	}
}

// Restore синхронно восстанавливает сессию из хранилища без сетевых вызовов.
// Оптимистичное восстановление: сохранённой паре доверяем до первого
// неуспешного аутентифицированного вызова, это осознанный размен круговой
// поездки на скорость старта.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.loading = false }()

	authData, err := m.store.GetAuth(ctx)
	if err != nil {
		return
	}

	// Тег роли проверяется и при восстановлении: пара, выданная под
	// другую роль, не оживляет сессию этого клиента
	if authData.Role != auth.RoleStudent {
		return
	}

	profile, err := m.store.GetProfile(ctx)
	if err != nil {
		return
	}

	if expiry, expErr := auth.TokenExpiry(authData.AccessToken); expErr == nil && time.Now().After(expiry) {
		// Не блокируем старт ради обмена: первый вызов сам прогонит refresh
		slog.Debug("restored session with expired access token", "expired_at", expiry)
	}

	m.user = profile
}

// Login выполняет логин через gateway
// Возвращает otpRequired=true если сервер запросил второй шаг
func (m *Manager) Login(ctx context.Context, identifier, secret string) (otpRequired bool, err error) {
	result, err := m.gateway.Login(ctx, identifier, secret)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.lastErr = err
		return false, err
	}

	m.lastErr = nil
	if result.OTPRequired {
		return true, nil
	}

	m.user = result.Profile
	return false, nil
}

// VerifyOTP завершает логин подтверждением одноразового кода
func (m *Manager) VerifyOTP(ctx context.Context, identifier, code string) error {
	result, err := m.gateway.VerifyOTP(ctx, identifier, code)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.lastErr = err
		return err
	}

	m.lastErr = nil
	m.user = result.Profile
	return nil
}

// Logout завершает сессию
// Локальное состояние сбрасывается даже если gateway вернул ошибку
func (m *Manager) Logout(ctx context.Context) error {
	err := m.gateway.Logout(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = nil
	m.lastErr = nil
	return err
}

// HandleSessionExpired сбрасывает сессию после невосстановимого refresh.
// Регистрируется как hook интерцептора; хранилище к этому моменту уже
// очищено самим интерцептором.
func (m *Manager) HandleSessionExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = nil
	m.lastErr = clientapi.ErrSessionExpired
}

// CurrentUser возвращает профиль текущего пользователя или nil
func (m *Manager) CurrentUser() *pkgapi.StudentProfile {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return nil
	}
	cp := *m.user
	return &cp
}

// IsLoggedIn сообщает, установлена ли сессия
func (m *Manager) IsLoggedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

// IsLoading сообщает, завершилось ли восстановление стартового состояния
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// LastError возвращает последнюю ошибку аутентификации
func (m *Manager) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/campusctl/internal/client/storage"
	"github.com/iudanet/campusctl/pkg/api"
)

// refreshCall представляет один активный refresh-цикл.
// Инициатор выполняет обмен и закрывает done; остальные вызовы, получившие
// 401 во время цикла, ждут done и разделяют его результат.
type refreshCall struct {
	err  error
	done chan struct{}
}

// awaitRefresh присоединяется к активному refresh-циклу или создаёт новый.
// Гарантия single-flight: при N одновременных 401 до сервера доходит ровно
// один запрос /auth/refresh/.
func (c *Client) awaitRefresh(ctx context.Context) error {
	c.mu.Lock()
	if call := c.refresh; call != nil {
		// Цикл уже идёт: регистрируемся как ожидающий
		c.mu.Unlock()
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			// Ожидающий может уйти, сам цикл продолжает работу
			return ctx.Err()
		}
	}

	call := &refreshCall{done: make(chan struct{})}
	c.refresh = call
	c.mu.Unlock()

	// Цикл обязан дойти до конца даже при отмене инициатора:
	// иначе хранилище может остаться в несогласованном состоянии
	call.err = c.runRefresh(context.WithoutCancel(ctx))

	c.mu.Lock()
	c.refresh = nil
	c.mu.Unlock()
	close(call.done)

	// Результат инициатора учитывает его собственную отмену
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return call.err
}

// runRefresh выполняет обмен refresh token на новую пару и фиксирует её
// в хранилище до того, как цикл считается завершённым. Любая ошибка цикла
// означает принудительный logout.
func (c *Client) runRefresh(ctx context.Context) error {
	auth, err := c.auth.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			// Пара исчезла (конкурентный logout): обменивать нечего
			return ErrUnauthenticated
		}
		return fmt.Errorf("failed to load auth data: %w", err)
	}

	grant, err := c.refreshExchange(ctx, auth.RefreshToken)
	if err != nil {
		// Недействительный refresh token или сбой сети во время обмена:
		// восстановить сессию нельзя
		c.forceLogout(ctx)
		return fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}

	next := *auth
	next.AccessToken = grant.AccessToken
	// Сервер может не ротировать refresh token; пустое поле в ответе
	// оставляет прежний
	if grant.RefreshToken != "" {
		next.RefreshToken = grant.RefreshToken
	}
	next.SavedAt = time.Now().Unix()

	if err := c.auth.SaveAuth(ctx, &next); err != nil {
		c.forceLogout(ctx)
		return fmt.Errorf("%w: failed to persist refreshed tokens: %v", ErrSessionExpired, err)
	}

	slog.Debug("access token refreshed")
	return nil
}

// refreshExchange выполняет сам запрос POST /auth/refresh/
func (c *Client) refreshExchange(ctx context.Context, refreshToken string) (*api.TokenGrant, error) {
	var grant api.TokenGrant
	req := api.RefreshRequest{RefreshToken: refreshToken}
	if err := c.doRequest(ctx, http.MethodPost, "/auth/refresh/", "", req, &grant); err != nil {
		return nil, err
	}
	if grant.AccessToken == "" {
		return nil, fmt.Errorf("refresh response missing access token")
	}
	return &grant, nil
}

// forceLogout очищает хранилище и уведомляет сессию
func (c *Client) forceLogout(ctx context.Context) {
	if err := c.auth.ClearSession(ctx); err != nil {
		slog.Warn("failed to clear session after refresh failure", "error", err)
	}

	c.mu.Lock()
	hook := c.onSessionExpired
	c.mu.Unlock()
	if hook != nil {
		hook()
	}
}

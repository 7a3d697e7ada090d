package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/campusctl/internal/client/storage"
	"github.com/iudanet/campusctl/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с порталом.
// Все аутентифицированные вызовы проходят через DoAuthenticated, который
// прикладывает bearer-токен и при 401 прогоняет единый refresh-цикл.
type Client struct {
	httpClient *http.Client
	auth       storage.AuthStorage
	baseURL    string

	// refresh-цикл: не более одного на клиент, публикуется под mu
	mu      sync.Mutex
	refresh *refreshCall

	onSessionExpired func()
}

// NewClient создает новый API клиент
func NewClient(baseURL string, auth storage.AuthStorage) *Client {
	return &Client{
		baseURL: baseURL,
		auth:    auth,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetSessionExpiredHook регистрирует обработчик принудительного logout.
// Вызывается после очистки хранилища при невосстановимом refresh-цикле.
func (c *Client) SetSessionExpiredHook(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSessionExpired = fn
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenGrant, error) {
	var grant api.TokenGrant
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login/", "", req, &grant); err != nil {
		return nil, err
	}
	return &grant, nil
}

// VerifyOTP подтверждает одноразовый код и завершает логин
func (c *Client) VerifyOTP(ctx context.Context, req api.VerifyOTPRequest) (*api.TokenGrant, error) {
	var grant api.TokenGrant
	if err := c.doRequest(ctx, http.MethodPost, "/auth/verify-otp/", "", req, &grant); err != nil {
		return nil, err
	}
	return &grant, nil
}

// Logout уведомляет сервер об инвалидации сессии
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	return c.doRequest(ctx, http.MethodPost, "/auth/logout/", accessToken, nil, nil)
}

// DoAuthenticated выполняет аутентифицированный вызов домена.
// Прикладывает текущий access token; при 401 присоединяется к refresh-циклу
// (или создаёт его) и повторяет вызов ровно один раз с новым токеном.
// Повторный 401 после replay не запускает второй цикл.
func (c *Client) DoAuthenticated(ctx context.Context, method, path string, body, result any) error {
	auth, err := c.auth.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			// Токена нет: вызов идёт без credentials и падает быстро,
			// refresh-машинерию не трогаем
			err := c.doRequest(ctx, method, path, "", body, result)
			if IsUnauthorized(err) {
				return ErrUnauthenticated
			}
			return err
		}
		return fmt.Errorf("failed to load auth data: %w", err)
	}

	err = c.doRequest(ctx, method, path, auth.AccessToken, body, result)
	if !IsUnauthorized(err) {
		return err
	}

	// 401: ровно один refresh на все конкурентные вызовы
	if refreshErr := c.awaitRefresh(ctx); refreshErr != nil {
		return refreshErr
	}

	fresh, err := c.auth.GetAuth(ctx)
	if err != nil {
		return ErrUnauthenticated
	}

	err = c.doRequest(ctx, method, path, fresh.AccessToken, body, result)
	if IsUnauthorized(err) {
		// second 401 after a successful refresh: report, never loop
		return ErrUnauthenticated
	}
	return err
}

// doRequest выполняет HTTP запрос и разбирает конверт {success, data, message}
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ServerError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	var envelope api.Response
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	// Портал может ответить 200 с success=false
	if !envelope.Success {
		return &ServerError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if result != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, result); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// errorMessage извлекает сообщение об ошибке из тела ответа
func errorMessage(respBody []byte) string {
	var envelope api.Response
	if err := json.Unmarshal(respBody, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	var errResp api.ErrorResponse
	if err := json.Unmarshal(respBody, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		return errResp.Error
	}
	return ""
}

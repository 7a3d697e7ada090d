package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/campusctl/internal/client/storage"
	"github.com/iudanet/campusctl/internal/client/storage/memory"
	"github.com/iudanet/campusctl/pkg/api"
)

// refreshBackend эмулирует портал для сценариев с истёкшим access token:
// запросы со старым токеном получают 401, refresh выдаёт новую пару
type refreshBackend struct {
	t            *testing.T
	refreshCount atomic.Int64
	oldToken     string
	newToken     string
	failRefresh  bool
}

func (b *refreshBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh/":
			b.refreshCount.Add(1)

			if b.failRefresh {
				writeFailure(b.t, w, http.StatusUnauthorized, "refresh token expired")
				return
			}

			var req api.RefreshRequest
			require.NoError(b.t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(b.t, "refresh-old", req.RefreshToken)

			writeEnvelope(b.t, w, http.StatusOK, api.TokenGrant{
				AccessToken:  b.newToken,
				RefreshToken: "refresh-new",
			})
		default:
			if r.Header.Get("Authorization") == "Bearer "+b.newToken {
				writeEnvelope(b.t, w, http.StatusOK, map[string]string{"status": "ok"})
				return
			}
			writeFailure(b.t, w, http.StatusUnauthorized, "token expired")
		}
	})
}

func TestClient_RefreshAndReplayOnce(t *testing.T) {
	backend := &refreshBackend{t: t, oldToken: "access-old", newToken: "access-new"}
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	store := memory.New()
	seedAuth(t, store, "access-old", "refresh-old")
	client := NewClient(server.URL, store)

	var out map[string]string
	err := client.DoAuthenticated(context.Background(), http.MethodGet, "/student/dashboard/", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, int64(1), backend.refreshCount.Load())

	// Новая пара зафиксирована в хранилище целиком
	auth, err := store.GetAuth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-new", auth.AccessToken)
	assert.Equal(t, "refresh-new", auth.RefreshToken)
	// Роль и device ID переживают refresh
	assert.Equal(t, "student", auth.Role)
	assert.Equal(t, "device-1", auth.DeviceID)
}

// TestClient_SingleFlight проверяет главную гарантию: при N одновременных 401
// до сервера доходит ровно один refresh, и все вызовы завершаются успешно.
func TestClient_SingleFlight(t *testing.T) {
	const concurrent = 8

	var (
		arrivalsMu sync.Mutex
		arrivals   int
		allArrived = make(chan struct{})
	)

	backend := &refreshBackend{t: t, oldToken: "access-old", newToken: "access-new"}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Держим все первые запросы до тех пор, пока не придут все N:
		// каждый из них получит 401 при активном (или ещё не начатом) цикле
		if r.URL.Path != "/auth/refresh/" && r.Header.Get("Authorization") == "Bearer access-old" {
			arrivalsMu.Lock()
			arrivals++
			if arrivals == concurrent {
				close(allArrived)
			}
			arrivalsMu.Unlock()
			<-allArrived
		}
		if r.URL.Path == "/auth/refresh/" {
			// Затягиваем обмен, чтобы все 401 успели присоединиться к циклу
			time.Sleep(100 * time.Millisecond)
		}
		backend.handler().ServeHTTP(w, r)
	}))
	defer server.Close()

	store := memory.New()
	seedAuth(t, store, "access-old", "refresh-old")
	client := NewClient(server.URL, store)

	var wg sync.WaitGroup
	errs := make([]error, concurrent)
	for i := 0; i < concurrent; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = client.DoAuthenticated(context.Background(), http.MethodGet, "/student/attendance/", nil, nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "call %d", i)
	}
	assert.Equal(t, int64(1), backend.refreshCount.Load(), "exactly one refresh must reach the backend")
}

func TestClient_RefreshFailure_ForcesLogout(t *testing.T) {
	const concurrent = 4

	var (
		arrivalsMu sync.Mutex
		arrivals   int
		allArrived = make(chan struct{})
	)

	backend := &refreshBackend{t: t, oldToken: "access-old", newToken: "access-new", failRefresh: true}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/refresh/" && r.Header.Get("Authorization") == "Bearer access-old" {
			arrivalsMu.Lock()
			arrivals++
			if arrivals == concurrent {
				close(allArrived)
			}
			arrivalsMu.Unlock()
			<-allArrived
		}
		if r.URL.Path == "/auth/refresh/" {
			time.Sleep(100 * time.Millisecond)
		}
		backend.handler().ServeHTTP(w, r)
	}))
	defer server.Close()

	store := memory.New()
	seedAuth(t, store, "access-old", "refresh-old")
	client := NewClient(server.URL, store)

	var hookFired atomic.Bool
	client.SetSessionExpiredHook(func() { hookFired.Store(true) })

	var wg sync.WaitGroup
	errs := make([]error, concurrent)
	for i := 0; i < concurrent; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = client.DoAuthenticated(context.Background(), http.MethodGet, "/student/marks/", nil, nil)
		}(i)
	}
	wg.Wait()

	// Все вызовы завершаются одинаково: SessionExpired, без ретраев
	for i, err := range errs {
		assert.ErrorIs(t, err, ErrSessionExpired, "call %d", i)
	}
	assert.Equal(t, int64(1), backend.refreshCount.Load())

	// Хранилище очищено, хук уведомил сессию
	_, err := store.GetAuth(context.Background())
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
	assert.True(t, hookFired.Load())
}

func TestClient_SecondUnauthorizedAfterReplay(t *testing.T) {
	var refreshCount atomic.Int64

	// Домен отвечает 401 на любой токен: replay тоже получит 401
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh/" {
			refreshCount.Add(1)
			writeEnvelope(t, w, http.StatusOK, api.TokenGrant{
				AccessToken:  "access-new",
				RefreshToken: "refresh-new",
			})
			return
		}
		writeFailure(t, w, http.StatusUnauthorized, "token expired")
	}))
	defer server.Close()

	store := memory.New()
	seedAuth(t, store, "access-old", "refresh-old")
	client := NewClient(server.URL, store)

	err := client.DoAuthenticated(context.Background(), http.MethodGet, "/student/dashboard/", nil, nil)

	// Повторный 401 после replay не запускает второй цикл
	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, int64(1), refreshCount.Load())
}

func TestClient_RefreshNetworkFailure_ForcesLogout(t *testing.T) {
	// refresh обрывает соединение: транспортный сбой во время цикла
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh/" {
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		writeFailure(t, w, http.StatusUnauthorized, "token expired")
	}))
	defer server.Close()

	store := memory.New()
	seedAuth(t, store, "access-old", "refresh-old")
	client := NewClient(server.URL, store)

	err := client.DoAuthenticated(context.Background(), http.MethodGet, "/student/dashboard/", nil, nil)
	require.ErrorIs(t, err, ErrSessionExpired)

	_, err = store.GetAuth(context.Background())
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestClient_RefreshPreservesRefreshTokenWithoutRotation(t *testing.T) {
	// Сервер не ротирует refresh token: в ответе только access
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh/":
			writeEnvelope(t, w, http.StatusOK, api.TokenGrant{AccessToken: "access-new"})
		default:
			if r.Header.Get("Authorization") == "Bearer access-new" {
				writeEnvelope(t, w, http.StatusOK, map[string]string{"status": "ok"})
				return
			}
			writeFailure(t, w, http.StatusUnauthorized, "token expired")
		}
	}))
	defer server.Close()

	store := memory.New()
	seedAuth(t, store, "access-old", "refresh-old")
	client := NewClient(server.URL, store)

	err := client.DoAuthenticated(context.Background(), http.MethodGet, "/student/dashboard/", nil, nil)
	require.NoError(t, err)

	auth, err := store.GetAuth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-new", auth.AccessToken)
	assert.Equal(t, "refresh-old", auth.RefreshToken)
}

func TestClient_CancelledWaiterDoesNotAbortCycle(t *testing.T) {
	refreshStarted := make(chan struct{})
	releaseRefresh := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh/":
			close(refreshStarted)
			<-releaseRefresh
			writeEnvelope(t, w, http.StatusOK, api.TokenGrant{
				AccessToken:  "access-new",
				RefreshToken: "refresh-new",
			})
		default:
			if r.Header.Get("Authorization") == "Bearer access-new" {
				writeEnvelope(t, w, http.StatusOK, map[string]string{"status": "ok"})
				return
			}
			writeFailure(t, w, http.StatusUnauthorized, "token expired")
		}
	}))
	defer server.Close()

	store := memory.New()
	seedAuth(t, store, "access-old", "refresh-old")
	client := NewClient(server.URL, store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- client.DoAuthenticated(ctx, http.MethodGet, "/student/dashboard/", nil, nil)
	}()

	// Отменяем инициатора в середине цикла
	<-refreshStarted
	cancel()
	close(releaseRefresh)

	err := <-done
	require.ErrorIs(t, err, context.Canceled)

	// Цикл дошёл до конца: новая пара в хранилище, несмотря на отмену
	auth, err := store.GetAuth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-new", auth.AccessToken)
	assert.Equal(t, "refresh-new", auth.RefreshToken)
}

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Expected session outcomes. These cross the session boundary as values,
// never as panics; callers branch with errors.Is.
var (
	// ErrSessionExpired indicates that the refresh exchange failed and the
	// local session was cleared. The caller must re-authenticate.
	ErrSessionExpired = errors.New("session expired")

	// ErrUnauthenticated indicates a call made without a usable token and
	// with no recoverable refresh path.
	ErrUnauthenticated = errors.New("not authenticated")
)

// ServerError represents a non-success reply from the portal backend
type ServerError struct {
	Message    string // сообщение из конверта ответа, может быть пустым
	StatusCode int    // HTTP статус ответа
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a 401 reply from the server
func IsUnauthorized(err error) bool {
	var serverErr *ServerError
	return errors.As(err, &serverErr) && serverErr.StatusCode == http.StatusUnauthorized
}

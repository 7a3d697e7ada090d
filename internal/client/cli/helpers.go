package cli

import (
	"errors"
	"fmt"
	"text/template"

	clientapi "github.com/iudanet/campusctl/internal/client/api"
	"github.com/iudanet/campusctl/internal/client/auth"
	"github.com/iudanet/campusctl/internal/client/iocli"
)

// renderTemplate исполняет шаблон в выходной поток IO
func renderTemplate(io iocli.IO, name, text string, data any) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(io, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// userMessage переводит типизированные исходы в сообщение для пользователя.
// Неожиданные ошибки показываются как есть.
func userMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, auth.ErrWrongRole):
		return "You do not have student access."
	case errors.Is(err, auth.ErrOTPInvalid):
		return "The one-time code is incorrect."
	case errors.Is(err, auth.ErrOTPExpired):
		return "The one-time code has expired. Please login again."
	case errors.Is(err, clientapi.ErrSessionExpired):
		return "Your session has expired. Please login again."
	case errors.Is(err, clientapi.ErrUnauthenticated):
		return "Not authenticated. Run 'campusctl login' first."
	default:
		return err.Error()
	}
}

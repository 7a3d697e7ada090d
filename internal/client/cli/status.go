package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/campusctl/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	baseURL, err := c.config.BaseURL(ctx, "", "")
	if err == nil {
		c.io.Printf("Server: %s\n", baseURL)
	}

	if !c.session.IsLoggedIn() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'campusctl login' to authenticate.")
		return nil
	}

	user := c.session.CurrentUser()
	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Email:    %s\n", user.Email)
	if user.Branch != "" {
		c.io.Printf("Branch:   %s (semester %d, section %s)\n", user.Branch, user.Semester, user.Section)
	}

	// Срок действия access token: только отображение, подпись не проверяем
	authData, err := c.store.GetAuth(ctx)
	if err != nil {
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	expiresAt, err := auth.TokenExpiry(authData.AccessToken)
	if err != nil {
		// Непрозрачный токен без exp — не ошибка статуса
		return nil
	}

	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	if remaining := time.Until(expiresAt); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("Access token has expired; it will be refreshed on the next request.")
	}

	return nil
}

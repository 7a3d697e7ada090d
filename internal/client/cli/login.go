package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	identifier, err := c.io.ReadInput("Username or email: ")
	if err != nil {
		return fmt.Errorf("failed to read identifier: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	otpRequired, err := c.session.Login(ctx, identifier, password)
	if err != nil {
		// Ошибки логина показываются на месте, сессия не создана
		c.io.Println(userMessage(err))
		return err
	}

	// Второй шаг: сервер отправил одноразовый код
	if otpRequired {
		code, err := c.io.ReadInput("One-time code: ")
		if err != nil {
			return fmt.Errorf("failed to read code: %w", err)
		}

		if err := c.session.VerifyOTP(ctx, identifier, code); err != nil {
			c.io.Println(userMessage(err))
			return err
		}
	}

	user := c.session.CurrentUser()
	if user == nil {
		return fmt.Errorf("login finished without a session")
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as: %s (%s)\n", user.Username, user.Email)

	return nil
}

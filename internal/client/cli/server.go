package cli

import (
	"context"
	"fmt"
)

// runServer показывает или сохраняет адрес сервера
func (c *Cli) runServer(ctx context.Context, args []string) error {
	if len(args) == 0 {
		baseURL, err := c.config.BaseURL(ctx, "", "")
		if err != nil {
			return fmt.Errorf("failed to resolve server URL: %w", err)
		}
		c.io.Printf("Server: %s\n", baseURL)
		return nil
	}

	normalized, err := c.config.SetBaseURL(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to set server URL: %w", err)
	}

	c.io.Printf("✓ Server URL saved: %s\n", normalized)
	return nil
}

package cli

import "context"

func (c *Cli) runProfile(ctx context.Context) error {
	profile, err := c.student.Profile(ctx)
	if err != nil {
		c.io.Println(userMessage(err))
		return err
	}

	return renderTemplate(c.io, "profile", profileTemplate, profile)
}

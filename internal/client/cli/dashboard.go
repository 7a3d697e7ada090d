package cli

import "context"

func (c *Cli) runDashboard(ctx context.Context) error {
	overview, err := c.student.Dashboard(ctx)
	if err != nil {
		c.io.Println(userMessage(err))
		return err
	}

	return renderTemplate(c.io, "dashboard", dashboardTemplate, overview)
}

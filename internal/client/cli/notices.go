package cli

import "context"

func (c *Cli) runAnnouncements(ctx context.Context) error {
	items, err := c.student.Announcements(ctx)
	if err != nil {
		c.io.Println(userMessage(err))
		return err
	}

	return renderTemplate(c.io, "announcements", announcementsTemplate, items)
}

func (c *Cli) runNotifications(ctx context.Context) error {
	items, err := c.student.Notifications(ctx)
	if err != nil {
		c.io.Println(userMessage(err))
		return err
	}

	return renderTemplate(c.io, "notifications", notificationsTemplate, items)
}

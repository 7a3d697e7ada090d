package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду и возвращает ошибку для вывода в main
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "server":
		return c.runServer(ctx, args)
	case "dashboard":
		return c.runDashboard(ctx)
	case "attendance":
		return c.runAttendance(ctx)
	case "marks":
		return c.runMarks(ctx)
	case "leave":
		return c.runLeave(ctx)
	case "apply-leave":
		return c.runApplyLeave(ctx)
	case "timetable":
		return c.runTimetable(ctx)
	case "materials":
		return c.runMaterials(ctx)
	case "certificates":
		return c.runCertificates(ctx)
	case "announcements":
		return c.runAnnouncements(ctx)
	case "notifications":
		return c.runNotifications(ctx)
	case "assignments":
		return c.runAssignments(ctx)
	case "profile":
		return c.runProfile(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

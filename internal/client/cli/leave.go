package cli

import (
	"context"
	"fmt"

	pkgapi "github.com/iudanet/campusctl/pkg/api"
)

func (c *Cli) runLeave(ctx context.Context) error {
	requests, err := c.student.LeaveRequests(ctx)
	if err != nil {
		c.io.Println(userMessage(err))
		return err
	}

	return renderTemplate(c.io, "leave", leaveTemplate, requests)
}

// runApplyLeave интерактивно собирает заявку и отправляет на сервер
func (c *Cli) runApplyLeave(ctx context.Context) error {
	c.io.Println("=== Apply for Leave ===")
	c.io.Println()

	startDate, err := c.io.ReadInput("Start date (YYYY-MM-DD): ")
	if err != nil {
		return fmt.Errorf("failed to read start date: %w", err)
	}

	endDate, err := c.io.ReadInput("End date (YYYY-MM-DD): ")
	if err != nil {
		return fmt.Errorf("failed to read end date: %w", err)
	}

	reason, err := c.io.ReadInput("Reason: ")
	if err != nil {
		return fmt.Errorf("failed to read reason: %w", err)
	}

	created, err := c.student.ApplyLeave(ctx, pkgapi.ApplyLeaveRequest{
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
	})
	if err != nil {
		c.io.Println(userMessage(err))
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Leave request submitted (status: %s)\n", created.Status)
	return nil
}

package cli

import "context"

func (c *Cli) runAttendance(ctx context.Context) error {
	records, err := c.student.Attendance(ctx)
	if err != nil {
		c.io.Println(userMessage(err))
		return err
	}

	return renderTemplate(c.io, "attendance", attendanceTemplate, records)
}

func (c *Cli) runMarks(ctx context.Context) error {
	marks, err := c.student.InternalMarks(ctx)
	if err != nil {
		c.io.Println(userMessage(err))
		return err
	}

	return renderTemplate(c.io, "marks", marksTemplate, marks)
}

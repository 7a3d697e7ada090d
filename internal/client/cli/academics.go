package cli

import "context"

func (c *Cli) runTimetable(ctx context.Context) error {
	entries, err := c.student.Timetable(ctx)
	if err != nil {
		c.io.Println(userMessage(err))
		return err
	}

	return renderTemplate(c.io, "timetable", timetableTemplate, entries)
}

func (c *Cli) runMaterials(ctx context.Context) error {
	materials, err := c.student.StudyMaterials(ctx)
	if err != nil {
		c.io.Println(userMessage(err))
		return err
	}

	return renderTemplate(c.io, "materials", materialsTemplate, materials)
}

func (c *Cli) runAssignments(ctx context.Context) error {
	assignments, err := c.student.Assignments(ctx)
	if err != nil {
		c.io.Println(userMessage(err))
		return err
	}

	return renderTemplate(c.io, "assignments", assignmentsTemplate, assignments)
}

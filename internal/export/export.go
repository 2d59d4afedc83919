package export

import (
	"fmt"

	"jobtrack-backend/internal/jobs"
)

// Columns is the fixed header row of the export. Order is part of the
// contract; consumers index by position.
var Columns = []string{
	"Company",
	"Role",
	"Status",
	"Salary",
	"Field",
	"Experience",
	"URL",
	"Notes",
	"Date Added",
}

// Rows flattens the record set into spreadsheet rows matching Columns.
// Absent optional fields render as empty strings and dates carry no time
// component; the binary file format is the writer's concern, not ours.
func Rows(snapshot []jobs.Job) [][]string {
	out := make([][]string, 0, len(snapshot))
	for _, job := range snapshot {
		out = append(out, []string{
			job.Company,
			job.Role,
			string(job.Status),
			job.Salary,
			job.Field,
			job.ExperienceYears,
			job.URL,
			job.Notes,
			formatDate(job),
		})
	}
	return out
}

func formatDate(job jobs.Job) string {
	d := job.AppliedDate.UTC()
	return fmt.Sprintf("%d/%d/%d", int(d.Month()), d.Day(), d.Year())
}

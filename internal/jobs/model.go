package jobs

import "time"

// Status is the lifecycle stage of a tracked application. Values are
// case-sensitive and uppercase on the wire.
type Status string

const (
	StatusSaved        Status = "SAVED"
	StatusApplied      Status = "APPLIED"
	StatusInterviewing Status = "INTERVIEWING"
	StatusOffered      Status = "OFFERED"
	StatusRejected     Status = "REJECTED"
)

// StatusOrder is the canonical display order for funnel-style views.
var StatusOrder = []Status{
	StatusSaved,
	StatusApplied,
	StatusInterviewing,
	StatusOffered,
	StatusRejected,
}

// Valid reports whether s is one of the five enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusSaved, StatusApplied, StatusInterviewing, StatusOffered, StatusRejected:
		return true
	}
	return false
}

// Job is one tracked job application belonging to one user.
type Job struct {
	ID              string
	UserID          string
	Company         string
	Role            string
	Status          Status
	URL             string
	Salary          string
	Notes           string
	ExperienceYears string
	Field           string
	AppliedDate     time.Time
	UpdatedDate     time.Time
}

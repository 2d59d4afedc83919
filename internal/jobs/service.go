package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for job records. Every operation takes the
// requesting user's ID explicitly; no identity is cached between calls.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

func (s *Service) clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// CreateInput carries the user-supplied fields for a new record.
type CreateInput struct {
	Company         string
	Role            string
	Status          Status
	URL             string
	Salary          string
	Notes           string
	ExperienceYears string
	Field           string
}

// PatchInput carries a partial update. Nil fields are left unchanged.
type PatchInput struct {
	Company         *string
	Role            *string
	Status          *Status
	URL             *string
	Salary          *string
	Notes           *string
	ExperienceYears *string
	Field           *string
}

// Create validates the input and stores a new record. Status defaults to
// SAVED; appliedDate and updatedDate start equal.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (Job, error) {
	company := strings.TrimSpace(input.Company)
	role := strings.TrimSpace(input.Role)
	if company == "" || role == "" {
		return Job{}, fmt.Errorf("%w: company and role are required", ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = StatusSaved
	}
	if !status.Valid() {
		return Job{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, input.Status)
	}

	now := s.clock()
	job := Job{
		ID:              uuid.NewString(),
		UserID:          userID,
		Company:         company,
		Role:            role,
		Status:          status,
		URL:             input.URL,
		Salary:          input.Salary,
		Notes:           input.Notes,
		ExperienceYears: input.ExperienceYears,
		Field:           input.Field,
		AppliedDate:     now,
		UpdatedDate:     now,
	}

	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// List returns the user's records, most recently updated first.
func (s *Service) List(ctx context.Context, userID string) ([]Job, error) {
	jobs, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []Job{}
	}
	return jobs, nil
}

// Get returns one record, enforcing ownership.
func (s *Service) Get(ctx context.Context, userID, id string) (Job, error) {
	job, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Job{}, err
	}
	if job.UserID != userID {
		return Job{}, ErrForbidden
	}
	return job, nil
}

// UpdateStatus moves a record to a new lifecycle stage. Any status may move to
// any other; there is no transition graph, so users can undo mistakes (for
// example REJECTED back to APPLIED). UpdatedDate is refreshed only on success.
func (s *Service) UpdateStatus(ctx context.Context, userID, id string, status Status) (Job, error) {
	if !status.Valid() {
		return Job{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	job, err := s.Get(ctx, userID, id)
	if err != nil {
		return Job{}, err
	}

	job.Status = status
	job.UpdatedDate = s.clock()
	if err := s.Repo.Update(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Patch applies a partial update to a record, enforcing ownership. The id,
// owner, and appliedDate are not patchable; requests carrying them are
// ignored at the DTO layer. Concurrent patches are not coordinated: the last
// write wins, keyed by updatedDate.
func (s *Service) Patch(ctx context.Context, userID, id string, patch PatchInput) (Job, error) {
	job, err := s.Get(ctx, userID, id)
	if err != nil {
		return Job{}, err
	}

	if patch.Company != nil {
		company := strings.TrimSpace(*patch.Company)
		if company == "" {
			return Job{}, fmt.Errorf("%w: company cannot be empty", ErrInvalidInput)
		}
		job.Company = company
	}
	if patch.Role != nil {
		role := strings.TrimSpace(*patch.Role)
		if role == "" {
			return Job{}, fmt.Errorf("%w: role cannot be empty", ErrInvalidInput)
		}
		job.Role = role
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return Job{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *patch.Status)
		}
		job.Status = *patch.Status
	}
	if patch.URL != nil {
		job.URL = *patch.URL
	}
	if patch.Salary != nil {
		job.Salary = *patch.Salary
	}
	if patch.Notes != nil {
		job.Notes = *patch.Notes
	}
	if patch.ExperienceYears != nil {
		job.ExperienceYears = *patch.ExperienceYears
	}
	if patch.Field != nil {
		job.Field = *patch.Field
	}

	job.UpdatedDate = s.clock()
	if err := s.Repo.Update(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Delete permanently removes a record, enforcing ownership. No soft delete.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, userID, id)
}

package jobs

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestService(now time.Time) *Service {
	return &Service{
		Repo: NewMemoryRepo(),
		Now:  func() time.Time { return now },
	}
}

func TestCreateDefaults(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	job, err := svc.Create(context.Background(), "user-1", CreateInput{
		Company: "Acme",
		Role:    "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.ID == "" {
		t.Fatalf("expected generated id")
	}
	if job.Status != StatusSaved {
		t.Fatalf("expected status SAVED, got %s", job.Status)
	}
	if !job.AppliedDate.Equal(now) || !job.UpdatedDate.Equal(now) {
		t.Fatalf("expected appliedDate == updatedDate == now, got %v / %v", job.AppliedDate, job.UpdatedDate)
	}
}

func TestCreateRequiresCompanyAndRole(t *testing.T) {
	svc := newTestService(time.Now().UTC())

	cases := []struct {
		name    string
		company string
		role    string
	}{
		{"empty company", "", "Engineer"},
		{"empty role", "Acme", ""},
		{"whitespace company", "   ", "Engineer"},
		{"whitespace role", "Acme", "\t"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "user-1", CreateInput{Company: tc.company, Role: tc.role})
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(time.Now().UTC())

	_, err := svc.Create(context.Background(), "user-1", CreateInput{
		Company: "Acme",
		Role:    "Engineer",
		Status:  Status("GHOSTED"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateAcceptsInitialStatus(t *testing.T) {
	svc := newTestService(time.Now().UTC())

	job, err := svc.Create(context.Background(), "user-1", CreateInput{
		Company: "Acme",
		Role:    "Engineer",
		Status:  StatusApplied,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.Status != StatusApplied {
		t.Fatalf("expected APPLIED, got %s", job.Status)
	}
}

func TestUpdateStatus(t *testing.T) {
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(created)

	job, err := svc.Create(context.Background(), "user-1", CreateInput{Company: "Acme", Role: "Engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	later := created.Add(48 * time.Hour)
	svc.Now = func() time.Time { return later }

	updated, err := svc.UpdateStatus(context.Background(), "user-1", job.ID, StatusInterviewing)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != StatusInterviewing {
		t.Fatalf("expected INTERVIEWING, got %s", updated.Status)
	}
	if !updated.UpdatedDate.Equal(later) {
		t.Fatalf("expected updatedDate refreshed, got %v", updated.UpdatedDate)
	}
	if !updated.AppliedDate.Equal(created) {
		t.Fatalf("appliedDate must not change on status update, got %v", updated.AppliedDate)
	}
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	svc := newTestService(time.Now().UTC())

	job, err := svc.Create(context.Background(), "user-1", CreateInput{Company: "Acme", Role: "Engineer", Status: StatusRejected})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Users can undo mistakes: REJECTED back to APPLIED is legal.
	updated, err := svc.UpdateStatus(context.Background(), "user-1", job.ID, StatusApplied)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != StatusApplied {
		t.Fatalf("expected APPLIED, got %s", updated.Status)
	}
}

func TestUpdateStatusRejectsUnknownValueWithoutTouching(t *testing.T) {
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(created)

	job, err := svc.Create(context.Background(), "user-1", CreateInput{Company: "Acme", Role: "Engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc.Now = func() time.Time { return created.Add(time.Hour) }
	if _, err := svc.UpdateStatus(context.Background(), "user-1", job.ID, Status("saved")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for lowercase status, got %v", err)
	}

	stored, err := svc.Get(context.Background(), "user-1", job.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !stored.UpdatedDate.Equal(created) {
		t.Fatalf("updatedDate must not change on failed update, got %v", stored.UpdatedDate)
	}
}

func TestPatchIgnoresImmutableFieldsAndRefreshes(t *testing.T) {
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(created)

	job, err := svc.Create(context.Background(), "user-1", CreateInput{Company: "Acme", Role: "Engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	later := created.Add(time.Hour)
	svc.Now = func() time.Time { return later }

	salary := "$120k"
	status := StatusApplied
	patched, err := svc.Patch(context.Background(), "user-1", job.ID, PatchInput{
		Salary: &salary,
		Status: &status,
	})
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if patched.Salary != "$120k" || patched.Status != StatusApplied {
		t.Fatalf("patch not applied: %+v", patched)
	}
	if patched.ID != job.ID || patched.UserID != job.UserID {
		t.Fatalf("identity fields changed: %+v", patched)
	}
	if !patched.AppliedDate.Equal(created) {
		t.Fatalf("appliedDate must survive patches, got %v", patched.AppliedDate)
	}
	if !patched.UpdatedDate.Equal(later) {
		t.Fatalf("expected updatedDate refreshed, got %v", patched.UpdatedDate)
	}
}

func TestPatchRejectsEmptyRequiredFields(t *testing.T) {
	svc := newTestService(time.Now().UTC())

	job, err := svc.Create(context.Background(), "user-1", CreateInput{Company: "Acme", Role: "Engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	empty := "  "
	if _, err := svc.Patch(context.Background(), "user-1", job.ID, PatchInput{Company: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOwnershipEnforced(t *testing.T) {
	svc := newTestService(time.Now().UTC())

	job, err := svc.Create(context.Background(), "user-1", CreateInput{Company: "Acme", Role: "Engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(context.Background(), "user-2", job.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on get, got %v", err)
	}

	notes := "mine now"
	if _, err := svc.Patch(context.Background(), "user-2", job.ID, PatchInput{Notes: &notes}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on patch, got %v", err)
	}
	if err := svc.Delete(context.Background(), "user-2", job.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on delete, got %v", err)
	}

	// Record untouched after the rejected mutations.
	stored, err := svc.Get(context.Background(), "user-1", job.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Notes != "" {
		t.Fatalf("record mutated by non-owner: %+v", stored)
	}
}

func TestDeleteRemovesPermanently(t *testing.T) {
	svc := newTestService(time.Now().UTC())

	job, err := svc.Create(context.Background(), "user-1", CreateInput{Company: "Acme", Role: "Engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), "user-1", job.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), "user-1", job.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListSortsByUpdatedDateDescending(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(base)

	first, err := svc.Create(context.Background(), "user-1", CreateInput{Company: "Acme", Role: "Engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	svc.Now = func() time.Time { return base.Add(time.Hour) }
	second, err := svc.Create(context.Background(), "user-1", CreateInput{Company: "Globex", Role: "SRE"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Touching the older record moves it back to the front.
	svc.Now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, err := svc.UpdateStatus(context.Background(), "user-1", first.ID, StatusApplied); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	list, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
	if list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("expected most recently touched first, got %s then %s", list[0].ID, list[1].ID)
	}
}

package jobs

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const jobColumns = `id, user_id, company, role, status, url, salary, notes, experience_years, field, applied_date, updated_date`

// Create inserts a new job record.
func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (
    id,
    user_id,
    company,
    role,
    status,
    url,
    salary,
    notes,
    experience_years,
    field,
    applied_date,
    updated_date
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		job.ID,
		job.UserID,
		job.Company,
		job.Role,
		string(job.Status),
		job.URL,
		job.Salary,
		job.Notes,
		job.ExperienceYears,
		job.Field,
		job.AppliedDate,
		job.UpdatedDate,
	)
	return err
}

// GetByID fetches a job by ID regardless of owner.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Job, error) {
	const query = `
SELECT ` + jobColumns + `
FROM jobs
WHERE id = $1
LIMIT 1`
	var job Job
	var status string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&job.ID,
		&job.UserID,
		&job.Company,
		&job.Role,
		&status,
		&job.URL,
		&job.Salary,
		&job.Notes,
		&job.ExperienceYears,
		&job.Field,
		&job.AppliedDate,
		&job.UpdatedDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	job.Status = Status(status)
	return job, nil
}

// ListByUser lists the user's jobs ordered by updated_date descending.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Job, error) {
	const query = `
SELECT ` + jobColumns + `
FROM jobs
WHERE user_id = $1
ORDER BY updated_date DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var job Job
		var status string
		if err := rows.Scan(
			&job.ID,
			&job.UserID,
			&job.Company,
			&job.Role,
			&status,
			&job.URL,
			&job.Salary,
			&job.Notes,
			&job.ExperienceYears,
			&job.Field,
			&job.AppliedDate,
			&job.UpdatedDate,
		); err != nil {
			return nil, err
		}
		job.Status = Status(status)
		out = append(out, job)
	}
	return out, rows.Err()
}

// Update overwrites the mutable columns of an existing record, scoped by owner.
func (r *PGRepo) Update(ctx context.Context, job Job) error {
	const query = `
UPDATE jobs
SET company = $1,
    role = $2,
    status = $3,
    url = $4,
    salary = $5,
    notes = $6,
    experience_years = $7,
    field = $8,
    updated_date = $9
WHERE id = $10 AND user_id = $11`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		job.Company,
		job.Role,
		string(job.Status),
		job.URL,
		job.Salary,
		job.Notes,
		job.ExperienceYears,
		job.Field,
		job.UpdatedDate,
		job.ID,
		job.UserID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a job record permanently, scoped by owner.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM jobs WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)

package jobs

import "context"

// Repo defines persistence operations for job records. Single-record
// operations are assumed atomic; no multi-record transactions are required.
type Repo interface {
	Create(ctx context.Context, job Job) error
	GetByID(ctx context.Context, id string) (Job, error)
	ListByUser(ctx context.Context, userID string) ([]Job, error)
	Update(ctx context.Context, job Job) error
	Delete(ctx context.Context, userID, id string) error
}

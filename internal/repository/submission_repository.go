package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// SubmissionRepository defines the persistence interface for contact
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
//
// The repository is deliberately transition-agnostic: UpdateStatus writes
// whatever status it is handed. The forward-only lifecycle rule is enforced
// one layer up, in service, which is the only caller of this primitive.
type SubmissionRepository interface {
	// Create inserts a new submission and populates sub.ID and sub.CreatedAt.
	// Status is always written as "new" regardless of the struct's value.
	Create(ctx context.Context, sub *model.Submission) error

	// List returns all submissions, most recent first.
	List(ctx context.Context) ([]*model.Submission, error)

	// ListByStatus returns submissions with the given status, most recent first.
	ListByStatus(ctx context.Context, status model.Status) ([]*model.Submission, error)

	// CountByStatus returns the number of submissions with the given status.
	CountByStatus(ctx context.Context, status model.Status) (int, error)

	// GetByID returns the submission with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Submission, error)

	// UpdateStatus writes the status field of the submission with the given
	// id. Returns ErrNotFound when no such record exists.
	UpdateStatus(ctx context.Context, id string, status model.Status) error

	// Delete removes the submission. Returns ErrNotFound when no such record
	// exists. Deletion is terminal; there is no soft-delete.
	Delete(ctx context.Context, id string) error
}

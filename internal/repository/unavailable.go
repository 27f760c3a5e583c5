package repository

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/model"
)

// ErrStoreUnavailable is returned by every operation of
// UnavailableSubmissionRepository.
var ErrStoreUnavailable = errors.New("store unavailable")

// UnavailableSubmissionRepository stands in when the service starts without a
// working database connection. Every call fails with ErrStoreUnavailable, so
// the layers above degrade to their failure shapes instead of panicking on a
// nil pool. The presentation layer stays up; only submissions stop working.
type UnavailableSubmissionRepository struct{}

var _ SubmissionRepository = UnavailableSubmissionRepository{}

func (UnavailableSubmissionRepository) Create(ctx context.Context, sub *model.Submission) error {
	return ErrStoreUnavailable
}

func (UnavailableSubmissionRepository) List(ctx context.Context) ([]*model.Submission, error) {
	return nil, ErrStoreUnavailable
}

func (UnavailableSubmissionRepository) ListByStatus(ctx context.Context, status model.Status) ([]*model.Submission, error) {
	return nil, ErrStoreUnavailable
}

func (UnavailableSubmissionRepository) CountByStatus(ctx context.Context, status model.Status) (int, error) {
	return 0, ErrStoreUnavailable
}

func (UnavailableSubmissionRepository) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	return nil, ErrStoreUnavailable
}

func (UnavailableSubmissionRepository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	return ErrStoreUnavailable
}

func (UnavailableSubmissionRepository) Delete(ctx context.Context, id string) error {
	return ErrStoreUnavailable
}

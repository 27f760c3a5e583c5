package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PgSubmissionRepository is the PostgreSQL implementation of SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

// Ensure PgSubmissionRepository implements SubmissionRepository at compile time.
var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

const submissionColumns = `id, name, email, subject, message, status,
	COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at`

// Create inserts a new contact_submissions row. The id is generated here and
// created_at is stamped by the database; both are populated back onto sub.
// Optional provenance fields are stored as NULL when empty, never as ''.
func (r *PgSubmissionRepository) Create(ctx context.Context, sub *model.Submission) error {
	sub.ID = uuid.NewString()
	sub.Status = model.StatusNew
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (id, name, email, subject, message, status, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''))
		 RETURNING created_at`,
		sub.ID, sub.Name, sub.Email, sub.Subject, sub.Message, sub.Status,
		sub.IPAddress, sub.UserAgent,
	).Scan(&sub.CreatedAt)
}

// List returns all submissions ordered by created_at descending.
func (r *PgSubmissionRepository) List(ctx context.Context) ([]*model.Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+submissionColumns+`
		 FROM contact_submissions
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

// ListByStatus returns submissions with the given status, most recent first.
func (r *PgSubmissionRepository) ListByStatus(ctx context.Context, status model.Status) ([]*model.Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+submissionColumns+`
		 FROM contact_submissions
		 WHERE status = $1
		 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

// CountByStatus returns the number of submissions with the given status.
func (r *PgSubmissionRepository) CountByStatus(ctx context.Context, status model.Status) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_submissions WHERE status = $1`, status,
	).Scan(&n)
	return n, err
}

// GetByID returns a single submission or ErrNotFound.
func (r *PgSubmissionRepository) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	var s model.Submission
	err := r.pool.QueryRow(ctx,
		`SELECT `+submissionColumns+`
		 FROM contact_submissions
		 WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.Status,
		&s.IPAddress, &s.UserAgent, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateStatus writes the status field only. id and created_at are immutable.
func (r *PgSubmissionRepository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_submissions SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row. Terminal; no recovery path.
func (r *PgSubmissionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSubmissions(rows pgx.Rows) ([]*model.Submission, error) {
	var subs []*model.Submission
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message,
			&s.Status, &s.IPAddress, &s.UserAgent, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

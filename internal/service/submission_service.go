package service

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/model"
)

// ErrInvalidTransition is returned when a status change does not follow the
// forward-only lifecycle (new → read → replied). No store write happens.
var ErrInvalidTransition = errors.New("invalid status transition")

// SubmitResult is the outcome of a contact-form submission. Submit never
// returns a Go error: store failures are folded into Success=false with an
// operator-safe message, and validation failures carry per-field codes.
type SubmitResult struct {
	Success     bool              `json:"success"`
	ID          string            `json:"id,omitempty"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"errors,omitempty"`
}

// Overview bundles the admin dashboard's initial load: the submission list
// and the number of submissions still marked new.
type Overview struct {
	Submissions []*model.Submission `json:"submissions"`
	UnreadCount int                 `json:"unread_count"`
}

// SubmissionService owns the contact submission lifecycle. It is the single
// authority for the forward-only status rule and the only caller of the
// repository's raw status-update primitive.
type SubmissionService interface {
	// Submit validates, sanitizes and persists a contact-form entry.
	Submit(ctx context.Context, in model.FormInput, prov model.Provenance) SubmitResult

	// List returns all submissions, most recent first. Degrades to an empty
	// slice when the store is unreachable; the failure is logged.
	List(ctx context.Context) []*model.Submission

	// ListByStatus returns submissions with the given status, most recent
	// first. Same degradation as List.
	ListByStatus(ctx context.Context, status model.Status) []*model.Submission

	// UnreadCount returns the number of submissions with status new.
	// Degrades to 0 when the store is unreachable.
	UnreadCount(ctx context.Context) int

	// Overview fetches the list and the unread count concurrently.
	Overview(ctx context.Context) Overview

	// MarkAsRead advances a submission new → read.
	MarkAsRead(ctx context.Context, id string) error

	// MarkAsReplied advances a submission new → replied or read → replied.
	MarkAsReplied(ctx context.Context, id string) error

	// Delete removes a submission from any state. Terminal.
	Delete(ctx context.Context, id string) error
}

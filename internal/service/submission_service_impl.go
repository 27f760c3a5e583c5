package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/validate"
)

const submitFailedMessage = "Failed to submit contact form. Please try again."

// submissionServiceImpl is the production implementation of SubmissionService.
type submissionServiceImpl struct {
	repo    repository.SubmissionRepository
	backoff func() retry.Backoff
}

// NewSubmissionService creates a SubmissionService backed by the given
// repository. Creates are retried with a short fibonacci backoff: a lost
// contact submission is the one failure this system actually pays for.
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionServiceImpl{
		repo: repo,
		backoff: func() retry.Backoff {
			b := retry.NewFibonacci(time.Millisecond * 100)
			return retry.WithMaxRetries(3, b)
		},
	}
}

// NewSubmissionServiceBackoff is NewSubmissionService with an injectable
// backoff factory, used by tests to avoid real sleeps.
func NewSubmissionServiceBackoff(repo repository.SubmissionRepository, backoff func() retry.Backoff) SubmissionService {
	return &submissionServiceImpl{repo: repo, backoff: backoff}
}

// Submit runs validation, sanitization and the persisted create, in that
// order. Validation failure stops before any store call.
func (s *submissionServiceImpl) Submit(ctx context.Context, in model.FormInput, prov model.Provenance) SubmitResult {
	if errs := validate.Form(in); len(errs) > 0 {
		return SubmitResult{
			Success:     false,
			Message:     "Please correct the highlighted fields.",
			FieldErrors: errs,
		}
	}

	in = validate.SanitizeForm(in)
	sub := &model.Submission{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		IPAddress: prov.IPAddress,
		UserAgent: prov.UserAgent,
	}

	err := retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		if err := s.repo.Create(ctx, sub); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.Error("submission create failed", "email", sub.Email, "error", err)
		return SubmitResult{Success: false, Message: submitFailedMessage}
	}

	slog.Info("submission created", "id", sub.ID)
	return SubmitResult{
		Success: true,
		ID:      sub.ID,
		Message: "Contact form submitted successfully!",
	}
}

// List degrades to an empty slice on store failure. Callers cannot tell
// "no data" from "store unreachable"; the log line is for operators.
func (s *submissionServiceImpl) List(ctx context.Context) []*model.Submission {
	subs, err := s.repo.List(ctx)
	if err != nil {
		slog.Error("submission list failed", "error", err)
		return nil
	}
	return subs
}

func (s *submissionServiceImpl) ListByStatus(ctx context.Context, status model.Status) []*model.Submission {
	subs, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		slog.Error("submission list by status failed", "status", status, "error", err)
		return nil
	}
	return subs
}

// UnreadCount degrades to 0 on store failure.
func (s *submissionServiceImpl) UnreadCount(ctx context.Context) int {
	n, err := s.repo.CountByStatus(ctx, model.StatusNew)
	if err != nil {
		slog.Error("unread count failed", "error", err)
		return 0
	}
	return n
}

// Overview fetches the full list and the unread count concurrently.
func (s *submissionServiceImpl) Overview(ctx context.Context) Overview {
	var ov Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ov.Submissions = s.List(gctx)
		return nil
	})
	g.Go(func() error {
		ov.UnreadCount = s.UnreadCount(gctx)
		return nil
	})
	_ = g.Wait() // both branches degrade internally and never return an error

	if ov.Submissions == nil {
		ov.Submissions = []*model.Submission{}
	}
	return ov
}

// MarkAsRead advances new → read.
func (s *submissionServiceImpl) MarkAsRead(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusRead)
}

// MarkAsReplied advances new → replied or read → replied.
func (s *submissionServiceImpl) MarkAsReplied(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusReplied)
}

// transition checks the forward-only rule against the submission's current
// status before touching the store. Invalid requests are rejected locally
// with ErrInvalidTransition and cause no write.
func (s *submissionServiceImpl) transition(ctx context.Context, id string, to model.Status) error {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !model.CanTransition(sub.Status, to) {
		slog.Warn("status transition rejected", "id", id, "from", sub.Status, "to", to)
		return ErrInvalidTransition
	}
	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		slog.Error("status update failed", "id", id, "to", to, "error", err)
		return err
	}
	slog.Info("status updated", "id", id, "from", sub.Status, "to", to)
	return nil
}

// Delete removes a submission regardless of its status.
func (s *submissionServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Error("submission delete failed", "id", id, "error", err)
		}
		return err
	}
	slog.Info("submission deleted", "id", id)
	return nil
}

package handler

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
)

// SubmissionHandler handles the public contact form and the admin triage API.
type SubmissionHandler struct {
	submissionService service.SubmissionService
}

// NewSubmissionHandler creates a SubmissionHandler with the given service.
func NewSubmissionHandler(submissionService service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// Submit handles POST /api/contact.
// All four fields are required; validation errors come back per field. The
// client IP and User-Agent are captured opportunistically and never required.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var in model.FormInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	prov := model.Provenance{
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	}

	res := h.submissionService.Submit(r.Context(), in, prov)
	switch {
	case res.Success:
		w.WriteHeader(http.StatusCreated)
	case res.FieldErrors != nil:
		w.WriteHeader(http.StatusBadRequest)
	default:
		// store failure; the client may simply resubmit
		w.WriteHeader(http.StatusBadGateway)
	}
	_ = json.NewEncoder(w).Encode(res)
}

// AdminOverview handles GET /api/admin/submissions.
// Returns the submission list (optionally filtered by ?status=) together with
// the unread count, fetched in one round trip so the dashboard renders both.
func (h *SubmissionHandler) AdminOverview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !auth.IsAdminFromContext(r.Context()) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
		return
	}

	if raw := r.URL.Query().Get("status"); raw != "" && raw != "all" {
		status := model.Status(raw)
		if !model.ValidStatus(status) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_status"})
			return
		}
		subs := h.submissionService.ListByStatus(r.Context(), status)
		if subs == nil {
			subs = []*model.Submission{}
		}
		_ = json.NewEncoder(w).Encode(service.Overview{
			Submissions: subs,
			UnreadCount: h.submissionService.UnreadCount(r.Context()),
		})
		return
	}

	_ = json.NewEncoder(w).Encode(h.submissionService.Overview(r.Context()))
}

// updateStatusRequest is the expected body for PATCH .../{id}/status.
type updateStatusRequest struct {
	Status model.Status `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/submissions/{id}/status.
// Only the two admin actions exist: mark read and mark replied. The lifecycle
// rule is enforced by the service; a rejected edge comes back as 409.
func (h *SubmissionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !auth.IsAdminFromContext(r.Context()) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
		return
	}

	id := r.PathValue("id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	var err error
	switch req.Status {
	case model.StatusRead:
		err = h.submissionService.MarkAsRead(r.Context(), id)
	case model.StatusReplied:
		err = h.submissionService.MarkAsReplied(r.Context(), id)
	default:
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_status"})
		return
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	case errors.Is(err, service.ErrInvalidTransition):
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_transition"})
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
	default:
		_ = json.NewEncoder(w).Encode(map[string]string{"id": id, "status": string(req.Status)})
	}
}

// Delete handles DELETE /api/admin/submissions/{id}. Terminal, no recovery.
func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !auth.IsAdminFromContext(r.Context()) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
		return
	}

	id := r.PathValue("id")
	err := h.submissionService.Delete(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
	case err != nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delete_failed"})
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// clientIP extracts the submitting client's IP, preferring the first
// X-Forwarded-For hop when the service sits behind a proxy.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package model

import "time"

// Status is the lifecycle state of a contact submission.
type Status string

const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied:
		return true
	}
	return false
}

// CanTransition reports whether a submission may move from one status to
// another. Status only advances: new → read, new → replied, read → replied.
// Everything else, including same-state writes, is rejected.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusNew:
		return to == StatusRead || to == StatusReplied
	case StatusRead:
		return to == StatusReplied
	}
	return false
}

// Submission is one contact-form entry. ID and CreatedAt are assigned by the
// persistence layer on create and never change afterwards.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FormInput carries the four required fields of a contact form before
// validation and sanitization.
type FormInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Provenance is optional client metadata captured opportunistically at
// submission time. Empty fields are never persisted.
type Provenance struct {
	IPAddress string
	UserAgent string
}

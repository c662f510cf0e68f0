package dto

import (
	"strconv"
	"time"

	"atrium/internal/domain/forms"
)

// SubmitFormRequest represents the client-supplied portion of a submission.
// Field rules are enforced by the domain in a fixed order, so bindings here
// stay loose on purpose.
type SubmitFormRequest struct {
	FormType string `json:"formType" binding:"required,formtype"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Service  string `json:"service"`
	Message  string `json:"message"`
}

// SubmissionResponse represents a stored submission for API consumers.
type SubmissionResponse struct {
	ID             string `json:"id"`
	FormType       string `json:"formType"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Subject        string `json:"subject,omitempty"`
	Service        string `json:"service,omitempty"`
	Message        string `json:"message"`
	SubmittedBy    string `json:"submittedBy"`
	SubmittedEmail string `json:"submittedEmail"`
	CreatedAt      string `json:"createdAt"`
}

// NewSubmissionResponse converts a domain submission to its API representation.
func NewSubmissionResponse(s *forms.Submission) *SubmissionResponse {
	if s == nil {
		return nil
	}
	return &SubmissionResponse{
		ID:             strconv.FormatUint(uint64(s.ID), 10),
		FormType:       s.FormType.String(),
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		Subject:        s.Subject,
		Service:        s.Service,
		Message:        s.Message,
		SubmittedBy:    s.SubmittedBy,
		SubmittedEmail: s.SubmittedEmail,
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewSubmissionResponseList converts a slice of domain submissions.
func NewSubmissionResponseList(submissions []*forms.Submission) []*SubmissionResponse {
	responses := make([]*SubmissionResponse, 0, len(submissions))
	for _, s := range submissions {
		responses = append(responses, NewSubmissionResponse(s))
	}
	return responses
}

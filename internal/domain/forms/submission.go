package forms

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// FormType identifies which of the site's forms produced a submission.
type FormType string

const (
	FormTypePortfolio FormType = "portfolio"
	FormTypeServices  FormType = "services"
	FormTypeContact   FormType = "contact"
)

func (t FormType) String() string {
	return string(t)
}

func (t FormType) IsValid() bool {
	switch t {
	case FormTypePortfolio, FormTypeServices, FormTypeContact:
		return true
	}
	return false
}

const (
	maxServiceLength = 100
	maxSubjectLength = 100
	maxMessageLength = 500
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidationError reports which intake rule a submission failed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Submission is a persisted contact/service/portfolio inquiry.
// SubmittedBy and SubmittedEmail come from the authenticated session,
// never from client input.
type Submission struct {
	ID             uint
	FormType       FormType
	Name           string
	Email          string
	Phone          string
	Subject        string
	Service        string
	Message        string
	SubmittedBy    string
	SubmittedEmail string
	CreatedAt      time.Time
}

// SubmissionInput is the client-supplied portion of a submission.
type SubmissionInput struct {
	FormType string
	Name     string
	Email    string
	Phone    string
	Subject  string
	Service  string
	Message  string
}

// NewSubmission validates the input and builds a submission attributed to the
// given session identity. Rules are checked in a fixed order so the first
// failing rule is the one reported.
func NewSubmission(input SubmissionInput, submittedBy, submittedEmail string) (*Submission, error) {
	formType := FormType(input.FormType)
	if !formType.IsValid() {
		return nil, &ValidationError{Field: "formType", Message: "Invalid form type"}
	}

	// Length rules count characters, not bytes, so multi-byte text is
	// measured the way the person typing it would count it.
	name := strings.TrimSpace(input.Name)
	if utf8.RuneCountInString(name) < 2 {
		return nil, &ValidationError{Field: "name", Message: "Name must be at least 2 characters"}
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Field: "email", Message: "Valid email is required"}
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, &ValidationError{Field: "message", Message: "Message is required"}
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return nil, &ValidationError{Field: "message", Message: "Message cannot exceed 500 characters"}
	}

	service := strings.TrimSpace(input.Service)
	if formType == FormTypeServices {
		if service == "" {
			return nil, &ValidationError{Field: "service", Message: "Service is required for services form"}
		}
		if utf8.RuneCountInString(service) > maxServiceLength {
			return nil, &ValidationError{Field: "service", Message: "Service field cannot exceed 100 characters"}
		}
	}

	phone := strings.TrimSpace(input.Phone)
	subject := strings.TrimSpace(input.Subject)
	if formType == FormTypeContact {
		if !phonePattern.MatchString(phone) {
			return nil, &ValidationError{Field: "phone", Message: "Valid 10-digit phone number required"}
		}
		if subject == "" {
			return nil, &ValidationError{Field: "subject", Message: "Subject is required"}
		}
		if utf8.RuneCountInString(subject) > maxSubjectLength {
			return nil, &ValidationError{Field: "subject", Message: "Subject cannot exceed 100 characters"}
		}
	}

	return &Submission{
		FormType:       formType,
		Name:           name,
		Email:          email,
		Phone:          phone,
		Subject:        subject,
		Service:        service,
		Message:        message,
		SubmittedBy:    submittedBy,
		SubmittedEmail: strings.ToLower(submittedEmail),
		CreatedAt:      time.Now(),
	}, nil
}

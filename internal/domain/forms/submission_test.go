package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactInput() SubmissionInput {
	return SubmissionInput{
		FormType: "contact",
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "5551234567",
		Subject:  "Hello",
		Message:  "I would like to get in touch.",
	}
}

func TestNewSubmission_Contact(t *testing.T) {
	sub, err := NewSubmission(validContactInput(), "Session User", "Session@Example.com")
	require.NoError(t, err)

	assert.Equal(t, FormTypeContact, sub.FormType)
	assert.Equal(t, "Jane Doe", sub.Name)
	assert.Equal(t, "jane@example.com", sub.Email)
	assert.Equal(t, "Session User", sub.SubmittedBy)
	assert.Equal(t, "session@example.com", sub.SubmittedEmail)
	assert.False(t, sub.CreatedAt.IsZero())
}

func TestNewSubmission_InvalidFormType(t *testing.T) {
	input := validContactInput()
	input.FormType = "newsletter"

	_, err := NewSubmission(input, "x", "x@y.z")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "formType", verr.Field)
}

func TestNewSubmission_ValidationOrder(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SubmissionInput)
		wantField string
	}{
		{
			name:      "short name",
			mutate:    func(in *SubmissionInput) { in.Name = " a " },
			wantField: "name",
		},
		{
			name:      "bad email",
			mutate:    func(in *SubmissionInput) { in.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "blank message",
			mutate:    func(in *SubmissionInput) { in.Message = "   " },
			wantField: "message",
		},
		{
			name:      "contact without phone",
			mutate:    func(in *SubmissionInput) { in.Phone = "" },
			wantField: "phone",
		},
		{
			name:      "contact with short phone",
			mutate:    func(in *SubmissionInput) { in.Phone = "12345" },
			wantField: "phone",
		},
		{
			name:      "contact without subject",
			mutate:    func(in *SubmissionInput) { in.Subject = "" },
			wantField: "subject",
		},
		{
			name: "bad email reported before bad phone",
			mutate: func(in *SubmissionInput) {
				in.Email = "nope"
				in.Phone = ""
			},
			wantField: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validContactInput()
			tt.mutate(&input)

			_, err := NewSubmission(input, "x", "x@y.z")
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestNewSubmission_LengthRulesCountCharacters(t *testing.T) {
	t.Run("multi-byte message within the cap is accepted", func(t *testing.T) {
		input := validContactInput()
		input.Message = strings.Repeat("好", 500)

		_, err := NewSubmission(input, "x", "x@y.z")
		assert.NoError(t, err)
	})

	t.Run("message one character over the cap is rejected", func(t *testing.T) {
		input := validContactInput()
		input.Message = strings.Repeat("好", 501)

		_, err := NewSubmission(input, "x", "x@y.z")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "message", verr.Field)
	})

	t.Run("single multi-byte character fails the name minimum", func(t *testing.T) {
		input := validContactInput()
		input.Name = "é"

		_, err := NewSubmission(input, "x", "x@y.z")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("two multi-byte characters satisfy the name minimum", func(t *testing.T) {
		input := validContactInput()
		input.Name = "éé"

		sub, err := NewSubmission(input, "x", "x@y.z")
		require.NoError(t, err)
		assert.Equal(t, "éé", sub.Name)
	})

	t.Run("multi-byte subject at the cap is accepted", func(t *testing.T) {
		input := validContactInput()
		input.Subject = strings.Repeat("好", 100)

		_, err := NewSubmission(input, "x", "x@y.z")
		assert.NoError(t, err)
	})

	t.Run("multi-byte service at the cap is accepted", func(t *testing.T) {
		input := SubmissionInput{
			FormType: "services",
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Service:  strings.Repeat("好", 100),
			Message:  "Interested in a website.",
		}

		_, err := NewSubmission(input, "x", "x@y.z")
		assert.NoError(t, err)
	})
}

func TestNewSubmission_ServicesRequiresService(t *testing.T) {
	input := SubmissionInput{
		FormType: "services",
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Message:  "Interested in a website.",
	}

	_, err := NewSubmission(input, "x", "x@y.z")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "service", verr.Field)

	input.Service = "Web Development"
	sub, err := NewSubmission(input, "x", "x@y.z")
	require.NoError(t, err)
	assert.Equal(t, "Web Development", sub.Service)
}

func TestNewSubmission_PortfolioSkipsConditionalFields(t *testing.T) {
	input := SubmissionInput{
		FormType: "portfolio",
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Message:  "Nice work!",
	}

	sub, err := NewSubmission(input, "x", "x@y.z")
	require.NoError(t, err)
	assert.Empty(t, sub.Phone)
	assert.Empty(t, sub.Subject)
	assert.Empty(t, sub.Service)
}

package usecases

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"

	"atrium/internal/application/forms/dto"
	"atrium/internal/domain/forms"
	apperrors "atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type SubmitFormCommand struct {
	Input          forms.SubmissionInput
	SubmittedBy    string
	SubmittedEmail string
}

type SubmitFormUseCase struct {
	submissionRepo forms.Repository
	sanitizer      *bluemonday.Policy
	logger         logger.Interface
}

func NewSubmitFormUseCase(submissionRepo forms.Repository, logger logger.Interface) *SubmitFormUseCase {
	return &SubmitFormUseCase{
		submissionRepo: submissionRepo,
		sanitizer:      bluemonday.StrictPolicy(),
		logger:         logger,
	}
}

func (uc *SubmitFormUseCase) Execute(ctx context.Context, cmd SubmitFormCommand) (*dto.SubmissionResponse, error) {
	input := uc.sanitizeInput(cmd.Input)

	submission, err := forms.NewSubmission(input, cmd.SubmittedBy, cmd.SubmittedEmail)
	if err != nil {
		var ve *forms.ValidationError
		if errors.As(err, &ve) {
			return nil, apperrors.NewValidationError(ve.Message, ve.Field)
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.submissionRepo.Create(ctx, submission); err != nil {
		uc.logger.Errorw("failed to store submission", "error", err, "form_type", submission.FormType)
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	uc.logger.Infow("form submission stored",
		"submission_id", submission.ID,
		"form_type", submission.FormType,
	)

	return dto.NewSubmissionResponse(submission), nil
}

// sanitizeInput strips markup from every free-text field before validation so
// stored values are plain text.
func (uc *SubmitFormUseCase) sanitizeInput(input forms.SubmissionInput) forms.SubmissionInput {
	input.Name = uc.sanitizeText(input.Name)
	input.Subject = uc.sanitizeText(input.Subject)
	input.Service = uc.sanitizeText(input.Service)
	input.Message = uc.sanitizeText(input.Message)
	return input
}

// sanitizeText strips markup, then unescapes the entities the policy emitted
// so characters like & and ' are stored as typed and length rules measure the
// original text.
func (uc *SubmitFormUseCase) sanitizeText(s string) string {
	return html.UnescapeString(uc.sanitizer.Sanitize(s))
}

package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/forms"
	apperrors "atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type DeleteSubmissionUseCase struct {
	submissionRepo forms.Repository
	logger         logger.Interface
}

func NewDeleteSubmissionUseCase(submissionRepo forms.Repository, logger logger.Interface) *DeleteSubmissionUseCase {
	return &DeleteSubmissionUseCase{
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

func (uc *DeleteSubmissionUseCase) Execute(ctx context.Context, id uint) error {
	existing, err := uc.submissionRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get submission", "error", err, "submission_id", id)
		return fmt.Errorf("failed to get submission: %w", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("submission not found")
	}

	if err := uc.submissionRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete submission", "error", err, "submission_id", id)
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	uc.logger.Infow("submission deleted", "submission_id", id)
	return nil
}

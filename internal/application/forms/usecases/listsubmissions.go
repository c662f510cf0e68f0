package usecases

import (
	"context"
	"fmt"

	"atrium/internal/application/forms/dto"
	"atrium/internal/domain/forms"
	"atrium/internal/shared/logger"
)

type ListSubmissionsUseCase struct {
	submissionRepo forms.Repository
	logger         logger.Interface
}

func NewListSubmissionsUseCase(submissionRepo forms.Repository, logger logger.Interface) *ListSubmissionsUseCase {
	return &ListSubmissionsUseCase{
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

func (uc *ListSubmissionsUseCase) Execute(ctx context.Context) ([]*dto.SubmissionResponse, error) {
	submissions, err := uc.submissionRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list submissions", "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return dto.NewSubmissionResponseList(submissions), nil
}

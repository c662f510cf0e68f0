package usecases

import (
	"context"
	"fmt"

	"atrium/internal/application/account/dto"
	"atrium/internal/domain/account"
	apperrors "atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type UpdateAccountStatusCommand struct {
	AccountID uint
	Status    string
}

type UpdateAccountStatusUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewUpdateAccountStatusUseCase(accountRepo account.Repository, logger logger.Interface) *UpdateAccountStatusUseCase {
	return &UpdateAccountStatusUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *UpdateAccountStatusUseCase) Execute(ctx context.Context, cmd UpdateAccountStatusCommand) (*dto.AccountResponse, error) {
	existing, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get account", "error", err, "account_id", cmd.AccountID)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("account not found")
	}

	if err := existing.SetStatus(account.Status(cmd.Status)); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update account status", "error", err, "account_id", cmd.AccountID)
		return nil, fmt.Errorf("failed to update account status: %w", err)
	}

	uc.logger.Infow("account status updated", "account_id", cmd.AccountID, "status", cmd.Status)
	return dto.NewAccountResponse(existing), nil
}

package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/account"
	apperrors "atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type DeleteAccountCommand struct {
	AccountID   uint
	RequesterID uint
}

type DeleteAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewDeleteAccountUseCase(accountRepo account.Repository, logger logger.Interface) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *DeleteAccountUseCase) Execute(ctx context.Context, cmd DeleteAccountCommand) error {
	if cmd.AccountID == cmd.RequesterID {
		return apperrors.NewConflictError("you cannot delete your own account")
	}

	existing, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get account", "error", err, "account_id", cmd.AccountID)
		return fmt.Errorf("failed to get account: %w", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("account not found")
	}

	if err := uc.accountRepo.Delete(ctx, cmd.AccountID); err != nil {
		uc.logger.Errorw("failed to delete account", "error", err, "account_id", cmd.AccountID)
		return fmt.Errorf("failed to delete account: %w", err)
	}

	uc.logger.Infow("account deleted", "account_id", cmd.AccountID, "deleted_by", cmd.RequesterID)
	return nil
}

package usecases

import (
	"context"
	"fmt"

	"atrium/internal/application/account/dto"
	"atrium/internal/domain/account"
	apperrors "atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type GetCurrentAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewGetCurrentAccountUseCase(accountRepo account.Repository, logger logger.Interface) *GetCurrentAccountUseCase {
	return &GetCurrentAccountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *GetCurrentAccountUseCase) Execute(ctx context.Context, accountID uint) (*dto.AccountResponse, error) {
	acc, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get account", "error", err, "account_id", accountID)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acc == nil {
		return nil, apperrors.NewNotFoundError("account not found")
	}
	return dto.NewAccountResponse(acc), nil
}

package usecases

import (
	"context"
	"fmt"

	"atrium/internal/application/account/dto"
	"atrium/internal/domain/account"
	"atrium/internal/shared/logger"
)

type ListAccountsUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewListAccountsUseCase(accountRepo account.Repository, logger logger.Interface) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *ListAccountsUseCase) Execute(ctx context.Context) ([]*dto.AccountResponse, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list accounts", "error", err)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return dto.NewAccountResponseList(accounts), nil
}

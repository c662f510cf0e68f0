package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atrium/internal/domain/account"
	apperrors "atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

func storedAccount(t *testing.T, id uint, email string) *account.Account {
	t.Helper()
	a, err := account.NewAccount(account.SignInProfile{
		Provider:          "google",
		ProviderAccountID: "108234",
		Email:             email,
		Name:              "Test Person",
	}, account.SignInMetadata{At: time.Now()}, false)
	require.NoError(t, err)
	a.ID = id
	return a
}

func TestDeleteAccount(t *testing.T) {
	repo := new(mockAccountRepository)
	uc := NewDeleteAccountUseCase(repo, logger.NewLogger())

	repo.On("GetByID", mock.Anything, uint(2)).Return(storedAccount(t, 2, "target@example.com"), nil)
	repo.On("Delete", mock.Anything, uint(2)).Return(nil)

	err := uc.Execute(context.Background(), DeleteAccountCommand{AccountID: 2, RequesterID: 1})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteAccount_SelfDeleteRejected(t *testing.T) {
	repo := new(mockAccountRepository)
	uc := NewDeleteAccountUseCase(repo, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteAccountCommand{AccountID: 1, RequesterID: 1})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))

	appErr := apperrors.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteAccount_MissingAccount(t *testing.T) {
	repo := new(mockAccountRepository)
	uc := NewDeleteAccountUseCase(repo, logger.NewLogger())

	repo.On("GetByID", mock.Anything, uint(9)).Return(nil, nil)

	err := uc.Execute(context.Background(), DeleteAccountCommand{AccountID: 9, RequesterID: 1})
	assert.True(t, apperrors.IsNotFoundError(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUpdateAccountStatus(t *testing.T) {
	repo := new(mockAccountRepository)
	uc := NewUpdateAccountStatusUseCase(repo, logger.NewLogger())

	repo.On("GetByID", mock.Anything, uint(2)).Return(storedAccount(t, 2, "target@example.com"), nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
		return a.Status == account.StatusBanned
	})).Return(nil)

	resp, err := uc.Execute(context.Background(), UpdateAccountStatusCommand{AccountID: 2, Status: "banned"})
	require.NoError(t, err)
	assert.Equal(t, "banned", resp.Status)
	repo.AssertExpectations(t)
}

func TestUpdateAccountStatus_InvalidStatus(t *testing.T) {
	repo := new(mockAccountRepository)
	uc := NewUpdateAccountStatusUseCase(repo, logger.NewLogger())

	repo.On("GetByID", mock.Anything, uint(2)).Return(storedAccount(t, 2, "target@example.com"), nil)

	_, err := uc.Execute(context.Background(), UpdateAccountStatusCommand{AccountID: 2, Status: "suspended"})
	assert.True(t, apperrors.IsValidationError(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateAccountStatus_MissingAccount(t *testing.T) {
	repo := new(mockAccountRepository)
	uc := NewUpdateAccountStatusUseCase(repo, logger.NewLogger())

	repo.On("GetByID", mock.Anything, uint(9)).Return(nil, nil)

	_, err := uc.Execute(context.Background(), UpdateAccountStatusCommand{AccountID: 9, Status: "banned"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestListAccounts(t *testing.T) {
	repo := new(mockAccountRepository)
	uc := NewListAccountsUseCase(repo, logger.NewLogger())

	repo.On("List", mock.Anything).Return([]*account.Account{
		storedAccount(t, 2, "newer@example.com"),
		storedAccount(t, 1, "older@example.com"),
	}, nil)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "2", resp[0].ID)
	assert.Equal(t, "newer@example.com", resp[0].Email)
	assert.NotNil(t, resp[0].LastLogin)
}

func TestGetCurrentAccount(t *testing.T) {
	repo := new(mockAccountRepository)
	uc := NewGetCurrentAccountUseCase(repo, logger.NewLogger())

	repo.On("GetByID", mock.Anything, uint(2)).Return(storedAccount(t, 2, "jane@example.com"), nil)

	resp, err := uc.Execute(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)
}

func TestGetCurrentAccount_Missing(t *testing.T) {
	repo := new(mockAccountRepository)
	uc := NewGetCurrentAccountUseCase(repo, logger.NewLogger())

	repo.On("GetByID", mock.Anything, uint(9)).Return(nil, nil)

	_, err := uc.Execute(context.Background(), 9)
	assert.True(t, apperrors.IsNotFoundError(err))
}

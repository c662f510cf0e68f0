package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atrium/internal/domain/account"
	"atrium/internal/infrastructure/auth"
	"atrium/internal/infrastructure/cache"
	"atrium/internal/shared/authorization"
	apperrors "atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type callbackFixture struct {
	repo    *mockAccountRepository
	clients *mockClientResolver
	store   *mockStateStore
	minter  *mockTokenMinter
	oauth   *mockOAuthClient
	usecase *HandleOAuthCallbackUseCase
}

func newCallbackFixture(adminEmails ...string) *callbackFixture {
	allow := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		allow[email] = struct{}{}
	}

	f := &callbackFixture{
		repo:    new(mockAccountRepository),
		clients: new(mockClientResolver),
		store:   new(mockStateStore),
		minter:  new(mockTokenMinter),
		oauth:   new(mockOAuthClient),
	}
	f.usecase = NewHandleOAuthCallbackUseCase(f.repo, f.clients, f.store, f.minter, allow, logger.NewLogger())
	return f
}

func validCommand() HandleOAuthCallbackCommand {
	return HandleOAuthCallbackCommand{
		Provider:  "google",
		Code:      "auth-code",
		State:     "state-token",
		IPAddress: "203.0.113.7",
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36",
	}
}

func validStateInfo() *cache.StateInfo {
	return &cache.StateInfo{
		Provider:     "google",
		CodeVerifier: "verifier",
		CreatedAt:    time.Now(),
	}
}

func validUserInfo() *auth.OAuthUserInfo {
	return &auth.OAuthUserInfo{
		Email:         "jane@example.com",
		Name:          "Jane Doe",
		Picture:       "https://example.com/a.png",
		EmailVerified: true,
		Provider:      "google",
		ProviderID:    "108234",
	}
}

func (f *callbackFixture) expectHappyProviderFlow() {
	f.store.On("VerifyAndGet", mock.Anything, "state-token").Return(validStateInfo(), nil)
	f.clients.On("Get", "google").Return(f.oauth, nil)
	f.oauth.On("ExchangeCode", mock.Anything, "auth-code", "verifier").Return("provider-token", nil)
	f.oauth.On("GetUserInfo", mock.Anything, "provider-token").Return(validUserInfo(), nil)
}

func TestHandleOAuthCallback_NewAccount(t *testing.T) {
	f := newCallbackFixture()
	f.expectHappyProviderFlow()

	f.repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
		return a.Email == "jane@example.com" &&
			a.Role == authorization.RoleUser &&
			a.LoginCount == 1 &&
			a.EmailVerified
	})).Return(nil)
	f.minter.On("Generate", mock.Anything).Return(&auth.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    900,
	}, nil)

	result, err := f.usecase.Execute(context.Background(), validCommand())
	require.NoError(t, err)
	assert.True(t, result.IsNewAccount)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
	f.repo.AssertExpectations(t)
}

func TestHandleOAuthCallback_ReturningAccount(t *testing.T) {
	f := newCallbackFixture()
	f.expectHappyProviderFlow()

	existing, err := account.NewAccount(account.SignInProfile{
		Provider:          "google",
		ProviderAccountID: "108234",
		Email:             "jane@example.com",
		Name:              "Jane Doe",
	}, account.SignInMetadata{At: time.Now().Add(-24 * time.Hour)}, false)
	require.NoError(t, err)
	existing.ID = 7

	f.repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(existing, nil)
	f.repo.On("Update", mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
		return a.ID == 7 && a.LoginCount == 2
	})).Return(nil)
	f.minter.On("Generate", mock.MatchedBy(func(p auth.SessionProfile) bool {
		return p.AccountID == 7 && p.Role == authorization.RoleUser
	})).Return(&auth.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	result, err := f.usecase.Execute(context.Background(), validCommand())
	require.NoError(t, err)
	assert.False(t, result.IsNewAccount)
	assert.Equal(t, uint(2), result.Account.LoginCount)
	f.repo.AssertExpectations(t)
}

func TestHandleOAuthCallback_AllowListedEmailGetsAdmin(t *testing.T) {
	f := newCallbackFixture("jane@example.com")
	f.expectHappyProviderFlow()

	f.repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
		return a.Role == authorization.RoleAdmin
	})).Return(nil)
	f.minter.On("Generate", mock.MatchedBy(func(p auth.SessionProfile) bool {
		return p.Role == authorization.RoleAdmin
	})).Return(&auth.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	_, err := f.usecase.Execute(context.Background(), validCommand())
	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}

func TestHandleOAuthCallback_InvalidState(t *testing.T) {
	f := newCallbackFixture()
	f.store.On("VerifyAndGet", mock.Anything, "state-token").Return(nil, errors.New("state not found or expired"))

	_, err := f.usecase.Execute(context.Background(), validCommand())
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestHandleOAuthCallback_StateProviderMismatch(t *testing.T) {
	f := newCallbackFixture()
	info := validStateInfo()
	info.Provider = "github"
	f.store.On("VerifyAndGet", mock.Anything, "state-token").Return(info, nil)

	_, err := f.usecase.Execute(context.Background(), validCommand())
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestHandleOAuthCallback_LookupFailureAbortsSignIn(t *testing.T) {
	f := newCallbackFixture()
	f.expectHappyProviderFlow()

	f.repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, errors.New("connection refused"))

	_, err := f.usecase.Execute(context.Background(), validCommand())
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleOAuthCallback_BannedAccountRefused(t *testing.T) {
	f := newCallbackFixture()
	f.expectHappyProviderFlow()

	existing, err := account.NewAccount(account.SignInProfile{
		Provider:          "google",
		ProviderAccountID: "108234",
		Email:             "jane@example.com",
		Name:              "Jane Doe",
	}, account.SignInMetadata{}, false)
	require.NoError(t, err)
	require.NoError(t, existing.SetStatus(account.StatusBanned))

	f.repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(existing, nil)
	f.repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err = f.usecase.Execute(context.Background(), validCommand())
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	f.minter.AssertNotCalled(t, "Generate", mock.Anything)
}

func TestHandleOAuthCallback_MissingEmailRefused(t *testing.T) {
	f := newCallbackFixture()
	f.store.On("VerifyAndGet", mock.Anything, "state-token").Return(validStateInfo(), nil)
	f.clients.On("Get", "google").Return(f.oauth, nil)
	f.oauth.On("ExchangeCode", mock.Anything, "auth-code", "verifier").Return("provider-token", nil)
	info := validUserInfo()
	info.Email = ""
	f.oauth.On("GetUserInfo", mock.Anything, "provider-token").Return(info, nil)

	_, err := f.usecase.Execute(context.Background(), validCommand())
	require.Error(t, err)
	f.repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestDeriveSessionProfile_Defaults(t *testing.T) {
	a := &account.Account{ID: 3, Email: "jane@example.com", Name: "Jane Doe"}

	p := deriveSessionProfile(a)

	assert.Equal(t, authorization.RoleUser, p.Role)
	assert.Equal(t, account.DefaultPlan, p.Plan)
	assert.Equal(t, account.StatusActive.String(), p.Status)
	assert.Equal(t, account.UnknownIPAddress, p.IPAddress)
	assert.Equal(t, account.UnknownDevice, p.Device)
	assert.Equal(t, account.UnknownLocation, p.Location)
}

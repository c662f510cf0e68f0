package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"atrium/internal/domain/account"
	"atrium/internal/infrastructure/auth"
	"atrium/internal/infrastructure/cache"
)

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) Create(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *mockAccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

func (m *mockAccountRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockStateStore struct {
	mock.Mock
}

func (m *mockStateStore) Set(ctx context.Context, state, provider, codeVerifier string) error {
	args := m.Called(ctx, state, provider, codeVerifier)
	return args.Error(0)
}

func (m *mockStateStore) VerifyAndGet(ctx context.Context, state string) (*cache.StateInfo, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.StateInfo), args.Error(1)
}

type mockOAuthClient struct {
	mock.Mock
}

func (m *mockOAuthClient) GetAuthURL(state string) (string, string, error) {
	args := m.Called(state)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockOAuthClient) ExchangeCode(ctx context.Context, code string, codeVerifier string) (string, error) {
	args := m.Called(ctx, code, codeVerifier)
	return args.String(0), args.Error(1)
}

func (m *mockOAuthClient) GetUserInfo(ctx context.Context, accessToken string) (*auth.OAuthUserInfo, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.OAuthUserInfo), args.Error(1)
}

type mockClientResolver struct {
	mock.Mock
}

func (m *mockClientResolver) Get(provider string) (auth.OAuthClient, error) {
	args := m.Called(provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(auth.OAuthClient), args.Error(1)
}

type mockTokenMinter struct {
	mock.Mock
}

func (m *mockTokenMinter) Generate(profile auth.SessionProfile) (*auth.TokenPair, error) {
	args := m.Called(profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenPair), args.Error(1)
}

package usecases

import (
	"context"
	"fmt"

	"atrium/internal/infrastructure/auth"
	"atrium/internal/infrastructure/cache"
	apperrors "atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

// StateStore defines the interface for OAuth state storage
type StateStore interface {
	Set(ctx context.Context, state, provider, codeVerifier string) error
	VerifyAndGet(ctx context.Context, state string) (*cache.StateInfo, error)
}

// ClientResolver resolves an OAuth client by provider name.
type ClientResolver interface {
	Get(provider string) (auth.OAuthClient, error)
}

type InitiateOAuthLoginCommand struct {
	Provider string
}

type InitiateOAuthLoginResult struct {
	AuthURL string
	State   string
}

type InitiateOAuthLoginUseCase struct {
	clients    ClientResolver
	stateStore StateStore
	logger     logger.Interface
}

func NewInitiateOAuthLoginUseCase(
	clients ClientResolver,
	stateStore StateStore,
	logger logger.Interface,
) *InitiateOAuthLoginUseCase {
	return &InitiateOAuthLoginUseCase{
		clients:    clients,
		stateStore: stateStore,
		logger:     logger,
	}
}

func (uc *InitiateOAuthLoginUseCase) Execute(ctx context.Context, cmd InitiateOAuthLoginCommand) (*InitiateOAuthLoginResult, error) {
	client, err := uc.clients.Get(cmd.Provider)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported OAuth provider: %s", cmd.Provider))
	}

	state, err := auth.GenerateState()
	if err != nil {
		uc.logger.Errorw("failed to generate state", "error", err)
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	authURL, codeVerifier, err := client.GetAuthURL(state)
	if err != nil {
		uc.logger.Errorw("failed to get auth URL", "error", err, "provider", cmd.Provider)
		return nil, fmt.Errorf("failed to get auth URL: %w", err)
	}

	if err := uc.stateStore.Set(ctx, state, cmd.Provider, codeVerifier); err != nil {
		uc.logger.Errorw("failed to store OAuth state", "error", err)
		return nil, fmt.Errorf("failed to store state: %w", err)
	}

	uc.logger.Infow("OAuth login initiated", "provider", cmd.Provider)

	return &InitiateOAuthLoginResult{
		AuthURL: authURL,
		State:   state,
	}, nil
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"atrium/internal/domain/account"
	"atrium/internal/infrastructure/auth"
	"atrium/internal/shared/authorization"
	apperrors "atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
	"atrium/internal/shared/utils"
)

type HandleOAuthCallbackCommand struct {
	Provider  string
	Code      string
	State     string
	IPAddress string
	UserAgent string
}

type HandleOAuthCallbackResult struct {
	Account      *account.Account
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	IsNewAccount bool
}

// TokenMinter mints a session token pair from enriched claims.
type TokenMinter interface {
	Generate(profile auth.SessionProfile) (*auth.TokenPair, error)
}

type HandleOAuthCallbackUseCase struct {
	accountRepo account.Repository
	clients     ClientResolver
	stateStore  StateStore
	jwtService  TokenMinter
	adminEmails map[string]struct{}
	logger      logger.Interface
}

func NewHandleOAuthCallbackUseCase(
	accountRepo account.Repository,
	clients ClientResolver,
	stateStore StateStore,
	jwtService TokenMinter,
	adminEmails map[string]struct{},
	logger logger.Interface,
) *HandleOAuthCallbackUseCase {
	return &HandleOAuthCallbackUseCase{
		accountRepo: accountRepo,
		clients:     clients,
		stateStore:  stateStore,
		jwtService:  jwtService,
		adminEmails: adminEmails,
		logger:      logger,
	}
}

func (uc *HandleOAuthCallbackUseCase) Execute(ctx context.Context, cmd HandleOAuthCallbackCommand) (*HandleOAuthCallbackResult, error) {
	stateInfo, err := uc.stateStore.VerifyAndGet(ctx, cmd.State)
	if err != nil {
		uc.logger.Warnw("invalid or expired OAuth state", "error", err, "provider", cmd.Provider)
		return nil, apperrors.NewUnauthorizedError("invalid or expired state parameter")
	}
	if stateInfo.Provider != cmd.Provider {
		uc.logger.Warnw("OAuth state provider mismatch",
			"expected", stateInfo.Provider,
			"got", cmd.Provider,
		)
		return nil, apperrors.NewUnauthorizedError("invalid or expired state parameter")
	}

	client, err := uc.clients.Get(cmd.Provider)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported OAuth provider: %s", cmd.Provider))
	}

	accessToken, err := client.ExchangeCode(ctx, cmd.Code, stateInfo.CodeVerifier)
	if err != nil {
		uc.logger.Errorw("failed to exchange code", "error", err, "provider", cmd.Provider)
		return nil, apperrors.NewUnauthorizedError("failed to exchange authorization code")
	}

	userInfo, err := client.GetUserInfo(ctx, accessToken)
	if err != nil {
		uc.logger.Errorw("failed to get user info", "error", err, "provider", cmd.Provider)
		return nil, apperrors.NewUnauthorizedError("failed to get user info from provider")
	}

	if userInfo.Email == "" {
		return nil, apperrors.NewUnauthorizedError("provider did not supply an email address")
	}

	profile := account.SignInProfile{
		Provider:          userInfo.Provider,
		ProviderAccountID: userInfo.ProviderID,
		Email:             userInfo.Email,
		Name:              userInfo.Name,
		AvatarURL:         userInfo.Picture,
		EmailVerified:     userInfo.EmailVerified,
	}
	meta := account.SignInMetadata{
		IPAddress: cmd.IPAddress,
		Device:    utils.DescribeDevice(cmd.UserAgent),
		At:        time.Now().UTC(),
	}

	acc, isNew, err := uc.upsertAccount(ctx, profile, meta)
	if err != nil {
		return nil, err
	}

	if acc.IsBanned() {
		uc.logger.Warnw("banned account attempted sign-in", "account_id", acc.ID)
		return nil, apperrors.NewForbiddenError("account is banned")
	}

	pair, err := uc.jwtService.Generate(deriveSessionProfile(acc))
	if err != nil {
		uc.logger.Errorw("failed to mint session tokens", "error", err, "account_id", acc.ID)
		return nil, apperrors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("sign-in completed",
		"account_id", acc.ID,
		"provider", cmd.Provider,
		"new_account", isNew,
	)

	return &HandleOAuthCallbackResult{
		Account:      acc,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		IsNewAccount: isNew,
	}, nil
}

// upsertAccount creates or refreshes the account keyed by the provider email.
// Any database failure aborts the sign-in.
func (uc *HandleOAuthCallbackUseCase) upsertAccount(ctx context.Context, profile account.SignInProfile, meta account.SignInMetadata) (*account.Account, bool, error) {
	existing, err := uc.accountRepo.GetByEmail(ctx, normalizedEmail(profile.Email))
	if err != nil {
		uc.logger.Errorw("failed to look up account by email", "error", err)
		return nil, false, apperrors.NewInternalError("failed to look up account")
	}

	isAdmin := uc.isAllowListed(profile.Email)

	if existing == nil {
		created, err := account.NewAccount(profile, meta, isAdmin)
		if err != nil {
			return nil, false, apperrors.NewValidationError(err.Error())
		}
		if err := uc.accountRepo.Create(ctx, created); err != nil {
			uc.logger.Errorw("failed to create account", "error", err)
			return nil, false, apperrors.NewInternalError("failed to create account")
		}
		return created, true, nil
	}

	existing.RecordSignIn(profile, meta, isAdmin)
	if err := uc.accountRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update account", "error", err, "account_id", existing.ID)
		return nil, false, apperrors.NewInternalError("failed to update account")
	}
	return existing, false, nil
}

func (uc *HandleOAuthCallbackUseCase) isAllowListed(email string) bool {
	_, ok := uc.adminEmails[normalizedEmail(email)]
	return ok
}

// deriveSessionProfile builds session claims from the account. Every field
// falls back to its documented default when the stored value is missing, so a
// partially populated account still yields a usable session.
func deriveSessionProfile(a *account.Account) auth.SessionProfile {
	p := auth.SessionProfile{
		AccountID: a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		Plan:      a.Plan,
		Status:    a.Status.String(),
		IPAddress: a.IPAddress,
		Device:    a.Device,
		Location:  a.Location,
	}
	if !p.Role.IsValid() {
		p.Role = authorization.RoleUser
	}
	if p.Plan == "" {
		p.Plan = account.DefaultPlan
	}
	if p.Status == "" {
		p.Status = account.StatusActive.String()
	}
	if p.IPAddress == "" {
		p.IPAddress = account.UnknownIPAddress
	}
	if p.Device == "" {
		p.Device = account.UnknownDevice
	}
	if p.Location == "" {
		p.Location = account.UnknownLocation
	}
	return p
}

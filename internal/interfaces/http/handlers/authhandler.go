package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atrium/internal/application/account/usecases"
	"atrium/internal/infrastructure/auth"
	"atrium/internal/shared/config"
	"atrium/internal/shared/logger"
	"atrium/internal/shared/utils"
)

// TokenRefresher rotates a refresh token into a new token pair.
type TokenRefresher interface {
	Refresh(refreshToken string) (*auth.TokenPair, error)
}

// AuthHandler serves the OAuth sign-in flow and session lifecycle endpoints.
type AuthHandler struct {
	initiateOAuthUseCase *usecases.InitiateOAuthLoginUseCase
	handleOAuthUseCase   *usecases.HandleOAuthCallbackUseCase
	refresher            TokenRefresher
	jwtConfig            config.JWTConfig
	cookieConfig         config.CookieConfig
	frontendCallbackURL  string
	logger               logger.Interface
}

func NewAuthHandler(
	initiateOAuthUC *usecases.InitiateOAuthLoginUseCase,
	handleOAuthUC *usecases.HandleOAuthCallbackUseCase,
	refresher TokenRefresher,
	jwtConfig config.JWTConfig,
	cookieConfig config.CookieConfig,
	frontendCallbackURL string,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		initiateOAuthUseCase: initiateOAuthUC,
		handleOAuthUseCase:   handleOAuthUC,
		refresher:            refresher,
		jwtConfig:            jwtConfig,
		cookieConfig:         cookieConfig,
		frontendCallbackURL:  frontendCallbackURL,
		logger:               logger,
	}
}

// InitiateOAuth redirects the browser to the provider's authorization page.
func (h *AuthHandler) InitiateOAuth(c *gin.Context) {
	provider := c.Param("provider")

	result, err := h.initiateOAuthUseCase.Execute(c.Request.Context(), usecases.InitiateOAuthLoginCommand{
		Provider: provider,
	})
	if err != nil {
		h.logger.Errorw("OAuth initiation failed", "error", err, "provider", provider)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, result.AuthURL)
}

// HandleOAuthCallback completes the sign-in: it validates the provider
// response, upserts the account, and sets the session cookies before sending
// the browser back to the frontend.
func (h *AuthHandler) HandleOAuthCallback(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	state := c.Query("state")

	if errParam := c.Query("error"); errParam != "" {
		h.logger.Warnw("OAuth provider returned error",
			"provider", provider,
			"error_code", errParam,
			"error_description", c.Query("error_description"),
		)
		h.redirectWithError(c, "provider_denied")
		return
	}

	if code == "" || state == "" {
		h.logger.Warnw("OAuth callback missing parameters", "provider", provider)
		h.redirectWithError(c, "missing_parameters")
		return
	}

	result, err := h.handleOAuthUseCase.Execute(c.Request.Context(), usecases.HandleOAuthCallbackCommand{
		Provider:  provider,
		Code:      code,
		State:     state,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		h.logger.Errorw("OAuth callback failed", "error", err, "provider", provider)
		h.redirectWithError(c, "signin_failed")
		return
	}

	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	refreshMaxAge := h.jwtConfig.RefreshExpDays * 24 * 60 * 60

	utils.SetAuthCookies(c, h.cookieConfig, result.AccessToken, result.RefreshToken, accessMaxAge, refreshMaxAge)

	c.Redirect(http.StatusTemporaryRedirect, h.frontendCallbackURL)
}

// RefreshToken rotates the refresh token and reissues both cookies.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)
	if refreshToken == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "refresh token is required")
		return
	}

	pair, err := h.refresher.Refresh(refreshToken)
	if err != nil {
		h.logger.Warnw("token refresh failed", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}

	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	refreshMaxAge := h.jwtConfig.RefreshExpDays * 24 * 60 * 60

	utils.SetAuthCookies(c, h.cookieConfig, pair.AccessToken, pair.RefreshToken, accessMaxAge, refreshMaxAge)

	utils.SuccessResponse(c, http.StatusOK, "token refreshed successfully", gin.H{
		"expires_in": pair.ExpiresIn,
	})
}

// Logout clears both session cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logged out successfully", nil)
}

func (h *AuthHandler) redirectWithError(c *gin.Context, code string) {
	c.Redirect(http.StatusTemporaryRedirect, h.frontendCallbackURL+"?error="+code)
}

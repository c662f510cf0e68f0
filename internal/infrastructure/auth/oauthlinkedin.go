package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"

	"atrium/internal/shared/config"
)

type LinkedInOAuthClient struct {
	config *oauth2.Config
}

// linkedinUserInfo is the OpenID Connect userinfo payload.
type linkedinUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

func NewLinkedInOAuthClient(cfg config.ProviderOAuthConfig) *LinkedInOAuthClient {
	return &LinkedInOAuthClient{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     linkedin.Endpoint,
		},
	}
}

// GetAuthURL returns the authorization URL. LinkedIn does not accept PKCE on
// confidential clients, so the returned verifier is empty.
func (c *LinkedInOAuthClient) GetAuthURL(state string) (string, string, error) {
	return c.config.AuthCodeURL(state), "", nil
}

func (c *LinkedInOAuthClient) ExchangeCode(ctx context.Context, code string, codeVerifier string) (string, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange code: %w", err)
	}
	return token.AccessToken, nil
}

func (c *LinkedInOAuthClient) GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", "https://api.linkedin.com/v2/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{
		Timeout: httpClientTimeout,
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to get user info: status %d, body: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var lInfo linkedinUserInfo
	if err := json.Unmarshal(body, &lInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user info: %w", err)
	}

	name := lInfo.Name
	if name == "" {
		name = lInfo.GivenName + " " + lInfo.FamilyName
	}

	return &OAuthUserInfo{
		Email:         lInfo.Email,
		Name:          name,
		Picture:       lInfo.Picture,
		EmailVerified: lInfo.EmailVerified,
		Provider:      "linkedin",
		ProviderID:    lInfo.Sub,
	}, nil
}

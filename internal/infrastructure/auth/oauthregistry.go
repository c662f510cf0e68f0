package auth

import (
	"errors"
	"fmt"

	"atrium/internal/shared/config"
)

// ErrOAuthNotConfigured is returned when an OAuth provider has no credentials.
var ErrOAuthNotConfigured = errors.New("oauth provider not configured")

// OAuthRegistry holds the configured OAuth clients keyed by provider name.
type OAuthRegistry struct {
	clients map[string]OAuthClient
}

// NewOAuthRegistry builds clients for every provider with credentials present.
func NewOAuthRegistry(cfg *config.OAuthConfig) *OAuthRegistry {
	clients := make(map[string]OAuthClient)

	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		clients["google"] = NewGoogleOAuthClient(cfg.Google)
	}
	if cfg.GitHub.ClientID != "" && cfg.GitHub.ClientSecret != "" {
		clients["github"] = NewGitHubOAuthClient(cfg.GitHub)
	}
	if cfg.LinkedIn.ClientID != "" && cfg.LinkedIn.ClientSecret != "" {
		clients["linkedin"] = NewLinkedInOAuthClient(cfg.LinkedIn)
	}

	return &OAuthRegistry{clients: clients}
}

// Get returns the client for the given provider name.
func (r *OAuthRegistry) Get(provider string) (OAuthClient, error) {
	client, ok := r.clients[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOAuthNotConfigured, provider)
	}
	return client, nil
}

// Providers lists the configured provider names.
func (r *OAuthRegistry) Providers() []string {
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	return names
}

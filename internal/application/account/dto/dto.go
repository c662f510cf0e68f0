package dto

import (
	"strconv"
	"time"

	"atrium/internal/domain/account"
)

// AccountResponse represents an account rendered for API consumers.
// Identifiers are rendered as strings so clients never lose precision.
type AccountResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	AvatarURL     *string `json:"avatarUrl,omitempty"`
	Provider      string  `json:"provider,omitempty"`
	EmailVerified bool    `json:"emailVerified"`
	Role          string  `json:"role"`
	Status        string  `json:"status"`
	Plan          string  `json:"plan"`
	LoginCount    uint    `json:"loginCount"`
	LastLogin     *string `json:"lastLogin"`
	IPAddress     string  `json:"ipAddress,omitempty"`
	Device        string  `json:"device,omitempty"`
	Location      string  `json:"location,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	ReferralCode  *string `json:"referralCode,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// SessionResponse represents the session-scoped view of the signed-in account.
type SessionResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Plan      string `json:"plan"`
	Status    string `json:"status"`
	IPAddress string `json:"ipAddress"`
	Device    string `json:"device"`
	Location  string `json:"location"`
}

// UpdateAccountStatusRequest represents the request to change an account's
// moderation status.
type UpdateAccountStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active banned"`
}

// NewAccountResponse converts a domain account to its API representation.
func NewAccountResponse(a *account.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	resp := &AccountResponse{
		ID:            strconv.FormatUint(uint64(a.ID), 10),
		Email:         a.Email,
		Name:          a.Name,
		AvatarURL:     a.AvatarURL,
		Provider:      a.Provider,
		EmailVerified: a.EmailVerified,
		Role:          a.Role.String(),
		Status:        a.Status.String(),
		Plan:          a.Plan,
		LoginCount:    a.LoginCount,
		IPAddress:     a.IPAddress,
		Device:        a.Device,
		Location:      a.Location,
		Bio:           a.Bio,
		ReferralCode:  a.ReferralCode,
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if a.LastLogin != nil {
		formatted := a.LastLogin.UTC().Format(time.RFC3339)
		resp.LastLogin = &formatted
	}
	return resp
}

// NewAccountResponseList converts a slice of domain accounts.
func NewAccountResponseList(accounts []*account.Account) []*AccountResponse {
	responses := make([]*AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		responses = append(responses, NewAccountResponse(a))
	}
	return responses
}

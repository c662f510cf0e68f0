package account

import (
	"fmt"
	"strings"
	"time"

	"atrium/internal/shared/authorization"
)

// Status represents the moderation state of an account.
type Status string

const (
	StatusActive Status = "active"
	StatusBanned Status = "banned"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusBanned
}

// DefaultPlan is assigned to every account on creation.
const DefaultPlan = "free"

// Defaults for sign-in metadata the provider callback could not supply.
const (
	UnknownIPAddress = "Unknown"
	UnknownDevice    = "Unknown"
	UnknownLocation  = "undefined"
)

// SignInProfile carries the identity asserted by an OAuth provider.
type SignInProfile struct {
	Provider          string
	ProviderAccountID string
	Email             string
	Name              string
	AvatarURL         string
	EmailVerified     bool
}

// SignInMetadata carries request-derived context recorded on every sign-in.
type SignInMetadata struct {
	IPAddress string
	Device    string
	Location  string
	At        time.Time
}

// Account represents one registered person, keyed by email.
type Account struct {
	ID                uint
	Email             string
	Name              string
	AvatarURL         *string
	Provider          string
	ProviderAccountID string
	EmailVerified     bool
	Role              authorization.Role
	Status            Status
	Plan              string
	LoginCount        uint
	LastLogin         *time.Time
	IPAddress         string
	Device            string
	Location          string
	Bio               *string
	ReferralCode      *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewAccount creates an account from the first successful sign-in assertion.
// The email is normalized to lower case; the provider vouched for it, so it is
// marked verified immediately.
func NewAccount(profile SignInProfile, meta SignInMetadata, isAdmin bool) (*Account, error) {
	email := strings.ToLower(strings.TrimSpace(profile.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(profile.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	role := authorization.RoleUser
	if isAdmin {
		role = authorization.RoleAdmin
	}

	meta = meta.withDefaults()

	a := &Account{
		Email:             email,
		Name:              strings.TrimSpace(profile.Name),
		Provider:          profile.Provider,
		ProviderAccountID: profile.ProviderAccountID,
		EmailVerified:     true,
		Role:              role,
		Status:            StatusActive,
		Plan:              DefaultPlan,
		LoginCount:        1,
		LastLogin:         &meta.At,
		IPAddress:         meta.IPAddress,
		Device:            meta.Device,
		Location:          meta.Location,
		CreatedAt:         meta.At,
		UpdatedAt:         meta.At,
	}
	if profile.AvatarURL != "" {
		a.AvatarURL = &profile.AvatarURL
	}
	return a, nil
}

// RecordSignIn refreshes the login metadata for a returning account. The role
// is promoted to admin when the email is allow-listed but never demoted here:
// a removal from the allow-list takes effect only through an explicit admin
// action.
func (a *Account) RecordSignIn(profile SignInProfile, meta SignInMetadata, isAdmin bool) {
	meta = meta.withDefaults()

	a.Provider = profile.Provider
	a.ProviderAccountID = profile.ProviderAccountID
	if profile.AvatarURL != "" {
		a.AvatarURL = &profile.AvatarURL
	}
	a.LoginCount++
	a.LastLogin = &meta.At
	a.IPAddress = meta.IPAddress
	a.Device = meta.Device
	a.Location = meta.Location
	if isAdmin {
		a.Role = authorization.RoleAdmin
	}
	a.UpdatedAt = meta.At
}

// SetStatus transitions the account between active and banned.
func (a *Account) SetStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid account status: %s", status)
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	return nil
}

func (a *Account) IsBanned() bool {
	return a.Status == StatusBanned
}

func (m SignInMetadata) withDefaults() SignInMetadata {
	if m.IPAddress == "" {
		m.IPAddress = UnknownIPAddress
	}
	if m.Device == "" {
		m.Device = UnknownDevice
	}
	if m.Location == "" {
		m.Location = UnknownLocation
	}
	if m.At.IsZero() {
		m.At = time.Now()
	}
	return m
}

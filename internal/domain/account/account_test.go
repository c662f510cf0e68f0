package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atrium/internal/shared/authorization"
)

func testProfile() SignInProfile {
	return SignInProfile{
		Provider:          "google",
		ProviderAccountID: "108234",
		Email:             "Jane@Example.com",
		Name:              "Jane Doe",
		AvatarURL:         "https://example.com/a.png",
		EmailVerified:     true,
	}
}

func testMetadata() SignInMetadata {
	return SignInMetadata{
		IPAddress: "203.0.113.7",
		Device:    "Chrome 127 on macOS 14",
		Location:  "Berlin",
		At:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewAccount(t *testing.T) {
	a, err := NewAccount(testProfile(), testMetadata(), false)
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", a.Email)
	assert.Equal(t, authorization.RoleUser, a.Role)
	assert.Equal(t, StatusActive, a.Status)
	assert.Equal(t, DefaultPlan, a.Plan)
	assert.Equal(t, uint(1), a.LoginCount)
	assert.True(t, a.EmailVerified)
	require.NotNil(t, a.LastLogin)
	assert.Equal(t, testMetadata().At, *a.LastLogin)
}

func TestNewAccount_AllowListedGetsAdmin(t *testing.T) {
	a, err := NewAccount(testProfile(), testMetadata(), true)
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleAdmin, a.Role)
}

func TestNewAccount_MissingFields(t *testing.T) {
	profile := testProfile()
	profile.Email = "  "
	_, err := NewAccount(profile, testMetadata(), false)
	assert.Error(t, err)

	profile = testProfile()
	profile.Name = ""
	_, err = NewAccount(profile, testMetadata(), false)
	assert.Error(t, err)
}

func TestNewAccount_MetadataDefaults(t *testing.T) {
	a, err := NewAccount(testProfile(), SignInMetadata{}, false)
	require.NoError(t, err)

	assert.Equal(t, UnknownIPAddress, a.IPAddress)
	assert.Equal(t, UnknownDevice, a.Device)
	assert.Equal(t, UnknownLocation, a.Location)
	require.NotNil(t, a.LastLogin)
}

func TestRecordSignIn(t *testing.T) {
	a, err := NewAccount(testProfile(), testMetadata(), false)
	require.NoError(t, err)

	later := testMetadata()
	later.At = later.At.Add(24 * time.Hour)
	later.IPAddress = "198.51.100.3"

	profile := testProfile()
	profile.Provider = "github"
	profile.ProviderAccountID = "778899"

	a.RecordSignIn(profile, later, false)

	assert.Equal(t, uint(2), a.LoginCount)
	assert.Equal(t, "github", a.Provider)
	assert.Equal(t, "778899", a.ProviderAccountID)
	assert.Equal(t, "198.51.100.3", a.IPAddress)
	assert.Equal(t, later.At, *a.LastLogin)
	assert.Equal(t, authorization.RoleUser, a.Role)
}

func TestRecordSignIn_PromotesButNeverDemotes(t *testing.T) {
	a, err := NewAccount(testProfile(), testMetadata(), false)
	require.NoError(t, err)

	a.RecordSignIn(testProfile(), testMetadata(), true)
	assert.Equal(t, authorization.RoleAdmin, a.Role)

	// Off the allow-list again: the role sticks.
	a.RecordSignIn(testProfile(), testMetadata(), false)
	assert.Equal(t, authorization.RoleAdmin, a.Role)
}

func TestSetStatus(t *testing.T) {
	a, err := NewAccount(testProfile(), testMetadata(), false)
	require.NoError(t, err)

	require.NoError(t, a.SetStatus(StatusBanned))
	assert.True(t, a.IsBanned())

	require.NoError(t, a.SetStatus(StatusActive))
	assert.False(t, a.IsBanned())

	assert.Error(t, a.SetStatus(Status("suspended")))
}

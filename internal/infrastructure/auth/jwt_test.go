package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atrium/internal/shared/authorization"
)

func testSessionProfile() SessionProfile {
	return SessionProfile{
		AccountID: 42,
		Email:     "jane@example.com",
		Name:      "Jane Doe",
		Role:      authorization.RoleUser,
		Plan:      "free",
		Status:    "active",
		IPAddress: "203.0.113.7",
		Device:    "Chrome 127 on macOS 14",
		Location:  "undefined",
	}
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(testSessionProfile())
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, authorization.RoleUser, claims.Role)
	assert.Equal(t, "free", claims.Plan)
	assert.Equal(t, "active", claims.Status)
	assert.Equal(t, "203.0.113.7", claims.IPAddress)
	assert.Equal(t, "Chrome 127 on macOS 14", claims.Device)
	assert.Equal(t, "undefined", claims.Location)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims, err := svc.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestJWTService_VerifyRejectsBadSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)
	other := NewJWTService("different-secret", 15, 7)

	pair, err := svc.Generate(testSessionProfile())
	require.NoError(t, err)

	_, err = other.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_Refresh(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(testSessionProfile())
	require.NoError(t, err)

	rotated, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.Verify(rotated.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, "Chrome 127 on macOS 14", claims.Device)
}

func TestJWTService_RefreshRejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(testSessionProfile())
	require.NoError(t, err)

	_, err = svc.Refresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestGeneratePKCEParams(t *testing.T) {
	verifier, challenge, err := generatePKCEParams()
	require.NoError(t, err)
	assert.NotEmpty(t, verifier)
	assert.NotEmpty(t, challenge)
	assert.NotEqual(t, verifier, challenge)

	verifier2, _, err := generatePKCEParams()
	require.NoError(t, err)
	assert.NotEqual(t, verifier, verifier2)
}

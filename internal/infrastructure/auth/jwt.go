package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"atrium/internal/shared/authorization"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// SessionClaims carries the enriched session fields minted at sign-in. Every
// field is present on both access and refresh tokens so a refresh can re-mint
// the session without touching the database.
type SessionClaims struct {
	AccountID uint               `json:"account_id"`
	Email     string             `json:"email"`
	Name      string             `json:"name"`
	Role      authorization.Role `json:"role"`
	Plan      string             `json:"plan"`
	Status    string             `json:"status"`
	IPAddress string             `json:"ip_address"`
	Device    string             `json:"device"`
	Location  string             `json:"location"`
	TokenType TokenType          `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// SessionProfile is the claim payload minted into a token pair.
type SessionProfile struct {
	AccountID uint
	Email     string
	Name      string
	Role      authorization.Role
	Plan      string
	Status    string
	IPAddress string
	Device    string
	Location  string
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
	}
}

func (s *JWTService) Generate(profile SessionProfile) (*TokenPair, error) {
	now := time.Now().UTC()

	accessTokenString, err := s.sign(profile, TokenTypeAccess, now)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshTokenString, err := s.sign(profile, TokenTypeRefresh, now)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.accessExpMinutes * 60),
	}, nil
}

func (s *JWTService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Refresh generates a new access token AND a new refresh token from the given
// refresh token (refresh token rotation). The session claims are carried over
// unchanged.
func (s *JWTService) Refresh(refreshTokenString string) (*TokenPair, error) {
	claims, err := s.Verify(refreshTokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	if claims.TokenType != TokenTypeRefresh {
		return nil, fmt.Errorf("token is not a refresh token")
	}

	return s.Generate(SessionProfile{
		AccountID: claims.AccountID,
		Email:     claims.Email,
		Name:      claims.Name,
		Role:      claims.Role,
		Plan:      claims.Plan,
		Status:    claims.Status,
		IPAddress: claims.IPAddress,
		Device:    claims.Device,
		Location:  claims.Location,
	})
}

// AccessExpMinutes returns the access token expiration time in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}

// RefreshExpDays returns the refresh token expiration time in days
func (s *JWTService) RefreshExpDays() int {
	return s.refreshExpDays
}

func (s *JWTService) sign(profile SessionProfile, tokenType TokenType, now time.Time) (string, error) {
	var exp time.Time
	if tokenType == TokenTypeAccess {
		exp = now.Add(time.Duration(s.accessExpMinutes) * time.Minute)
	} else {
		exp = now.Add(time.Duration(s.refreshExpDays) * 24 * time.Hour)
	}

	claims := &SessionClaims{
		AccountID: profile.AccountID,
		Email:     profile.Email,
		Name:      profile.Name,
		Role:      profile.Role,
		Plan:      profile.Plan,
		Status:    profile.Status,
		IPAddress: profile.IPAddress,
		Device:    profile.Device,
		Location:  profile.Location,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

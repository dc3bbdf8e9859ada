package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const tokenSubject = "owner"

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrPasswordRequired   = errors.New("password is required")
	ErrAuthDisabled       = errors.New("authentication is not configured")
)

// AuthService exchanges the admin password for history access tokens.
type AuthService struct {
	adminHash string
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService. An empty adminHash disables login;
// a malformed one is rejected here rather than on every login.
func NewAuthService(adminHash, secret string, expiry time.Duration) (*AuthService, error) {
	if adminHash != "" {
		if err := crypto.ValidateHash(adminHash); err != nil {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH: %w", err)
		}
	}
	return &AuthService{
		adminHash: adminHash,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}, nil
}

// Enabled reports whether an admin password hash is configured.
func (s *AuthService) Enabled() bool {
	return s.adminHash != ""
}

// Login verifies password against the configured Argon2id hash and returns a signed token.
func (s *AuthService) Login(_ context.Context, req model.LoginRequest) (model.TokenResponse, error) {
	if !s.Enabled() {
		return model.TokenResponse{}, ErrAuthDisabled
	}
	if req.Password == "" {
		return model.TokenResponse{}, ErrPasswordRequired
	}

	match, err := crypto.VerifyPassword(req.Password, s.adminHash)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !match {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.jwtExpiry).UTC()
	token, err := crypto.GenerateToken(tokenSubject, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

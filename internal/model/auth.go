package model

import "time"

// LoginRequest exchanges the admin password for a history access token.
type LoginRequest struct {
	Password string `json:"password"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

package dto

import "time"

// TokenRequest carries the claims to mint a credential for. Issuance
// trusts the caller; the identity frontend has already authenticated
// them.
type TokenRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterRequest payload for new local accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

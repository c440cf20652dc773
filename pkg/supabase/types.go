package supabase

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// User mirrors the auth service's user record. Only consumed, never mutated.
type User struct {
	ID               string         `json:"id"`
	Aud              string         `json:"aud,omitempty"`
	Email            string         `json:"email"`
	EmailConfirmedAt string         `json:"email_confirmed_at,omitempty"`
	ConfirmedAt      string         `json:"confirmed_at,omitempty"`
	UserMetadata     map[string]any `json:"user_metadata,omitempty"`
	CreatedAt        string         `json:"created_at,omitempty"`
	UpdatedAt        string         `json:"updated_at,omitempty"`
}

// Confirmed reports whether the auth service recorded an email confirmation.
func (u *User) Confirmed() bool {
	if u == nil {
		return false
	}
	return u.EmailConfirmedAt != "" || u.ConfirmedAt != ""
}

// Session is an issued access/refresh token pair.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user,omitempty"`
}

// Claims decodes the access token claims without verifying the signature.
// The token was just issued to us over TLS by the auth service itself, so the
// claims are only used for local bookkeeping (expiry, subject).
func (s *Session) Claims() (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.AccessToken, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	return claims, nil
}

// APIError is a non-2xx outcome from the hosted service.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %s (%s, status %d)", e.Message, e.Code, e.Status)
	}
	return fmt.Sprintf("supabase: %s (status %d)", e.Message, e.Status)
}

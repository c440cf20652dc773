package supabase

import (
	"context"
	"net/http"
)

// AuthResult is returned by sign-up and sign-in. Session is nil when the
// project requires email confirmation before issuing tokens.
type AuthResult struct {
	User    *User
	Session *Session
}

type signUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

type passwordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signUpResponse covers both shapes GoTrue answers with: a bare user record
// when confirmation is pending, or a full session when auto-confirm is on.
type signUpResponse struct {
	Session
	User
}

// SignUp registers a new account. Metadata lands in the user's
// raw_user_meta_data and is what the provisioning webhook later reads.
func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*AuthResult, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/v1/signup", nil, signUpRequest{
		Email:    email,
		Password: password,
		Data:     metadata,
	})
	if err != nil {
		return nil, err
	}

	var body signUpResponse
	if err := decodeInto(resp, &body); err != nil {
		return nil, err
	}

	result := &AuthResult{}
	if body.AccessToken != "" {
		session := body.Session
		result.Session = &session
		result.User = session.User
	}
	if result.User == nil && body.User.ID != "" {
		user := body.User
		result.User = &user
	}
	return result, nil
}

// SignInWithPassword exchanges email/password credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*AuthResult, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", nil, passwordGrantRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var session Session
	if err := decodeInto(resp, &session); err != nil {
		return nil, err
	}
	return &AuthResult{User: session.User, Session: &session}, nil
}

// GetUser fetches the user record behind an access token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	resp, err := c.WithToken(accessToken).do(ctx, http.MethodGet, "/auth/v1/user", nil, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeInto(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignOut revokes the session behind an access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	resp, err := c.WithToken(accessToken).do(ctx, http.MethodPost, "/auth/v1/logout", nil, nil)
	if err != nil {
		return err
	}
	return decodeInto(resp, nil)
}

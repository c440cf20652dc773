// Package sdk wraps the supabase client with the typed helpers the Repaso
// apps use: auth flows and content-catalog fetching.
package sdk

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/emmanuel128/repaso-app/pkg/supabase"
)

// ErrNoSession is returned when an operation needs a signed-in user.
var ErrNoSession = errors.New("sdk: no active session")

// Auth provides sign-in/sign-up flows and tracks the current session.
// Safe for concurrent use.
type Auth struct {
	client *supabase.Client

	mu      sync.RWMutex
	current *supabase.Session
}

// NewAuth wraps a supabase client, typically created with the anon key.
func NewAuth(client *supabase.Client) *Auth {
	return &Auth{client: client}
}

// SignIn exchanges credentials for a session and keeps it as current.
func (a *Auth) SignIn(ctx context.Context, creds LoginCredentials) (*supabase.AuthResult, error) {
	result, err := a.client.SignInWithPassword(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, err
	}
	a.setSession(result.Session)
	return result, nil
}

// SignUp registers an account. First and last name travel as user metadata
// (snake_case keys plus a precomputed full_name, matching the web client).
func (a *Auth) SignUp(ctx context.Context, creds SignUpCredentials) (*supabase.AuthResult, error) {
	fullName := strings.TrimSpace(creds.FirstName + " " + creds.LastName)
	result, err := a.client.SignUp(ctx, creds.Email, creds.Password, map[string]any{
		"first_name": creds.FirstName,
		"last_name":  creds.LastName,
		"full_name":  fullName,
	})
	if err != nil {
		return nil, err
	}
	a.setSession(result.Session)
	return result, nil
}

// SignOut revokes the current session, if any, and always clears it locally.
func (a *Auth) SignOut(ctx context.Context) error {
	session := a.Session()
	a.setSession(nil)
	if session == nil {
		return nil
	}
	return a.client.SignOut(ctx, session.AccessToken)
}

// Session returns the current session, or nil when signed out or expired.
func (a *Auth) Session() *supabase.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil || sessionExpired(a.current) {
		return nil
	}
	return a.current
}

// GetUser fetches the user record behind the current session.
func (a *Auth) GetUser(ctx context.Context) (*supabase.User, error) {
	session := a.Session()
	if session == nil {
		return nil, ErrNoSession
	}
	return a.client.GetUser(ctx, session.AccessToken)
}

// Client returns a supabase client scoped to the current session's token so
// catalog reads run under row-level security. Falls back to the anon client.
func (a *Auth) Client() *supabase.Client {
	if session := a.Session(); session != nil {
		return a.client.WithToken(session.AccessToken)
	}
	return a.client
}

func (a *Auth) setSession(session *supabase.Session) {
	a.mu.Lock()
	a.current = session
	a.mu.Unlock()
}

func sessionExpired(session *supabase.Session) bool {
	expiresAt := session.ExpiresAt
	if expiresAt == 0 {
		claims, err := session.Claims()
		if err != nil {
			return false
		}
		exp, err := claims.GetExpirationTime()
		if err != nil || exp == nil {
			return false
		}
		expiresAt = exp.Unix()
	}
	return time.Now().Unix() >= expiresAt
}

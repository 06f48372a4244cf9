package auth

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrMissingFields       = errors.New("missing registration fields")
	ErrGoogleNotConfigured = errors.New("supabase not configured")
)

// User is the single account a session tracks. The VIP flag defaults to
// false at registration and is never elevated here; elevation is a manual
// backend-side operation.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	IsVip  bool   `json:"isVip"`
	Avatar string `json:"avatar,omitempty"`
}

// Authenticator is the session strategy, selected once at startup by the
// same configured-backend check as the data layer: GoTrue-delegating when
// the backend is up, file-backed pseudo-sessions in demo mode.
type Authenticator interface {
	Current(ctx context.Context) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	Register(ctx context.Context, email, password, name string) (*User, error)
	GoogleLoginURL(redirectTo string) (string, error)
	Logout(ctx context.Context) error
}

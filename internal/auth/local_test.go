package auth

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func newTestAuthenticator(t *testing.T) (*LocalAuthenticator, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewLocalAuthenticator(path), path
}

func TestLoginRejectsShortPassword(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	if _, err := a.Login(context.Background(), "user@example.com", "12345"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginFabricatesDemoUser(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	user, err := a.Login(context.Background(), "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if !strings.HasPrefix(user.ID, "demo-") {
		t.Fatalf("expected demo id, got %q", user.ID)
	}
	if user.Name != "alice" {
		t.Fatalf("expected name from email local part, got %q", user.Name)
	}
	if user.IsVip {
		t.Fatal("demo users never start as vip")
	}

	current, err := a.Current(context.Background())
	if err != nil {
		t.Fatalf("Current error: %v", err)
	}
	if current == nil || current.ID != user.ID {
		t.Fatalf("session not retained: %+v", current)
	}
}

func TestRegisterEnforcesPasswordForKnownAccounts(t *testing.T) {
	a, path := newTestAuthenticator(t)
	if _, err := a.Register(context.Background(), "bob@example.com", "hunter22", "Bob"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// A fresh instance reads the same file, like a process restart.
	b := NewLocalAuthenticator(path)
	if _, err := b.Login(context.Background(), "bob@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	user, err := b.Login(context.Background(), "bob@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.Name != "Bob" {
		t.Fatalf("registered name lost: %q", user.Name)
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	if _, err := a.Register(context.Background(), "carol@example.com", "secret123", ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestGoogleLoginUnavailableInDemoMode(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	if _, err := a.GoogleLoginURL("http://localhost:3000/"); !errors.Is(err, ErrGoogleNotConfigured) {
		t.Fatalf("expected ErrGoogleNotConfigured, got %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	if _, err := a.Login(context.Background(), "dave@example.com", "secret123"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	current, err := a.Current(context.Background())
	if err != nil {
		t.Fatalf("Current error: %v", err)
	}
	if current != nil {
		t.Fatalf("expected no session after logout, got %+v", current)
	}
}

package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

var ErrInvalidCredentials = errors.New("invalid login credentials")

type Session struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"`
	User         AuthUser `json:"user"`
}

type AuthUser struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
}

type authError struct {
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
}

func (e authError) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.ErrorDescription != "":
		return e.ErrorDescription
	default:
		return e.Msg
	}
}

// SignInWithPassword exchanges email credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	endpoint := c.baseURL + "/auth/v1/token?grant_type=password"
	payload := map[string]string{"email": email, "password": password}

	raw, err := c.do(ctx, http.MethodPost, endpoint, payload, nil)
	if err != nil {
		if isCredentialError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("supabase decode session: %w", err)
	}
	return &session, nil
}

// SignUp registers a new user. Metadata rides along as user-attached data;
// callers set the is_vip flag to false here, elevation happens elsewhere.
func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*Session, error) {
	endpoint := c.baseURL + "/auth/v1/signup"
	payload := map[string]interface{}{
		"email":    email,
		"password": password,
		"data":     metadata,
	}

	raw, err := c.do(ctx, http.MethodPost, endpoint, payload, nil)
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("supabase decode signup: %w", err)
	}
	return &session, nil
}

// GetUser resolves the user behind an access token, used to restore an
// existing session on startup.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*AuthUser, error) {
	endpoint := c.baseURL + "/auth/v1/user"
	raw, err := c.do(ctx, http.MethodGet, endpoint, nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	if err != nil {
		return nil, err
	}
	var user AuthUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("supabase decode user: %w", err)
	}
	return &user, nil
}

// SignOut revokes the session behind an access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	endpoint := c.baseURL + "/auth/v1/logout"
	_, err := c.do(ctx, http.MethodPost, endpoint, struct{}{}, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	return err
}

// GoogleAuthorizeURL builds the redirect-based OAuth entry point. The
// handshake itself happens between the browser and the backend; this
// service only hands out the URL.
func (c *Client) GoogleAuthorizeURL(redirectTo string) string {
	params := url.Values{}
	params.Set("provider", "google")
	params.Set("redirect_to", redirectTo)
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	return c.baseURL + "/auth/v1/authorize?" + params.Encode()
}

func isCredentialError(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "invalid login credentials")
}

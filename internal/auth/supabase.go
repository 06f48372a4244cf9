package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/tungtase04539/ai-news/internal/supabase"
)

// SupabaseAuthenticator delegates every credential decision to GoTrue.
// It keeps the last session in memory only to be able to revoke it on
// logout; the browser-facing session is the signed cookie, not this.
type SupabaseAuthenticator struct {
	client *supabase.Client

	mu      sync.Mutex
	session *supabase.Session
}

func NewSupabaseAuthenticator(client *supabase.Client) *SupabaseAuthenticator {
	return &SupabaseAuthenticator{client: client}
}

func (a *SupabaseAuthenticator) Current(ctx context.Context) (*User, error) {
	a.mu.Lock()
	sess := a.session
	a.mu.Unlock()
	if sess == nil {
		return nil, nil
	}
	authUser, err := a.client.GetUser(ctx, sess.AccessToken)
	if err != nil {
		return nil, err
	}
	user := fromAuthUser(*authUser)
	return &user, nil
}

func (a *SupabaseAuthenticator) Login(ctx context.Context, email, password string) (*User, error) {
	sess, err := a.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, supabase.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	a.mu.Lock()
	a.session = sess
	a.mu.Unlock()

	user := fromAuthUser(sess.User)
	return &user, nil
}

func (a *SupabaseAuthenticator) Register(ctx context.Context, email, password, name string) (*User, error) {
	sess, err := a.client.SignUp(ctx, email, password, map[string]interface{}{
		"name":   name,
		"is_vip": false,
	})
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.session = sess
	a.mu.Unlock()

	user := fromAuthUser(sess.User)
	if user.Name == "" {
		user.Name = name
	}
	return &user, nil
}

func (a *SupabaseAuthenticator) GoogleLoginURL(redirectTo string) (string, error) {
	return a.client.GoogleAuthorizeURL(redirectTo), nil
}

func (a *SupabaseAuthenticator) Logout(ctx context.Context) error {
	a.mu.Lock()
	sess := a.session
	a.session = nil
	a.mu.Unlock()
	if sess == nil {
		return nil
	}
	return a.client.SignOut(ctx, sess.AccessToken)
}

func fromAuthUser(u supabase.AuthUser) User {
	user := User{
		ID:    u.ID,
		Email: u.Email,
	}
	meta := u.UserMetadata
	if meta == nil {
		return user
	}
	if name, ok := meta["name"].(string); ok && name != "" {
		user.Name = name
	} else if name, ok := meta["full_name"].(string); ok {
		user.Name = name
	}
	if vip, ok := meta["is_vip"].(bool); ok {
		user.IsVip = vip
	}
	if avatar, ok := meta["avatar_url"].(string); ok {
		user.Avatar = avatar
	}
	return user
}

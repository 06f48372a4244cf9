package auth

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const demoPasswordMin = 6

type demoAccount struct {
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}

type demoState struct {
	User     *User                  `json:"user,omitempty"`
	Accounts map[string]demoAccount `json:"accounts,omitempty"`
}

// LocalAuthenticator is the demo-mode strategy: any email with a password
// of at least six characters gets in, accounts registered in the session
// are checked against their stored bcrypt hash, and the whole state lives
// in one JSON file so a restart keeps the pseudo-session. Google login is
// the one thing demo mode cannot fake.
type LocalAuthenticator struct {
	path string

	mu    sync.Mutex
	state demoState
}

func NewLocalAuthenticator(path string) *LocalAuthenticator {
	a := &LocalAuthenticator{
		path:  path,
		state: demoState{Accounts: map[string]demoAccount{}},
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return a
	}
	_ = json.Unmarshal(raw, &a.state)
	if a.state.Accounts == nil {
		a.state.Accounts = map[string]demoAccount{}
	}
	return a
}

func (a *LocalAuthenticator) Current(ctx context.Context) (*User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state.User == nil {
		return nil, nil
	}
	user := *a.state.User
	return &user, nil
}

func (a *LocalAuthenticator) Login(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(password) < demoPasswordMin {
		return nil, ErrInvalidCredentials
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	name := ""
	if account, ok := a.state.Accounts[email]; ok {
		if err := ComparePassword(account.PasswordHash, password); err != nil {
			return nil, ErrInvalidCredentials
		}
		name = account.Name
	}

	user := demoUser(email, name)
	a.state.User = &user
	a.save()
	return &user, nil
}

func (a *LocalAuthenticator) Register(ctx context.Context, email, password, name string) (*User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return nil, ErrMissingFields
	}
	if len(password) < demoPasswordMin {
		return nil, ErrInvalidCredentials
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Accounts[email] = demoAccount{Name: name, PasswordHash: hash}
	user := demoUser(email, name)
	a.state.User = &user
	a.save()
	return &user, nil
}

func (a *LocalAuthenticator) GoogleLoginURL(redirectTo string) (string, error) {
	return "", ErrGoogleNotConfigured
}

func (a *LocalAuthenticator) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.User = nil
	a.save()
	return nil
}

// save is best effort; losing the file just means the demo session does
// not survive a restart.
func (a *LocalAuthenticator) save() {
	raw, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(a.path, raw, 0o600)
}

func demoUser(email, name string) User {
	if name == "" {
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		} else {
			name = email
		}
	}
	return User{
		ID:    "demo-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Email: email,
		Name:  name,
	}
}

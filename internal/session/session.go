// Package session owns the auth token and current-user identity and
// gates every authenticated action in both apps.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"srinu_foods_client/internal/api"
	"srinu_foods_client/internal/models"
)

// ErrNoSession is returned by gated actions attempted without a login.
// No network call is made in that case.
var ErrNoSession = api.Validation("Please login first")

// ErrNotAdmin is returned when a fetched profile lacks the staff flag.
var ErrNotAdmin = &api.Error{Kind: api.KindAuth, Message: "Admin access required"}

type Manager struct {
	api   *api.Client
	store *TokenStore

	mu   sync.RWMutex
	user *models.User
}

func NewManager(client *api.Client, store *TokenStore) *Manager {
	return &Manager{api: client, store: store}
}

type RegisterInput struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type authResponse struct {
	User   models.User `json:"user"`
	Tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	} `json:"tokens"`
}

// Login authenticates and, on success, persists the access token and
// keeps the user in memory.
func (m *Manager) Login(ctx context.Context, username, password string) (models.Session, error) {
	if username == "" || password == "" {
		return models.Session{}, api.Validation("Please fill in all fields")
	}

	var resp authResponse
	err := m.api.Post(ctx, "/api/auth/login/", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		return models.Session{}, err
	}

	return m.install(resp)
}

// Register creates an account and logs straight into it. The cheap
// field checks run locally before any network call.
func (m *Manager) Register(ctx context.Context, input RegisterInput) (models.Session, error) {
	if input.FirstName == "" || input.Username == "" || input.Email == "" || input.Password == "" {
		return models.Session{}, api.Validation("Please fill in all required fields")
	}
	if input.Password != input.ConfirmPassword {
		return models.Session{}, api.Validation("Passwords do not match")
	}
	if len(input.Password) < 6 {
		return models.Session{}, api.Validation("Password must be at least 6 characters")
	}

	var resp authResponse
	if err := m.api.Post(ctx, "/api/auth/register/", input, &resp); err != nil {
		return models.Session{}, err
	}

	return m.install(resp)
}

func (m *Manager) install(resp authResponse) (models.Session, error) {
	if resp.Tokens.Access == "" {
		m.Terminate()
		return models.Session{}, &api.Error{Kind: api.KindTransport, Message: "missing access token in response"}
	}

	if err := m.store.Save(resp.Tokens.Access); err != nil {
		log.Printf("❌ Could not persist auth token: %v", err)
	}
	m.api.SetToken(resp.Tokens.Access)

	user := resp.User
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()

	return m.Current(), nil
}

// Restore picks up a persisted token and validates it with a profile
// fetch. Any failure — transport, 401, malformed body — is treated as
// token invalidation and tears the session down.
func (m *Manager) Restore(ctx context.Context) (models.Session, error) {
	token := m.store.Load()
	if token == "" {
		return models.Session{}, nil
	}

	m.api.SetToken(token)

	user, err := m.fetchProfile(ctx)
	if err != nil {
		m.Terminate()
		return models.Session{}, err
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()

	return m.Current(), nil
}

// ProfileUpdate carries the editable profile fields; nil means leave
// the field as it is.
type ProfileUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// UpdateProfile submits the changed fields and refreshes the cached
// user from a fresh profile fetch.
func (m *Manager) UpdateProfile(ctx context.Context, update ProfileUpdate) (models.Session, error) {
	if !m.LoggedIn() {
		return models.Session{}, ErrNoSession
	}

	if err := m.api.Put(ctx, "/api/auth/profile/", update, nil); err != nil {
		return models.Session{}, err
	}

	user, err := m.fetchProfile(ctx)
	if err != nil {
		return models.Session{}, err
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()

	return m.Current(), nil
}

func (m *Manager) fetchProfile(ctx context.Context) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := m.api.Get(ctx, "/api/auth/profile/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Current is the read-only accessor every gated action consults.
func (m *Manager) Current() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess := models.Session{Token: m.api.Token()}
	if sess.Token != "" && m.user != nil {
		u := *m.user
		sess.User = &u
	}
	return sess
}

func (m *Manager) LoggedIn() bool {
	return m.Current().LoggedIn()
}

// RequireAdmin re-fetches the profile and checks the staff flag on the
// fresh copy, never on a cached one. A missing flag or any fetch
// failure tears the session down.
func (m *Manager) RequireAdmin(ctx context.Context) (models.Session, error) {
	if m.api.Token() == "" {
		return models.Session{}, ErrNoSession
	}

	user, err := m.fetchProfile(ctx)
	if err != nil {
		m.Terminate()
		return models.Session{}, err
	}
	if !user.IsStaff {
		m.Terminate()
		return models.Session{}, ErrNotAdmin
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()

	return m.Current(), nil
}

// Terminate destroys the session client-side only: persisted token and
// in-memory user. The server is not called.
func (m *Manager) Terminate() {
	m.store.Clear()
	m.api.SetToken("")

	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
}

// TokenExpiry peeks at the access token's exp claim without verifying
// the signature. The zero time means no token or no readable claim.
func (m *Manager) TokenExpiry() time.Time {
	token := m.api.Token()
	if token == "" {
		return time.Time{}
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

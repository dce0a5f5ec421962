package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/api"
	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/models"
	"github.com/mahendrakumawat2208/medium-blog-platform/internal/logging"
)

// State is the session's position in its lifecycle.
type State int

const (
	// StateInitializing means the stored token has not been resolved yet.
	StateInitializing State = iota
	// StateAnonymous means no valid token is held.
	StateAnonymous
	// StateAuthenticated means a valid token and a resolved user are held.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// RouteLanding is the view every auth transition navigates to.
const RouteLanding = "/"

// Navigator is the side effect fired after login, registration, and logout.
type Navigator func(route string)

// Subscriber observes session transitions. The user argument is nil unless
// the new state is StateAuthenticated.
type Subscriber func(state State, user *models.User)

// Manager owns the single authentication session of the running client.
// All methods are safe for concurrent use, though the manager provides no
// de-duplication for concurrent login attempts; callers are expected to
// debounce submission.
type Manager struct {
	api      api.Client
	tokens   *TokenStore
	navigate Navigator
	log      logging.Logger

	mu    sync.Mutex
	state State
	user  *models.User
	subs  []Subscriber
}

// Option customizes a Manager.
type Option func(*Manager)

// WithNavigator installs the navigation side effect. Without it,
// transitions simply do not navigate.
func WithNavigator(nav Navigator) Option {
	return func(m *Manager) { m.navigate = nav }
}

// WithLogger replaces the default slog-backed logger.
func WithLogger(log logging.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// NewManager constructs the session manager in StateInitializing. Call
// Resolve once at startup to derive the real state from storage.
func NewManager(apiClient api.Client, tokens *TokenStore, opts ...Option) *Manager {
	m := &Manager{
		api:    apiClient,
		tokens: tokens,
		log:    logging.NewSlogLogger(slog.Default()),
		state:  StateInitializing,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the session state together with the authenticated user
// snapshot, which is nil unless the state is StateAuthenticated.
func (m *Manager) Current() (State, *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.user
}

// State returns the current session state.
func (m *Manager) State() State {
	state, _ := m.Current()
	return state
}

// User returns the authenticated user snapshot, or nil.
func (m *Manager) User() *models.User {
	_, user := m.Current()
	return user
}

// Subscribe registers fn to be called after every session transition.
func (m *Manager) Subscribe(fn Subscriber) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Resolve derives the session from storage at startup. A stored token that
// the backend rejects is treated uniformly as no longer valid: it is purged
// and the session becomes anonymous without surfacing the rejection. Only
// storage failures are returned.
func (m *Manager) Resolve(ctx context.Context) error {
	token, err := m.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("reading stored token: %w", err)
	}
	if token == "" {
		m.setSession(StateAnonymous, nil)
		return nil
	}

	user, err := m.api.Me(ctx)
	if err != nil {
		m.log.Warn(ctx, "stored token rejected, purging", "error", err.Error())
		if clearErr := m.tokens.Clear(ctx); clearErr != nil {
			m.log.Error(ctx, "failed to purge stored token", "error", clearErr.Error())
		}
		m.setSession(StateAnonymous, nil)
		return nil
	}

	m.setSession(StateAuthenticated, user)
	return nil
}

// Login authenticates with the backend, persists the issued token, adopts
// the returned user snapshot, and navigates to the landing view. Backend
// failures are propagated unchanged for the caller to display.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	resp, err := m.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	return m.establish(ctx, resp)
}

// Register creates an account and establishes the session exactly as Login
// does.
func (m *Manager) Register(ctx context.Context, email, password, username string) error {
	resp, err := m.api.Register(ctx, api.RegisterRequest{
		Email:    email,
		Password: password,
		Username: username,
	})
	if err != nil {
		return err
	}
	return m.establish(ctx, resp)
}

func (m *Manager) establish(ctx context.Context, resp *api.TokenResponse) error {
	if err := m.tokens.Save(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	user := resp.User
	m.setSession(StateAuthenticated, &user)
	m.goLanding()
	return nil
}

// Logout purges the stored token and navigates to the landing view. The
// session ends anonymous regardless of prior state, even when clearing
// storage fails; the storage error is still returned.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.tokens.Clear(ctx)
	m.setSession(StateAnonymous, nil)
	m.goLanding()
	if err != nil {
		return fmt.Errorf("clearing stored token: %w", err)
	}
	return nil
}

func (m *Manager) goLanding() {
	if m.navigate != nil {
		m.navigate(RouteLanding)
	}
}

func (m *Manager) setSession(state State, user *models.User) {
	m.mu.Lock()
	m.state = state
	m.user = user
	subs := make([]Subscriber, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(state, user)
	}
}

package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
)

// Identity is the authenticated user's profile data.
type Identity struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Plan           string `json:"subscription"`
	ReferralPoints int    `json:"referralPoints"`
}

// Service is the external authentication collaborator.
type Service interface {
	// Login exchanges credentials for a bearer token and identity.
	// Failures that should be shown to the user are returned as *AuthError.
	Login(ctx context.Context, email, password string) (string, *Identity, error)

	// Signup creates an account. It does not establish a session; the caller
	// must log in afterwards.
	Signup(ctx context.Context, name, email, password string) error

	// Verify resolves a bearer token to an identity during startup
	// reconciliation. A rejected token is reported as *AuthError.
	Verify(ctx context.Context, token string) (*Identity, error)
}

// State is the lifecycle phase of the session.
type State int

const (
	// Uninitialized: Init has not run yet.
	Uninitialized State = iota
	// Initializing: the startup credential reconciliation is in flight.
	Initializing
	// Anonymous: no identity is present.
	Anonymous
	// Authenticated: an identity and credential are both present.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "uninitialized"
	}
}

// Manager holds the application's single session. Construct one per running
// application with NewManager and pass it by reference; there is deliberately
// no package-level instance.
type Manager struct {
	auth   Service
	store  Store
	logger *slog.Logger

	mu       sync.RWMutex
	state    State
	token    string
	identity *Identity
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger sets the logger for session events.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a session manager backed by the given auth service and
// credential store.
func NewManager(auth Service, store Store, opts ...Option) *Manager {
	m := &Manager{
		auth:   auth,
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:  Uninitialized,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init reconciles a persisted credential with an identity. It must be called
// once at startup before the gate makes any decision.
//
// A stored credential is verified against the auth service: on success the
// session becomes Authenticated; on any failure — rejection or a transport
// error — credential and identity are cleared together and the session
// becomes Anonymous. A verification that cannot complete never leaves a
// credential without an identity behind.
func (m *Manager) Init(ctx context.Context) error {
	m.mu.Lock()
	m.state = Initializing
	m.mu.Unlock()

	token, err := m.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoCredential) {
			m.logger.Warn("credential load failed", slog.Any("error", err))
		}
		m.become(Anonymous, "", nil)
		return nil
	}

	identity, err := m.auth.Verify(ctx, token)
	if err != nil {
		m.logger.Warn("credential reconciliation failed, logging out",
			slog.Any("error", err))
		m.clearStore(ctx)
		m.become(Anonymous, "", nil)
		return nil
	}

	m.become(Authenticated, token, identity)
	m.logger.Info("session restored", slog.String("user_id", identity.ID))
	return nil
}

// Login authenticates against the auth service. On success the credential is
// persisted and the identity set. On failure the returned error carries a
// displayable reason and session state is unchanged.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	token, identity, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := m.store.Save(ctx, token); err != nil {
		// The session is still usable for this run; persistence failed.
		m.logger.Warn("credential save failed", slog.Any("error", err))
	}
	m.become(Authenticated, token, identity)
	m.logger.Info("logged in", slog.String("user_id", identity.ID))
	return nil
}

// Signup creates an account. It does not establish a session.
func (m *Manager) Signup(ctx context.Context, name, email, password string) error {
	return m.auth.Signup(ctx, name, email, password)
}

// Logout clears credential and identity unconditionally. It never fails;
// store errors are logged and swallowed.
func (m *Manager) Logout(ctx context.Context) {
	m.clearStore(ctx)
	m.become(Anonymous, "", nil)
	m.logger.Info("logged out")
}

// Invalidate is the forced-logout hook for unauthorized responses: any
// authenticated request elsewhere in the system that receives a 401 calls
// this before surfacing the error.
func (m *Manager) Invalidate() {
	m.Logout(context.Background())
}

// Token returns the current bearer credential, or "" when anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Identity returns the authenticated principal, or nil when anonymous.
func (m *Manager) Identity() *Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.identity == nil {
		return nil
	}
	cp := *m.identity
	return &cp
}

// Authenticated reports whether an identity is present.
func (m *Manager) Authenticated() bool {
	return m.State() == Authenticated
}

// Initializing reports whether the startup reconciliation is in flight.
func (m *Manager) Initializing() bool {
	return m.State() == Initializing
}

// State returns the current lifecycle phase.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) become(state State, token string, identity *Identity) {
	m.mu.Lock()
	m.state = state
	m.token = token
	m.identity = identity
	m.mu.Unlock()
}

func (m *Manager) clearStore(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn("credential clear failed", slog.Any("error", err))
	}
}

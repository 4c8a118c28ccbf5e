package session

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Option configures a Manager.
type Option func(*Manager)

func WithStore(s Store) Option {
	return func(m *Manager) {
		if s != nil {
			m.store = s
		}
	}
}

func WithTransport(t Transport) Option {
	return func(m *Manager) {
		if t != nil {
			m.transport = t
		}
	}
}

// WithTTL sets how long new sessions live. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

func withClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// Manager creates, resolves and destroys sessions.
type Manager struct {
	store     Store
	transport Transport
	ttl       time.Duration
	now       func() time.Time
}

// New returns a Manager. Defaults: MemoryStore, header-then-cookie
// transport, 30 day TTL.
func New(opts ...Option) *Manager {
	m := &Manager{
		ttl: defaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		m.store = NewMemoryStore()
	}
	if m.transport == nil {
		m.transport = NewCompositeTransport(NewHeaderTransport(), NewCookieTransport(defaultCookieName, false))
	}
	return m
}

// NewFromConfig builds a Manager from cfg. The store must be passed with
// WithStore unless the in-memory default is wanted.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	base := []Option{
		WithTTL(cfg.TTL),
		WithTransport(NewCompositeTransport(
			NewHeaderTransport(),
			NewCookieTransport(cfg.CookieName, cfg.SecureCookies),
		)),
	}
	return New(append(base, opts...)...)
}

// Create starts a session for sub and hands its token to the client.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, sub Subject) (*Session, error) {
	if sub.UserID == "" {
		return nil, ErrInvalidSession
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := m.now()
	s := &Session{
		Token:     token,
		UserID:    sub.UserID,
		Username:  sub.Username,
		Email:     sub.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, err
	}
	if err := m.transport.SetToken(w, s.Token, m.ttl); err != nil {
		_ = m.store.Delete(ctx, s.Token)
		return nil, err
	}
	return s, nil
}

// Get resolves the session carried by r.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}
	s, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.IsExpired(m.now()) {
		_ = m.store.Delete(ctx, token)
		return nil, ErrSessionExpired
	}
	return s, nil
}

// Destroy removes the session carried by r and clears the client token.
// Requests without a session are not an error.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, err := m.transport.GetToken(r)
	if err == nil {
		if err := m.store.Delete(ctx, token); err != nil {
			return err
		}
	}
	return m.transport.ClearToken(w)
}

// Middleware resolves the session, if any, and stores it in the request
// context. Requests without a valid session pass through untouched.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.Get(r.Context(), r)
		if err != nil {
			if errors.Is(err, ErrSessionExpired) {
				_ = m.transport.ClearToken(w)
			}
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

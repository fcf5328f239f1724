package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/repository"
)

// Authenticator checks an email and password against an identity provider.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*domain.Identity, error)
}

// Listener is told about sign-ins and sign-outs.
type Listener func(domain.Event)

// SessionService owns admin sessions. It is constructed explicitly and
// handed to whoever needs it.
type SessionService struct {
	authenticator Authenticator
	sessions      repository.SessionRepository
	ttl           time.Duration
	now           func() time.Time
	log           *zap.Logger

	mu        sync.RWMutex
	listeners map[int]Listener
	nextID    int
}

func NewSessionService(authenticator Authenticator, sessions repository.SessionRepository, ttl time.Duration, log *zap.Logger) *SessionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionService{
		authenticator: authenticator,
		sessions:      sessions,
		ttl:           ttl,
		now:           time.Now,
		log:           log,
		listeners:     make(map[int]Listener),
	}
}

// WithClock replaces the clock used for expiry.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// SignIn authenticates and opens a session. Every failure is reported as
// domain.ErrInvalidCredentials; the underlying cause is only logged.
func (s *SessionService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	identity, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.log.Warn("sign-in rejected", zap.String("email", email), zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		s.log.Error("session token generation failed", zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}

	lifetime := identity.Lifetime
	if lifetime <= 0 {
		lifetime = s.ttl
	}
	session := &domain.Session{
		Token:     token,
		UID:       identity.UID,
		Email:     identity.Email,
		ExpiresAt: s.now().Add(lifetime),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		s.log.Error("session save failed", zap.String("uid", identity.UID), zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}

	s.log.Info("admin signed in", zap.String("uid", session.UID), zap.Time("expires_at", session.ExpiresAt))
	s.notify(domain.Event{Session: session})
	return session, nil
}

// SignOut ends the session behind token. Unknown tokens are not an error.
func (s *SessionService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	s.notify(domain.Event{})
	return nil
}

// Current returns the live session for token, or nil when there is none.
func (s *SessionService) Current(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, nil
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, nil
	}
	return session, nil
}

// OnChange registers l and returns a func that unregisters it.
func (s *SessionService) OnChange(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *SessionService) notify(ev domain.Event) {
	s.mu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l(ev)
	}
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

package domain

import "time"

// Identity is an account the provider vouched for.
type Identity struct {
	UID   string
	Email string
	// Lifetime the provider grants the sign-in; zero means use the
	// configured session TTL.
	Lifetime time.Duration
}

// Session is an authenticated admin session.
type Session struct {
	Token     string    `json:"-"`
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Event is delivered to session listeners. Session is nil on sign-out.
type Event struct {
	Session *Session
}

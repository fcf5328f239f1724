package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/repository"
)

type fakeAuthenticator struct {
	accounts map[string]string
	lifetime time.Duration
	err      error
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, email, password string) (*domain.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	pw, ok := f.accounts[email]
	if !ok {
		return nil, errors.New("EMAIL_NOT_FOUND")
	}
	if pw != password {
		return nil, errors.New("INVALID_PASSWORD")
	}
	return &domain.Identity{UID: "uid-" + email, Email: email, Lifetime: f.lifetime}, nil
}

func newTestService(now time.Time, auth Authenticator) (*SessionService, *repository.MemorySessions) {
	clock := func() time.Time { return now }
	sessions := repository.NewMemorySessions().WithClock(clock)
	return NewSessionService(auth, sessions, time.Hour, nil).WithClock(clock), sessions
}

func TestSessionService_SignInThenCurrent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now, &fakeAuthenticator{accounts: map[string]string{"admin@example.com": "pw"}})

	before, err := svc.Current(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, before)

	session, err := svc.SignIn(ctx, "admin@example.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, now.Add(time.Hour), session.ExpiresAt)

	current, err := svc.Current(ctx, session.Token)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "uid-admin@example.com", current.UID)
}

func TestSessionService_ProviderLifetimeWins(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now, &fakeAuthenticator{
		accounts: map[string]string{"admin@example.com": "pw"},
		lifetime: 10 * time.Minute,
	})

	session, err := svc.SignIn(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, now.Add(10*time.Minute), session.ExpiresAt)
}

func TestSessionService_FailedSignInIsGeneric(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	cases := map[string]*fakeAuthenticator{
		"unknown email":  {accounts: map[string]string{}},
		"wrong password": {accounts: map[string]string{"admin@example.com": "pw"}},
		"provider down":  {err: errors.New("connection refused")},
	}
	for name, authn := range cases {
		t.Run(name, func(t *testing.T) {
			svc, sessions := newTestService(now, authn)
			session, err := svc.SignIn(ctx, "admin@example.com", "bad")
			assert.Nil(t, session)
			assert.Equal(t, domain.ErrInvalidCredentials, err)
			assert.Equal(t, 0, sessions.Len())
		})
	}
}

func TestSessionService_SignOut(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(time.Now(), &fakeAuthenticator{accounts: map[string]string{"a@b.c": "pw"}})

	session, err := svc.SignIn(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx, session.Token))

	current, err := svc.Current(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, current)

	assert.NoError(t, svc.SignOut(ctx, ""))
}

func TestSessionService_ExpiredSessionIsAbsent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := now
	sessions := repository.NewMemorySessions().WithClock(func() time.Time { return clock })
	svc := NewSessionService(&fakeAuthenticator{accounts: map[string]string{"a@b.c": "pw"}}, sessions, time.Minute, nil).
		WithClock(func() time.Time { return clock })

	session, err := svc.SignIn(ctx, "a@b.c", "pw")
	require.NoError(t, err)

	clock = now.Add(2 * time.Minute)
	current, err := svc.Current(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSessionService_OnChange(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(time.Now(), &fakeAuthenticator{accounts: map[string]string{"a@b.c": "pw"}})

	var events []domain.Event
	unsubscribe := svc.OnChange(func(ev domain.Event) { events = append(events, ev) })

	session, err := svc.SignIn(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx, session.Token))

	require.Len(t, events, 2)
	assert.Equal(t, session, events[0].Session)
	assert.Nil(t, events[1].Session)

	unsubscribe()
	_, err = svc.SignIn(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

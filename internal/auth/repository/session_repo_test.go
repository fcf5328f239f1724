package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
)

func setupRedisSessions(t *testing.T) (*RedisSessions, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessions(client), mr
}

func TestRedisSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		repo, mr := setupRedisSessions(t)
		s := &domain.Session{Token: "tok", UID: "u1", Email: "a@b.c", ExpiresAt: time.Now().Add(time.Hour)}
		require.NoError(t, repo.Save(ctx, s))

		assert.True(t, mr.Exists(sessionKeyPrefix+"tok"))
		ttl := mr.TTL(sessionKeyPrefix + "tok")
		assert.True(t, ttl > 59*time.Minute && ttl <= time.Hour)

		got, err := repo.Get(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.UID)
		assert.Equal(t, "tok", got.Token)
	})

	t.Run("expires with ttl", func(t *testing.T) {
		repo, mr := setupRedisSessions(t)
		require.NoError(t, repo.Save(ctx, &domain.Session{Token: "tok", UID: "u1", ExpiresAt: time.Now().Add(time.Minute)}))

		mr.FastForward(2 * time.Minute)
		_, err := repo.Get(ctx, "tok")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		repo, _ := setupRedisSessions(t)
		require.NoError(t, repo.Save(ctx, &domain.Session{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}))
		require.NoError(t, repo.Delete(ctx, "tok"))

		_, err := repo.Get(ctx, "tok")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("refuses expired sessions", func(t *testing.T) {
		repo, _ := setupRedisSessions(t)
		err := repo.Save(ctx, &domain.Session{Token: "tok", ExpiresAt: time.Now().Add(-time.Second)})
		assert.Error(t, err)
	})
}

func TestMemorySessions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemorySessions().WithClock(func() time.Time { return now })

	require.NoError(t, repo.Save(ctx, &domain.Session{Token: "live", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repo.Save(ctx, &domain.Session{Token: "dead", ExpiresAt: now.Add(-time.Minute)}))

	_, err := repo.Get(ctx, "live")
	require.NoError(t, err)
	_, err = repo.Get(ctx, "dead")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	assert.Equal(t, 1, repo.Sweep())
	assert.Equal(t, 1, repo.Len())

	require.NoError(t, repo.Delete(ctx, "live"))
	assert.Equal(t, 0, repo.Len())
}

package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
)

// SessionRepository stores sessions by token. Get returns
// domain.ErrSessionNotFound for unknown or expired tokens.
type SessionRepository interface {
	Save(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

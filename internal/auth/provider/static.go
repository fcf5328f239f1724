package provider

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
)

// Static accepts exactly one admin account whose password is stored as a
// bcrypt hash.
type Static struct {
	email        string
	passwordHash []byte
}

func NewStatic(email, passwordHash string) *Static {
	return &Static{email: email, passwordHash: []byte(passwordHash)}
}

func (s *Static) Authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.email == "" || !strings.EqualFold(email, s.email) {
		// keep timing close to the wrong-password path
		_ = bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
		return nil, fmt.Errorf("%w: unknown account", domain.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredentials, err)
	}
	return &domain.Identity{UID: "static:" + strings.ToLower(s.email), Email: s.email}, nil
}

// HashPassword returns the bcrypt hash to configure for Static.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

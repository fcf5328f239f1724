package http

import (
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/service"
)

type Handler struct {
	sessions     *service.SessionService
	secureCookie bool
}

// New builds the auth handlers. secureCookie marks the session cookie
// Secure, which production deployments behind TLS want.
func New(sessions *service.SessionService, secureCookie bool) *Handler {
	return &Handler{
		sessions:     sessions,
		secureCookie: secureCookie,
	}
}

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

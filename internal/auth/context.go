package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
)

const (
	CtxSession  = "admin_session"
	CtxAdminUID = "admin_uid"
	CookieName  = "portfolio_session"
	LoginPath   = "/admin/login"
)

// SessionFrom returns the session RequireSession stored on c.
func SessionFrom(c *gin.Context) *domain.Session {
	v, ok := c.Get(CtxSession)
	if !ok {
		return nil
	}
	s, _ := v.(*domain.Session)
	return s
}

// AdminUID extracts the signed-in admin's uid from the Gin context.
func AdminUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxAdminUID))
}

// TokenFrom reads the session token from a Bearer header, falling back to
// the session cookie.
func TokenFrom(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	if cookie, err := c.Cookie(CookieName); err == nil {
		return cookie
	}
	return ""
}

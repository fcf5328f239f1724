package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/service"
)

// RequireSession lets a request through only with a live admin session.
// Browsers are redirected to the login page; API clients get 401.
func RequireSession(sessions *service.SessionService, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		session, err := sessions.Current(c.Request.Context(), auth.TokenFrom(c))
		if err != nil {
			log.Error("session lookup failed", zap.Error(err))
		}
		if session == nil {
			deny(c)
			return
		}

		c.Set(auth.CtxSession, session)
		c.Set(auth.CtxAdminUID, session.UID)
		c.Next()
	}
}

func deny(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, auth.LoginPath)
		c.Abort()
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "authentication required"})
	c.Abort()
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
)

const dashboardPath = "/admin/dashboard"

// Login signs the admin in and sets the session cookie. Every failure gets
// the same message.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": domain.LoginFailedMessage})
		return
	}

	session, err := h.sessions.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": domain.LoginFailedMessage})
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, session.Token, maxAge, "/", "", h.secureCookie, true)

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"token":    session.Token,
		"session":  session,
		"redirect": dashboardPath,
	})
}

// Logout ends the current session and clears the cookie.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.SignOut(c.Request.Context(), auth.TokenFrom(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"ok": true, "redirect": auth.LoginPath})
}

// Session reports the current session, 401 when there is none.
func (h *Handler) Session(c *gin.Context) {
	session, err := h.sessions.Current(c.Request.Context(), auth.TokenFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "session": session})
}

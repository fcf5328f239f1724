package http

import "github.com/gin-gonic/gin"

// Register mounts the auth routes. login is the middleware chain placed in
// front of the login handler, typically a rate limiter.
func (h *Handler) Register(rg *gin.RouterGroup, login ...gin.HandlerFunc) {
	rg.POST("/login", append(login, h.Login)...)
	rg.POST("/logout", h.Logout)
	rg.GET("/session", h.Session)
}

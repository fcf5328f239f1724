package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the read-only routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/projects", h.listProjects)
	rg.GET("/projects/:id", h.getProject)
	rg.GET("/experiences", h.listExperiences)
}

// RegisterAdmin attaches the admin routes. The group must already carry
// the session gate.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.dashboard)

	rg.GET("/projects", h.adminListProjects)
	rg.POST("/projects", h.createProject)
	rg.GET("/projects/:id", h.editProject)
	rg.PUT("/projects/:id", h.updateProject)
	rg.DELETE("/projects/:id", h.deleteProject)

	rg.GET("/experiences", h.adminListExperiences)
	rg.POST("/experiences", h.createExperience)
	rg.GET("/experiences/:id", h.editExperience)
	rg.PUT("/experiences/:id", h.updateExperience)
	rg.DELETE("/experiences/:id", h.deleteExperience)

	rg.POST("/assets", h.uploadAsset)
}

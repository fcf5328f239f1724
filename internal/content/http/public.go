package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/views"
)

func (h *Handler) listProjects(c *gin.Context) {
	list := views.NewPublicProjects(h.projects, h.reqLog(c).Zap())
	status := list.Load(c.Request.Context())
	if status == views.StatusError {
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"status":  status,
			"message": list.Message(),
			"error":   list.Err().Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": status, "message": list.Message(), "projects": list.Items()})
}

func (h *Handler) getProject(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	p, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "status": "not-found", "error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p, "summary": p.Summary()})
}

func (h *Handler) listExperiences(c *gin.Context) {
	list := views.NewPublicExperiences(h.experiences, h.reqLog(c).Zap())
	status := list.Load(c.Request.Context())
	if status == views.StatusError {
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"status":  status,
			"message": list.Message(),
			"error":   list.Err().Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": status, "message": list.Message(), "experiences": list.Items()})
}

package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/forms"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/views"
)

func (h *Handler) dashboard(c *gin.Context) {
	d := views.NewDashboard(h.projects, h.reqLog(c).Zap())
	stats := d.Load(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"status":   d.Projects.Status(),
		"message":  d.Projects.Message(),
		"projects": d.Projects.Items(),
		"stats":    stats,
	})
}

func (h *Handler) adminListProjects(c *gin.Context) {
	list := views.NewAdminProjects(h.projects, h.reqLog(c).Zap())
	status := list.Load(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": status, "message": list.Message(), "projects": list.Items()})
}

func (h *Handler) editProject(c *gin.Context) {
	form := forms.NewProjectForm(h.projects, h.uploader, h.reqLog(c).Zap())
	id, ok := existingID(c, "Project not found")
	if !ok {
		return
	}
	if err := form.Load(c.Request.Context(), id); err != nil {
		writeLoadError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": form.ID(), "state": form.State(), "input": form.Input()})
}

func (h *Handler) createProject(c *gin.Context) {
	h.submitProject(c, "")
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := existingID(c, "Project not found")
	if !ok {
		return
	}
	h.submitProject(c, id)
}

func (h *Handler) submitProject(c *gin.Context, id string) {
	ctx := c.Request.Context()
	form := forms.NewProjectForm(h.projects, h.uploader, h.reqLog(c).Zap())
	if err := form.Load(ctx, id); err != nil {
		writeLoadError(c, err, "Project not found")
		return
	}

	var in forms.ProjectInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	form.Set(in)

	file, err := imageFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if file != nil {
		form.AttachImage(file)
	}

	res, err := form.Submit(ctx)
	if err != nil {
		writeSubmitError(c, err, forms.ProjectSaveErrorNotice(err))
		return
	}
	writeSubmitResult(c, res)
}

func (h *Handler) deleteProject(c *gin.Context) {
	list := views.NewAdminProjects(h.projects, h.reqLog(c).Zap())
	notice := list.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id")), confirmed(c))
	writeNotice(c, notice)
}

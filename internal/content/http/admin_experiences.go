package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/forms"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/views"
)

func (h *Handler) adminListExperiences(c *gin.Context) {
	list := views.NewAdminExperiences(h.experiences, h.reqLog(c).Zap())
	status := list.Load(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": status, "message": list.Message(), "experiences": list.Items()})
}

func (h *Handler) editExperience(c *gin.Context) {
	form := forms.NewExperienceForm(h.experiences, h.reqLog(c).Zap())
	id, ok := existingID(c, "Experience not found")
	if !ok {
		return
	}
	if err := form.Load(c.Request.Context(), id); err != nil {
		writeLoadError(c, err, "Experience not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": form.ID(), "state": form.State(), "input": form.Input()})
}

func (h *Handler) createExperience(c *gin.Context) {
	h.submitExperience(c, "")
}

func (h *Handler) updateExperience(c *gin.Context) {
	id, ok := existingID(c, "Experience not found")
	if !ok {
		return
	}
	h.submitExperience(c, id)
}

func (h *Handler) submitExperience(c *gin.Context, id string) {
	ctx := c.Request.Context()
	form := forms.NewExperienceForm(h.experiences, h.reqLog(c).Zap())
	if err := form.Load(ctx, id); err != nil {
		writeLoadError(c, err, "Experience not found")
		return
	}

	var in forms.ExperienceInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	form.Set(in)

	res, err := form.Submit(ctx)
	if err != nil {
		writeSubmitError(c, err, forms.ExperienceSaveErrorNotice(err))
		return
	}
	writeSubmitResult(c, res)
}

func (h *Handler) deleteExperience(c *gin.Context) {
	list := views.NewAdminExperiences(h.experiences, h.reqLog(c).Zap())
	notice := list.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id")), confirmed(c))
	writeNotice(c, notice)
}

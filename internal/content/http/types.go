package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/assets"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
)

// Handler bundles the dependencies for content HTTP endpoints.
type Handler struct {
	projects    *repository.ProjectRepository
	experiences *repository.ExperienceRepository
	uploader    assets.Uploader
	log         *zap.Logger
}

// New builds the handler. uploader may be nil when object storage is not
// configured; image files are then rejected.
func New(projects *repository.ProjectRepository, experiences *repository.ExperienceRepository, uploader assets.Uploader, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{projects: projects, experiences: experiences, uploader: uploader, log: log}
}

// reqLog is the request-scoped logger for c.
func (h *Handler) reqLog(c *gin.Context) *logging.Logger {
	return logging.NewLogger(c.Request.Context(), h.log)
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/contact"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
)

type Handler struct {
	sender contact.Sender
	log    *zap.Logger
}

// New builds the contact handler. A nil sender answers 503.
func New(sender contact.Sender, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{sender: sender, log: log}
}

func (h *Handler) Register(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	rg.POST("/contact", append(mw, h.Submit)...)
}

// Submit relays one contact message and reports the transient outcome.
func (h *Handler) Submit(c *gin.Context) {
	if h.sender == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "contact form is not configured"})
		return
	}

	var msg contact.Message
	if err := c.ShouldBind(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body", "details": err.Error()})
		return
	}

	log := logging.NewLogger(c.Request.Context(), h.log)
	form := contact.NewForm(h.sender, log.Zap())
	form.Set(msg)
	err := form.Submit(c.Request.Context())

	var invalid *contact.InvalidMessageError
	switch {
	case errors.As(err, &invalid):
		log.LogWarn("contact.submit", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error(), "fields": invalid.Fields})
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{
			"ok":           false,
			"status":       form.Status(),
			"label":        form.Label(),
			"error":        err.Error(),
			"resetAfterMs": contact.StatusHold.Milliseconds(),
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"ok":           true,
			"status":       form.Status(),
			"label":        form.Label(),
			"resetAfterMs": contact.StatusHold.Milliseconds(),
		})
	}
}

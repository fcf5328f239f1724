package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/forms"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/content/views"
)

func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return ok
}

// existingID reads the :id of a route that must address a stored
// document. A blank id answers 404 so it never falls into the create path.
func existingID(c *gin.Context, notFound string) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "status": "not-found", "error": notFound})
		return "", false
	}
	return id, true
}

func writeLoadError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "status": "not-found", "error": notFound})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

func writeSubmitError(c *gin.Context, err error, notice string) {
	var verr *forms.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "state": forms.StateEditing, "error": err.Error(), "fields": verr.Fields})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "state": forms.StateEditing, "error": err.Error(), "notice": notice})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "state": forms.StateEditing, "error": err.Error(), "notice": notice})
	}
}

func writeSubmitResult(c *gin.Context, res *forms.Result) {
	code := http.StatusOK
	if res.Created {
		code = http.StatusCreated
	}
	c.JSON(code, gin.H{
		"ok":       true,
		"state":    forms.StateNavigatedAway,
		"id":       res.ID,
		"redirect": res.Redirect,
		"notice":   res.Notice,
	})
}

func writeNotice(c *gin.Context, n views.Notice) {
	switch n.Level {
	case views.NoticeSuccess:
		c.JSON(http.StatusOK, gin.H{"ok": true, "notice": n})
	case views.NoticeCancelled:
		c.JSON(http.StatusPreconditionRequired, gin.H{"ok": false, "error": "confirmation required", "notice": n})
	default:
		code := http.StatusInternalServerError
		if errors.Is(n.Err, domain.ErrNotFound) {
			code = http.StatusNotFound
		}
		c.JSON(code, gin.H{"ok": false, "error": n.Message, "notice": n})
	}
}

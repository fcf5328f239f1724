package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/assets"
)

const imageField = "imageFile"

func (h *Handler) uploadAsset(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "asset uploads are not configured"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "file is required"})
		return
	}
	file, err := assets.FromMultipart(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	log := h.reqLog(c)
	url, err := h.uploader.Upload(c.Request.Context(), *file)
	if err != nil {
		log.LogError("assets.upload", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}
	log.LogInfof("assets.upload", "stored %s (%d bytes)", file.Name, len(file.Data))
	c.JSON(http.StatusCreated, gin.H{"ok": true, "url": url})
}

// imageFile returns the optional image attached to a multipart submit.
func imageFile(c *gin.Context) (*assets.File, error) {
	if c.ContentType() != "multipart/form-data" {
		return nil, nil
	}
	fh, err := c.FormFile(imageField)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}
	return assets.FromMultipart(fh)
}

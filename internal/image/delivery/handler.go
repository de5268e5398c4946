package delivery

import (
	"io"
	"net/http"

	"marketplace-backend/pkg/imgbb"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 10 MB cap on uploaded image payloads.
const maxImageSize = 10 << 20

type ImageHandler struct {
	client *imgbb.Client
	log    *zap.SugaredLogger
}

func NewImageHandler(client *imgbb.Client, log *zap.SugaredLogger) *ImageHandler {
	return &ImageHandler{
		client: client,
		log:    log,
	}
}

// Upload proxies a multipart image file to the external image host and
// returns the hosted URL.
func (h *ImageHandler) Upload(c *gin.Context) {
	if !h.client.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "image uploads are not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "no image file provided"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "no image file provided"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		h.log.Errorw("read upload failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
		return
	}

	url, err := h.client.Upload(data)
	if err != nil {
		h.log.Errorw("image upload failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glowmart/admin-service/internal/upload"
	"github.com/glowmart/admin-service/pkg/logger"
	"go.uber.org/zap"
)

// Images for products, banners and posts all come through here.
const maxUploadSize = 10 << 20 // 10 MiB

type UploadHandler struct {
	uploader *upload.Uploader
	logger   logger.ZapLogger
}

func NewUploadHandler(uploader *upload.Uploader, log logger.ZapLogger) *UploadHandler {
	return &UploadHandler{uploader: uploader, logger: log}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		h.logger.Error("upload failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler serves objects from public buckets
type StorageHandler struct {
	store  repositories.ObjectStore
	logger *zap.Logger
}

// NewStorageHandler creates a new StorageHandler
func NewStorageHandler(store repositories.ObjectStore, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{store: store, logger: logger}
}

// Serve handles GET /storage/v1/object/public/:bucket/*path
func (h *StorageHandler) Serve(c *gin.Context) {
	bucket := c.Param("bucket")
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" {
		fail(c, http.StatusNotFound, "Object not found")
		return
	}
	if _, err := h.store.PublicURL(bucket, path); err != nil {
		fail(c, http.StatusNotFound, "Object not found")
		return
	}

	rc, info, err := h.store.Download(c.Request.Context(), bucket, path)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			fail(c, http.StatusNotFound, "Object not found")
			return
		}
		h.logger.Error("Failed to download object", zap.String("bucket", bucket), zap.String("path", path), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to read object")
		return
	}
	defer rc.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=3600")
	if info.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		h.logger.Warn("Object stream interrupted", zap.String("path", path), zap.Error(err))
	}
}

package handlers

import (
	"net/http"

	"github.com/ArowuTest/community-center-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps a single image upload
const maxUploadBytes = 10 << 20

// ImageHandler handles image uploads and cleanup
type ImageHandler struct {
	images *services.ImageService
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(images *services.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

type deleteImageRequest struct {
	Path string `json:"path" binding:"required"`
}

type cleanupRequest struct {
	Page    string `json:"page" binding:"required"`
	Section string `json:"section" binding:"required"`
	Field   string `json:"field" binding:"required"`
}

// Upload handles POST /images/upload (multipart: file, fieldId, folder)
func (h *ImageHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "An image file is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "Could not read the uploaded file")
		return
	}
	defer file.Close()

	fieldID := c.PostForm("fieldId")
	if fieldID == "" {
		fieldID = c.PostForm("field-id")
	}
	result, err := h.images.Upload(c.Request.Context(), fieldID, c.PostForm("folder"),
		header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		failErr(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete handles POST /images/delete
func (h *ImageHandler) Delete(c *gin.Context) {
	var req deleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "path is required")
		return
	}
	if !h.images.Delete(c.Request.Context(), req.Path) {
		fail(c, http.StatusInternalServerError, "Failed to delete image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CleanupInvalid handles POST /images/cleanup
func (h *ImageHandler) CleanupInvalid(c *gin.Context) {
	var req cleanupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "page, section and field are required")
		return
	}
	writeResult(c, h.images.CleanupInvalid(c.Request.Context(), req.Page, req.Section, req.Field))
}

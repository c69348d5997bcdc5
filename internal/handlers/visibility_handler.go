package handlers

import (
	"net/http"

	"github.com/ArowuTest/community-center-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// VisibilityHandler reads and updates page visibility flags
type VisibilityHandler struct {
	visibility *services.VisibilityService
}

// NewVisibilityHandler creates a new VisibilityHandler
func NewVisibilityHandler(visibility *services.VisibilityService) *VisibilityHandler {
	return &VisibilityHandler{visibility: visibility}
}

type visibilityRequest struct {
	Page    string `json:"page" binding:"required"`
	Visible *bool  `json:"visible" binding:"required"`
}

// List handles GET /page-visibility
func (h *VisibilityHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.visibility.List(c.Request.Context()))
}

// Update handles POST /page-visibility
func (h *VisibilityHandler) Update(c *gin.Context) {
	var req visibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "page and visible are required")
		return
	}
	writeResult(c, h.visibility.Set(c.Request.Context(), req.Page, *req.Visible))
}

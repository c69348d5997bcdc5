package handlers

import (
	"net/http"

	"github.com/ArowuTest/community-center-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// PageHandler serves normalized page view models and navigation
type PageHandler struct {
	pages      *services.PageService
	navigation *services.NavigationService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(pages *services.PageService, navigation *services.NavigationService) *PageHandler {
	return &PageHandler{pages: pages, navigation: navigation}
}

// View handles GET /pages/:page
func (h *PageHandler) View(c *gin.Context) {
	view, err := h.pages.View(c.Request.Context(), c.Param("page"))
	if err != nil {
		failErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Navigation handles GET /navigation
func (h *PageHandler) Navigation(c *gin.Context) {
	c.JSON(http.StatusOK, h.navigation.Menu(c.Request.Context()))
}

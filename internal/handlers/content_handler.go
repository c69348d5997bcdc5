package handlers

import (
	"net/http"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// ContentHandler exposes raw content documents
type ContentHandler struct {
	content services.ContentStore
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(content services.ContentStore) *ContentHandler {
	return &ContentHandler{content: content}
}

// List handles GET /content
func (h *ContentHandler) List(c *gin.Context) {
	docs := h.content.List(c.Request.Context())
	out := make([]*models.ContentDocument, 0, len(docs))
	for _, doc := range docs {
		if doc.PageName == services.AdminPage || doc.Data["page"] == services.AdminPage {
			continue
		}
		out = append(out, doc)
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /content/:page
func (h *ContentHandler) Get(c *gin.Context) {
	page := c.Param("page")
	if page == services.AdminPage {
		fail(c, http.StatusNotFound, "Page not found")
		return
	}
	doc := h.content.Get(c.Request.Context(), page)
	if doc == nil {
		fail(c, http.StatusNotFound, "Page not found")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateSection handles PUT /content/:page/sections/:section
func (h *ContentHandler) UpdateSection(c *gin.Context) {
	page := c.Param("page")
	if page == services.AdminPage {
		fail(c, http.StatusBadRequest, "The admin document cannot be edited here")
		return
	}

	var cfg models.SectionConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		fail(c, http.StatusBadRequest, "Invalid section body")
		return
	}
	writeResult(c, h.content.UpdateSection(c.Request.Context(), page, c.Param("section"), cfg))
}

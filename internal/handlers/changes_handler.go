package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ArowuTest/community-center-backend/internal/content"
	"github.com/ArowuTest/community-center-backend/internal/events"
	"github.com/ArowuTest/community-center-backend/internal/services"
	"github.com/gin-gonic/gin"
)

const keepAliveInterval = 25 * time.Second

// ChangesHandler streams page change tokens over server-sent events
type ChangesHandler struct {
	broker *events.Broker
	pages  *services.PageService
}

// NewChangesHandler creates a new ChangesHandler
func NewChangesHandler(broker *events.Broker, pages *services.PageService) *ChangesHandler {
	return &ChangesHandler{broker: broker, pages: pages}
}

// Stream handles GET /changes?page=home&page=about. With no page every
// change is streamed.
func (h *ChangesHandler) Stream(c *gin.Context) {
	pages := []string{}
	for _, raw := range c.QueryArray("page") {
		for _, p := range strings.Split(raw, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, ok := content.Lookup(p); !ok {
				fail(c, http.StatusBadRequest, "unknown page "+p)
				return
			}
			pages = append(pages, p)
		}
	}

	ch, cancel := h.broker.Subscribe(pages...)
	defer cancel()
	for _, p := range pages {
		release := h.pages.Watch(p)
		defer release()
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.SSEvent("ready", gin.H{"pages": pages})
	c.Writer.Flush()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case change, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", gin.H{"page": change.Page, "token": change.Token})
			return true
		case <-ticker.C:
			_, _ = w.Write([]byte(": keep-alive\n\n"))
			return true
		}
	})
}

package handlers

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ArowuTest/community-center-backend/internal/cache"
	"github.com/ArowuTest/community-center-backend/internal/content"
	"github.com/ArowuTest/community-center-backend/internal/events"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
	"github.com/ArowuTest/community-center-backend/internal/repositories/memory"
	"github.com/ArowuTest/community-center-backend/internal/services"
	"github.com/ArowuTest/community-center-backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newChangesServer(t *testing.T) (*httptest.Server, *events.Broker, *cache.Shared[content.View]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewObjectStore(repositories.PublicURLBuilder{BaseURL: "https://site.test"})
	contentService := services.NewContentService(memory.NewContentRepository(), nil, services.RetryPolicy{Attempts: 1}, zap.NewNop())
	views := cache.NewShared[content.View]()
	pages := services.NewPageService(contentService, storage.NewResolver(store, storage.Options{}, nil), views, zap.NewNop())
	broker := events.NewBroker(zap.NewNop())

	r := gin.New()
	r.GET("/changes", NewChangesHandler(broker, pages).Stream)
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		broker.Close()
		srv.Close()
	})
	return srv, broker, views
}

func TestChangesStreamsTokensForWatchedPage(t *testing.T) {
	srv, broker, views := newChangesServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/changes?page=home", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := bufio.NewScanner(resp.Body)
	readEvent := func() (string, string) {
		var name, data string
		for lines.Scan() {
			line := lines.Text()
			switch {
			case strings.HasPrefix(line, "event:"):
				name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
			case strings.HasPrefix(line, "data:"):
				data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			case line == "" && name != "":
				return name, data
			}
		}
		return name, data
	}

	name, _ := readEvent()
	require.Equal(t, "ready", name)
	assert.Equal(t, 1, views.Subscribers("home"), "an open stream keeps the page view cached")

	broker.Publish("about")
	change := broker.Publish("home")

	name, data := readEvent()
	assert.Equal(t, "change", name)
	assert.Contains(t, data, `"page":"home"`)
	assert.Contains(t, data, change.Token)
}

func TestChangesRejectsUnknownPage(t *testing.T) {
	srv, _, _ := newChangesServer(t)
	resp, err := http.Get(srv.URL + "/changes?page=nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/ArowuTest/community-center-backend/internal/content"
	"github.com/ArowuTest/community-center-backend/internal/models"
	"go.uber.org/zap"
)

// VisibilityField is the document field holding a page's navigation flag.
const VisibilityField = "visibility"

// VisibilityService reads and writes page visibility flags. Hiding a page
// only removes navigation links to it; the route itself stays reachable.
type VisibilityService struct {
	content ContentStore
	logger  *zap.Logger
}

// NewVisibilityService creates a new VisibilityService
func NewVisibilityService(store ContentStore, logger *zap.Logger) *VisibilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisibilityService{content: store, logger: logger}
}

// List returns every known page mapped to its visibility. Only an explicit
// false on the newest row of a page hides it.
func (s *VisibilityService) List(ctx context.Context) map[string]bool {
	out := make(map[string]bool)
	for _, p := range content.Pages() {
		out[p] = true
	}
	for page, doc := range newestByPage(s.content.List(ctx)) {
		if _, known := out[page]; !known {
			continue
		}
		if v, ok := content.FromModel(doc).Field(VisibilityField); ok {
			if b, isBool := v.(bool); isBool && !b {
				out[page] = false
			}
		}
	}
	return out
}

// newestByPage keeps the most recently updated row of each page, the same
// row a single-page read would return.
func newestByPage(docs []*models.ContentDocument) map[string]*models.ContentDocument {
	latest := make(map[string]*models.ContentDocument, len(docs))
	for _, doc := range docs {
		page := content.FromModel(doc).Page
		if cur, ok := latest[page]; !ok || doc.UpdatedAt.After(cur.UpdatedAt) {
			latest[page] = doc
		}
	}
	return latest
}

// Set stores the visibility of one known page.
func (s *VisibilityService) Set(ctx context.Context, page string, visible bool) models.Result {
	if _, ok := content.Lookup(page); !ok {
		return models.Failed(fmt.Errorf("%w: unknown page %q", models.ErrValidation, page))
	}
	res := s.content.SetRootField(ctx, page, VisibilityField, visible)
	if res.Success {
		s.logger.Info("Updated page visibility", zap.String("page", page), zap.Bool("visible", visible))
	}
	return res
}

// Gate answers visibility questions from a mapping fetched at most once.
type Gate struct {
	load func(context.Context) map[string]bool

	once    sync.Once
	visible map[string]bool
}

// NewGate creates a Gate backed by the service.
func (s *VisibilityService) NewGate() *Gate {
	return &Gate{load: s.List}
}

// IsVisible reports whether navigation to page should be shown. Pages
// missing from the mapping are visible.
func (g *Gate) IsVisible(ctx context.Context, page string) bool {
	g.once.Do(func() { g.visible = g.load(ctx) })
	v, ok := g.visible[page]
	return !ok || v
}

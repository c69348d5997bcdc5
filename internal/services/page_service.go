package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ArowuTest/community-center-backend/internal/cache"
	"github.com/ArowuTest/community-center-backend/internal/content"
	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/storage"
	"go.uber.org/zap"
)

const healTimeout = 15 * time.Second

// PageService assembles normalized view models for content areas.
type PageService struct {
	content  ContentStore
	resolver *storage.Resolver
	views    *cache.Shared[content.View]
	logger   *zap.Logger

	heals sync.WaitGroup
}

// NewPageService creates a new PageService
func NewPageService(store ContentStore, resolver *storage.Resolver, views *cache.Shared[content.View], logger *zap.Logger) *PageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if views == nil {
		views = cache.NewShared[content.View]()
	}
	return &PageService{content: store, resolver: resolver, views: views, logger: logger}
}

// View returns the view model for page. Store failures degrade to the
// area's defaults; only an unknown page is an error.
func (s *PageService) View(ctx context.Context, page string) (content.View, error) {
	area, ok := content.Lookup(page)
	if !ok {
		return nil, fmt.Errorf("page %q: %w", page, models.ErrNotFound)
	}
	return s.views.Get(ctx, page, func(ctx context.Context) (content.View, error) {
		return s.build(ctx, area), nil
	})
}

// Watch keeps page's view cached until release is called.
func (s *PageService) Watch(page string) (release func()) {
	return s.views.Acquire(page)
}

// Invalidate drops the cached view for page.
func (s *PageService) Invalidate(page string) {
	s.views.Invalidate(page)
}

func (s *PageService) build(ctx context.Context, area content.Area) content.View {
	doc := s.content.Get(ctx, area.Page)
	view := area.Extract(content.FromModel(doc))

	opts := storage.Options{Folder: area.Folder}
	for _, img := range view.Images() {
		if img.Ref == "" {
			continue
		}
		if !img.Verify {
			if u, ok := s.resolver.Resolve(img.Ref, opts); ok {
				img.URL = u
			} else {
				img.Clear()
			}
			continue
		}

		u, err := s.resolver.ResolveVerified(ctx, img.Ref, opts)
		switch {
		case err == nil:
			img.URL = u
		case errors.Is(err, models.ErrNotFound):
			if doc != nil {
				s.heal(area.Page, img.Section, img.Field)
			}
			img.Clear()
		default:
			img.Clear()
		}
	}
	return view
}

// heal removes a dangling image reference from the stored document in the
// background so later reads skip the failed check.
func (s *PageService) heal(page, section, field string) {
	s.logger.Info("Removing dangling image reference",
		zap.String("page", page), zap.String("section", section), zap.String("field", field))

	s.heals.Add(1)
	go func() {
		defer s.heals.Done()
		ctx, cancel := context.WithTimeout(context.Background(), healTimeout)
		defer cancel()
		if res := s.content.RemoveSectionField(ctx, page, section, field); !res.Success {
			s.logger.Warn("Self-healing removal failed",
				zap.String("page", page), zap.String("field", field), zap.String("error", res.Error))
		}
	}()
}

// Wait blocks until background removals have finished.
func (s *PageService) Wait() {
	s.heals.Wait()
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ArowuTest/community-center-backend/internal/content"
	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
	"go.uber.org/zap"
)

// ContentStore defines the content accessor operations
type ContentStore interface {
	Get(ctx context.Context, page string) *models.ContentDocument
	List(ctx context.Context) []*models.ContentDocument
	UpdateSection(ctx context.Context, page, section string, cfg models.SectionConfig) models.Result
	SetRootField(ctx context.Context, page, key string, value interface{}) models.Result
	RemoveSectionField(ctx context.Context, page, section, field string) models.Result
}

// ChangePublisher is notified after every successful write
type ChangePublisher interface {
	Publish(page string) models.Change
}

// ContentService reads and writes one content document per page.
//
// Writes are read-merge-write without an optimistic lock: two concurrent
// edits to different sections of the same page can race and the later
// write wins. The site has a single admin, so this is accepted.
type ContentService struct {
	repo      repositories.ContentRepository
	publisher ChangePublisher
	retry     RetryPolicy
	logger    *zap.Logger
	now       func() time.Time
}

var _ ContentStore = (*ContentService)(nil)

// NewContentService creates a new ContentService. publisher may be nil.
func NewContentService(repo repositories.ContentRepository, publisher ChangePublisher, retry RetryPolicy, logger *zap.Logger) *ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentService{
		repo:      repo,
		publisher: publisher,
		retry:     retry,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// find returns (nil, nil) when the page has no document.
func (s *ContentService) find(ctx context.Context, page string) (*models.ContentDocument, error) {
	doc, err := withRetry(ctx, s.retry, s.logger, "find "+page, func(ctx context.Context) (*models.ContentDocument, error) {
		return s.repo.FindByPage(ctx, page)
	})
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	return doc, err
}

// Get returns the page document, or nil when it does not exist or the
// store failed. Failures are logged, never returned.
func (s *ContentService) Get(ctx context.Context, page string) *models.ContentDocument {
	doc, err := s.find(ctx, page)
	if err != nil {
		s.logger.Error("Failed to fetch content", zap.String("page", page), zap.Error(err))
		return nil
	}
	return doc
}

// List returns every document, or nil on store failure.
func (s *ContentService) List(ctx context.Context) []*models.ContentDocument {
	docs, err := withRetry(ctx, s.retry, s.logger, "list", s.repo.FindAll)
	if err != nil {
		s.logger.Error("Failed to list content", zap.Error(err))
		return nil
	}
	return docs
}

// UpdateSection replaces one section, leaving its siblings untouched. A
// missing document is created in the nested shape.
func (s *ContentService) UpdateSection(ctx context.Context, page, section string, cfg models.SectionConfig) models.Result {
	if strings.TrimSpace(section) == "" {
		return models.Failed(fmt.Errorf("%w: section key is required", models.ErrValidation))
	}
	return s.write(ctx, page, func(d content.Document) (map[string]interface{}, bool) {
		return d.WithSection(section, cfg), true
	})
}

// SetRootField sets a plain value beside the sections, such as visibility.
func (s *ContentService) SetRootField(ctx context.Context, page, key string, value interface{}) models.Result {
	if strings.TrimSpace(key) == "" {
		return models.Failed(fmt.Errorf("%w: field key is required", models.ErrValidation))
	}
	return s.write(ctx, page, func(d content.Document) (map[string]interface{}, bool) {
		return d.WithField(key, value), true
	})
}

// RemoveSectionField drops a field from a section's data. Removing a field
// that is already absent, or from a page without a document, succeeds
// without writing.
func (s *ContentService) RemoveSectionField(ctx context.Context, page, section, field string) models.Result {
	current, err := s.find(ctx, page)
	if err != nil {
		s.logger.Error("Failed to fetch content for field removal", zap.String("page", page), zap.Error(err))
		return models.Failed(err)
	}
	if current == nil {
		return models.OK()
	}
	return s.apply(ctx, page, current, func(d content.Document) (map[string]interface{}, bool) {
		return d.WithoutSectionField(section, field)
	})
}

type mutation func(content.Document) (payload map[string]interface{}, changed bool)

func (s *ContentService) write(ctx context.Context, page string, mutate mutation) models.Result {
	if strings.TrimSpace(page) == "" {
		return models.Failed(fmt.Errorf("%w: page is required", models.ErrValidation))
	}
	current, err := s.find(ctx, page)
	if err != nil {
		s.logger.Error("Failed to fetch content before update", zap.String("page", page), zap.Error(err))
		return models.Failed(err)
	}
	if current == nil {
		payload, _ := mutate(content.ParseDocument(content.NewPayload(page)))
		doc := &models.ContentDocument{PageName: page, Data: payload}
		_, err := withRetry(ctx, s.retry, s.logger, "insert "+page, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repo.Insert(ctx, doc)
		})
		if err != nil {
			s.logger.Error("Failed to create content", zap.String("page", page), zap.Error(err))
			return models.Failed(err)
		}
		s.logger.Info("Created content document", zap.String("page", page))
		s.publish(page)
		return models.OK()
	}
	return s.apply(ctx, page, current, mutate)
}

func (s *ContentService) apply(ctx context.Context, page string, current *models.ContentDocument, mutate mutation) models.Result {
	payload, changed := mutate(content.FromModel(current))
	if !changed {
		return models.OK()
	}
	if _, ok := payload["page"]; !ok {
		payload["page"] = page
	}
	if current.PageName == "" {
		current.PageName = page
	}
	current.Data = payload
	current.UpdatedAt = s.now()

	_, err := withRetry(ctx, s.retry, s.logger, "replace "+page, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.Replace(ctx, current)
	})
	if err != nil {
		s.logger.Error("Failed to update content", zap.String("page", page), zap.Error(err))
		return models.Failed(err)
	}
	s.publish(page)
	return models.OK()
}

func (s *ContentService) publish(page string) {
	if s.publisher != nil {
		s.publisher.Publish(page)
	}
}

package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
	"github.com/ArowuTest/community-center-backend/internal/repositories/memory"
	"github.com/ArowuTest/community-center-backend/internal/storage"
	"go.uber.org/zap"
)

var fastRetry = RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond}

// recorder collects published pages
type recorder struct {
	mu    sync.Mutex
	pages []string
}

func (r *recorder) Publish(page string) models.Change {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages = append(r.pages, page)
	return models.Change{Page: page}
}

func (r *recorder) Published() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.pages...)
}

// flakyRepo fails the first N FindByPage calls with err
type flakyRepo struct {
	*memory.ContentRepository
	mu    sync.Mutex
	fails int
	err   error
	calls int
}

func (f *flakyRepo) FindByPage(ctx context.Context, page string) (*models.ContentDocument, error) {
	f.mu.Lock()
	f.calls++
	if f.fails > 0 {
		f.fails--
		f.mu.Unlock()
		return nil, f.err
	}
	f.mu.Unlock()
	return f.ContentRepository.FindByPage(ctx, page)
}

func (f *flakyRepo) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func boolPtr(b bool) *bool { return &b }

func newObjectStore() *memory.ObjectStore {
	return memory.NewObjectStore(repositories.PublicURLBuilder{
		BaseURL:       "https://site.test",
		PublicBuckets: []string{"public-images"},
	})
}

func newResolver(store repositories.ObjectStore) *storage.Resolver {
	return storage.NewResolver(store, storage.Options{Bucket: "public-images", Folder: "Home"}, zap.NewNop())
}

func newContentService(t *testing.T) (*ContentService, *memory.ContentRepository, *recorder) {
	t.Helper()
	repo := memory.NewContentRepository()
	pub := &recorder{}
	return NewContentService(repo, pub, fastRetry, zap.NewNop()), repo, pub
}

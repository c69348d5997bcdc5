package memory

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
)

var _ repositories.ObjectStore = (*ObjectStore)(nil)

type object struct {
	data        []byte
	contentType string
	updatedAt   time.Time
}

// ObjectStore keeps objects in memory, keyed by bucket and path.
type ObjectStore struct {
	urls repositories.PublicURLBuilder

	mu      sync.RWMutex
	buckets map[string]map[string]object
	calls   atomic.Int64

	// ListErr and DownloadErr force failures for the matching calls.
	ListErr     error
	DownloadErr error
}

// NewObjectStore creates an empty in-memory object store
func NewObjectStore(urls repositories.PublicURLBuilder) *ObjectStore {
	return &ObjectStore{urls: urls, buckets: make(map[string]map[string]object)}
}

// Calls returns how many store operations have been made, PublicURL included.
func (s *ObjectStore) Calls() int64 { return s.calls.Load() }

// PublicURL builds the public URL of path
func (s *ObjectStore) PublicURL(bucket, path string) (string, error) {
	s.calls.Add(1)
	return s.urls.Build(bucket, path)
}

// List returns the objects directly inside folder
func (s *ObjectStore) List(ctx context.Context, bucket, folder string) ([]models.ObjectInfo, error) {
	s.calls.Add(1)
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	folder = strings.Trim(folder, "/")
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.ObjectInfo
	for p, o := range s.buckets[bucket] {
		dir, name := repositories.SplitPath(p)
		if dir != folder {
			continue
		}
		out = append(out, models.ObjectInfo{
			Name: name, Path: p, Size: int64(len(o.data)),
			ContentType: o.contentType, UpdatedAt: o.updatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Download returns a reader over the stored bytes
func (s *ObjectStore) Download(ctx context.Context, bucket, path string) (io.ReadCloser, models.ObjectInfo, error) {
	s.calls.Add(1)
	if s.DownloadErr != nil {
		return nil, models.ObjectInfo{}, s.DownloadErr
	}
	path = strings.Trim(path, "/")
	s.mu.RLock()
	o, ok := s.buckets[bucket][path]
	s.mu.RUnlock()
	if !ok {
		return nil, models.ObjectInfo{}, models.ErrNotFound
	}
	_, name := repositories.SplitPath(path)
	info := models.ObjectInfo{Name: name, Path: path, Size: int64(len(o.data)), ContentType: o.contentType, UpdatedAt: o.updatedAt}
	return io.NopCloser(bytes.NewReader(o.data)), info, nil
}

// Upload stores the content of r under path
func (s *ObjectStore) Upload(ctx context.Context, bucket, path, contentType string, r io.Reader) error {
	s.calls.Add(1)
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buckets[bucket] == nil {
		s.buckets[bucket] = make(map[string]object)
	}
	s.buckets[bucket][strings.Trim(path, "/")] = object{data: data, contentType: contentType, updatedAt: time.Now().UTC()}
	return nil
}

// Remove deletes the given paths, ignoring missing ones
func (s *ObjectStore) Remove(ctx context.Context, bucket string, paths ...string) error {
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range paths {
		delete(s.buckets[bucket], strings.Trim(p, "/"))
	}
	return nil
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repositories.ContentRepository = (*ContentRepository)(nil)

// ContentRepository is an in-process content table. Documents are deep
// copied on the way in and out, like a round trip through a real store.
type ContentRepository struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID]*models.ContentDocument

	// Err, when set, is returned by every call.
	Err error
}

// NewContentRepository creates an empty in-memory content table
func NewContentRepository() *ContentRepository {
	return &ContentRepository{docs: make(map[primitive.ObjectID]*models.ContentDocument)}
}

// Seed stores docs as-is, without touching timestamps. Used to load
// historical row shapes.
func (r *ContentRepository) Seed(docs ...*models.ContentDocument) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range docs {
		c := cloneDoc(d)
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		r.docs[c.ID] = c
	}
}

// FindByPage matches page_name or data.page, newest first
func (r *ContentRepository) FindByPage(ctx context.Context, page string) (*models.ContentDocument, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *models.ContentDocument
	for _, d := range r.docs {
		embedded, _ := d.Data["page"].(string)
		if d.PageName != page && embedded != page {
			continue
		}
		if best == nil || d.UpdatedAt.After(best.UpdatedAt) {
			best = d
		}
	}
	if best == nil {
		return nil, models.ErrNotFound
	}
	return cloneDoc(best), nil
}

// Insert stores a new document
func (r *ContentRepository) Insert(ctx context.Context, doc *models.ContentDocument) error {
	if r.Err != nil {
		return r.Err
	}
	now := time.Now().UTC()
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = now
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = cloneDoc(doc)
	return nil
}

// Replace overwrites an existing document
func (r *ContentRepository) Replace(ctx context.Context, doc *models.ContentDocument) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[doc.ID]; !ok {
		return models.ErrNotFound
	}
	r.docs[doc.ID] = cloneDoc(doc)
	return nil
}

// FindAll returns every document sorted by page name
func (r *ContentRepository) FindAll(ctx context.Context) ([]*models.ContentDocument, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.ContentDocument, 0, len(r.docs))
	for _, d := range r.docs {
		out = append(out, cloneDoc(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PageName < out[j].PageName })
	return out, nil
}

// Len returns the number of stored rows
func (r *ContentRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

func cloneDoc(d *models.ContentDocument) *models.ContentDocument {
	c := *d
	c.Data = cloneMap(d.Data)
	return &c
}

func cloneMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return cloneMap(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

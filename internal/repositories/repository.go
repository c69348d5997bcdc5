package repositories

import (
	"context"
	"io"

	"github.com/ArowuTest/community-center-backend/internal/models"
)

// ContentRepository defines the interface for content document operations
type ContentRepository interface {
	// FindByPage returns the document whose page_name column or embedded
	// data.page equals page, or models.ErrNotFound.
	FindByPage(ctx context.Context, page string) (*models.ContentDocument, error)
	Insert(ctx context.Context, doc *models.ContentDocument) error
	// Replace overwrites the row with doc.ID.
	Replace(ctx context.Context, doc *models.ContentDocument) error
	FindAll(ctx context.Context) ([]*models.ContentDocument, error)
}

// ObjectStore defines the interface for public object storage
type ObjectStore interface {
	// PublicURL builds the public URL of path in bucket. It does not check
	// that the object exists.
	PublicURL(bucket, path string) (string, error)
	// List returns the objects directly inside folder ("" for the bucket root).
	List(ctx context.Context, bucket, folder string) ([]models.ObjectInfo, error)
	// Download opens the object; callers must close the reader.
	Download(ctx context.Context, bucket, path string) (io.ReadCloser, models.ObjectInfo, error)
	Upload(ctx context.Context, bucket, path, contentType string, r io.Reader) error
	// Remove deletes the objects; missing paths are ignored.
	Remove(ctx context.Context, bucket string, paths ...string) error
}

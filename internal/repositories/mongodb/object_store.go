package mongodb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.ObjectStore = (*ObjectStore)(nil)

// ObjectStore implements repositories.ObjectStore on GridFS. Each storage
// bucket is a GridFS bucket of the same name; folders are filename prefixes.
type ObjectStore struct {
	db   *mongo.Database
	urls repositories.PublicURLBuilder
}

// NewObjectStore creates a GridFS backed object store
func NewObjectStore(db *mongo.Database, urls repositories.PublicURLBuilder) *ObjectStore {
	return &ObjectStore{db: db, urls: urls}
}

type gridFile struct {
	ID         interface{} `bson:"_id"`
	Length     int64       `bson:"length"`
	UploadDate time.Time   `bson:"uploadDate"`
	Name       string      `bson:"filename"`
	Metadata   struct {
		ContentType string `bson:"contentType"`
	} `bson:"metadata"`
}

func (f gridFile) info() models.ObjectInfo {
	_, name := repositories.SplitPath(f.Name)
	return models.ObjectInfo{
		Name:        name,
		Path:        f.Name,
		Size:        f.Length,
		ContentType: f.Metadata.ContentType,
		UpdatedAt:   f.UploadDate,
	}
}

// bucket opens a GridFS bucket bound to the context deadline. Buckets are
// cheap and carry per-instance deadlines, so one is opened per call.
func (s *ObjectStore) bucket(ctx context.Context, name string) (*gridfs.Bucket, error) {
	b, err := gridfs.NewBucket(s.db, options.GridFSBucket().SetName(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", name, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := b.SetReadDeadline(deadline); err != nil {
			return nil, err
		}
		if err := b.SetWriteDeadline(deadline); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// PublicURL builds the public URL without touching the database
func (s *ObjectStore) PublicURL(bucket, path string) (string, error) {
	return s.urls.Build(bucket, path)
}

// List returns the files directly inside folder
func (s *ObjectStore) List(ctx context.Context, bucket, folder string) ([]models.ObjectInfo, error) {
	b, err := s.bucket(ctx, bucket)
	if err != nil {
		return nil, err
	}
	pattern := "^[^/]+$"
	if folder = strings.Trim(folder, "/"); folder != "" {
		pattern = "^" + regexp.QuoteMeta(folder+"/") + "[^/]+$"
	}
	cursor, err := b.Find(bson.M{"filename": bson.M{"$regex": pattern}},
		options.GridFSFind().SetSort(bson.D{{Key: "filename", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s/%s: %w", bucket, folder, err)
	}
	defer cursor.Close(ctx)

	var files []gridFile
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	out := make([]models.ObjectInfo, 0, len(files))
	for _, f := range files {
		out = append(out, f.info())
	}
	return out, nil
}

// Download reads the whole object into memory. Site images are small.
func (s *ObjectStore) Download(ctx context.Context, bucket, path string) (io.ReadCloser, models.ObjectInfo, error) {
	b, err := s.bucket(ctx, bucket)
	if err != nil {
		return nil, models.ObjectInfo{}, err
	}
	path = strings.Trim(path, "/")
	file, err := s.findOne(ctx, b, path)
	if err != nil {
		return nil, models.ObjectInfo{}, err
	}

	var buf bytes.Buffer
	if _, err := b.DownloadToStream(file.ID, &buf); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, models.ObjectInfo{}, models.ErrNotFound
		}
		return nil, models.ObjectInfo{}, fmt.Errorf("failed to download %s/%s: %w", bucket, path, err)
	}
	return io.NopCloser(&buf), file.info(), nil
}

// Upload stores r under path, replacing any previous object with that name
func (s *ObjectStore) Upload(ctx context.Context, bucket, path, contentType string, r io.Reader) error {
	b, err := s.bucket(ctx, bucket)
	if err != nil {
		return err
	}
	path = strings.Trim(path, "/")
	if err := s.removeByName(ctx, b, path); err != nil {
		return err
	}
	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "contentType", Value: contentType}})
	if _, err := b.UploadFromStream(path, r, opts); err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", bucket, path, err)
	}
	return nil
}

// Remove deletes every version of each path
func (s *ObjectStore) Remove(ctx context.Context, bucket string, paths ...string) error {
	b, err := s.bucket(ctx, bucket)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if err := s.removeByName(ctx, b, strings.Trim(p, "/")); err != nil {
			return err
		}
	}
	return nil
}

func (s *ObjectStore) findOne(ctx context.Context, b *gridfs.Bucket, path string) (gridFile, error) {
	cursor, err := b.Find(bson.M{"filename": path},
		options.GridFSFind().SetSort(bson.D{{Key: "uploadDate", Value: -1}}).SetLimit(1))
	if err != nil {
		return gridFile{}, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return gridFile{}, err
		}
		return gridFile{}, models.ErrNotFound
	}
	var f gridFile
	if err := cursor.Decode(&f); err != nil {
		return gridFile{}, err
	}
	return f, nil
}

func (s *ObjectStore) removeByName(ctx context.Context, b *gridfs.Bucket, path string) error {
	cursor, err := b.Find(bson.M{"filename": path})
	if err != nil {
		return err
	}
	var files []gridFile
	if err := cursor.All(ctx, &files); err != nil {
		return err
	}
	for _, f := range files {
		if err := b.Delete(f.ID); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

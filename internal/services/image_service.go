package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ArowuTest/community-center-backend/internal/config"
	"github.com/ArowuTest/community-center-backend/internal/content"
	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
	"github.com/ArowuTest/community-center-backend/internal/storage"
	"github.com/ArowuTest/community-center-backend/internal/utils"
	"go.uber.org/zap"
)

// ImageService manages uploaded site images.
type ImageService struct {
	store    repositories.ObjectStore
	resolver *storage.Resolver
	content  ContentStore
	cfg      config.StorageConfig
	logger   *zap.Logger
	now      func() time.Time
}

// NewImageService creates a new ImageService
func NewImageService(store repositories.ObjectStore, resolver *storage.Resolver, contentStore ContentStore, cfg config.StorageConfig, logger *zap.Logger) *ImageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageService{
		store:    store,
		resolver: resolver,
		content:  contentStore,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Upload stores an image as {folder}/{fieldId}-{millis}.{ext} and returns
// the bare file name and its public URL.
func (s *ImageService) Upload(ctx context.Context, fieldID, folder, filename, contentType string, r io.Reader) (*models.UploadResult, error) {
	ext, ok := utils.ImageExtension(filename)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported image type %q", models.ErrValidation, filename)
	}
	switch ct := strings.ToLower(strings.TrimSpace(contentType)); {
	case ct == "" || ct == "application/octet-stream":
		// Browsers often send no useful type; the checked extension decides.
		contentType = utils.ImageContentType(ext)
	case !strings.HasPrefix(ct, "image/"):
		return nil, fmt.Errorf("%w: content type %q is not an image", models.ErrValidation, contentType)
	}

	if _, privileged := s.cfg.WriteKey(); !privileged {
		s.logger.Warn("Service role key not configured, uploading with the anonymous key")
	}

	opts := s.resolver.Options(storage.Options{Bucket: s.cfg.Bucket, Folder: strings.Trim(folder, "/")})
	name := utils.UploadFileName(fieldID, ext, s.now())
	path := name
	if opts.Folder != "" {
		path = opts.Folder + "/" + name
	}

	if err := s.store.Upload(ctx, opts.Bucket, path, contentType, r); err != nil {
		s.logger.Error("Failed to upload image", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	url, err := s.store.PublicURL(opts.Bucket, path)
	if err != nil {
		return nil, fmt.Errorf("failed to build image url: %w", err)
	}

	s.logger.Info("Uploaded image", zap.String("bucket", opts.Bucket), zap.String("path", path))
	return &models.UploadResult{Success: true, FileName: name, Path: path, URL: url}, nil
}

// Delete removes an image given a public URL of the configured bucket or a
// stored reference. It reports whether the removal succeeded.
func (s *ImageService) Delete(ctx context.Context, ref string) bool {
	opts := s.resolver.Options(storage.Options{Bucket: s.cfg.Bucket})

	path, ok := s.resolver.PathFromURL(ref, opts.Bucket)
	if !ok {
		var err error
		path, err = storage.ObjectPath(ref, opts.Folder)
		if err != nil {
			s.logger.Warn("Cannot delete image reference", zap.String("ref", ref), zap.Error(err))
			return false
		}
	}

	if err := s.store.Remove(ctx, opts.Bucket, path); err != nil {
		s.logger.Error("Failed to delete image", zap.String("path", path), zap.Error(err))
		return false
	}
	s.logger.Info("Deleted image", zap.String("bucket", opts.Bucket), zap.String("path", path))
	return true
}

// CleanupInvalid removes an image field whose stored object no longer
// exists. A field that is already gone succeeds without writing; a field
// holding anything else is left untouched and reported as bad input.
func (s *ImageService) CleanupInvalid(ctx context.Context, page, section, field string) models.Result {
	if strings.TrimSpace(page) == "" || strings.TrimSpace(section) == "" || strings.TrimSpace(field) == "" {
		return models.Failed(fmt.Errorf("%w: page, section and field are required", models.ErrValidation))
	}

	doc := s.content.Get(ctx, page)
	if doc == nil {
		// Absent page succeeds; a failing store surfaces from the removal.
		return s.content.RemoveSectionField(ctx, page, section, field)
	}
	value, present := sectionField(content.FromModel(doc).Section(section).Data, field)
	if !present {
		return models.OK()
	}

	dangling, err := s.dangling(ctx, page, value)
	if err != nil {
		s.logger.Error("Could not check image before cleanup",
			zap.String("page", page), zap.String("field", field), zap.Error(err))
		return models.Failed(err)
	}
	if !dangling {
		s.logger.Warn("Refused cleanup of a live field",
			zap.String("page", page), zap.String("section", section), zap.String("field", field))
		return models.Failed(fmt.Errorf("%w: field %q does not reference a missing image", models.ErrValidation, field))
	}
	return s.content.RemoveSectionField(ctx, page, section, field)
}

// dangling reports whether value is an image reference that can never
// render: a blob URL or a storage path whose object is missing.
func (s *ImageService) dangling(ctx context.Context, page string, value interface{}) (bool, error) {
	ref, ok := value.(string)
	if !ok || strings.TrimSpace(ref) == "" {
		return false, nil
	}
	if storage.IsBlobURL(ref) {
		return true, nil
	}

	opts := storage.Options{Bucket: s.cfg.Bucket}
	if area, ok := content.Lookup(page); ok {
		opts.Folder = area.Folder
	}
	opts = s.resolver.Options(opts)

	path, err := storage.ObjectPath(ref, opts.Folder)
	if err != nil {
		return false, nil
	}
	if _, isImage := utils.ImageExtension(path); !isImage {
		return false, nil
	}
	exists, err := s.resolver.Checker().Check(ctx, path, opts.Bucket)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// sectionField looks field up under the same spellings RemoveSectionField drops.
func sectionField(data map[string]interface{}, field string) (interface{}, bool) {
	for _, k := range []string{content.KebabCase(field), content.CamelCase(field), field} {
		if v, ok := data[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// Package storage maps admin-entered image references to public object URLs.
package storage

import (
	"context"
	"net/url"
	"strings"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
	"go.uber.org/zap"
)

// legacyPrefixes are static-asset roots used before images moved to object storage.
var legacyPrefixes = []string{"/public/images/", "public/images/", "/images/", "images/"}

// Options selects the bucket and default folder for a reference.
type Options struct {
	Bucket string
	Folder string
}

// Resolver turns raw image references into public URLs.
type Resolver struct {
	store    repositories.ObjectStore
	checker  *Checker
	defaults Options
	logger   *zap.Logger
}

// NewResolver creates a Resolver. defaults fills empty Options fields.
func NewResolver(store repositories.ObjectStore, defaults Options, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		store:    store,
		checker:  NewChecker(store, logger),
		defaults: defaults,
		logger:   logger,
	}
}

// Checker returns the existence checker sharing this resolver's store.
func (r *Resolver) Checker() *Checker { return r.checker }

// Options merges opts over the resolver defaults.
func (r *Resolver) Options(opts Options) Options {
	if opts.Bucket == "" {
		opts.Bucket = r.defaults.Bucket
	}
	if opts.Folder == "" {
		opts.Folder = r.defaults.Folder
	}
	return opts
}

// IsBlobURL reports a browser-session blob reference.
func IsBlobURL(ref string) bool {
	return strings.HasPrefix(strings.TrimSpace(ref), "blob:")
}

// IsAbsoluteURL reports an http or https reference.
func IsAbsoluteURL(ref string) bool {
	ref = strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// ObjectPath maps a stored reference to a bucket-relative object path.
// Absolute and blob URLs have no object path.
func ObjectPath(ref, folder string) (string, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return "", models.ErrInvalidReference
	case IsBlobURL(ref):
		return "", models.ErrBlobReference
	case IsAbsoluteURL(ref):
		return "", models.ErrInvalidReference
	}

	for _, prefix := range legacyPrefixes {
		if strings.HasPrefix(ref, prefix) {
			_, name := repositories.SplitPath(ref)
			if name == "" {
				return "", models.ErrInvalidReference
			}
			return joinFolder(folder, name), nil
		}
	}

	ref = strings.TrimPrefix(ref, "/")
	if ref == "" {
		return "", models.ErrInvalidReference
	}
	if !strings.Contains(ref, "/") {
		return joinFolder(folder, ref), nil
	}
	return ref, nil
}

func joinFolder(folder, name string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

// Resolve returns the URL to render for ref, or false when no image should
// be rendered. It never checks that the object exists.
func (r *Resolver) Resolve(ref string, opts Options) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	if IsBlobURL(ref) {
		r.logger.Warn("Rejected blob image reference", zap.String("ref", ref))
		return "", false
	}
	if IsAbsoluteURL(ref) {
		return ref, true
	}

	opts = r.Options(opts)
	path, err := ObjectPath(ref, opts.Folder)
	if err != nil {
		r.logger.Warn("Unusable image reference", zap.String("ref", ref), zap.Error(err))
		return "", false
	}
	public, err := r.store.PublicURL(opts.Bucket, path)
	if err != nil || public == "" {
		r.logger.Warn("Could not build public image url",
			zap.String("bucket", opts.Bucket), zap.String("path", path), zap.Error(err))
		return "", false
	}
	return public, true
}

// ResolveVerified resolves ref and confirms the object exists. Absolute URLs
// are trusted without a round trip. A missing object yields models.ErrNotFound.
func (r *Resolver) ResolveVerified(ctx context.Context, ref string, opts Options) (string, error) {
	if IsAbsoluteURL(ref) {
		return strings.TrimSpace(ref), nil
	}
	opts = r.Options(opts)
	path, err := ObjectPath(ref, opts.Folder)
	if err != nil {
		return "", err
	}
	if !r.checker.Exists(ctx, path, opts.Bucket) {
		r.logger.Info("Referenced image is missing from storage",
			zap.String("bucket", opts.Bucket), zap.String("path", path))
		return "", models.ErrNotFound
	}
	public, ok := r.Resolve(ref, opts)
	if !ok {
		return "", models.ErrInvalidReference
	}
	return public, nil
}

// PathFromURL extracts the object path from a public URL of bucket.
func (r *Resolver) PathFromURL(raw, bucket string) (string, bool) {
	bucket = r.Options(Options{Bucket: bucket}).Bucket
	marker := repositories.PublicObjectPrefix + "/" + bucket + "/"
	i := strings.Index(raw, marker)
	if i < 0 {
		return "", false
	}
	rest := raw[i+len(marker):]
	if j := strings.IndexAny(rest, "?#"); j >= 0 {
		rest = rest[:j]
	}
	path, err := url.PathUnescape(rest)
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}

package storage

import (
	"context"
	"errors"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
	"go.uber.org/zap"
)

// Checker verifies objects exist before a resolved URL is trusted. Each
// check costs a round trip, so it is only used where stale references matter.
type Checker struct {
	store  repositories.ObjectStore
	logger *zap.Logger
}

// NewChecker creates a Checker
func NewChecker(store repositories.ObjectStore, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{store: store, logger: logger}
}

// Exists lists the containing folder and looks for the basename. If the
// listing fails it falls back to downloading the object. Any failure reads
// as missing.
func (c *Checker) Exists(ctx context.Context, path, bucket string) bool {
	ok, _ := c.Check(ctx, path, bucket)
	return ok
}

// Check is Exists that tells a missing object apart from a store failure:
// the error is non-nil only when neither listing nor download could answer.
func (c *Checker) Check(ctx context.Context, path, bucket string) (bool, error) {
	folder, name := repositories.SplitPath(path)
	if name == "" {
		return false, nil
	}

	items, err := c.store.List(ctx, bucket, folder)
	if err == nil {
		for _, item := range items {
			if item.Name == name {
				return true, nil
			}
		}
		return false, nil
	}
	c.logger.Warn("Listing failed, falling back to download",
		zap.String("bucket", bucket), zap.String("folder", folder), zap.Error(err))

	rc, _, err := c.store.Download(ctx, bucket, path)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	_ = rc.Close()
	return true, nil
}

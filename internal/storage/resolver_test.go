package storage

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/repositories"
	"github.com/ArowuTest/community-center-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "https://site.test/storage/v1/object/public/public-images/"

func newStore() *memory.ObjectStore {
	return memory.NewObjectStore(repositories.PublicURLBuilder{
		BaseURL:       "https://site.test",
		PublicBuckets: []string{"public-images"},
	})
}

func TestResolve(t *testing.T) {
	r := NewResolver(newStore(), Options{Bucket: "public-images", Folder: "Home"}, nil)

	tests := []struct {
		name   string
		ref    string
		opts   Options
		want   string
		wantOK bool
	}{
		{"empty", "", Options{}, "", false},
		{"whitespace", "   ", Options{}, "", false},
		{"absolute url unchanged", "https://cdn.example.org/x.png", Options{}, "https://cdn.example.org/x.png", true},
		{"http url unchanged", "http://example.org/a/b.jpg", Options{}, "http://example.org/a/b.jpg", true},
		{"blob rejected", "blob:http://localhost/abc", Options{}, "", false},
		{"legacy rooted path", "/images/x.png", Options{}, base + "Home/x.png", true},
		{"legacy relative path", "images/sub/x.png", Options{}, base + "Home/x.png", true},
		{"bare name", "x.png", Options{}, base + "Home/x.png", true},
		{"bare name custom folder", "x.png", Options{Folder: "ramadan"}, base + "ramadan/x.png", true},
		{"leading slash stripped", "/x.png", Options{}, base + "Home/x.png", true},
		{"storage relative path", "ramadan/moon.jpg", Options{}, base + "ramadan/moon.jpg", true},
		{"private bucket", "x.png", Options{Bucket: "private"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.ref, tt.opts)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveBlobMakesNoStoreCall(t *testing.T) {
	store := newStore()
	r := NewResolver(store, Options{Bucket: "public-images", Folder: "Home"}, nil)

	_, ok := r.Resolve("blob:http://localhost/abc", Options{})
	assert.False(t, ok)
	assert.Zero(t, store.Calls())
}

func TestObjectPath(t *testing.T) {
	_, err := ObjectPath("blob:x", "Home")
	assert.ErrorIs(t, err, models.ErrBlobReference)

	_, err = ObjectPath("https://a/b.png", "Home")
	assert.ErrorIs(t, err, models.ErrInvalidReference)

	_, err = ObjectPath("/images/", "Home")
	assert.ErrorIs(t, err, models.ErrInvalidReference)

	p, err := ObjectPath("hero.png", "")
	require.NoError(t, err)
	assert.Equal(t, "hero.png", p)
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	require.NoError(t, store.Upload(ctx, "public-images", "Home/hero.png", "image/png", bytes.NewReader([]byte("png"))))
	c := NewChecker(store, nil)

	assert.True(t, c.Exists(ctx, "Home/hero.png", "public-images"))
	assert.False(t, c.Exists(ctx, "Home/other.png", "public-images"))
	assert.False(t, c.Exists(ctx, "ramadan/hero.png", "public-images"))
	assert.False(t, c.Exists(ctx, "", "public-images"))
}

func TestExistsFallsBackToDownload(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	require.NoError(t, store.Upload(ctx, "public-images", "Home/hero.png", "image/png", bytes.NewReader([]byte("png"))))
	store.ListErr = errors.New("listing disabled")
	c := NewChecker(store, nil)

	assert.True(t, c.Exists(ctx, "Home/hero.png", "public-images"))
	assert.False(t, c.Exists(ctx, "Home/gone.png", "public-images"))
}

func TestCheckSeparatesMissingFromFailure(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	store.ListErr = errors.New("listing disabled")
	c := NewChecker(store, nil)

	ok, err := c.Check(ctx, "Home/gone.png", "public-images")
	require.NoError(t, err)
	assert.False(t, ok)

	store.DownloadErr = errors.New("storage unavailable")
	ok, err = c.Check(ctx, "Home/gone.png", "public-images")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.False(t, c.Exists(ctx, "Home/gone.png", "public-images"))
}

func TestResolveVerified(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	require.NoError(t, store.Upload(ctx, "public-images", "Home/hero.png", "image/png", bytes.NewReader([]byte("png"))))
	r := NewResolver(store, Options{Bucket: "public-images", Folder: "Home"}, nil)

	url, err := r.ResolveVerified(ctx, "hero.png", Options{})
	require.NoError(t, err)
	assert.Equal(t, base+"Home/hero.png", url)

	_, err = r.ResolveVerified(ctx, "missing.png", Options{})
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = r.ResolveVerified(ctx, "blob:http://localhost/x", Options{})
	assert.ErrorIs(t, err, models.ErrBlobReference)

	url, err = r.ResolveVerified(ctx, "https://cdn.example.org/x.png", Options{})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.org/x.png", url)
}

func TestPathFromURL(t *testing.T) {
	r := NewResolver(newStore(), Options{Bucket: "public-images", Folder: "Home"}, nil)

	p, ok := r.PathFromURL(base+"Home/my%20hero.png?v=2", "")
	assert.True(t, ok)
	assert.Equal(t, "Home/my hero.png", p)

	_, ok = r.PathFromURL("https://cdn.example.org/x.png", "")
	assert.False(t, ok)
}

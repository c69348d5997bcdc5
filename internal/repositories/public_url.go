package repositories

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// PublicObjectPrefix is the route under which public objects are served.
const PublicObjectPrefix = "/storage/v1/object/public"

// ErrBucketNotPublic is returned when a URL is requested for a bucket without public access.
var ErrBucketNotPublic = errors.New("bucket is not public")

// PublicURLBuilder turns bucket paths into public object URLs.
type PublicURLBuilder struct {
	BaseURL       string
	PublicBuckets []string
}

// Build returns {BaseURL}/storage/v1/object/public/{bucket}/{path}.
func (b PublicURLBuilder) Build(bucket, path string) (string, error) {
	if b.BaseURL == "" {
		return "", errors.New("public base url is not configured")
	}
	if bucket == "" || strings.Trim(path, "/") == "" {
		return "", fmt.Errorf("bucket %q path %q: empty component", bucket, path)
	}
	public := false
	for _, name := range b.PublicBuckets {
		if name == bucket {
			public = true
			break
		}
	}
	if !public {
		return "", fmt.Errorf("%s: %w", bucket, ErrBucketNotPublic)
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.TrimRight(b.BaseURL, "/") + PublicObjectPrefix + "/" + url.PathEscape(bucket) + "/" + strings.Join(segments, "/"), nil
}

// SplitPath returns the folder and basename of an object path.
func SplitPath(path string) (folder, name string) {
	path = strings.Trim(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i], path[i+1:]
	}
	return "", path
}

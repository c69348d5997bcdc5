package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFieldID(t *testing.T) {
	tests := map[string]string{
		"hero-image":       "hero-image",
		"Hero Image":       "hero-image",
		"  ramadan__iftar": "ramadan-iftar",
		"../../etc/passwd": "etc-passwd",
		"!!!":              "image",
		"":                 "image",
		"heroImage2":       "heroimage2",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeFieldID(in), in)
	}
}

func TestImageExtension(t *testing.T) {
	ext, ok := ImageExtension("Photo.JPG")
	assert.True(t, ok)
	assert.Equal(t, "jpg", ext)

	_, ok = ImageExtension("script.php")
	assert.False(t, ok)

	_, ok = ImageExtension("noext")
	assert.False(t, ok)
}

func TestUploadFileName(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "hero-image-1700000000123.png", UploadFileName("Hero Image", "png", at))
}

func TestImageContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", ImageContentType("JPG"))
	assert.Equal(t, "image/svg+xml", ImageContentType("svg"))
	assert.Equal(t, "application/octet-stream", ImageContentType("exe"))
}

package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// imageExtensions maps the upload extensions accepted for site images to
// their content types
var imageExtensions = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"avif": "image/avif",
}

// SanitizeFieldID lowercases id and keeps only letters, digits and single
// dashes. An id with nothing usable becomes "image".
func SanitizeFieldID(id string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(id)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "image"
	}
	return out
}

// ImageExtension returns the lowercased extension of name if it is an
// accepted image type.
func ImageExtension(name string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	_, ok := imageExtensions[ext]
	return ext, ok
}

// ImageContentType returns the content type for an accepted extension.
func ImageContentType(ext string) string {
	if ct, ok := imageExtensions[strings.ToLower(ext)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// UploadFileName builds {sanitizedFieldId}-{timestamp}.{ext}
func UploadFileName(fieldID, ext string, at time.Time) string {
	return fmt.Sprintf("%s-%d.%s", SanitizeFieldID(fieldID), at.UnixMilli(), ext)
}

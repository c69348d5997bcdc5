package models

import "time"

// ObjectInfo describes one stored object inside a bucket folder.
type ObjectInfo struct {
	Name        string    `json:"name"` // basename within the listed folder
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UploadResult is returned by the image upload endpoint.
type UploadResult struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName"`
	Path     string `json:"path"`
	URL      string `json:"url,omitempty"`
}

package models

import "errors"

var (
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrBlobReference marks a browser-local blob URL that can never be stored.
	ErrBlobReference = errors.New("blob urls cannot be persisted")
	// ErrInvalidReference marks an image reference the resolver cannot map.
	ErrInvalidReference = errors.New("invalid image reference")
	// ErrInvalidCredentials is returned for a failed admin login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation wraps user input failures that map to HTTP 400.
	ErrValidation = errors.New("validation failed")
)

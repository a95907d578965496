package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrPhotoNotFound is returned when neither the cache nor the legacy origin
// has the photo.
var ErrPhotoNotFound = errors.New("photo not found")

// MediaStore abstracts blob storage for cached photos and uploads. Cached
// photos are keyed by the legacy CMS directory id plus the filename.
type MediaStore interface {
	// ReadPhoto returns the cached photo bytes, or ErrPhotoNotFound.
	ReadPhoto(ctx context.Context, legacyID int64, filename string) ([]byte, error)

	// WritePhoto stores photo bytes under the legacy id and filename.
	WritePhoto(ctx context.Context, legacyID int64, filename string, data []byte) error

	// WriteUpload stores an uploaded image and returns the generated filename.
	WriteUpload(ctx context.Context, ext string, data []byte) (string, error)
}

// LegacyPhotoFetcher pulls a photo from the legacy hosting origin.
type LegacyPhotoFetcher interface {
	// Fetch downloads the photo bytes, or returns ErrPhotoNotFound when the
	// origin does not have it.
	Fetch(ctx context.Context, filename string) ([]byte, error)
}

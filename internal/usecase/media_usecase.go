package usecase

import "context"

// MediaUsecase defines the interface for photo proxy and upload use cases.
type MediaUsecase interface {
	// GetPhoto serves a photo from the cache, falling back to the legacy
	// origin and caching the result under the legacy directory id.
	GetPhoto(ctx context.Context, legacyID int64, filename string) ([]byte, error)

	// Upload stores an uploaded image and returns its generated filename.
	Upload(ctx context.Context, ext string, data []byte) (string, error)
}

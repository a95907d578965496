package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/service"
	"goveggie/internal/usecase"

	"github.com/pkg/errors"
)

type mediaService struct {
	store   service.MediaStore
	fetcher service.LegacyPhotoFetcher
	logger  *slog.Logger
}

// NewMediaService creates a new media service instance.
func NewMediaService(
	store service.MediaStore,
	fetcher service.LegacyPhotoFetcher,
	logger *slog.Logger,
) usecase.MediaUsecase {
	return &mediaService{
		store:   store,
		fetcher: fetcher,
		logger:  logger,
	}
}

// GetPhoto serves a photo from the cache, falling back to the legacy origin.
// A fetched photo is cached so the origin is hit at most once per file.
func (s *mediaService) GetPhoto(ctx context.Context, legacyID int64, filename string) ([]byte, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" || legacyID <= 0 {
		return nil, domainerrors.ErrPhotoNotFound
	}

	data, err := s.store.ReadPhoto(ctx, legacyID, filename)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, service.ErrPhotoNotFound) {
		return nil, errors.Wrap(err, "failed to read cached photo")
	}

	data, err = s.fetcher.Fetch(ctx, filename)
	if err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			return nil, domainerrors.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch photo")
	}

	if err := s.store.WritePhoto(ctx, legacyID, filename, data); err != nil {
		// Serving the photo matters more than caching it.
		s.logger.Warn("failed to cache photo",
			slog.String("filename", filename),
			slog.String("error", err.Error()),
		)
	}

	return data, nil
}

// Upload stores an uploaded image and returns its generated filename.
func (s *mediaService) Upload(ctx context.Context, ext string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("file is empty")
	}

	filename, err := s.store.WriteUpload(ctx, ext, data)
	if err != nil {
		return "", errors.Wrap(err, "failed to store upload")
	}

	return filename, nil
}

// Package media implements blob storage for cached photos and uploads, plus
// the fetcher that pulls photos from the legacy hosting origin.
package media

import (
	"context"
	"encoding/hex"
	"strconv"
	"strings"

	"goveggie/config"
	"goveggie/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// blobStore implements service.MediaStore on top of gocloud blob buckets.
// Local disk today via fileblob; the blob API keeps a move to GCS or S3 a
// configuration change.
type blobStore struct {
	photoBucket  *blob.Bucket
	uploadBucket *blob.Bucket
}

// NewBlobStore opens the photo cache and upload buckets from config.
func NewBlobStore(cfg *config.Config) (service.MediaStore, error) {
	if cfg.Media == nil {
		return nil, errors.New("media configuration is required")
	}

	photoBucket, err := fileblob.OpenBucket(cfg.Media.PhotoCacheDir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open photo cache bucket")
	}

	uploadBucket, err := fileblob.OpenBucket(cfg.Media.UploadDir, &fileblob.Options{CreateDir: true})
	if err != nil {
		photoBucket.Close()

		return nil, errors.Wrap(err, "failed to open upload bucket")
	}

	return &blobStore{
		photoBucket:  photoBucket,
		uploadBucket: uploadBucket,
	}, nil
}

// ReadPhoto returns the cached photo bytes, or ErrPhotoNotFound.
func (s *blobStore) ReadPhoto(ctx context.Context, legacyID int64, filename string) ([]byte, error) {
	data, err := s.photoBucket.ReadAll(ctx, photoKey(legacyID, filename))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to read cached photo")
	}

	return data, nil
}

// WritePhoto stores photo bytes under the legacy id and filename.
func (s *blobStore) WritePhoto(ctx context.Context, legacyID int64, filename string, data []byte) error {
	if err := s.photoBucket.WriteAll(ctx, photoKey(legacyID, filename), data, nil); err != nil {
		return errors.Wrap(err, "failed to write cached photo")
	}

	return nil
}

// WriteUpload stores an uploaded image under a random hex name so upload
// names can never collide or traverse paths.
func (s *blobStore) WriteUpload(ctx context.Context, ext string, data []byte) (string, error) {
	id := uuid.New()
	filename := hex.EncodeToString(id[:]) + normalizeExt(ext)

	if err := s.uploadBucket.WriteAll(ctx, filename, data, nil); err != nil {
		return "", errors.Wrap(err, "failed to write upload")
	}

	return filename, nil
}

// photoKey builds the cache key from the legacy CMS directory id and the
// sanitized filename, mirroring the on-disk layout of the old service.
func photoKey(legacyID int64, filename string) string {
	return strconv.FormatInt(legacyID, 10) + "/" + sanitizeKey(filename)
}

// sanitizeKey strips any path components from a requested filename.
func sanitizeKey(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	if idx := strings.LastIndex(filename, "/"); idx >= 0 {
		filename = filename[idx+1:]
	}

	return filename
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ".jpg"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

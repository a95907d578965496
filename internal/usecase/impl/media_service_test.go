package impl

import (
	"context"
	"testing"

	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/service"
	mockService "goveggie/internal/mocks/service"
	"goveggie/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mediaServiceFixtures holds all test dependencies for media service tests.
type mediaServiceFixtures struct {
	service usecase.MediaUsecase
	store   *mockService.MockMediaStore
	fetcher *mockService.MockLegacyPhotoFetcher
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	store := mockService.NewMockMediaStore(t)
	fetcher := mockService.NewMockLegacyPhotoFetcher(t)
	svc := NewMediaService(store, fetcher, newDiscardLogger())

	return mediaServiceFixtures{
		service: svc,
		store:   store,
		fetcher: fetcher,
	}
}

func TestMediaService_GetPhoto_CacheHit(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()

	fx.store.EXPECT().
		ReadPhoto(ctx, int64(7), "dish.jpg").
		Return([]byte("jpeg-bytes"), nil)

	data, err := fx.service.GetPhoto(ctx, 7, "dish.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestMediaService_GetPhoto_CacheMissFetchesAndCaches(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()

	fx.store.EXPECT().
		ReadPhoto(ctx, int64(7), "dish.jpg").
		Return(nil, service.ErrPhotoNotFound)

	fx.fetcher.EXPECT().
		Fetch(ctx, "dish.jpg").
		Return([]byte("jpeg-bytes"), nil)

	fx.store.EXPECT().
		WritePhoto(ctx, int64(7), "dish.jpg", []byte("jpeg-bytes")).
		Return(nil)

	data, err := fx.service.GetPhoto(ctx, 7, "dish.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestMediaService_GetPhoto_CacheWriteFailureStillServes(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()

	fx.store.EXPECT().
		ReadPhoto(ctx, int64(7), "dish.jpg").
		Return(nil, service.ErrPhotoNotFound)

	fx.fetcher.EXPECT().
		Fetch(ctx, "dish.jpg").
		Return([]byte("jpeg-bytes"), nil)

	fx.store.EXPECT().
		WritePhoto(ctx, int64(7), "dish.jpg", []byte("jpeg-bytes")).
		Return(errors.New("disk full"))

	data, err := fx.service.GetPhoto(ctx, 7, "dish.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestMediaService_GetPhoto_MissEverywhere(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()

	fx.store.EXPECT().
		ReadPhoto(ctx, int64(7), "gone.jpg").
		Return(nil, service.ErrPhotoNotFound)

	fx.fetcher.EXPECT().
		Fetch(ctx, "gone.jpg").
		Return(nil, service.ErrPhotoNotFound)

	data, err := fx.service.GetPhoto(ctx, 7, "gone.jpg")
	assert.Nil(t, data)
	assert.ErrorIs(t, err, domainerrors.ErrPhotoNotFound)
}

func TestMediaService_GetPhoto_EmptyFilename(t *testing.T) {
	fx := createTestMediaService(t)

	data, err := fx.service.GetPhoto(context.Background(), 7, "  ")
	assert.Nil(t, data)
	assert.ErrorIs(t, err, domainerrors.ErrPhotoNotFound)
}

func TestMediaService_Upload(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()

	fx.store.EXPECT().
		WriteUpload(ctx, ".png", []byte("png-bytes")).
		Return("3f2a77d9c0b14e5e8a89f1f0ab12cd34.png", nil)

	filename, err := fx.service.Upload(ctx, ".png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "3f2a77d9c0b14e5e8a89f1f0ab12cd34.png", filename)
}

func TestMediaService_Upload_EmptyFile(t *testing.T) {
	fx := createTestMediaService(t)

	_, err := fx.service.Upload(context.Background(), ".png", nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

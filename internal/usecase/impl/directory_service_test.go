package impl

import (
	"context"
	"testing"

	"goveggie/internal/domain/entity"
	mockRepo "goveggie/internal/mocks/repository"
	"goveggie/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// directoryServiceFixtures holds all test dependencies for directory service tests.
type directoryServiceFixtures struct {
	service    usecase.DirectoryUsecase
	regionRepo *mockRepo.MockRegionRepository
	tagRepo    *mockRepo.MockTagRepository
	noticeRepo *mockRepo.MockNoticeRepository
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	regionRepo := mockRepo.NewMockRegionRepository(t)
	tagRepo := mockRepo.NewMockTagRepository(t)
	noticeRepo := mockRepo.NewMockNoticeRepository(t)
	service := NewDirectoryService(newTestConfig(), regionRepo, tagRepo, noticeRepo)

	return directoryServiceFixtures{
		service:    service,
		regionRepo: regionRepo,
		tagRepo:    tagRepo,
		noticeRepo: noticeRepo,
	}
}

func TestDirectoryService_ListAreas_UnknownStateIsEmptyList(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.regionRepo.EXPECT().
		ListAreas(ctx, int64(404)).
		Return(nil, nil)

	areas, err := fx.service.ListAreas(ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestDirectoryService_ListAreas(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.regionRepo.EXPECT().
		ListAreas(ctx, int64(1)).
		Return([]*entity.Area{{ID: 10, StateID: 1, Name: "Petaling Jaya"}}, nil)

	areas, err := fx.service.ListAreas(ctx, 1)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, "Petaling Jaya", areas[0].Name)
}

func TestDirectoryService_ListNotices_DefaultsLimit(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.noticeRepo.EXPECT().
		ListActive(ctx, "", defaultNoticeLimit).
		Return([]*entity.Notice{}, nil)

	_, err := fx.service.ListNotices(ctx, "", 0)
	require.NoError(t, err)
}

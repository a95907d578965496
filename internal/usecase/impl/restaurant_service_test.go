package impl

import (
	"context"
	"testing"
	"time"

	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	mockRepo "goveggie/internal/mocks/repository"
	mockService "goveggie/internal/mocks/service"
	"goveggie/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// restaurantServiceFixtures holds all test dependencies for restaurant service tests.
type restaurantServiceFixtures struct {
	service        usecase.RestaurantUsecase
	restaurantRepo *mockRepo.MockRestaurantRepository
	favoriteRepo   *mockRepo.MockFavoriteRepository
	regionRepo     *mockRepo.MockRegionRepository
	qrcodeService  *mockService.MockQRCodeService
}

func createTestRestaurantService(t *testing.T) restaurantServiceFixtures {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	regionRepo := mockRepo.NewMockRegionRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	service := NewRestaurantService(newTestConfig(), restaurantRepo, favoriteRepo, regionRepo, qrcodeService)

	return restaurantServiceFixtures{
		service:        service,
		restaurantRepo: restaurantRepo,
		favoriteRepo:   favoriteRepo,
		regionRepo:     regionRepo,
		qrcodeService:  qrcodeService,
	}
}

func TestRestaurantService_Search_AppliesDefaultRadiusForDistanceSort(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		Search(ctx, mock.MatchedBy(func(q *repository.RestaurantSearchQuery) bool {
			return q.RadiusM == 5000 && q.Sort == repository.SortDistance
		})).
		Return([]*entity.Restaurant{}, int64(0), nil)

	_, err := fx.service.Search(ctx, &usecase.SearchInput{
		Lat:  3.1390,
		Lng:  101.6869,
		Sort: "distance",
	})
	require.NoError(t, err)
}

func TestRestaurantService_Search_ComputesDistanceAndFlagsFavorites(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurants := []*entity.Restaurant{
		{ID: 1, NameZh: "素食坊", Lat: 3.1390, Lng: 101.6869},
		{ID: 2, NameZh: "清心齋", Lat: 3.1500, Lng: 101.7000},
	}

	fx.restaurantRepo.EXPECT().
		Search(ctx, mock.AnythingOfType("*repository.RestaurantSearchQuery")).
		Return(restaurants, int64(2), nil)

	fx.favoriteRepo.EXPECT().
		ListRestaurantIDs(ctx, int64(42)).
		Return([]int64{2}, nil)

	result, err := fx.service.Search(ctx, &usecase.SearchInput{
		Lat:    3.1390,
		Lng:    101.6869,
		UserID: 42,
	})
	require.NoError(t, err)
	require.Len(t, result.Restaurants, 2)

	first := result.Restaurants[0]
	require.NotNil(t, first.DistanceM)
	assert.InDelta(t, 0, *first.DistanceM, 1)
	assert.False(t, first.IsFavorite)

	second := result.Restaurants[1]
	require.NotNil(t, second.DistanceM)
	assert.Greater(t, *second.DistanceM, float64(1000))
	assert.True(t, second.IsFavorite)

	require.NotNil(t, result.Filters)
	require.NotNil(t, result.Filters.Location)
	assert.InDelta(t, 3.1390, result.Filters.Location.Lat, 1e-9)
	assert.Equal(t, float64(5000), result.Filters.Location.Radius)
	assert.Nil(t, result.Filters.PriceRange)
}

func TestRestaurantService_Search_EchoesPriceRangeOnlyWhenEngaged(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		Search(ctx, mock.AnythingOfType("*repository.RestaurantSearchQuery")).
		Return([]*entity.Restaurant{}, int64(0), nil)

	result, err := fx.service.Search(ctx, &usecase.SearchInput{
		Keyword:  "laksa",
		PriceMin: 10,
		PriceMax: 30,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Filters)
	assert.Equal(t, "laksa", result.Filters.Search)
	require.NotNil(t, result.Filters.PriceRange)
	assert.Equal(t, 10, result.Filters.PriceRange.Min)
	assert.Equal(t, 30, result.Filters.PriceRange.Max)
	assert.Nil(t, result.Filters.Location)
}

func TestRestaurantService_Search_UnknownStateDropsFilter(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()

	fx.regionRepo.EXPECT().
		FindStateByID(ctx, int64(999)).
		Return(nil, repository.ErrStateNotFound)

	fx.restaurantRepo.EXPECT().
		Search(ctx, mock.MatchedBy(func(q *repository.RestaurantSearchQuery) bool {
			return q.StateName == ""
		})).
		Return([]*entity.Restaurant{}, int64(0), nil)

	result, err := fx.service.Search(ctx, &usecase.SearchInput{StateID: 999})
	require.NoError(t, err)
	assert.Empty(t, result.Restaurants)
}

func TestRestaurantService_Search_OpenNowUsesCurrentWeekday(t *testing.T) {
	fx := createTestRestaurantService(t)

	svc := fx.service.(*restaurantService)
	// 2026-08-24 is a Monday.
	svc.now = func() time.Time {
		return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	}

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		Search(ctx, mock.MatchedBy(func(q *repository.RestaurantSearchQuery) bool {
			return q.OpenOn == "Monday"
		})).
		Return([]*entity.Restaurant{}, int64(0), nil)

	_, err := fx.service.Search(ctx, &usecase.SearchInput{IsOpenNow: true})
	require.NoError(t, err)
}

func TestRestaurantService_Search_TotalPages(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		Search(ctx, mock.AnythingOfType("*repository.RestaurantSearchQuery")).
		Return([]*entity.Restaurant{}, int64(45), nil)

	result, err := fx.service.Search(ctx, &usecase.SearchInput{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, 3, result.TotalPages)
}

func TestRestaurantService_GetByID_NotFound(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrRestaurantNotFound)

	view, err := fx.service.GetByID(ctx, 404, 0)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestRestaurantService_GetByID_GuestSkipsFavoriteLookup(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Restaurant{ID: 1, NameZh: "素食坊"}, nil)

	view, err := fx.service.GetByID(ctx, 1, 0)
	require.NoError(t, err)
	assert.False(t, view.IsFavorite)
}

func TestRestaurantService_Suggest_PriorityAndDedupe(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		SuggestNames(ctx, "素", mock.AnythingOfType("int")).
		Return([]repository.RestaurantNameSuggestion{
			{Name: "素食坊", State: "Selangor", Area: "Petaling Jaya"},
			{Name: "素心园", State: "Penang"},
		}, nil)

	fx.regionRepo.EXPECT().
		SuggestAreaNames(ctx, "素", mock.AnythingOfType("int")).
		Return([]repository.AreaSuggestion{
			{Name: "素食坊", State: "Selangor"}, // duplicate of a restaurant name, must be dropped
		}, nil)

	fx.restaurantRepo.EXPECT().
		FindDishTexts(ctx, "素", mock.AnythingOfType("int")).
		Return([]string{"素炒面，素春卷, 白饭"}, nil)

	suggestions, err := fx.service.Suggest(ctx, "素", 0)
	require.NoError(t, err)

	values := make([]string, 0, len(suggestions))
	kinds := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		values = append(values, s.Value)
		kinds = append(kinds, s.Type)
	}

	// Restaurants first, then dishes that contain the keyword, then the
	// matching hot keyword. The non-matching dish and the duplicate area are
	// dropped.
	assert.Equal(t, []string{"素食坊", "素心园", "素炒面", "素春卷", "素食自助餐"}, values)
	assert.Equal(t, []string{"restaurant", "restaurant", "dish", "dish", "keyword"}, kinds)

	// Restaurant entries carry the "state, area" location string, area-less
	// rows just the state.
	assert.Equal(t, "Selangor, Petaling Jaya", suggestions[0].Location)
	assert.Equal(t, "Penang", suggestions[1].Location)
}

func TestRestaurantService_Suggest_AreaCarriesState(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		SuggestNames(ctx, "jaya", mock.AnythingOfType("int")).
		Return(nil, nil)

	fx.regionRepo.EXPECT().
		SuggestAreaNames(ctx, "jaya", mock.AnythingOfType("int")).
		Return([]repository.AreaSuggestion{{Name: "Petaling Jaya", State: "Selangor"}}, nil)

	fx.restaurantRepo.EXPECT().
		FindDishTexts(ctx, "jaya", mock.AnythingOfType("int")).
		Return(nil, nil)

	suggestions, err := fx.service.Suggest(ctx, "jaya", 0)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "area", suggestions[0].Type)
	assert.Equal(t, "Petaling Jaya", suggestions[0].Value)
	assert.Equal(t, "Selangor", suggestions[0].State)
}

func TestRestaurantService_Suggest_LimitStopsEarly(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		SuggestNames(ctx, "素", 2).
		Return([]repository.RestaurantNameSuggestion{
			{Name: "素食坊"}, {Name: "素心园"}, {Name: "素味轩"},
		}, nil)

	suggestions, err := fx.service.Suggest(ctx, "素", 2)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
}

func TestRestaurantService_Suggest_EmptyKeyword(t *testing.T) {
	fx := createTestRestaurantService(t)

	suggestions, err := fx.service.Suggest(context.Background(), "   ", 5)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestRestaurantService_ShareQR(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Restaurant{ID: 1}, nil)

	fx.qrcodeService.EXPECT().
		GenerateShareQR(int64(1)).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.ShareQR(ctx, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestRestaurantService_ShareQR_NotFound(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrRestaurantNotFound)

	png, err := fx.service.ShareQR(ctx, 404)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

package impl

import (
	"context"
	"strings"
	"time"

	"goveggie/config"
	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	"goveggie/internal/domain/service"
	"goveggie/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	maxSuggestions        = 10
	maxDishSuggestions    = 3
	maxKeywordSuggestions = 3
	dishesPerRestaurant   = 3
)

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	favoriteRepo   repository.FavoriteRepository
	regionRepo     repository.RegionRepository
	qrcodeService  service.QRCodeService
	hotKeywords    []string
	defaultRadiusM float64
	defaultLimit   int
	now            func() time.Time
}

// NewRestaurantService creates a new restaurant service instance.
func NewRestaurantService(
	cfg *config.Config,
	restaurantRepo repository.RestaurantRepository,
	favoriteRepo repository.FavoriteRepository,
	regionRepo repository.RegionRepository,
	qrcodeService service.QRCodeService,
) usecase.RestaurantUsecase {
	svc := &restaurantService{
		restaurantRepo: restaurantRepo,
		favoriteRepo:   favoriteRepo,
		regionRepo:     regionRepo,
		qrcodeService:  qrcodeService,
		defaultRadiusM: 50000,
		defaultLimit:   20,
		now:            time.Now,
	}

	if cfg.Search != nil {
		svc.hotKeywords = cfg.Search.HotKeywords
		if cfg.Search.DefaultRadiusM > 0 {
			svc.defaultRadiusM = float64(cfg.Search.DefaultRadiusM)
		}
		if cfg.Search.DefaultPageSize > 0 {
			svc.defaultLimit = cfg.Search.DefaultPageSize
		}
	}

	return svc
}

// Search returns a filtered, ranked page of active restaurants.
func (s *restaurantService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.SearchResult, error) {
	query, err := s.buildQuery(ctx, input)
	if err != nil {
		return nil, err
	}

	restaurants, total, err := s.restaurantRepo.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search restaurants")
	}

	// Distances are computed here from the raw coordinates so the SQL layer
	// only filters and orders.
	if query.HasPoint() {
		origin := orb.Point{query.Lng, query.Lat}
		for _, r := range restaurants {
			distance := geo.DistanceHaversine(origin, orb.Point{r.Lng, r.Lat})
			r.DistanceM = &distance
		}
	}

	favoriteIDs, err := s.favoriteSet(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	views := make([]*usecase.RestaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		_, isFavorite := favoriteIDs[r.ID]
		views = append(views, &usecase.RestaurantView{
			Restaurant: r,
			IsFavorite: isFavorite,
		})
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return &usecase.SearchResult{
		Restaurants: views,
		Total:       total,
		Page:        query.Page,
		Limit:       query.Limit,
		TotalPages:  totalPages,
		Filters:     appliedFilters(input, query),
	}, nil
}

// appliedFilters echoes the filters the query actually ran with.
func appliedFilters(input *usecase.SearchInput, query *repository.RestaurantSearchQuery) *usecase.AppliedFilters {
	applied := &usecase.AppliedFilters{
		StateID:     input.StateID,
		Area:        input.Area,
		Search:      input.Keyword,
		PriceLevel:  input.PriceLevel,
		Recommended: input.Recommended,
		TimeSlot:    input.TimeSlot,
		IsOpenNow:   input.IsOpenNow,
		Tags:        input.Tags,
		SortBy:      input.Sort,
	}

	if input.PriceMin > 0 || input.PriceMax > 0 {
		applied.PriceRange = &usecase.AppliedPriceRange{Min: input.PriceMin, Max: input.PriceMax}
	}
	if query.HasPoint() {
		applied.Location = &usecase.AppliedLocation{Lat: query.Lat, Lng: query.Lng, Radius: query.RadiusM}
	}

	return applied
}

// buildQuery translates the API-facing input into the repository query.
// A state id that resolves to nothing drops the state filter, matching how
// the legacy API behaved.
func (s *restaurantService) buildQuery(ctx context.Context, input *usecase.SearchInput) (*repository.RestaurantSearchQuery, error) {
	query := &repository.RestaurantSearchQuery{
		Keyword:     input.Keyword,
		AreaName:    input.Area,
		PriceLevel:  input.PriceLevel,
		PriceMin:    input.PriceMin,
		PriceMax:    input.PriceMax,
		Recommended: input.Recommended,
		Tags:        input.Tags,
		Lat:         input.Lat,
		Lng:         input.Lng,
		RadiusM:     input.RadiusM,
		Sort:        repository.SortMode(input.Sort),
		Page:        max(input.Page, 1),
		Limit:       input.Limit,
	}

	if query.Limit <= 0 {
		query.Limit = s.defaultLimit
	}

	if input.StateID > 0 {
		state, err := s.regionRepo.FindStateByID(ctx, input.StateID)
		switch {
		case err == nil:
			query.StateName = state.Name
		case errors.Is(err, repository.ErrStateNotFound):
			// Unknown id: the filter is dropped rather than matching nothing.
		default:
			return nil, errors.Wrap(err, "failed to resolve state")
		}
	}

	if input.TimeSlot != "" {
		query.TimeSlot = parseTimeSlot(input.TimeSlot)
	}

	if input.IsOpenNow {
		query.OpenOn = s.now().Weekday().String()
	}

	if query.HasPoint() && query.RadiusM <= 0 {
		query.RadiusM = s.defaultRadiusM
	}

	return query, nil
}

// GetByID returns one restaurant with region names and favorite state.
func (s *restaurantService) GetByID(ctx context.Context, id, userID int64) (*usecase.RestaurantView, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	view := &usecase.RestaurantView{Restaurant: restaurant}

	if userID > 0 {
		isFavorite, err := s.favoriteRepo.Exists(ctx, userID, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check favorite")
		}
		view.IsFavorite = isFavorite
	}

	return view, nil
}

// Suggest returns ranked autocomplete entries: restaurant names first, then
// areas, then dishes, then configured hot keywords.
func (s *restaurantService) Suggest(ctx context.Context, keyword string, limit int) ([]usecase.Suggestion, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []usecase.Suggestion{}, nil
	}
	if limit <= 0 {
		limit = maxSuggestions
	}

	suggestions := make([]usecase.Suggestion, 0, limit)
	seen := make(map[string]struct{})

	add := func(entry usecase.Suggestion) bool {
		entry.Value = strings.TrimSpace(entry.Value)
		if entry.Value == "" {
			return len(suggestions) < limit
		}
		key := strings.ToLower(entry.Value)
		if _, dup := seen[key]; dup {
			return len(suggestions) < limit
		}
		seen[key] = struct{}{}
		suggestions = append(suggestions, entry)

		return len(suggestions) < limit
	}

	names, err := s.restaurantRepo.SuggestNames(ctx, keyword, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest restaurant names")
	}
	for _, name := range names {
		if !add(usecase.Suggestion{
			Type:     "restaurant",
			Value:    name.Name,
			Location: formatLocation(name.State, name.Area),
		}) {
			return suggestions, nil
		}
	}

	areas, err := s.regionRepo.SuggestAreaNames(ctx, keyword, limit-len(suggestions))
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest areas")
	}
	for _, area := range areas {
		if !add(usecase.Suggestion{
			Type:  "area",
			Value: area.Name,
			State: area.State,
		}) {
			return suggestions, nil
		}
	}

	dishTexts, err := s.restaurantRepo.FindDishTexts(ctx, keyword, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest dishes")
	}
	dishCount := 0
	for _, text := range dishTexts {
		if dishCount >= maxDishSuggestions {
			break
		}
		for _, dish := range splitDishes(text, keyword) {
			if dishCount >= maxDishSuggestions {
				break
			}
			before := len(suggestions)
			if !add(usecase.Suggestion{Type: "dish", Value: dish}) {
				if len(suggestions) > before {
					dishCount++
				}

				return suggestions, nil
			}
			if len(suggestions) > before {
				dishCount++
			}
		}
	}

	keywordCount := 0
	lowered := strings.ToLower(keyword)
	for _, hot := range s.hotKeywords {
		if keywordCount >= maxKeywordSuggestions {
			break
		}
		if !strings.Contains(strings.ToLower(hot), lowered) {
			continue
		}
		before := len(suggestions)
		if !add(usecase.Suggestion{Type: "keyword", Value: hot}) {
			if len(suggestions) > before {
				keywordCount++
			}

			return suggestions, nil
		}
		if len(suggestions) > before {
			keywordCount++
		}
	}

	return suggestions, nil
}

// formatLocation renders the "state, area" display string; the area part is
// often missing on legacy rows.
func formatLocation(state, area string) string {
	if state == "" {
		return area
	}
	if area == "" {
		return state
	}

	return state + ", " + area
}

// splitDishes breaks a raw recommended-dish string into individual dishes
// that match the keyword. At most a few dishes per restaurant keep one
// verbose row from flooding the list.
func splitDishes(text, keyword string) []string {
	// The legacy data mixes half-width and full-width commas.
	normalized := strings.ReplaceAll(text, "，", ",")
	parts := strings.Split(normalized, ",")
	lowered := strings.ToLower(keyword)

	dishes := make([]string, 0, dishesPerRestaurant)
	for _, part := range parts {
		if len(dishes) >= dishesPerRestaurant {
			break
		}
		dish := strings.TrimSpace(part)
		if dish == "" {
			continue
		}
		if strings.Contains(strings.ToLower(dish), lowered) {
			dishes = append(dishes, dish)
		}
	}

	return dishes
}

// FilterMetadata enumerates the static filter options the search UI renders.
// The labels mirror what the mobile client already displays.
func (s *restaurantService) FilterMetadata() *usecase.FilterMetadata {
	return &usecase.FilterMetadata{
		PriceLevels: []usecase.PriceLevelOption{
			{Value: 1, Label: "$", LabelEn: "Budget", LabelZh: "经济"},
			{Value: 2, Label: "$$", LabelEn: "Moderate", LabelZh: "中等"},
			{Value: 3, Label: "$$$", LabelEn: "Expensive", LabelZh: "较贵"},
		},
		TimeSlots: []usecase.TimeSlotOption{
			{Value: "morning", Label: "早餐", LabelEn: "Morning", Hours: "6:00 - 11:00"},
			{Value: "afternoon", Label: "午餐", LabelEn: "Afternoon", Hours: "11:00 - 15:00"},
			{Value: "evening", Label: "晚餐", LabelEn: "Evening", Hours: "18:00 - 22:00"},
			{Value: "night", Label: "宵夜", LabelEn: "Night", Hours: "22:00 - 2:00"},
		},
		SortOptions: []usecase.FilterOption{
			{Value: "recommended", Label: "推荐优先", LabelEn: "Recommended"},
			{Value: "distance", Label: "距离最近", LabelEn: "Nearest"},
			{Value: "newest", Label: "最新加入", LabelEn: "Newest"},
		},
		Features: []usecase.FilterOption{
			{Value: "recommended", Label: "推荐餐厅", LabelEn: "Recommended"},
			{Value: "is_open_now", Label: "正在营业", LabelEn: "Open Now"},
		},
	}
}

// ShareQR renders a PNG QR code linking to the restaurant's share page.
func (s *restaurantService) ShareQR(ctx context.Context, id int64) ([]byte, error) {
	if _, err := s.restaurantRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	png, err := s.qrcodeService.GenerateShareQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share qr")
	}

	return png, nil
}

func (s *restaurantService) favoriteSet(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	if userID <= 0 {
		return nil, nil
	}

	ids, err := s.favoriteRepo.ListRestaurantIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorite ids")
	}

	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set, nil
}

func parseTimeSlot(raw string) entity.TimeSlot {
	return entity.TimeSlot(strings.ToLower(strings.TrimSpace(raw)))
}

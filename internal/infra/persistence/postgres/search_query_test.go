package postgres

import (
	"strings"
	"testing"

	"goveggie/internal/domain/entity"
	"goveggie/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func findClause(clauses []searchClause, fragment string) *searchClause {
	for i := range clauses {
		if strings.Contains(clauses[i].expr, fragment) {
			return &clauses[i]
		}
	}

	return nil
}

func TestBuildSearchClauses_DefaultsToActiveStatus(t *testing.T) {
	clauses := buildSearchClauses(&repository.RestaurantSearchQuery{})

	statusClause := findClause(clauses, "status = ?")
	require.NotNil(t, statusClause)
	assert.Equal(t, []any{"active"}, statusClause.args)
}

func TestBuildSearchClauses_KeywordIsParameterized(t *testing.T) {
	query := &repository.RestaurantSearchQuery{
		Keyword: "素食'; DROP TABLE restaurants; --",
	}

	clauses := buildSearchClauses(query)

	keywordClause := findClause(clauses, "name_zh ILIKE ?")
	require.NotNil(t, keywordClause)
	// The raw keyword must never leak into the SQL text.
	assert.NotContains(t, keywordClause.expr, "DROP TABLE")
	assert.Len(t, keywordClause.args, 6)
	for _, arg := range keywordClause.args {
		assert.Contains(t, arg, "DROP TABLE")
	}
}

func TestBuildSearchClauses_KeywordMatchesPhones(t *testing.T) {
	query := &repository.RestaurantSearchQuery{Keyword: "0123456"}

	clauses := buildSearchClauses(query)

	keywordClause := findClause(clauses, "phones::text ILIKE ?")
	require.NotNil(t, keywordClause)
	assert.Contains(t, keywordClause.args, "%0123456%")
}

func TestBuildSearchClauses_TagsStayInArgs(t *testing.T) {
	query := &repository.RestaurantSearchQuery{
		Tags: []string{"vegan", "pure') OR 1=1 --"},
	}

	clauses := buildSearchClauses(query)

	tagClause := findClause(clauses, "vegetarian_type IN ?")
	require.NotNil(t, tagClause)
	assert.NotContains(t, tagClause.expr, "OR 1=1")
	assert.Equal(t, []any{[]string{"vegan", "pure') OR 1=1 --"}}, tagClause.args)
}

func TestBuildSearchClauses_RecommendedFalseIncludesNull(t *testing.T) {
	recommended := false
	query := &repository.RestaurantSearchQuery{Recommended: &recommended}

	clauses := buildSearchClauses(query)

	recClause := findClause(clauses, "recommended")
	require.NotNil(t, recClause)
	assert.Contains(t, recClause.expr, "IS NULL")
}

func TestBuildSearchClauses_RecommendedTrue(t *testing.T) {
	recommended := true
	query := &repository.RestaurantSearchQuery{Recommended: &recommended}

	clauses := buildSearchClauses(query)

	recClause := findClause(clauses, "recommended = ?")
	require.NotNil(t, recClause)
	assert.NotContains(t, recClause.expr, "IS NULL")
}

func TestBuildSearchClauses_PriceLevelWinsOverRange(t *testing.T) {
	query := &repository.RestaurantSearchQuery{
		PriceLevel: 2,
		PriceMin:   1,
		PriceMax:   3,
	}

	clauses := buildSearchClauses(query)

	assert.NotNil(t, findClause(clauses, "price_level = ?"))
	assert.Nil(t, findClause(clauses, "price_level >= ?"))
	assert.Nil(t, findClause(clauses, "price_level <= ?"))
}

func TestBuildSearchClauses_TimeSlotUsesJSONContainment(t *testing.T) {
	query := &repository.RestaurantSearchQuery{TimeSlot: entity.SlotMorning}

	clauses := buildSearchClauses(query)

	slotClause := findClause(clauses, "time_slots @> ?")
	require.NotNil(t, slotClause)
	assert.Equal(t, []any{`["morning"]`}, slotClause.args)
}

func TestBuildSearchClauses_InvalidTimeSlotIgnored(t *testing.T) {
	query := &repository.RestaurantSearchQuery{TimeSlot: entity.TimeSlot("brunch")}

	clauses := buildSearchClauses(query)

	assert.Nil(t, findClause(clauses, "time_slots"))
}

func TestBuildSearchClauses_OpenOnTreatsNullRestDaysAsOpen(t *testing.T) {
	query := &repository.RestaurantSearchQuery{OpenOn: "Monday"}

	clauses := buildSearchClauses(query)

	openClause := findClause(clauses, "rest_days")
	require.NotNil(t, openClause)
	assert.Contains(t, openClause.expr, "rest_days IS NULL")
	assert.Equal(t, []any{`["Monday"]`}, openClause.args)
}

func TestBuildSearchClauses_RadiusRequiresPoint(t *testing.T) {
	// Coordinates near the null island mean the client had no GPS fix.
	query := &repository.RestaurantSearchQuery{
		Lat:     0.0001,
		Lng:     0.0001,
		RadiusM: 5000,
	}

	clauses := buildSearchClauses(query)
	assert.Nil(t, findClause(clauses, "acos"))

	query.Lat = 3.139
	query.Lng = 101.6869
	clauses = buildSearchClauses(query)

	radiusClause := findClause(clauses, "acos")
	require.NotNil(t, radiusClause)
	assert.Equal(t, []any{3.139, 101.6869, 3.139, 5000.0}, radiusClause.args)
}

func TestRestaurantSearchQuery_HasPoint(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lng  float64
		want bool
	}{
		{"null island", 0, 0, false},
		{"near null island", 0.05, -0.05, false},
		{"kuala lumpur", 3.139, 101.6869, true},
		{"southern hemisphere", -33.87, 151.21, true},
		{"lat only", 3.139, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &repository.RestaurantSearchQuery{Lat: tt.lat, Lng: tt.lng}
			assert.Equal(t, tt.want, q.HasPoint())
		})
	}
}

func TestBuildOrderClause(t *testing.T) {
	distanceQuery := &repository.RestaurantSearchQuery{
		Sort: repository.SortDistance,
		Lat:  3.139,
		Lng:  101.6869,
	}
	order := buildOrderClause(distanceQuery)
	expr, ok := order.Expression.(clause.Expr)
	require.True(t, ok)
	assert.Contains(t, expr.SQL, "acos")
	assert.Equal(t, []any{3.139, 101.6869, 3.139}, expr.Vars)

	// Distance sort without a fix degrades to the default ordering.
	noPointQuery := &repository.RestaurantSearchQuery{Sort: repository.SortDistance}
	order = buildOrderClause(noPointQuery)
	expr, ok = order.Expression.(clause.Expr)
	require.True(t, ok)
	assert.Equal(t, "id DESC", expr.SQL)

	newestQuery := &repository.RestaurantSearchQuery{Sort: repository.SortNewest}
	order = buildOrderClause(newestQuery)
	expr, ok = order.Expression.(clause.Expr)
	require.True(t, ok)
	assert.Contains(t, expr.SQL, "created_at DESC")

	recommendedQuery := &repository.RestaurantSearchQuery{Sort: repository.SortRecommended}
	order = buildOrderClause(recommendedQuery)
	expr, ok = order.Expression.(clause.Expr)
	require.True(t, ok)
	assert.Contains(t, expr.SQL, "recommended DESC NULLS LAST")
}

func TestBuildAdminOrderClause_NewestFirst(t *testing.T) {
	order := buildAdminOrderClause()
	expr, ok := order.Expression.(clause.Expr)
	require.True(t, ok)
	assert.Equal(t, "restaurants.created_at DESC, restaurants.id DESC", expr.SQL)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% vegan`, escapeLike("100% vegan"))
	assert.Equal(t, `under\_score`, escapeLike("under_score"))
	assert.Equal(t, `back\\slash`, escapeLike(`back\slash`))
}

package postgres

import (
	"encoding/json"
	"strings"

	"goveggie/internal/domain/entity"
	"goveggie/internal/domain/repository"

	"gorm.io/gorm/clause"
)

// haversineSQL computes the great-circle distance in meters between the query
// point and a restaurant row. least() guards acos against floating point
// drift past 1.0 on near-identical coordinates.
const haversineSQL = "6371000 * acos(least(1.0, " +
	"cos(radians(?)) * cos(radians(lat)) * cos(radians(lng) - radians(?)) + " +
	"sin(radians(?)) * sin(radians(lat))))"

func haversineArgs(lat, lng float64) []any {
	return []any{lat, lng, lat}
}

// searchClause is one parameterized WHERE predicate. Every user-supplied
// value travels through args, never through the SQL text.
type searchClause struct {
	expr string
	args []any
}

// buildSearchClauses translates the search query into WHERE predicates.
// The same clause set drives both the page query and the total count, so the
// two can never disagree on what matched.
func buildSearchClauses(q *repository.RestaurantSearchQuery) []searchClause {
	clauses := make([]searchClause, 0, 8)

	status := q.Status
	if status == "" {
		status = entity.RestaurantActive
	}
	clauses = append(clauses, searchClause{expr: "status = ?", args: []any{string(status)}})

	if q.StateName != "" {
		clauses = append(clauses, searchClause{expr: "state = ?", args: []any{q.StateName}})
	}

	if q.AreaName != "" {
		clauses = append(clauses, searchClause{expr: "area = ?", args: []any{q.AreaName}})
	}

	if keyword := strings.TrimSpace(q.Keyword); keyword != "" {
		pattern := "%" + escapeLike(keyword) + "%"
		// phones is a jsonb array of numbers; matching its text rendering lets
		// a partial phone number act as a search keyword.
		clauses = append(clauses, searchClause{
			expr: "(name_zh ILIKE ? OR name_en ILIKE ? OR address ILIKE ? OR recommended_dishes ILIKE ? OR description ILIKE ? OR phones::text ILIKE ?)",
			args: []any{pattern, pattern, pattern, pattern, pattern, pattern},
		})
	}

	if q.PriceLevel > 0 {
		clauses = append(clauses, searchClause{expr: "price_level = ?", args: []any{q.PriceLevel}})
	} else {
		if q.PriceMin > 0 {
			clauses = append(clauses, searchClause{expr: "price_level >= ?", args: []any{q.PriceMin}})
		}
		if q.PriceMax > 0 {
			clauses = append(clauses, searchClause{expr: "price_level <= ?", args: []any{q.PriceMax}})
		}
	}

	if q.Recommended != nil {
		if *q.Recommended {
			clauses = append(clauses, searchClause{expr: "recommended = ?", args: []any{true}})
		} else {
			// Rows never reviewed carry NULL, which counts as not recommended.
			clauses = append(clauses, searchClause{expr: "(recommended = ? OR recommended IS NULL)", args: []any{false}})
		}
	}

	if q.TimeSlot != "" && q.TimeSlot.IsValid() {
		clauses = append(clauses, searchClause{
			expr: "time_slots @> ?",
			args: []any{jsonArray(string(q.TimeSlot))},
		})
	}

	if q.OpenOn != "" {
		clauses = append(clauses, searchClause{
			expr: "(rest_days IS NULL OR NOT rest_days @> ?)",
			args: []any{jsonArray(q.OpenOn)},
		})
	}

	if len(q.Tags) > 0 {
		clauses = append(clauses, searchClause{expr: "vegetarian_type IN ?", args: []any{q.Tags}})
	}

	if q.HasPoint() && q.RadiusM > 0 {
		clauses = append(clauses, searchClause{
			expr: haversineSQL + " <= ?",
			args: append(haversineArgs(q.Lat, q.Lng), q.RadiusM),
		})
	}

	return clauses
}

// buildOrderClause picks the ORDER BY for a sort mode. A distance sort
// without a usable geo anchor silently degrades to the default ordering.
func buildOrderClause(q *repository.RestaurantSearchQuery) clause.OrderBy {
	switch {
	case q.Sort == repository.SortDistance && q.HasPoint():
		return clause.OrderBy{
			Expression: clause.Expr{
				SQL:  haversineSQL + " ASC",
				Vars: haversineArgs(q.Lat, q.Lng),
			},
		}
	case q.Sort == repository.SortNewest:
		return clause.OrderBy{
			Expression: clause.Expr{SQL: "created_at DESC, id DESC"},
		}
	case q.Sort == repository.SortRecommended:
		return clause.OrderBy{
			Expression: clause.Expr{SQL: "recommended DESC NULLS LAST, id DESC"},
		}
	default:
		return clause.OrderBy{
			Expression: clause.Expr{SQL: "id DESC"},
		}
	}
}

// buildAdminOrderClause orders the moderation listing newest-first.
func buildAdminOrderClause() clause.OrderBy {
	return clause.OrderBy{
		Expression: clause.Expr{SQL: "restaurants.created_at DESC, restaurants.id DESC"},
	}
}

// escapeLike neutralizes LIKE metacharacters in user keywords.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)

	return s
}

// jsonArray renders a single-element jsonb array literal for @> containment.
func jsonArray(value string) string {
	data, _ := json.Marshal([]string{value})

	return string(data)
}

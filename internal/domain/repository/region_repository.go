// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"goveggie/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrStateNotFound is returned when a state is not found.
var ErrStateNotFound = errors.New("state not found")

// AreaSuggestion pairs a matched area name with its state, for the
// autocomplete payload.
type AreaSuggestion struct {
	Name  string
	State string
}

// RegionRepository defines read operations over the states and areas tables.
type RegionRepository interface {
	// ListStates returns all states with their area counts, limited to the
	// given country when non-empty.
	ListStates(ctx context.Context, country string) ([]*entity.State, error)

	// FindStateByID retrieves a single state.
	FindStateByID(ctx context.Context, id int64) (*entity.State, error)

	// ListAreas returns the areas under a state.
	ListAreas(ctx context.Context, stateID int64) ([]*entity.Area, error)

	// SuggestAreaNames returns area names matching the prefix, each with its
	// state, for search suggestions.
	SuggestAreaNames(ctx context.Context, keyword string, limit int) ([]AreaSuggestion, error)
}

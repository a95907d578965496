// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"goveggie/internal/domain/entity"
	"goveggie/internal/domain/repository"
	"goveggie/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// regionRepository implements the repository.RegionRepository interface using GORM.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{
		db: db,
	}
}

// ListStates returns all states with their area counts.
func (repo *regionRepository) ListStates(ctx context.Context, country string) ([]*entity.State, error) {
	type stateRow struct {
		ID        int64
		Name      string
		NameZh    string
		AreaCount int64
	}

	tx := repo.db.WithContext(ctx).
		Model(&model.StateModel{}).
		Select("states.id, states.name, states.name_zh, COUNT(areas.id) AS area_count").
		Joins("LEFT JOIN areas ON areas.state_id = states.id")
	if country != "" {
		tx = tx.Where("states.country = ?", country)
	}

	var rows []stateRow
	if err := tx.
		Group("states.id, states.name, states.name_zh").
		Order("states.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list states")
	}

	states := make([]*entity.State, 0, len(rows))
	for _, row := range rows {
		states = append(states, &entity.State{
			ID:        row.ID,
			Name:      row.Name,
			NameZh:    row.NameZh,
			AreaCount: row.AreaCount,
		})
	}

	return states, nil
}

// FindStateByID retrieves a single state.
func (repo *regionRepository) FindStateByID(ctx context.Context, id int64) (*entity.State, error) {
	var stateM model.StateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStateNotFound
		}

		return nil, errors.Wrap(err, "failed to find state by id")
	}

	return &entity.State{
		ID:     stateM.ID,
		Name:   stateM.Name,
		NameZh: stateM.NameZh,
	}, nil
}

// ListAreas returns the areas under a state.
func (repo *regionRepository) ListAreas(ctx context.Context, stateID int64) ([]*entity.Area, error) {
	var models []*model.AreaModel

	if err := repo.db.WithContext(ctx).
		Where("state_id = ?", stateID).
		Order("name ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list areas")
	}

	areas := make([]*entity.Area, 0, len(models))
	for _, m := range models {
		areas = append(areas, &entity.Area{
			ID:      m.ID,
			StateID: m.StateID,
			Name:    m.Name,
			NameZh:  m.NameZh,
		})
	}

	return areas, nil
}

// SuggestAreaNames returns area names matching the keyword, each with its
// state, for search suggestions.
func (repo *regionRepository) SuggestAreaNames(ctx context.Context, keyword string, limit int) ([]repository.AreaSuggestion, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(keyword)) + "%"

	type areaRow struct {
		Name  string
		State string
	}

	var rows []areaRow
	if err := repo.db.WithContext(ctx).
		Model(&model.AreaModel{}).
		Select("DISTINCT areas.name AS name, states.name AS state").
		Joins("LEFT JOIN states ON states.id = areas.state_id").
		Where("areas.name ILIKE ? OR areas.name_zh ILIKE ?", pattern, pattern).
		Order("areas.name ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to suggest area names")
	}

	suggestions := make([]repository.AreaSuggestion, 0, len(rows))
	for _, row := range rows {
		suggestions = append(suggestions, repository.AreaSuggestion{
			Name:  row.Name,
			State: row.State,
		})
	}

	return suggestions, nil
}

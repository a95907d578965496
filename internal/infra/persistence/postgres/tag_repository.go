// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"goveggie/internal/domain/entity"
	"goveggie/internal/domain/repository"
	"goveggie/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tagRepository implements the repository.TagRepository interface using GORM.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// ListActive returns active tags ordered by type then sort order. The type
// filter is parameterized.
func (repo *tagRepository) ListActive(ctx context.Context, tagType string) ([]*entity.Tag, error) {
	var models []*model.TagModel

	tx := repo.db.WithContext(ctx).Where("is_active = ?", true)
	if tagType != "" {
		tx = tx.Where("type = ?", tagType)
	}

	if err := tx.
		Order("type ASC, sort_order ASC, name ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	tags := make([]*entity.Tag, 0, len(models))
	for _, m := range models {
		tags = append(tags, &entity.Tag{
			ID:        m.ID,
			Type:      entity.TagType(m.Type),
			Name:      m.Name,
			NameZh:    m.NameZh,
			SortOrder: m.SortOrder,
			IsActive:  m.IsActive,
		})
	}

	return tags, nil
}

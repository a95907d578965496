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

// noticeRepository implements the repository.NoticeRepository interface using GORM.
type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository is the constructor for noticeRepository.
func NewNoticeRepository(db *gorm.DB) repository.NoticeRepository {
	return &noticeRepository{
		db: db,
	}
}

// ListActive returns active, non-deleted notices ordered by priority then
// recency. The soft-delete column is filtered by GORM automatically.
func (repo *noticeRepository) ListActive(ctx context.Context, noticeType string, limit int) ([]*entity.Notice, error) {
	var models []*model.NoticeModel

	tx := repo.db.WithContext(ctx).Where("is_active = ?", true)
	if noticeType != "" {
		tx = tx.Where("type = ?", noticeType)
	}

	if err := tx.
		Order("priority DESC, created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notices")
	}

	notices := make([]*entity.Notice, 0, len(models))
	for _, m := range models {
		notices = append(notices, &entity.Notice{
			ID:        m.ID,
			Type:      entity.NoticeType(m.Type),
			Content:   m.Content,
			Info:      m.Info,
			ImageURL:  m.ImageURL,
			LinkName:  m.LinkName,
			Links:     m.Links,
			Priority:  m.Priority,
			IsActive:  m.IsActive,
			CreatedAt: m.CreatedAt,
		})
	}

	return notices, nil
}

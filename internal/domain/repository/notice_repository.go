// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"goveggie/internal/domain/entity"
)

// NoticeRepository defines read operations over the in-app bulletin table.
type NoticeRepository interface {
	// ListActive returns up to limit active notices ordered by priority then
	// recency, optionally restricted to one notice type.
	ListActive(ctx context.Context, noticeType string, limit int) ([]*entity.Notice, error)
}

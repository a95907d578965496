// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"goveggie/internal/domain/entity"
)

// TagRepository defines read operations over the curated tag table.
type TagRepository interface {
	// ListActive returns active tags ordered by type then sort order,
	// optionally restricted to one tag type.
	ListActive(ctx context.Context, tagType string) ([]*entity.Tag, error)
}

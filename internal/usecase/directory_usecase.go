package usecase

import (
	"context"

	"goveggie/internal/domain/entity"
)

// DirectoryUsecase defines the interface for static directory data use cases.
type DirectoryUsecase interface {
	// ListStates returns all states with their area counts.
	ListStates(ctx context.Context) ([]*entity.State, error)

	// ListAreas returns the areas under a state.
	ListAreas(ctx context.Context, stateID int64) ([]*entity.Area, error)

	// ListTags returns the active filter tags, optionally one type only.
	ListTags(ctx context.Context, tagType string) ([]*entity.Tag, error)

	// ListNotices returns up to limit active in-app bulletins, optionally
	// one type only.
	ListNotices(ctx context.Context, noticeType string, limit int) ([]*entity.Notice, error)
}

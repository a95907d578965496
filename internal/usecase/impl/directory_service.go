package impl

import (
	"context"

	"goveggie/config"
	"goveggie/internal/domain/entity"
	"goveggie/internal/domain/repository"
	"goveggie/internal/usecase"

	"github.com/pkg/errors"
)

const defaultNoticeLimit = 5

type directoryService struct {
	regionRepo repository.RegionRepository
	tagRepo    repository.TagRepository
	noticeRepo repository.NoticeRepository
	country    string
}

// NewDirectoryService creates a new directory service instance.
func NewDirectoryService(
	cfg *config.Config,
	regionRepo repository.RegionRepository,
	tagRepo repository.TagRepository,
	noticeRepo repository.NoticeRepository,
) usecase.DirectoryUsecase {
	country := ""
	if cfg.Stats != nil {
		country = cfg.Stats.Country
	}

	return &directoryService{
		regionRepo: regionRepo,
		tagRepo:    tagRepo,
		noticeRepo: noticeRepo,
		country:    country,
	}
}

// ListStates returns all states with their area counts.
func (s *directoryService) ListStates(ctx context.Context) ([]*entity.State, error) {
	states, err := s.regionRepo.ListStates(ctx, s.country)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list states")
	}

	return states, nil
}

// ListAreas returns the areas under a state. An unknown state yields an
// empty list, not an error.
func (s *directoryService) ListAreas(ctx context.Context, stateID int64) ([]*entity.Area, error) {
	areas, err := s.regionRepo.ListAreas(ctx, stateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list areas")
	}
	if areas == nil {
		areas = []*entity.Area{}
	}

	return areas, nil
}

// ListTags returns the active filter tags, optionally one type only.
func (s *directoryService) ListTags(ctx context.Context, tagType string) ([]*entity.Tag, error) {
	tags, err := s.tagRepo.ListActive(ctx, tagType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

// ListNotices returns up to limit active in-app bulletins.
func (s *directoryService) ListNotices(ctx context.Context, noticeType string, limit int) ([]*entity.Notice, error) {
	if limit <= 0 {
		limit = defaultNoticeLimit
	}

	notices, err := s.noticeRepo.ListActive(ctx, noticeType, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notices")
	}

	return notices, nil
}

package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/prernajain1224/MHPS-Website/internal/dto"
	"github.com/prernajain1224/MHPS-Website/internal/models"
	appErrors "github.com/prernajain1224/MHPS-Website/pkg/errors"
)

const timelinePageSize = 10

type timelineRepository interface {
	List(ctx context.Context, filter models.TimelineFilter) ([]models.HistoricalEvent, int, error)
	ListDates(ctx context.Context, parentID string) ([]time.Time, error)
	GetByID(ctx context.Context, id string) (*models.HistoricalEvent, error)
	Create(ctx context.Context, event *models.HistoricalEvent) error
	Update(ctx context.Context, event *models.HistoricalEvent) error
	Delete(ctx context.Context, id string) error
}

// TimelineService handles the About page historical timeline: the paged
// event list, the five-year period menu, and editorial writes. The period
// menu is cached per index page and rebuilt on every write.
type TimelineService struct {
	repo      timelineRepository
	pages     pageReader
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	ttl       time.Duration
}

// NewTimelineService constructs the service.
func NewTimelineService(repo timelineRepository, pages pageReader, cache *CacheService, ttl time.Duration, validate *validator.Validate, logger *zap.Logger) *TimelineService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimelineService{repo: repo, pages: pages, cache: cache, validator: validate, logger: logger, ttl: ttl}
}

func timelinePeriodsKey(parentID string) string {
	return fmt.Sprintf("timeline:periods:%s", parentID)
}

// List returns one page of historical events filtered by the period
// selector, together with the period menu. The menu always reflects the
// full timeline regardless of the active selector.
func (s *TimelineService) List(ctx context.Context, req dto.TimelineListRequest) (*dto.TimelineContext, *models.Pagination, error) {
	start, end := parsePeriod(req.Period)
	filter := models.TimelineFilter{
		ParentID:  req.IndexID,
		StartYear: start,
		EndYear:   end,
		Page:      resolvePage(req.Page),
		PageSize:  timelinePageSize,
	}
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list historical events")
	}
	if pages := totalPages(total, filter.PageSize); pages > 0 && filter.Page > pages {
		filter.Page = pages
		rows, total, err = s.repo.List(ctx, filter)
		if err != nil {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list historical events")
		}
	}
	periods, err := s.Periods(ctx, req.IndexID)
	if err != nil {
		return nil, nil, err
	}
	ctxOut := &dto.TimelineContext{Events: rows, Periods: periods}
	return ctxOut, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Periods returns the non-empty five-year buckets for the timeline in
// chronological order, each with its event count.
func (s *TimelineService) Periods(ctx context.Context, parentID string) ([]models.TimelinePeriod, error) {
	key := timelinePeriodsKey(parentID)
	var cached []models.TimelinePeriod
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}
	dates, err := s.repo.ListDates(ctx, parentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timeline dates")
	}
	periods := buildPeriods(dates)
	if err := s.cache.Set(ctx, key, periods, s.ttl); err != nil {
		s.logger.Warn("failed to cache timeline periods", zap.String("parent_id", parentID), zap.Error(err))
	}
	return periods, nil
}

// buildPeriods folds dates (in chronological order) into their five-year
// buckets, keeping first-seen order and skipping empty buckets.
func buildPeriods(dates []time.Time) []models.TimelinePeriod {
	periods := []models.TimelinePeriod{}
	index := make(map[string]int)
	for _, d := range dates {
		start, end := models.PeriodBounds(d.Year())
		label := fmt.Sprintf("%d-%d", start, end)
		if i, ok := index[label]; ok {
			periods[i].Count++
			continue
		}
		index[label] = len(periods)
		periods = append(periods, models.TimelinePeriod{Start: start, End: end, Label: label, Count: 1})
	}
	return periods
}

// Get returns a historical event by id with its period label.
func (s *TimelineService) Get(ctx context.Context, id string) (*dto.HistoricalEventDetail, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "historical event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get historical event")
	}
	return &dto.HistoricalEventDetail{Event: *event, PeriodLabel: event.PeriodLabel()}, nil
}

// Create registers a new historical event under an about index page.
func (s *TimelineService) Create(ctx context.Context, req dto.CreateHistoricalEventRequest) (*models.HistoricalEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if err := ensureParent(ctx, s.pages, req.ParentID, models.PageTypeHistoricalEvent); err != nil {
		return nil, err
	}
	eventDate, _ := time.Parse("2006-01-02", req.EventDate)
	event := &models.HistoricalEvent{
		ParentID:    req.ParentID,
		EventDate:   eventDate,
		ImageID:     req.ImageID,
		Title:       req.Title,
		Description: req.Description,
		Published:   req.Published,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create historical event")
	}
	s.invalidatePeriods(ctx, event.ParentID)
	return event, nil
}

// Update modifies an existing historical event.
func (s *TimelineService) Update(ctx context.Context, id string, req dto.UpdateHistoricalEventRequest) (*models.HistoricalEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "historical event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load historical event")
	}
	eventDate, _ := time.Parse("2006-01-02", req.EventDate)
	existing.EventDate = eventDate
	existing.ImageID = req.ImageID
	existing.Title = req.Title
	existing.Description = req.Description
	existing.Published = req.Published
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update historical event")
	}
	s.invalidatePeriods(ctx, existing.ParentID)
	return existing, nil
}

// Delete removes a historical event by id.
func (s *TimelineService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "historical event not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load historical event")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete historical event")
	}
	s.invalidatePeriods(ctx, existing.ParentID)
	return nil
}

func (s *TimelineService) invalidatePeriods(ctx context.Context, parentID string) {
	if err := s.cache.Invalidate(ctx, timelinePeriodsKey(parentID)); err != nil {
		s.logger.Warn("failed to invalidate timeline periods", zap.String("parent_id", parentID), zap.Error(err))
	}
}

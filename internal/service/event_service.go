package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/prernajain1224/MHPS-Website/internal/dto"
	"github.com/prernajain1224/MHPS-Website/internal/models"
	appErrors "github.com/prernajain1224/MHPS-Website/pkg/errors"
)

const eventPageSize = 9

type eventRepository interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, int, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}

// EventService handles event workflows. The clock is injected so the
// upcoming/past partition can be tested against a fixed day.
type EventService struct {
	repo      eventRepository
	pages     pageReader
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewEventService constructs the service.
func NewEventService(repo eventRepository, pages pageReader, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, pages: pages, validator: validate, logger: logger, now: time.Now}
}

// List returns one page of the upcoming or past partition. A blank tab
// defaults to upcoming and any other non-"upcoming" value selects the
// past partition; unknown type or format filters are ignored.
func (s *EventService) List(ctx context.Context, req dto.EventListRequest) ([]models.Event, models.EventTab, *models.Pagination, error) {
	tab := models.EventTabUpcoming
	if req.Tab != "" && models.EventTab(req.Tab) != models.EventTabUpcoming {
		tab = models.EventTabPast
	}
	filter := models.EventFilter{
		ParentID: req.IndexID,
		Tab:      tab,
		Today:    s.now().UTC(),
		Page:     resolvePage(req.Page),
		PageSize: eventPageSize,
	}
	if models.ValidEventType(req.EventType) {
		filter.EventType = models.EventType(req.EventType)
	}
	if models.ValidEventFormat(req.EventFormat) {
		filter.EventFormat = models.EventFormat(req.EventFormat)
	}
	if v := parseBoolFlag(req.Livestream); v != nil && *v {
		filter.LivestreamReq = true
	}
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, tab, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	if pages := totalPages(total, filter.PageSize); pages > 0 && filter.Page > pages {
		filter.Page = pages
		rows, total, err = s.repo.List(ctx, filter)
		if err != nil {
			return nil, tab, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
		}
	}
	return rows, tab, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns an event by id together with its derived display fields.
func (s *EventService) Get(ctx context.Context, id string) (*dto.EventDetail, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get event")
	}
	return &dto.EventDetail{
		Event:             *event,
		IsUpcoming:        event.IsUpcoming(s.now().UTC()),
		FormattedDateTime: event.FormattedDateTime(),
	}, nil
}

// Create registers a new event under an event index page.
func (s *EventService) Create(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	startTime, ok := normalizeClock(req.StartTime)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "start_time must be HH:MM")
	}
	endTime, ok := normalizeClock(req.EndTime)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_time must be HH:MM")
	}
	if endTime <= startTime {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_time must be after start_time")
	}
	if err := ensureParent(ctx, s.pages, req.ParentID, models.PageTypeEvent); err != nil {
		return nil, err
	}
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	event := &models.Event{
		ParentID:         req.ParentID,
		EventType:        models.EventType(req.EventType),
		EventFormat:      models.EventFormat(req.EventFormat),
		HasLivestream:    req.HasLivestream,
		StartDate:        startDate,
		StartTime:        startTime,
		EndTime:          endTime,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Location:         req.Location,
		RegistrationLink: req.RegistrationLink,
		Published:        req.Published,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}
	return event, nil
}

// Update modifies an existing event.
func (s *EventService) Update(ctx context.Context, id string, req dto.UpdateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	startTime, ok := normalizeClock(req.StartTime)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "start_time must be HH:MM")
	}
	endTime, ok := normalizeClock(req.EndTime)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_time must be HH:MM")
	}
	if endTime <= startTime {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_time must be after start_time")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	existing.EventType = models.EventType(req.EventType)
	existing.EventFormat = models.EventFormat(req.EventFormat)
	existing.HasLivestream = req.HasLivestream
	existing.StartDate = startDate
	existing.StartTime = startTime
	existing.EndTime = endTime
	existing.Title = req.Title
	existing.ShortDescription = req.ShortDescription
	existing.FullDescription = req.FullDescription
	existing.Location = req.Location
	existing.RegistrationLink = req.RegistrationLink
	existing.Published = req.Published
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}
	return existing, nil
}

// Delete removes an event by id.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	return nil
}

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

const pressPageSize = 9

type pressRepository interface {
	List(ctx context.Context, filter models.PressFilter) ([]models.PressItem, int, error)
	GetByID(ctx context.Context, id string) (*models.PressItem, error)
	Create(ctx context.Context, item *models.PressItem) error
	Update(ctx context.Context, item *models.PressItem) error
	Delete(ctx context.Context, id string) error
}

// PressService handles press release, news, interview and editorial
// workflows. The four variants share one listing selected by tab.
type PressService struct {
	repo      pressRepository
	pages     pageReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPressService constructs the service.
func NewPressService(repo pressRepository, pages pageReader, validate *validator.Validate, logger *zap.Logger) *PressService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PressService{repo: repo, pages: pages, validator: validate, logger: logger}
}

// List returns one page of press items for the selected tab. Unknown tab
// values fall back to the first tab; a page past the end is clamped to
// the last page.
func (s *PressService) List(ctx context.Context, req dto.PressListRequest) ([]models.PressItem, models.PressKind, *models.Pagination, error) {
	kind := models.PressKinds[0]
	if models.ValidPressKind(req.Tab) {
		kind = models.PressKind(req.Tab)
	}
	filter := models.PressFilter{
		ParentID: req.IndexID,
		Kind:     kind,
		Featured: parseBoolFlag(req.Featured),
		Page:     resolvePage(req.Page),
		PageSize: pressPageSize,
	}
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, kind, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list press items")
	}
	if pages := totalPages(total, filter.PageSize); pages > 0 && filter.Page > pages {
		filter.Page = pages
		rows, total, err = s.repo.List(ctx, filter)
		if err != nil {
			return nil, kind, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list press items")
		}
	}
	return rows, kind, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a press item by id.
func (s *PressService) Get(ctx context.Context, id string) (*models.PressItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "press item not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get press item")
	}
	return item, nil
}

// Create registers a new press item under a press index page.
func (s *PressService) Create(ctx context.Context, req dto.CreatePressItemRequest) (*models.PressItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if err := ensureParent(ctx, s.pages, req.ParentID, models.PageTypePressItem); err != nil {
		return nil, err
	}
	itemDate, _ := time.Parse("2006-01-02", req.ItemDate)
	item := &models.PressItem{
		ParentID:    req.ParentID,
		Kind:        models.PressKind(req.Kind),
		ItemDate:    itemDate,
		AuthorNames: req.AuthorNames,
		ShortTitle:  req.ShortTitle,
		Body:        req.Body,
		IsFeatured:  req.IsFeatured,
		Published:   req.Published,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create press item")
	}
	return item, nil
}

// Update modifies an existing press item.
func (s *PressService) Update(ctx context.Context, id string, req dto.UpdatePressItemRequest) (*models.PressItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "press item not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load press item")
	}
	itemDate, _ := time.Parse("2006-01-02", req.ItemDate)
	existing.Kind = models.PressKind(req.Kind)
	existing.ItemDate = itemDate
	existing.AuthorNames = req.AuthorNames
	existing.ShortTitle = req.ShortTitle
	existing.Body = req.Body
	existing.IsFeatured = req.IsFeatured
	existing.Published = req.Published
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update press item")
	}
	return existing, nil
}

// Delete removes a press item by id.
func (s *PressService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "press item not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load press item")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete press item")
	}
	return nil
}

package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/prernajain1224/MHPS-Website/internal/dto"
	"github.com/prernajain1224/MHPS-Website/internal/models"
	appErrors "github.com/prernajain1224/MHPS-Website/pkg/errors"
)

type indexRepository interface {
	GetByID(ctx context.Context, id string) (*models.IndexPage, error)
	Create(ctx context.Context, idx *models.IndexPage) error
	Update(ctx context.Context, idx *models.IndexPage) error
	Delete(ctx context.Context, id string) error
}

// IndexService handles the root-level container pages.
type IndexService struct {
	repo      indexRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewIndexService constructs the service.
func NewIndexService(repo indexRepository, validate *validator.Validate, logger *zap.Logger) *IndexService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IndexService{repo: repo, validator: validate, logger: logger}
}

// Get returns an index page by id.
func (s *IndexService) Get(ctx context.Context, id string) (*models.IndexPage, error) {
	idx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "index page not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get index page")
	}
	return idx, nil
}

// Create registers a new root-level index page.
func (s *IndexService) Create(ctx context.Context, req dto.CreateIndexPageRequest) (*models.IndexPage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	idx := &models.IndexPage{
		Type:         models.PageType(req.Type),
		Title:        req.Title,
		Introduction: req.Introduction,
	}
	if err := s.repo.Create(ctx, idx); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create index page")
	}
	return idx, nil
}

// Update modifies an index page's title and introduction. The type is
// fixed at creation.
func (s *IndexService) Update(ctx context.Context, id string, req dto.UpdateIndexPageRequest) (*models.IndexPage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "index page not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load index page")
	}
	existing.Title = req.Title
	existing.Introduction = req.Introduction
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update index page")
	}
	return existing, nil
}

// Delete removes an index page and its registry row.
func (s *IndexService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "index page not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load index page")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete index page")
	}
	return nil
}

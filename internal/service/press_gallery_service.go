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

const pressAlbumPageSize = 12

type pressGalleryRepository interface {
	ListCategories(ctx context.Context, parentID string) ([]models.PressCategory, error)
	GetCategoryByID(ctx context.Context, id string) (*models.PressCategory, error)
	CreateCategory(ctx context.Context, category *models.PressCategory) error
	UpdateCategory(ctx context.Context, category *models.PressCategory) error
	DeleteCategory(ctx context.Context, id string) error
	ListAlbums(ctx context.Context, filter models.AlbumFilter) ([]models.PressAlbumListing, int, error)
	GetAlbumByID(ctx context.Context, id string) (*models.PressAlbum, error)
	ListAlbumImages(ctx context.Context, albumID string) ([]models.PressImage, error)
	CreateAlbum(ctx context.Context, album *models.PressAlbum) error
	UpdateAlbum(ctx context.Context, album *models.PressAlbum) error
	DeleteAlbum(ctx context.Context, id string) error
	AddAlbumImage(ctx context.Context, image *models.PressImage) error
	RemoveAlbumImage(ctx context.Context, albumID, imageID string) error
}

// PressGalleryService handles the press gallery hierarchy: categories
// under the press gallery index, albums under categories.
type PressGalleryService struct {
	repo      pressGalleryRepository
	pages     pageReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPressGalleryService constructs the service.
func NewPressGalleryService(repo pressGalleryRepository, pages pageReader, validate *validator.Validate, logger *zap.Logger) *PressGalleryService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PressGalleryService{repo: repo, pages: pages, validator: validate, logger: logger}
}

// ListCategories returns every published category under the index with
// album counts, ordered by name.
func (s *PressGalleryService) ListCategories(ctx context.Context, indexID string) ([]models.PressCategory, error) {
	categories, err := s.repo.ListCategories(ctx, indexID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list press categories")
	}
	return categories, nil
}

// GetCategory returns a category by id.
func (s *PressGalleryService) GetCategory(ctx context.Context, id string) (*models.PressCategory, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "press category not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get press category")
	}
	return category, nil
}

// ListAlbums returns one page of a category's albums. Malformed date
// filters are ignored; a search term switches the ordering to relevance.
func (s *PressGalleryService) ListAlbums(ctx context.Context, categoryID string, req dto.AlbumListRequest) ([]models.PressAlbumListing, *models.Pagination, error) {
	filter := models.AlbumFilter{
		ParentID: categoryID,
		Search:   req.Search,
		DateFrom: parseDateFilter(req.DateFrom),
		DateTo:   parseDateFilter(req.DateTo),
		Page:     resolvePage(req.Page),
		PageSize: pressAlbumPageSize,
	}
	rows, total, err := s.repo.ListAlbums(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list press albums")
	}
	if pages := totalPages(total, filter.PageSize); pages > 0 && filter.Page > pages {
		filter.Page = pages
		rows, total, err = s.repo.ListAlbums(ctx, filter)
		if err != nil {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list press albums")
		}
	}
	return rows, paginationFor(filter.Page, filter.PageSize, total), nil
}

// GetAlbum returns a press album with its ordered attachments and
// resolved cover.
func (s *PressGalleryService) GetAlbum(ctx context.Context, id string) (*dto.PressAlbumDetail, error) {
	album, err := s.repo.GetAlbumByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "press album not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get press album")
	}
	images, err := s.repo.ListAlbumImages(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list press album images")
	}
	return &dto.PressAlbumDetail{
		Album:      *album,
		Images:     images,
		Cover:      models.ResolvePressCover(*album, images),
		PhotoCount: len(images),
	}, nil
}

// CreateCategory registers a new category under the press gallery index.
func (s *PressGalleryService) CreateCategory(ctx context.Context, req dto.CreatePressCategoryRequest) (*models.PressCategory, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if err := ensureParent(ctx, s.pages, req.ParentID, models.PageTypePressCategory); err != nil {
		return nil, err
	}
	category := &models.PressCategory{
		ParentID:    req.ParentID,
		Name:        req.Name,
		Description: req.Description,
		Published:   req.Published,
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create press category")
	}
	return category, nil
}

// UpdateCategory modifies an existing category.
func (s *PressGalleryService) UpdateCategory(ctx context.Context, id string, req dto.UpdatePressCategoryRequest) (*models.PressCategory, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	existing, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "press category not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load press category")
	}
	existing.Name = req.Name
	existing.Description = req.Description
	existing.Published = req.Published
	if err := s.repo.UpdateCategory(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update press category")
	}
	return existing, nil
}

// DeleteCategory removes a category. Categories still holding albums
// cannot be removed.
func (s *PressGalleryService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "press category not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load press category")
	}
	if category.AlbumCount > 0 {
		return appErrors.Clone(appErrors.ErrConflict, "press category still contains albums")
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete press category")
	}
	return nil
}

// CreateAlbum registers a new press album under a category.
func (s *PressGalleryService) CreateAlbum(ctx context.Context, req dto.CreatePressAlbumRequest) (*models.PressAlbum, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if err := ensureParent(ctx, s.pages, req.CategoryID, models.PageTypePressAlbum); err != nil {
		return nil, err
	}
	albumDate, _ := time.Parse("2006-01-02", req.AlbumDate)
	album := &models.PressAlbum{
		CategoryID:   req.CategoryID,
		Title:        req.Title,
		AlbumDate:    albumDate,
		Location:     req.Location,
		Description:  req.Description,
		CoverImageID: req.CoverImageID,
		Published:    req.Published,
	}
	if err := s.repo.CreateAlbum(ctx, album); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create press album")
	}
	return album, nil
}

// UpdateAlbum modifies an existing press album.
func (s *PressGalleryService) UpdateAlbum(ctx context.Context, id string, req dto.UpdatePressAlbumRequest) (*models.PressAlbum, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	existing, err := s.repo.GetAlbumByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "press album not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load press album")
	}
	albumDate, _ := time.Parse("2006-01-02", req.AlbumDate)
	existing.Title = req.Title
	existing.AlbumDate = albumDate
	existing.Location = req.Location
	existing.Description = req.Description
	existing.CoverImageID = req.CoverImageID
	existing.Published = req.Published
	if err := s.repo.UpdateAlbum(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update press album")
	}
	return existing, nil
}

// DeleteAlbum removes a press album, its attachments and its registry
// row.
func (s *PressGalleryService) DeleteAlbum(ctx context.Context, id string) error {
	if _, err := s.repo.GetAlbumByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "press album not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load press album")
	}
	if err := s.repo.DeleteAlbum(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete press album")
	}
	return nil
}

// AddAlbumImage appends one attachment to the end of a press album's
// order.
func (s *PressGalleryService) AddAlbumImage(ctx context.Context, albumID string, req dto.AddImageRequest) (*models.PressImage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if _, err := s.repo.GetAlbumByID(ctx, albumID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "press album not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load press album")
	}
	image := &models.PressImage{AlbumID: albumID, ImageID: req.ImageID, Caption: req.Caption}
	if err := s.repo.AddAlbumImage(ctx, image); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add press album image")
	}
	return image, nil
}

// RemoveAlbumImage detaches one attachment from a press album.
func (s *PressGalleryService) RemoveAlbumImage(ctx context.Context, albumID, imageID string) error {
	if err := s.repo.RemoveAlbumImage(ctx, albumID, imageID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "press album image not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove press album image")
	}
	return nil
}

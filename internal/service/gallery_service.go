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

const albumPageSize = 12

type galleryRepository interface {
	List(ctx context.Context, filter models.AlbumFilter) ([]models.AlbumListing, int, error)
	GetByID(ctx context.Context, id string) (*models.GalleryAlbum, error)
	ListImages(ctx context.Context, albumID string) ([]models.GalleryImage, error)
	Create(ctx context.Context, album *models.GalleryAlbum) error
	Update(ctx context.Context, album *models.GalleryAlbum) error
	Delete(ctx context.Context, id string) error
	AddImage(ctx context.Context, image *models.GalleryImage) error
	RemoveImage(ctx context.Context, albumID, imageID string) error
	ReorderImages(ctx context.Context, albumID string, imageIDs []string) error
}

// GalleryService handles photo album workflows: listing with search and
// date filters, album detail with ordered attachments, and attachment
// management.
type GalleryService struct {
	repo      galleryRepository
	pages     pageReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGalleryService constructs the service.
func NewGalleryService(repo galleryRepository, pages pageReader, validate *validator.Validate, logger *zap.Logger) *GalleryService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GalleryService{repo: repo, pages: pages, validator: validate, logger: logger}
}

// List returns one page of albums. Malformed date filters are ignored; a
// search term switches the ordering to relevance.
func (s *GalleryService) List(ctx context.Context, req dto.AlbumListRequest) ([]models.AlbumListing, *models.Pagination, error) {
	filter := models.AlbumFilter{
		ParentID: req.IndexID,
		Search:   req.Search,
		DateFrom: parseDateFilter(req.DateFrom),
		DateTo:   parseDateFilter(req.DateTo),
		Page:     resolvePage(req.Page),
		PageSize: albumPageSize,
	}
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list albums")
	}
	if pages := totalPages(total, filter.PageSize); pages > 0 && filter.Page > pages {
		filter.Page = pages
		rows, total, err = s.repo.List(ctx, filter)
		if err != nil {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list albums")
		}
	}
	return rows, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns an album with its ordered attachments and resolved cover.
func (s *GalleryService) Get(ctx context.Context, id string) (*dto.AlbumDetail, error) {
	album, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "album not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get album")
	}
	images, err := s.repo.ListImages(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list album images")
	}
	return &dto.AlbumDetail{
		Album:      *album,
		Images:     images,
		Cover:      models.ResolveCover(*album, images),
		PhotoCount: len(images),
	}, nil
}

// Create registers a new album under a gallery index page.
func (s *GalleryService) Create(ctx context.Context, req dto.CreateAlbumRequest) (*models.GalleryAlbum, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if err := ensureParent(ctx, s.pages, req.ParentID, models.PageTypeGalleryAlbum); err != nil {
		return nil, err
	}
	albumDate, _ := time.Parse("2006-01-02", req.AlbumDate)
	album := &models.GalleryAlbum{
		ParentID:     req.ParentID,
		Title:        req.Title,
		AlbumDate:    albumDate,
		Description:  req.Description,
		CoverImageID: req.CoverImageID,
		Published:    req.Published,
	}
	if err := s.repo.Create(ctx, album); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create album")
	}
	return album, nil
}

// Update modifies an existing album.
func (s *GalleryService) Update(ctx context.Context, id string, req dto.UpdateAlbumRequest) (*models.GalleryAlbum, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "album not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load album")
	}
	albumDate, _ := time.Parse("2006-01-02", req.AlbumDate)
	existing.Title = req.Title
	existing.AlbumDate = albumDate
	existing.Description = req.Description
	existing.CoverImageID = req.CoverImageID
	existing.Published = req.Published
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update album")
	}
	return existing, nil
}

// Delete removes an album, its attachments and its registry row.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "album not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load album")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete album")
	}
	return nil
}

// AddImage appends one attachment to the end of the album's order.
func (s *GalleryService) AddImage(ctx context.Context, albumID string, req dto.AddImageRequest) (*models.GalleryImage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if _, err := s.repo.GetByID(ctx, albumID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "album not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load album")
	}
	image := &models.GalleryImage{AlbumID: albumID, ImageID: req.ImageID, Caption: req.Caption}
	if err := s.repo.AddImage(ctx, image); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add album image")
	}
	return image, nil
}

// RemoveImage detaches one attachment from an album.
func (s *GalleryService) RemoveImage(ctx context.Context, albumID, imageID string) error {
	if err := s.repo.RemoveImage(ctx, albumID, imageID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "album image not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove album image")
	}
	return nil
}

// ReorderImages rewrites the album's attachment order to match the given
// attachment ids.
func (s *GalleryService) ReorderImages(ctx context.Context, albumID string, req dto.ReorderImagesRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if _, err := s.repo.GetByID(ctx, albumID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "album not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load album")
	}
	if err := s.repo.ReorderImages(ctx, albumID, req.ImageIDs); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reorder album images")
	}
	return nil
}

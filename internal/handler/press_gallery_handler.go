package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prernajain1224/MHPS-Website/internal/dto"
	"github.com/prernajain1224/MHPS-Website/internal/models"
	appErrors "github.com/prernajain1224/MHPS-Website/pkg/errors"
	"github.com/prernajain1224/MHPS-Website/pkg/response"
)

type pressGalleryService interface {
	ListCategories(ctx context.Context, indexID string) ([]models.PressCategory, error)
	GetCategory(ctx context.Context, id string) (*models.PressCategory, error)
	ListAlbums(ctx context.Context, categoryID string, req dto.AlbumListRequest) ([]models.PressAlbumListing, *models.Pagination, error)
	GetAlbum(ctx context.Context, id string) (*dto.PressAlbumDetail, error)
	CreateCategory(ctx context.Context, req dto.CreatePressCategoryRequest) (*models.PressCategory, error)
	UpdateCategory(ctx context.Context, id string, req dto.UpdatePressCategoryRequest) (*models.PressCategory, error)
	DeleteCategory(ctx context.Context, id string) error
	CreateAlbum(ctx context.Context, req dto.CreatePressAlbumRequest) (*models.PressAlbum, error)
	UpdateAlbum(ctx context.Context, id string, req dto.UpdatePressAlbumRequest) (*models.PressAlbum, error)
	DeleteAlbum(ctx context.Context, id string) error
	AddAlbumImage(ctx context.Context, albumID string, req dto.AddImageRequest) (*models.PressImage, error)
	RemoveAlbumImage(ctx context.Context, albumID, imageID string) error
}

// PressGalleryHandler exposes the press gallery hierarchy endpoints.
type PressGalleryHandler struct {
	service pressGalleryService
}

// NewPressGalleryHandler builds a new handler.
func NewPressGalleryHandler(service pressGalleryService) *PressGalleryHandler {
	return &PressGalleryHandler{service: service}
}

// ListCategories godoc
// @Summary List categories under a press gallery index page
// @Tags PressGalleries
// @Produce json
// @Param id path string true "Press gallery index page id"
// @Success 200 {object} response.Envelope
// @Router /press-galleries/{id} [get]
func (h *PressGalleryHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, categories, nil)
}

// ListAlbums godoc
// @Summary List albums in a press category
// @Tags PressGalleries
// @Produce json
// @Param id path string true "Press category id"
// @Param search query string false "Full-text search over title, description and location"
// @Param date_from query string false "Start date YYYY-MM-DD"
// @Param date_to query string false "End date YYYY-MM-DD"
// @Param page query string false "Page number"
// @Success 200 {object} response.Envelope
// @Router /press-galleries/categories/{id} [get]
func (h *PressGalleryHandler) ListAlbums(c *gin.Context) {
	category, err := h.service.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	req := dto.AlbumListRequest{
		Search:   c.Query("search"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Page:     c.Query("page"),
	}
	albums, pagination, err := h.service.ListAlbums(c.Request.Context(), category.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{
		"category": category,
		"search":   req.Search,
	}
	response.JSON(c, http.StatusOK, albums, pagination, meta)
}

// GetAlbum godoc
// @Summary Get a press album with its images
// @Tags PressGalleries
// @Produce json
// @Param id path string true "Press album id"
// @Success 200 {object} response.Envelope
// @Router /press-galleries/albums/{id} [get]
func (h *PressGalleryHandler) GetAlbum(c *gin.Context) {
	detail, err := h.service.GetAlbum(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// CreateCategory godoc
// @Summary Create a press category
// @Tags PressGalleries
// @Accept json
// @Produce json
// @Param payload body dto.CreatePressCategoryRequest true "Category payload"
// @Success 201 {object} response.Envelope
// @Router /press-galleries/categories [post]
func (h *PressGalleryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreatePressCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid category payload"))
		return
	}
	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, category)
}

// UpdateCategory godoc
// @Summary Update a press category
// @Tags PressGalleries
// @Accept json
// @Produce json
// @Param id path string true "Press category id"
// @Param payload body dto.UpdatePressCategoryRequest true "Category payload"
// @Success 200 {object} response.Envelope
// @Router /press-galleries/categories/{id} [put]
func (h *PressGalleryHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdatePressCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid category payload"))
		return
	}
	category, err := h.service.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, category, nil)
}

// DeleteCategory godoc
// @Summary Delete a press category
// @Tags PressGalleries
// @Param id path string true "Press category id"
// @Success 204
// @Router /press-galleries/categories/{id} [delete]
func (h *PressGalleryHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateAlbum godoc
// @Summary Create a press album
// @Tags PressGalleries
// @Accept json
// @Produce json
// @Param payload body dto.CreatePressAlbumRequest true "Album payload"
// @Success 201 {object} response.Envelope
// @Router /press-galleries/albums [post]
func (h *PressGalleryHandler) CreateAlbum(c *gin.Context) {
	var req dto.CreatePressAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid album payload"))
		return
	}
	album, err := h.service.CreateAlbum(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, album)
}

// UpdateAlbum godoc
// @Summary Update a press album
// @Tags PressGalleries
// @Accept json
// @Produce json
// @Param id path string true "Press album id"
// @Param payload body dto.UpdatePressAlbumRequest true "Album payload"
// @Success 200 {object} response.Envelope
// @Router /press-galleries/albums/{id} [put]
func (h *PressGalleryHandler) UpdateAlbum(c *gin.Context) {
	var req dto.UpdatePressAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid album payload"))
		return
	}
	album, err := h.service.UpdateAlbum(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, album, nil)
}

// DeleteAlbum godoc
// @Summary Delete a press album
// @Tags PressGalleries
// @Param id path string true "Press album id"
// @Success 204
// @Router /press-galleries/albums/{id} [delete]
func (h *PressGalleryHandler) DeleteAlbum(c *gin.Context) {
	if err := h.service.DeleteAlbum(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddAlbumImage godoc
// @Summary Append an image to a press album
// @Tags PressGalleries
// @Accept json
// @Produce json
// @Param id path string true "Press album id"
// @Param payload body dto.AddImageRequest true "Image payload"
// @Success 201 {object} response.Envelope
// @Router /press-galleries/albums/{id}/images [post]
func (h *PressGalleryHandler) AddAlbumImage(c *gin.Context) {
	var req dto.AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid image payload"))
		return
	}
	image, err := h.service.AddAlbumImage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, image)
}

// RemoveAlbumImage godoc
// @Summary Remove an image from a press album
// @Tags PressGalleries
// @Param id path string true "Press album id"
// @Param imageId path string true "Attachment id"
// @Success 204
// @Router /press-galleries/albums/{id}/images/{imageId} [delete]
func (h *PressGalleryHandler) RemoveAlbumImage(c *gin.Context) {
	if err := h.service.RemoveAlbumImage(c.Request.Context(), c.Param("id"), c.Param("imageId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

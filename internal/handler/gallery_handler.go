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

type galleryService interface {
	List(ctx context.Context, req dto.AlbumListRequest) ([]models.AlbumListing, *models.Pagination, error)
	Get(ctx context.Context, id string) (*dto.AlbumDetail, error)
	Create(ctx context.Context, req dto.CreateAlbumRequest) (*models.GalleryAlbum, error)
	Update(ctx context.Context, id string, req dto.UpdateAlbumRequest) (*models.GalleryAlbum, error)
	Delete(ctx context.Context, id string) error
	AddImage(ctx context.Context, albumID string, req dto.AddImageRequest) (*models.GalleryImage, error)
	RemoveImage(ctx context.Context, albumID, imageID string) error
	ReorderImages(ctx context.Context, albumID string, req dto.ReorderImagesRequest) error
}

// GalleryHandler exposes the photo gallery endpoints.
type GalleryHandler struct {
	service galleryService
}

// NewGalleryHandler builds a new handler.
func NewGalleryHandler(service galleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// List godoc
// @Summary List albums for a gallery index page
// @Tags Galleries
// @Produce json
// @Param id path string true "Gallery index page id"
// @Param search query string false "Full-text search over title and description"
// @Param date_from query string false "Start date YYYY-MM-DD"
// @Param date_to query string false "End date YYYY-MM-DD"
// @Param page query string false "Page number"
// @Success 200 {object} response.Envelope
// @Router /galleries/{id} [get]
func (h *GalleryHandler) List(c *gin.Context) {
	req := dto.AlbumListRequest{
		IndexID:  c.Param("id"),
		Search:   c.Query("search"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Page:     c.Query("page"),
	}
	albums, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{
		"search": req.Search,
	}
	response.JSON(c, http.StatusOK, albums, pagination, meta)
}

// Get godoc
// @Summary Get an album with its images
// @Tags Galleries
// @Produce json
// @Param id path string true "Album id"
// @Success 200 {object} response.Envelope
// @Router /galleries/albums/{id} [get]
func (h *GalleryHandler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// Create godoc
// @Summary Create an album
// @Tags Galleries
// @Accept json
// @Produce json
// @Param payload body dto.CreateAlbumRequest true "Album payload"
// @Success 201 {object} response.Envelope
// @Router /galleries/albums [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	var req dto.CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid album payload"))
		return
	}
	album, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, album)
}

// Update godoc
// @Summary Update an album
// @Tags Galleries
// @Accept json
// @Produce json
// @Param id path string true "Album id"
// @Param payload body dto.UpdateAlbumRequest true "Album payload"
// @Success 200 {object} response.Envelope
// @Router /galleries/albums/{id} [put]
func (h *GalleryHandler) Update(c *gin.Context) {
	var req dto.UpdateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid album payload"))
		return
	}
	album, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, album, nil)
}

// Delete godoc
// @Summary Delete an album
// @Tags Galleries
// @Param id path string true "Album id"
// @Success 204
// @Router /galleries/albums/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddImage godoc
// @Summary Append an image to an album
// @Tags Galleries
// @Accept json
// @Produce json
// @Param id path string true "Album id"
// @Param payload body dto.AddImageRequest true "Image payload"
// @Success 201 {object} response.Envelope
// @Router /galleries/albums/{id}/images [post]
func (h *GalleryHandler) AddImage(c *gin.Context) {
	var req dto.AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid image payload"))
		return
	}
	image, err := h.service.AddImage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, image)
}

// RemoveImage godoc
// @Summary Remove an image from an album
// @Tags Galleries
// @Param id path string true "Album id"
// @Param imageId path string true "Attachment id"
// @Success 204
// @Router /galleries/albums/{id}/images/{imageId} [delete]
func (h *GalleryHandler) RemoveImage(c *gin.Context) {
	if err := h.service.RemoveImage(c.Request.Context(), c.Param("id"), c.Param("imageId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ReorderImages godoc
// @Summary Rewrite an album's image order
// @Tags Galleries
// @Accept json
// @Param id path string true "Album id"
// @Param payload body dto.ReorderImagesRequest true "Ordered attachment ids"
// @Success 204
// @Router /galleries/albums/{id}/images/order [put]
func (h *GalleryHandler) ReorderImages(c *gin.Context) {
	var req dto.ReorderImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reorder payload"))
		return
	}
	if err := h.service.ReorderImages(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

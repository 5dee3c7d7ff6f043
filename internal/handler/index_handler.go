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

type indexService interface {
	Get(ctx context.Context, id string) (*models.IndexPage, error)
	Create(ctx context.Context, req dto.CreateIndexPageRequest) (*models.IndexPage, error)
	Update(ctx context.Context, id string, req dto.UpdateIndexPageRequest) (*models.IndexPage, error)
	Delete(ctx context.Context, id string) error
}

// IndexHandler exposes the root-level container page endpoints.
type IndexHandler struct {
	service indexService
}

// NewIndexHandler builds a new handler.
func NewIndexHandler(service indexService) *IndexHandler {
	return &IndexHandler{service: service}
}

// Get godoc
// @Summary Get an index page
// @Tags Pages
// @Produce json
// @Param id path string true "Index page id"
// @Success 200 {object} response.Envelope
// @Router /pages/{id} [get]
func (h *IndexHandler) Get(c *gin.Context) {
	idx, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, idx, nil)
}

// Create godoc
// @Summary Create an index page
// @Tags Pages
// @Accept json
// @Produce json
// @Param payload body dto.CreateIndexPageRequest true "Index page payload"
// @Success 201 {object} response.Envelope
// @Router /pages [post]
func (h *IndexHandler) Create(c *gin.Context) {
	var req dto.CreateIndexPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid index page payload"))
		return
	}
	idx, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, idx)
}

// Update godoc
// @Summary Update an index page
// @Tags Pages
// @Accept json
// @Produce json
// @Param id path string true "Index page id"
// @Param payload body dto.UpdateIndexPageRequest true "Index page payload"
// @Success 200 {object} response.Envelope
// @Router /pages/{id} [put]
func (h *IndexHandler) Update(c *gin.Context) {
	var req dto.UpdateIndexPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid index page payload"))
		return
	}
	idx, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, idx, nil)
}

// Delete godoc
// @Summary Delete an index page
// @Tags Pages
// @Param id path string true "Index page id"
// @Success 204
// @Router /pages/{id} [delete]
func (h *IndexHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

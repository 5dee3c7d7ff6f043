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

type pressService interface {
	List(ctx context.Context, req dto.PressListRequest) ([]models.PressItem, models.PressKind, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.PressItem, error)
	Create(ctx context.Context, req dto.CreatePressItemRequest) (*models.PressItem, error)
	Update(ctx context.Context, id string, req dto.UpdatePressItemRequest) (*models.PressItem, error)
	Delete(ctx context.Context, id string) error
}

// PressHandler exposes the press index and press item endpoints.
type PressHandler struct {
	service pressService
}

// NewPressHandler builds a new handler.
func NewPressHandler(service pressService) *PressHandler {
	return &PressHandler{service: service}
}

// List godoc
// @Summary List press items for an index page
// @Tags Press
// @Produce json
// @Param id path string true "Press index page id"
// @Param tab query string false "Press variant tab"
// @Param featured query bool false "Featured filter"
// @Param page query string false "Page number"
// @Success 200 {object} response.Envelope
// @Router /press/{id} [get]
func (h *PressHandler) List(c *gin.Context) {
	req := dto.PressListRequest{
		IndexID:  c.Param("id"),
		Tab:      c.Query("tab"),
		Featured: c.Query("featured"),
		Page:     c.Query("page"),
	}
	items, kind, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{
		"tab":  kind,
		"tabs": models.PressKinds,
	}
	response.JSON(c, http.StatusOK, items, pagination, meta)
}

// Get godoc
// @Summary Get a press item
// @Tags Press
// @Produce json
// @Param id path string true "Press item id"
// @Success 200 {object} response.Envelope
// @Router /press/items/{id} [get]
func (h *PressHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// Create godoc
// @Summary Create a press item
// @Tags Press
// @Accept json
// @Produce json
// @Param payload body dto.CreatePressItemRequest true "Press item payload"
// @Success 201 {object} response.Envelope
// @Router /press/items [post]
func (h *PressHandler) Create(c *gin.Context) {
	var req dto.CreatePressItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid press item payload"))
		return
	}
	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update a press item
// @Tags Press
// @Accept json
// @Produce json
// @Param id path string true "Press item id"
// @Param payload body dto.UpdatePressItemRequest true "Press item payload"
// @Success 200 {object} response.Envelope
// @Router /press/items/{id} [put]
func (h *PressHandler) Update(c *gin.Context) {
	var req dto.UpdatePressItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid press item payload"))
		return
	}
	item, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// Delete godoc
// @Summary Delete a press item
// @Tags Press
// @Param id path string true "Press item id"
// @Success 204
// @Router /press/items/{id} [delete]
func (h *PressHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

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

type timelineService interface {
	List(ctx context.Context, req dto.TimelineListRequest) (*dto.TimelineContext, *models.Pagination, error)
	Get(ctx context.Context, id string) (*dto.HistoricalEventDetail, error)
	Create(ctx context.Context, req dto.CreateHistoricalEventRequest) (*models.HistoricalEvent, error)
	Update(ctx context.Context, id string, req dto.UpdateHistoricalEventRequest) (*models.HistoricalEvent, error)
	Delete(ctx context.Context, id string) error
}

// TimelineHandler exposes the About page timeline endpoints.
type TimelineHandler struct {
	service timelineService
}

// NewTimelineHandler builds a new handler.
func NewTimelineHandler(service timelineService) *TimelineHandler {
	return &TimelineHandler{service: service}
}

// List godoc
// @Summary List the historical timeline for an about page
// @Tags Timeline
// @Produce json
// @Param id path string true "About index page id"
// @Param period query string false "Five-year period selector, e.g. 1995-2000"
// @Param page query string false "Page number"
// @Success 200 {object} response.Envelope
// @Router /about/{id} [get]
func (h *TimelineHandler) List(c *gin.Context) {
	req := dto.TimelineListRequest{
		IndexID: c.Param("id"),
		Period:  c.Query("period"),
		Page:    c.Query("page"),
	}
	timeline, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{
		"period": req.Period,
	}
	response.JSON(c, http.StatusOK, timeline, pagination, meta)
}

// Get godoc
// @Summary Get a historical event
// @Tags Timeline
// @Produce json
// @Param id path string true "Historical event id"
// @Success 200 {object} response.Envelope
// @Router /about/events/{id} [get]
func (h *TimelineHandler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// Create godoc
// @Summary Create a historical event
// @Tags Timeline
// @Accept json
// @Produce json
// @Param payload body dto.CreateHistoricalEventRequest true "Historical event payload"
// @Success 201 {object} response.Envelope
// @Router /about/events [post]
func (h *TimelineHandler) Create(c *gin.Context) {
	var req dto.CreateHistoricalEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid historical event payload"))
		return
	}
	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Update godoc
// @Summary Update a historical event
// @Tags Timeline
// @Accept json
// @Produce json
// @Param id path string true "Historical event id"
// @Param payload body dto.UpdateHistoricalEventRequest true "Historical event payload"
// @Success 200 {object} response.Envelope
// @Router /about/events/{id} [put]
func (h *TimelineHandler) Update(c *gin.Context) {
	var req dto.UpdateHistoricalEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid historical event payload"))
		return
	}
	event, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}

// Delete godoc
// @Summary Delete a historical event
// @Tags Timeline
// @Param id path string true "Historical event id"
// @Success 204
// @Router /about/events/{id} [delete]
func (h *TimelineHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

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

type eventService interface {
	List(ctx context.Context, req dto.EventListRequest) ([]models.Event, models.EventTab, *models.Pagination, error)
	Get(ctx context.Context, id string) (*dto.EventDetail, error)
	Create(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error)
	Update(ctx context.Context, id string, req dto.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

// EventHandler exposes the event index and event endpoints.
type EventHandler struct {
	service eventService
}

// NewEventHandler builds a new handler.
func NewEventHandler(service eventService) *EventHandler {
	return &EventHandler{service: service}
}

// List godoc
// @Summary List events for an index page
// @Tags Events
// @Produce json
// @Param id path string true "Event index page id"
// @Param tab query string false "upcoming or past"
// @Param event_type query string false "Event type filter"
// @Param event_format query string false "Event format filter"
// @Param livestream query bool false "Only events with livestream"
// @Param page query string false "Page number"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [get]
func (h *EventHandler) List(c *gin.Context) {
	req := dto.EventListRequest{
		IndexID:     c.Param("id"),
		Tab:         c.Query("tab"),
		EventType:   c.Query("event_type"),
		EventFormat: c.Query("event_format"),
		Livestream:  c.Query("livestream"),
		Page:        c.Query("page"),
	}
	events, tab, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{
		"tab":           tab,
		"tabs":          []models.EventTab{models.EventTabUpcoming, models.EventTabPast},
		"event_types":   models.EventTypes,
		"event_formats": models.EventFormats,
	}
	response.JSON(c, http.StatusOK, events, pagination, meta)
}

// Get godoc
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} response.Envelope
// @Router /events/items/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// Create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body dto.CreateEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /events/items [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
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
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param payload body dto.UpdateEventRequest true "Event payload"
// @Success 200 {object} response.Envelope
// @Router /events/items/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
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
// @Summary Delete an event
// @Tags Events
// @Param id path string true "Event id"
// @Success 204
// @Router /events/items/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

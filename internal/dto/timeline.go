package dto

import "github.com/prernajain1224/MHPS-Website/internal/models"

// TimelineListRequest carries the raw About page query parameters.
// Period is either "all" or a "{start}-{end}" selector; malformed values
// degrade to all periods.
type TimelineListRequest struct {
	IndexID string
	Period  string
	Page    string
}

// TimelineContext bundles the resolved page of historical events with the
// unfiltered period menu.
type TimelineContext struct {
	Events  []models.HistoricalEvent `json:"events"`
	Periods []models.TimelinePeriod  `json:"periods"`
}

// HistoricalEventDetail decorates a historical event with its period label.
type HistoricalEventDetail struct {
	Event       models.HistoricalEvent `json:"event"`
	PeriodLabel string                 `json:"period_label"`
}

// CreateHistoricalEventRequest describes the create payload for a
// historical event.
type CreateHistoricalEventRequest struct {
	ParentID    string  `json:"parent_id" validate:"required,uuid4"`
	EventDate   string  `json:"event_date" validate:"required,datetime=2006-01-02"`
	ImageID     *string `json:"image_id" validate:"omitempty,uuid4"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Published   bool    `json:"published"`
}

// UpdateHistoricalEventRequest describes the update payload for a
// historical event.
type UpdateHistoricalEventRequest struct {
	EventDate   string  `json:"event_date" validate:"required,datetime=2006-01-02"`
	ImageID     *string `json:"image_id" validate:"omitempty,uuid4"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Published   bool    `json:"published"`
}

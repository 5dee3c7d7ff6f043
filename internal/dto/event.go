package dto

import "github.com/prernajain1224/MHPS-Website/internal/models"

// EventListRequest carries the raw event index query parameters.
type EventListRequest struct {
	IndexID     string
	Tab         string
	EventType   string
	EventFormat string
	Livestream  string
	Page        string
}

// CreateEventRequest describes the create payload for an event.
type CreateEventRequest struct {
	ParentID         string `json:"parent_id" validate:"required,uuid4"`
	EventType        string `json:"event_type" validate:"required,eventtype"`
	EventFormat      string `json:"event_format" validate:"required,eventformat"`
	HasLivestream    bool   `json:"has_livestream"`
	StartDate        string `json:"start_date" validate:"required,datetime=2006-01-02"`
	StartTime        string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime          string `json:"end_time" validate:"required,datetime=15:04"`
	Title            string `json:"title" validate:"required,max=255"`
	ShortDescription string `json:"short_description" validate:"required,max=300"`
	FullDescription  string `json:"full_description" validate:"required"`
	Location         string `json:"location" validate:"max=255"`
	RegistrationLink string `json:"registration_link" validate:"omitempty,url"`
	Published        bool   `json:"published"`
}

// UpdateEventRequest describes the update payload for an event.
type UpdateEventRequest struct {
	EventType        string `json:"event_type" validate:"required,eventtype"`
	EventFormat      string `json:"event_format" validate:"required,eventformat"`
	HasLivestream    bool   `json:"has_livestream"`
	StartDate        string `json:"start_date" validate:"required,datetime=2006-01-02"`
	StartTime        string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime          string `json:"end_time" validate:"required,datetime=15:04"`
	Title            string `json:"title" validate:"required,max=255"`
	ShortDescription string `json:"short_description" validate:"required,max=300"`
	FullDescription  string `json:"full_description" validate:"required"`
	Location         string `json:"location" validate:"max=255"`
	RegistrationLink string `json:"registration_link" validate:"omitempty,url"`
	Published        bool   `json:"published"`
}

// EventDetail decorates an event with derived display fields.
type EventDetail struct {
	Event             models.Event `json:"event"`
	IsUpcoming        bool         `json:"is_upcoming"`
	FormattedDateTime string       `json:"formatted_date_time"`
}

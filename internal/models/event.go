package models

import (
	"fmt"
	"time"
)

// EventType categorises events.
type EventType string

const (
	EventTypeLecture    EventType = "lecture"
	EventTypeWebinar    EventType = "webinar"
	EventTypePanel      EventType = "panel"
	EventTypeConference EventType = "conference"
	EventTypeWorkshop   EventType = "workshop"
	EventTypeSeminar    EventType = "seminar"
)

// EventFormat describes how an event is delivered.
type EventFormat string

const (
	EventFormatHybrid   EventFormat = "hybrid"
	EventFormatOnline   EventFormat = "online"
	EventFormatInPerson EventFormat = "in-person"
)

// EventTypes and EventFormats are the fixed choice lists echoed to the
// rendering layer so filter controls can be redrawn without recomputation.
var (
	EventTypes   = []EventType{EventTypeLecture, EventTypeWebinar, EventTypePanel, EventTypeConference, EventTypeWorkshop, EventTypeSeminar}
	EventFormats = []EventFormat{EventFormatHybrid, EventFormatOnline, EventFormatInPerson}
)

// ValidEventType reports whether the value names a known event type.
func ValidEventType(v string) bool {
	switch EventType(v) {
	case EventTypeLecture, EventTypeWebinar, EventTypePanel, EventTypeConference, EventTypeWorkshop, EventTypeSeminar:
		return true
	}
	return false
}

// ValidEventFormat reports whether the value names a known event format.
func ValidEventFormat(v string) bool {
	switch EventFormat(v) {
	case EventFormatHybrid, EventFormatOnline, EventFormatInPerson:
		return true
	}
	return false
}

// EventTab selects the upcoming or past partition of an event listing.
type EventTab string

const (
	EventTabUpcoming EventTab = "upcoming"
	EventTabPast     EventTab = "past"
)

// Event represents one event page stored in the events table. Start and
// end times are stored as "HH:MM" wall-clock strings; the date carries the
// calendar day.
type Event struct {
	ID               string      `db:"id" json:"id"`
	ParentID         string      `db:"parent_id" json:"parent_id"`
	EventType        EventType   `db:"event_type" json:"event_type"`
	EventFormat      EventFormat `db:"event_format" json:"event_format"`
	HasLivestream    bool        `db:"has_livestream" json:"has_livestream"`
	StartDate        time.Time   `db:"start_date" json:"start_date"`
	StartTime        string      `db:"start_time" json:"start_time"`
	EndTime          string      `db:"end_time" json:"end_time"`
	Title            string      `db:"title" json:"title"`
	ShortDescription string      `db:"short_description" json:"short_description"`
	FullDescription  string      `db:"full_description" json:"full_description"`
	Location         string      `db:"location" json:"location"`
	RegistrationLink string      `db:"registration_link" json:"registration_link"`
	Published        bool        `db:"published" json:"published"`
	CreatedAt        time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at" json:"updated_at"`
}

// IsUpcoming reports whether the event starts on or after the given day.
func (e Event) IsUpcoming(today time.Time) bool {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !e.StartDate.Before(day)
}

// FormattedDateTime renders the card display string, e.g.
// "June 2024 — 10:00 TO 12:00".
func (e Event) FormattedDateTime() string {
	return fmt.Sprintf("%s — %s TO %s", e.StartDate.Format("January 2006"), e.StartTime, e.EndTime)
}

// EventFilter captures listing criteria for events. The Tab partition is
// evaluated against the Today value injected by the service.
type EventFilter struct {
	ParentID      string
	Tab           EventTab
	Today         time.Time
	EventType     EventType
	EventFormat   EventFormat
	LivestreamReq bool
	Page          int
	PageSize      int
}

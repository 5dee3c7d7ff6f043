package models

import (
	"fmt"
	"time"
)

// HistoricalEvent represents one dated entry on the About page timeline.
// ImageID references the external media library.
type HistoricalEvent struct {
	ID          string    `db:"id" json:"id"`
	ParentID    string    `db:"parent_id" json:"parent_id"`
	EventDate   time.Time `db:"event_date" json:"event_date"`
	ImageID     *string   `db:"image_id" json:"image_id,omitempty"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Published   bool      `db:"published" json:"published"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// PeriodLabel returns the half-open five-year bucket the event falls in,
// formatted "{start}-{end}".
func (h HistoricalEvent) PeriodLabel() string {
	start, end := PeriodBounds(h.EventDate.Year())
	return fmt.Sprintf("%d-%d", start, end)
}

// PeriodBounds maps a year to its [5k, 5k+5) bucket.
func PeriodBounds(year int) (start, end int) {
	start = (year / 5) * 5
	return start, start + 5
}

// TimelinePeriod describes one non-empty five-year bucket.
type TimelinePeriod struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TimelineFilter captures listing criteria for historical events. A nil
// period pair lists every event.
type TimelineFilter struct {
	ParentID  string
	StartYear *int
	EndYear   *int
	Page      int
	PageSize  int
}

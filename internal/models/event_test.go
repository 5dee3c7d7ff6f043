package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventIsUpcoming(t *testing.T) {
	today := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	sameDay := Event{StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
	assert.True(t, sameDay.IsUpcoming(today))

	future := Event{StartDate: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)}
	assert.True(t, future.IsUpcoming(today))

	past := Event{StartDate: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)}
	assert.False(t, past.IsUpcoming(today))
}

func TestEventFormattedDateTime(t *testing.T) {
	event := Event{
		StartDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
	}
	assert.Equal(t, "June 2024 — 10:00 TO 12:00", event.FormattedDateTime())
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodBounds(t *testing.T) {
	cases := []struct {
		year  int
		start int
		end   int
	}{
		{1995, 1995, 2000},
		{1998, 1995, 2000},
		{1999, 1995, 2000},
		{2000, 2000, 2005},
		{2001, 2000, 2005},
		{2004, 2000, 2005},
		{2006, 2005, 2010},
	}
	for _, tc := range cases {
		start, end := PeriodBounds(tc.year)
		assert.Equal(t, tc.start, start, "year %d", tc.year)
		assert.Equal(t, tc.end, end, "year %d", tc.year)
	}
}

func TestHistoricalEventPeriodLabel(t *testing.T) {
	event := HistoricalEvent{EventDate: time.Date(1998, 3, 14, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "1995-2000", event.PeriodLabel())
}

package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prernajain1224/MHPS-Website/internal/models"
)

func eventRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "parent_id", "event_type", "event_format", "has_livestream", "start_date", "start_time", "end_time", "title", "short_description", "full_description", "location", "registration_link", "published", "created_at", "updated_at"}).
		AddRow("e1", "idx-1", "webinar", "online", true, now, "10:00", "12:00", "Annual webinar", "Short", "Full", "Online", "", true, now, now)
}

func TestEventRepositoryListUpcomingOrdersAscending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM events WHERE parent_id = $1 AND published = TRUE AND start_date >= $2 ORDER BY start_date ASC, start_time ASC LIMIT 9 OFFSET 0")).
		WithArgs("idx-1", today).
		WillReturnRows(eventRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM events WHERE parent_id = $1 AND published = TRUE AND start_date >= $2")).
		WithArgs("idx-1", today).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	events, total, err := repo.List(context.Background(), models.EventFilter{ParentID: "idx-1", Tab: models.EventTabUpcoming, Today: today, Page: 1, PageSize: 9})
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListPastOrdersDescending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("start_date < $2 ORDER BY start_date DESC, start_time DESC")).
		WithArgs("idx-1", today).
		WillReturnRows(eventRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("idx-1", today).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, _, err := repo.List(context.Background(), models.EventFilter{ParentID: "idx-1", Tab: models.EventTabPast, Today: today, Page: 1, PageSize: 9})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListAppliesTypeFormatAndLivestream(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("start_date >= $2 AND event_type = $3 AND event_format = $4 AND has_livestream = TRUE")).
		WithArgs("idx-1", today, "webinar", "online").
		WillReturnRows(eventRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("idx-1", today, "webinar", "online").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, _, err := repo.List(context.Background(), models.EventFilter{
		ParentID:      "idx-1",
		Tab:           models.EventTabUpcoming,
		Today:         today,
		EventType:     models.EventTypeWebinar,
		EventFormat:   models.EventFormatOnline,
		LivestreamReq: true,
		Page:          1,
		PageSize:      9,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryCreateWritesRegistryRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO pages").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO events").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	event := &models.Event{
		ParentID:    "idx-1",
		EventType:   models.EventTypeLecture,
		EventFormat: models.EventFormatInPerson,
		StartDate:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "12:00",
		Title:       "Opening lecture",
		Published:   true,
	}
	require.NoError(t, repo.Create(context.Background(), event))
	assert.NotEmpty(t, event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

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

func historicalEventRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "parent_id", "event_date", "image_id", "title", "description", "published", "created_at", "updated_at"}).
		AddRow("h1", "about-1", time.Date(1998, 3, 12, 0, 0, 0, 0, time.UTC), nil, "Foundation", "The society is founded.", true, now, now)
}

func TestTimelineRepositoryListAppliesYearBounds(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimelineRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM historical_events WHERE parent_id = $1 AND published = TRUE AND EXTRACT(YEAR FROM event_date) >= $2 AND EXTRACT(YEAR FROM event_date) < $3 ORDER BY event_date DESC LIMIT 10 OFFSET 0")).
		WithArgs("about-1", 1995, 2000).
		WillReturnRows(historicalEventRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM historical_events")).
		WithArgs("about-1", 1995, 2000).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	start, end := 1995, 2000
	events, total, err := repo.List(context.Background(), models.TimelineFilter{ParentID: "about-1", StartYear: &start, EndYear: &end, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimelineRepositoryListWithoutBounds(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimelineRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM historical_events WHERE parent_id = $1 AND published = TRUE ORDER BY event_date DESC")).
		WithArgs("about-1").
		WillReturnRows(historicalEventRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("about-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, _, err := repo.List(context.Background(), models.TimelineFilter{ParentID: "about-1", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimelineRepositoryListDatesAscending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimelineRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT event_date FROM historical_events WHERE parent_id = $1 AND published = TRUE ORDER BY event_date ASC")).
		WithArgs("about-1").
		WillReturnRows(sqlmock.NewRows([]string{"event_date"}).
			AddRow(time.Date(1998, 3, 12, 0, 0, 0, 0, time.UTC)).
			AddRow(time.Date(2001, 9, 1, 0, 0, 0, 0, time.UTC)))

	dates, err := repo.ListDates(context.Background(), "about-1")
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, 1998, dates[0].Year())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimelineRepositoryDeleteRemovesRegistryRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimelineRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM historical_events").WithArgs("h1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM pages").WithArgs("h1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "h1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prernajain1224/MHPS-Website/internal/models"
)

func TestPageRepositoryGetType(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT type FROM pages WHERE id = $1")).
		WithArgs("idx-1").
		WillReturnRows(sqlmock.NewRows([]string{"type"}).AddRow("PRESS_INDEX"))

	pageType, err := repo.GetType(context.Background(), "idx-1")
	require.NoError(t, err)
	assert.Equal(t, models.PageTypePressIndex, pageType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPageRepositoryGetByIDMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM pages WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPageRepositoryGetByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPageRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, type, parent_id, published, created_at, updated_at FROM pages WHERE id = $1")).
		WithArgs("idx-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "parent_id", "published", "created_at", "updated_at"}).
			AddRow("idx-1", "EVENT_INDEX", nil, true, now, now))

	page, err := repo.GetByID(context.Background(), "idx-1")
	require.NoError(t, err)
	assert.Equal(t, models.PageTypeEventIndex, page.Type)
	assert.Nil(t, page.ParentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

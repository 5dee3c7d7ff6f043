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

func TestPressGalleryRepositoryListCategoriesOrdersByName(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPressGalleryRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM press_categories c WHERE c.parent_id = $1 AND c.published = TRUE ORDER BY c.name ASC")).
		WithArgs("pg-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "parent_id", "name", "description", "published", "created_at", "updated_at", "album_count"}).
			AddRow("cat-1", "pg-1", "Ceremonies", "", true, now, now, 3).
			AddRow("cat-2", "pg-1", "Visits", "", true, now, now, 0))

	categories, err := repo.ListCategories(context.Background(), "pg-1")
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, 3, categories[0].AlbumCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPressGalleryRepositoryListAlbumsScopedToCategory(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPressGalleryRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "category_id", "title", "album_date", "location", "description", "cover_image_id", "published", "created_at", "updated_at", "resolved_cover", "photo_count"}).
		AddRow("pa-1", "cat-1", "Opening ceremony", now, "Main hall", "", nil, true, now, now, "img-1", 12)

	mock.ExpectQuery(regexp.QuoteMeta("FROM press_albums a WHERE a.category_id = $1 AND a.published = TRUE ORDER BY a.album_date DESC, a.created_at DESC LIMIT 12 OFFSET 0")).
		WithArgs("cat-1").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM press_albums")).
		WithArgs("cat-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	albums, total, err := repo.ListAlbums(context.Background(), models.AlbumFilter{ParentID: "cat-1", Page: 1, PageSize: 12})
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, 12, albums[0].PhotoCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPressGalleryRepositoryListAlbumsSearchIncludesLocation(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPressGalleryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("to_tsvector('english', a.title || ' ' || a.location || ' ' || a.description) @@ plainto_tsquery('english', $2)")).
		WithArgs("cat-1", "hall").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "title", "album_date", "location", "description", "cover_image_id", "published", "created_at", "updated_at", "resolved_cover", "photo_count"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("cat-1", "hall").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	albums, total, err := repo.ListAlbums(context.Background(), models.AlbumFilter{ParentID: "cat-1", Search: "hall", Page: 1, PageSize: 12})
	require.NoError(t, err)
	assert.Empty(t, albums)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

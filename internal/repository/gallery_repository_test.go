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

func albumListingRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "parent_id", "title", "album_date", "description", "cover_image_id", "published", "created_at", "updated_at", "resolved_cover", "photo_count"}).
		AddRow("a1", "gal-1", "Sports day", now, "Annual sports day", nil, true, now, now, "img-1", 4)
}

func TestGalleryRepositoryListResolvesCoverAndCount(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGalleryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(a.cover_image_id, (SELECT gi.image_id FROM gallery_images gi WHERE gi.album_id = a.id ORDER BY gi.sort_order ASC, gi.id ASC LIMIT 1)) AS resolved_cover")).
		WithArgs("gal-1").
		WillReturnRows(albumListingRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM gallery_albums")).
		WithArgs("gal-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	albums, total, err := repo.List(context.Background(), models.AlbumFilter{ParentID: "gal-1", Page: 1, PageSize: 12})
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, 1, total)
	require.NotNil(t, albums[0].ResolvedCover)
	assert.Equal(t, "img-1", *albums[0].ResolvedCover)
	assert.Equal(t, 4, albums[0].PhotoCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepositoryListSearchOrdersByRelevance(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGalleryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("plainto_tsquery('english', $2)) DESC")).
		WithArgs("gal-1", "sports").
		WillReturnRows(albumListingRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("gal-1", "sports").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, _, err := repo.List(context.Background(), models.AlbumFilter{ParentID: "gal-1", Search: "sports", Page: 1, PageSize: 12})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepositoryListInvertedDateRangeYieldsEmptySet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGalleryRepository(db)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("a.album_date >= $2 AND a.album_date <= $3")).
		WithArgs("gal-1", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "parent_id", "title", "album_date", "description", "cover_image_id", "published", "created_at", "updated_at", "resolved_cover", "photo_count"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("gal-1", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	albums, total, err := repo.List(context.Background(), models.AlbumFilter{ParentID: "gal-1", DateFrom: &from, DateTo: &to, Page: 1, PageSize: 12})
	require.NoError(t, err)
	assert.Empty(t, albums)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepositoryAddImageAppendsAtEnd(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGalleryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("COALESCE((SELECT MAX(sort_order) + 1 FROM gallery_images WHERE album_id = $2), 0)")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	image := &models.GalleryImage{AlbumID: "a1", ImageID: "img-9", Caption: "Finish line"}
	require.NoError(t, repo.AddImage(context.Background(), image))
	assert.NotEmpty(t, image.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepositoryRemoveImageMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGalleryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM gallery_images WHERE album_id = $1 AND id = $2")).
		WithArgs("a1", "gi-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemoveImage(context.Background(), "a1", "gi-404")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepositoryReorderImagesRewritesSortOrder(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGalleryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE gallery_images SET sort_order = $1 WHERE album_id = $2 AND id = $3")).
		WithArgs(0, "a1", "gi-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE gallery_images SET sort_order = $1 WHERE album_id = $2 AND id = $3")).
		WithArgs(1, "a1", "gi-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReorderImages(context.Background(), "a1", []string{"gi-2", "gi-1"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepositoryDeleteRemovesAttachmentsFirst(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGalleryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM gallery_images").WithArgs("a1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM gallery_albums").WithArgs("a1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM pages").WithArgs("a1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "a1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

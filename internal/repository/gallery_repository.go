package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/prernajain1224/MHPS-Website/internal/models"
)

const galleryAlbumColumns = "a.id, a.parent_id, a.title, a.album_date, a.description, a.cover_image_id, a.published, a.created_at, a.updated_at"

const galleryListingColumns = galleryAlbumColumns + `,
COALESCE(a.cover_image_id, (SELECT gi.image_id FROM gallery_images gi WHERE gi.album_id = a.id ORDER BY gi.sort_order ASC, gi.id ASC LIMIT 1)) AS resolved_cover,
(SELECT COUNT(*) FROM gallery_images gi WHERE gi.album_id = a.id) AS photo_count`

// GalleryRepository manages persistence for photo albums and their
// ordered attachments.
type GalleryRepository struct {
	db *sqlx.DB
}

// NewGalleryRepository constructs a GalleryRepository.
func NewGalleryRepository(db *sqlx.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// List returns published albums under one gallery index with resolved
// covers and photo counts, plus the total count. Albums order latest
// first; a free-text search replaces that ordering with relevance.
func (r *GalleryRepository) List(ctx context.Context, filter models.AlbumFilter) ([]models.AlbumListing, int, error) {
	base := "FROM gallery_albums a WHERE a.parent_id = $1 AND a.published = TRUE"
	args := []interface{}{filter.ParentID}
	var conditions []string

	order := "a.album_date DESC, a.created_at DESC"
	if filter.Search != "" {
		idx := len(args) + 1
		conditions = append(conditions, fmt.Sprintf("to_tsvector('english', a.title || ' ' || a.description) @@ plainto_tsquery('english', $%d)", idx))
		order = fmt.Sprintf("ts_rank(to_tsvector('english', a.title || ' ' || a.description), plainto_tsquery('english', $%d)) DESC", idx)
		args = append(args, filter.Search)
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("a.album_date >= $%d", len(args)+1))
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("a.album_date <= $%d", len(args)+1))
		args = append(args, *filter.DateTo)
	}
	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 12
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d", galleryListingColumns, base, order, size, offset)
	var albums []models.AlbumListing
	if err := r.db.SelectContext(ctx, &albums, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list gallery albums: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count gallery albums: %w", err)
	}
	return albums, total, nil
}

// GetByID returns an album by identifier.
func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*models.GalleryAlbum, error) {
	query := fmt.Sprintf("SELECT %s FROM gallery_albums a WHERE a.id = $1", galleryAlbumColumns)
	var album models.GalleryAlbum
	if err := r.db.GetContext(ctx, &album, query, id); err != nil {
		return nil, err
	}
	return &album, nil
}

// ListImages returns an album's attachments in display order.
func (r *GalleryRepository) ListImages(ctx context.Context, albumID string) ([]models.GalleryImage, error) {
	const query = `SELECT id, album_id, image_id, caption, sort_order FROM gallery_images WHERE album_id = $1 ORDER BY sort_order ASC, id ASC`
	var images []models.GalleryImage
	if err := r.db.SelectContext(ctx, &images, query, albumID); err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	return images, nil
}

// Create inserts an album together with its registry row.
func (r *GalleryRepository) Create(ctx context.Context, album *models.GalleryAlbum) error {
	if album.ID == "" {
		album.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	album.CreatedAt = now
	album.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create gallery album: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	page := &models.Page{ID: album.ID, Type: models.PageTypeGalleryAlbum, ParentID: &album.ParentID, Published: album.Published}
	if err := insertPageTx(ctx, tx, page); err != nil {
		return err
	}
	const query = `INSERT INTO gallery_albums (id, parent_id, title, album_date, description, cover_image_id, published, created_at, updated_at)
VALUES (:id, :parent_id, :title, :album_date, :description, :cover_image_id, :published, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, album); err != nil {
		return fmt.Errorf("create gallery album: %w", err)
	}
	return tx.Commit()
}

// Update modifies an existing album.
func (r *GalleryRepository) Update(ctx context.Context, album *models.GalleryAlbum) error {
	album.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update gallery album: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const query = `UPDATE gallery_albums SET title = :title, album_date = :album_date, description = :description,
cover_image_id = :cover_image_id, published = :published, updated_at = :updated_at
WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, query, album); err != nil {
		return fmt.Errorf("update gallery album: %w", err)
	}
	if err := setPagePublishedTx(ctx, tx, album.ID, album.Published); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes an album, its attachments and its registry row.
func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete gallery album: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM gallery_images WHERE album_id = $1", id); err != nil {
		return fmt.Errorf("delete gallery images: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM gallery_albums WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete gallery album: %w", err)
	}
	if err := deletePageTx(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

// AddImage appends an attachment at the end of the album's display order.
func (r *GalleryRepository) AddImage(ctx context.Context, image *models.GalleryImage) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	const query = `INSERT INTO gallery_images (id, album_id, image_id, caption, sort_order)
VALUES ($1, $2, $3, $4, COALESCE((SELECT MAX(sort_order) + 1 FROM gallery_images WHERE album_id = $2), 0))`
	if _, err := r.db.ExecContext(ctx, query, image.ID, image.AlbumID, image.ImageID, image.Caption); err != nil {
		return fmt.Errorf("add gallery image: %w", err)
	}
	return nil
}

// RemoveImage deletes one attachment.
func (r *GalleryRepository) RemoveImage(ctx context.Context, albumID, imageID string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM gallery_images WHERE album_id = $1 AND id = $2", albumID, imageID)
	if err != nil {
		return fmt.Errorf("remove gallery image: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ReorderImages rewrites the sort order of an album's attachments to
// match the given attachment id sequence.
func (r *GalleryRepository) ReorderImages(ctx context.Context, albumID string, imageIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reorder gallery images: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for idx, id := range imageIDs {
		if _, err := tx.ExecContext(ctx, "UPDATE gallery_images SET sort_order = $1 WHERE album_id = $2 AND id = $3", idx, albumID, id); err != nil {
			return fmt.Errorf("reorder gallery image: %w", err)
		}
	}
	return tx.Commit()
}

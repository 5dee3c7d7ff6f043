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

const pressCategoryColumns = `c.id, c.parent_id, c.name, c.description, c.published, c.created_at, c.updated_at,
(SELECT COUNT(*) FROM press_albums pa WHERE pa.category_id = c.id AND pa.published = TRUE) AS album_count`

const pressAlbumColumns = "a.id, a.category_id, a.title, a.album_date, a.location, a.description, a.cover_image_id, a.published, a.created_at, a.updated_at"

const pressAlbumListingColumns = pressAlbumColumns + `,
COALESCE(a.cover_image_id, (SELECT pi.image_id FROM press_images pi WHERE pi.album_id = a.id ORDER BY pi.sort_order ASC, pi.id ASC LIMIT 1)) AS resolved_cover,
(SELECT COUNT(*) FROM press_images pi WHERE pi.album_id = a.id) AS photo_count`

// PressGalleryRepository manages persistence for press gallery
// categories, albums and their ordered attachments. Albums are scoped two
// levels below the index: index -> category -> album.
type PressGalleryRepository struct {
	db *sqlx.DB
}

// NewPressGalleryRepository constructs a PressGalleryRepository.
func NewPressGalleryRepository(db *sqlx.DB) *PressGalleryRepository {
	return &PressGalleryRepository{db: db}
}

// ListCategories returns published categories under one press gallery
// index ordered by name, each with its published album count.
func (r *PressGalleryRepository) ListCategories(ctx context.Context, parentID string) ([]models.PressCategory, error) {
	query := fmt.Sprintf("SELECT %s FROM press_categories c WHERE c.parent_id = $1 AND c.published = TRUE ORDER BY c.name ASC", pressCategoryColumns)
	var categories []models.PressCategory
	if err := r.db.SelectContext(ctx, &categories, query, parentID); err != nil {
		return nil, fmt.Errorf("list press categories: %w", err)
	}
	return categories, nil
}

// GetCategoryByID returns a category by identifier.
func (r *PressGalleryRepository) GetCategoryByID(ctx context.Context, id string) (*models.PressCategory, error) {
	query := fmt.Sprintf("SELECT %s FROM press_categories c WHERE c.id = $1", pressCategoryColumns)
	var category models.PressCategory
	if err := r.db.GetContext(ctx, &category, query, id); err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory inserts a category together with its registry row.
func (r *PressGalleryRepository) CreateCategory(ctx context.Context, category *models.PressCategory) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create press category: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	page := &models.Page{ID: category.ID, Type: models.PageTypePressCategory, ParentID: &category.ParentID, Published: category.Published}
	if err := insertPageTx(ctx, tx, page); err != nil {
		return err
	}
	const query = `INSERT INTO press_categories (id, parent_id, name, description, published, created_at, updated_at)
VALUES (:id, :parent_id, :name, :description, :published, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, category); err != nil {
		return fmt.Errorf("create press category: %w", err)
	}
	return tx.Commit()
}

// UpdateCategory modifies an existing category.
func (r *PressGalleryRepository) UpdateCategory(ctx context.Context, category *models.PressCategory) error {
	category.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update press category: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const query = `UPDATE press_categories SET name = :name, description = :description, published = :published, updated_at = :updated_at WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, query, category); err != nil {
		return fmt.Errorf("update press category: %w", err)
	}
	if err := setPagePublishedTx(ctx, tx, category.ID, category.Published); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteCategory removes a category and its registry row. Categories
// still holding albums are rejected by the foreign key.
func (r *PressGalleryRepository) DeleteCategory(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete press category: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM press_categories WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete press category: %w", err)
	}
	if err := deletePageTx(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

// ListAlbums returns published albums under one category with resolved
// covers and photo counts, plus the total count. Albums order latest
// first; a free-text search replaces that ordering with relevance.
func (r *PressGalleryRepository) ListAlbums(ctx context.Context, filter models.AlbumFilter) ([]models.PressAlbumListing, int, error) {
	base := "FROM press_albums a WHERE a.category_id = $1 AND a.published = TRUE"
	args := []interface{}{filter.ParentID}
	var conditions []string

	order := "a.album_date DESC, a.created_at DESC"
	if filter.Search != "" {
		idx := len(args) + 1
		conditions = append(conditions, fmt.Sprintf("to_tsvector('english', a.title || ' ' || a.location || ' ' || a.description) @@ plainto_tsquery('english', $%d)", idx))
		order = fmt.Sprintf("ts_rank(to_tsvector('english', a.title || ' ' || a.location || ' ' || a.description), plainto_tsquery('english', $%d)) DESC", idx)
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

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d", pressAlbumListingColumns, base, order, size, offset)
	var albums []models.PressAlbumListing
	if err := r.db.SelectContext(ctx, &albums, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list press albums: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count press albums: %w", err)
	}
	return albums, total, nil
}

// GetAlbumByID returns a press album by identifier.
func (r *PressGalleryRepository) GetAlbumByID(ctx context.Context, id string) (*models.PressAlbum, error) {
	query := fmt.Sprintf("SELECT %s FROM press_albums a WHERE a.id = $1", pressAlbumColumns)
	var album models.PressAlbum
	if err := r.db.GetContext(ctx, &album, query, id); err != nil {
		return nil, err
	}
	return &album, nil
}

// ListAlbumImages returns a press album's attachments in display order.
func (r *PressGalleryRepository) ListAlbumImages(ctx context.Context, albumID string) ([]models.PressImage, error) {
	const query = `SELECT id, album_id, image_id, caption, sort_order FROM press_images WHERE album_id = $1 ORDER BY sort_order ASC, id ASC`
	var images []models.PressImage
	if err := r.db.SelectContext(ctx, &images, query, albumID); err != nil {
		return nil, fmt.Errorf("list press images: %w", err)
	}
	return images, nil
}

// CreateAlbum inserts a press album together with its registry row.
func (r *PressGalleryRepository) CreateAlbum(ctx context.Context, album *models.PressAlbum) error {
	if album.ID == "" {
		album.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	album.CreatedAt = now
	album.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create press album: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	page := &models.Page{ID: album.ID, Type: models.PageTypePressAlbum, ParentID: &album.CategoryID, Published: album.Published}
	if err := insertPageTx(ctx, tx, page); err != nil {
		return err
	}
	const query = `INSERT INTO press_albums (id, category_id, title, album_date, location, description, cover_image_id, published, created_at, updated_at)
VALUES (:id, :category_id, :title, :album_date, :location, :description, :cover_image_id, :published, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, album); err != nil {
		return fmt.Errorf("create press album: %w", err)
	}
	return tx.Commit()
}

// UpdateAlbum modifies an existing press album.
func (r *PressGalleryRepository) UpdateAlbum(ctx context.Context, album *models.PressAlbum) error {
	album.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update press album: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const query = `UPDATE press_albums SET title = :title, album_date = :album_date, location = :location,
description = :description, cover_image_id = :cover_image_id, published = :published, updated_at = :updated_at
WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, query, album); err != nil {
		return fmt.Errorf("update press album: %w", err)
	}
	if err := setPagePublishedTx(ctx, tx, album.ID, album.Published); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteAlbum removes a press album, its attachments and its registry row.
func (r *PressGalleryRepository) DeleteAlbum(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete press album: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM press_images WHERE album_id = $1", id); err != nil {
		return fmt.Errorf("delete press images: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM press_albums WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete press album: %w", err)
	}
	if err := deletePageTx(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

// AddAlbumImage appends an attachment at the end of the album's display
// order.
func (r *PressGalleryRepository) AddAlbumImage(ctx context.Context, image *models.PressImage) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	const query = `INSERT INTO press_images (id, album_id, image_id, caption, sort_order)
VALUES ($1, $2, $3, $4, COALESCE((SELECT MAX(sort_order) + 1 FROM press_images WHERE album_id = $2), 0))`
	if _, err := r.db.ExecContext(ctx, query, image.ID, image.AlbumID, image.ImageID, image.Caption); err != nil {
		return fmt.Errorf("add press image: %w", err)
	}
	return nil
}

// RemoveAlbumImage deletes one attachment.
func (r *PressGalleryRepository) RemoveAlbumImage(ctx context.Context, albumID, imageID string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM press_images WHERE album_id = $1 AND id = $2", albumID, imageID)
	if err != nil {
		return fmt.Errorf("remove press image: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

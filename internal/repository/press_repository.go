package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/prernajain1224/MHPS-Website/internal/models"
)

const pressColumns = "id, parent_id, kind, item_date, author_names, short_title, body, is_featured, published, created_at, updated_at"

// PressRepository manages persistence for press items (releases, news,
// interviews and editorials share one table keyed by kind).
type PressRepository struct {
	db *sqlx.DB
}

// NewPressRepository constructs a PressRepository.
func NewPressRepository(db *sqlx.DB) *PressRepository {
	return &PressRepository{db: db}
}

// List returns published press items under one index page, latest first,
// along with the total count for pagination.
func (r *PressRepository) List(ctx context.Context, filter models.PressFilter) ([]models.PressItem, int, error) {
	base := "FROM press_items WHERE parent_id = $1 AND published = TRUE"
	args := []interface{}{filter.ParentID}
	var conditions []string

	if filter.Kind != "" {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)+1))
		args = append(args, filter.Kind)
	}
	if filter.Featured != nil {
		conditions = append(conditions, fmt.Sprintf("is_featured = $%d", len(args)+1))
		args = append(args, *filter.Featured)
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
		size = 9
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY item_date DESC, created_at DESC LIMIT %d OFFSET %d", pressColumns, base, size, offset)
	var items []models.PressItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list press items: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count press items: %w", err)
	}
	return items, total, nil
}

// ListAll returns every published press item under one index page without
// pagination, used by the archive export.
func (r *PressRepository) ListAll(ctx context.Context, parentID string) ([]models.PressItem, error) {
	query := fmt.Sprintf("SELECT %s FROM press_items WHERE parent_id = $1 AND published = TRUE ORDER BY item_date DESC, created_at DESC", pressColumns)
	var items []models.PressItem
	if err := r.db.SelectContext(ctx, &items, query, parentID); err != nil {
		return nil, fmt.Errorf("list all press items: %w", err)
	}
	return items, nil
}

// GetByID returns a press item by identifier.
func (r *PressRepository) GetByID(ctx context.Context, id string) (*models.PressItem, error) {
	query := fmt.Sprintf("SELECT %s FROM press_items WHERE id = $1", pressColumns)
	var item models.PressItem
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a press item together with its registry row.
func (r *PressRepository) Create(ctx context.Context, item *models.PressItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create press item: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	page := &models.Page{ID: item.ID, Type: models.PageTypePressItem, ParentID: &item.ParentID, Published: item.Published}
	if err := insertPageTx(ctx, tx, page); err != nil {
		return err
	}
	const query = `INSERT INTO press_items (id, parent_id, kind, item_date, author_names, short_title, body, is_featured, published, created_at, updated_at)
VALUES (:id, :parent_id, :kind, :item_date, :author_names, :short_title, :body, :is_featured, :published, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("create press item: %w", err)
	}
	return tx.Commit()
}

// Update modifies an existing press item and mirrors the published flag
// onto the registry.
func (r *PressRepository) Update(ctx context.Context, item *models.PressItem) error {
	item.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update press item: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const query = `UPDATE press_items SET kind = :kind, item_date = :item_date, author_names = :author_names,
short_title = :short_title, body = :body, is_featured = :is_featured, published = :published, updated_at = :updated_at
WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("update press item: %w", err)
	}
	if err := setPagePublishedTx(ctx, tx, item.ID, item.Published); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a press item and its registry row.
func (r *PressRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete press item: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM press_items WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete press item: %w", err)
	}
	if err := deletePageTx(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

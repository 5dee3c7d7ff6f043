package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/prernajain1224/MHPS-Website/internal/models"
)

// PageRepository reads the content-tree registry. Every node, index pages
// included, has exactly one row here; family repositories write their
// registry rows inside the same transaction as their detail rows.
type PageRepository struct {
	db *sqlx.DB
}

// NewPageRepository constructs a PageRepository.
func NewPageRepository(db *sqlx.DB) *PageRepository {
	return &PageRepository{db: db}
}

// GetByID returns the registry row for a node.
func (r *PageRepository) GetByID(ctx context.Context, id string) (*models.Page, error) {
	const query = `SELECT id, type, parent_id, published, created_at, updated_at FROM pages WHERE id = $1`
	var page models.Page
	if err := r.db.GetContext(ctx, &page, query, id); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetType returns the page type for a node, used to validate the
// allowed-parent rules on creation.
func (r *PageRepository) GetType(ctx context.Context, id string) (models.PageType, error) {
	var pageType models.PageType
	if err := r.db.GetContext(ctx, &pageType, "SELECT type FROM pages WHERE id = $1", id); err != nil {
		return "", err
	}
	return pageType, nil
}

// insertPageTx writes a registry row inside an open transaction.
func insertPageTx(ctx context.Context, tx *sqlx.Tx, page *models.Page) error {
	now := time.Now().UTC()
	if page.CreatedAt.IsZero() {
		page.CreatedAt = now
	}
	page.UpdatedAt = now
	const query = `INSERT INTO pages (id, type, parent_id, published, created_at, updated_at)
VALUES (:id, :type, :parent_id, :published, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, page); err != nil {
		return fmt.Errorf("insert page: %w", err)
	}
	return nil
}

// setPagePublishedTx mirrors the published flag onto the registry row.
func setPagePublishedTx(ctx context.Context, tx *sqlx.Tx, id string, published bool) error {
	if _, err := tx.ExecContext(ctx, "UPDATE pages SET published = $1, updated_at = $2 WHERE id = $3", published, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("update page published: %w", err)
	}
	return nil
}

// deletePageTx removes a registry row inside an open transaction.
func deletePageTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM pages WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

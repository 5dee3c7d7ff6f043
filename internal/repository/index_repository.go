package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/prernajain1224/MHPS-Website/internal/models"
)

// IndexRepository manages persistence for index (container) pages.
type IndexRepository struct {
	db *sqlx.DB
}

// NewIndexRepository constructs an IndexRepository.
func NewIndexRepository(db *sqlx.DB) *IndexRepository {
	return &IndexRepository{db: db}
}

// GetByID returns an index page by identifier.
func (r *IndexRepository) GetByID(ctx context.Context, id string) (*models.IndexPage, error) {
	const query = `SELECT i.id, p.type, i.title, i.introduction, i.created_at, i.updated_at
FROM index_pages i JOIN pages p ON p.id = i.id WHERE i.id = $1`
	var idx models.IndexPage
	if err := r.db.GetContext(ctx, &idx, query, id); err != nil {
		return nil, err
	}
	return &idx, nil
}

// Create inserts an index page together with its registry row.
func (r *IndexRepository) Create(ctx context.Context, idx *models.IndexPage) error {
	if idx.ID == "" {
		idx.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	idx.CreatedAt = now
	idx.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create index page: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	page := &models.Page{ID: idx.ID, Type: idx.Type, ParentID: nil, Published: true}
	if err := insertPageTx(ctx, tx, page); err != nil {
		return err
	}
	const query = `INSERT INTO index_pages (id, title, introduction, created_at, updated_at)
VALUES (:id, :title, :introduction, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, idx); err != nil {
		return fmt.Errorf("insert index page: %w", err)
	}
	return tx.Commit()
}

// Update modifies the editable fields of an index page.
func (r *IndexRepository) Update(ctx context.Context, idx *models.IndexPage) error {
	idx.UpdatedAt = time.Now().UTC()
	const query = `UPDATE index_pages SET title = :title, introduction = :introduction, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, idx); err != nil {
		return fmt.Errorf("update index page: %w", err)
	}
	return nil
}

// Delete removes an index page and its registry row.
func (r *IndexRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete index page: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM index_pages WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete index page: %w", err)
	}
	if err := deletePageTx(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

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

const historicalEventColumns = "id, parent_id, event_date, image_id, title, description, published, created_at, updated_at"

// TimelineRepository manages persistence for the About page's historical
// events.
type TimelineRepository struct {
	db *sqlx.DB
}

// NewTimelineRepository constructs a TimelineRepository.
func NewTimelineRepository(db *sqlx.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// List returns published historical events under one About page, latest
// first, optionally restricted to a year range, with the total count.
func (r *TimelineRepository) List(ctx context.Context, filter models.TimelineFilter) ([]models.HistoricalEvent, int, error) {
	base := "FROM historical_events WHERE parent_id = $1 AND published = TRUE"
	args := []interface{}{filter.ParentID}
	var conditions []string

	if filter.StartYear != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM event_date) >= $%d", len(args)+1))
		args = append(args, *filter.StartYear)
	}
	if filter.EndYear != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM event_date) < $%d", len(args)+1))
		args = append(args, *filter.EndYear)
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
		size = 10
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY event_date DESC LIMIT %d OFFSET %d", historicalEventColumns, base, size, offset)
	var events []models.HistoricalEvent
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list historical events: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count historical events: %w", err)
	}
	return events, total, nil
}

// ListDates returns the dates of every published historical event under
// one About page in ascending order. The period menu is built from the
// full set regardless of the active period filter.
func (r *TimelineRepository) ListDates(ctx context.Context, parentID string) ([]time.Time, error) {
	const query = `SELECT event_date FROM historical_events WHERE parent_id = $1 AND published = TRUE ORDER BY event_date ASC`
	var dates []time.Time
	if err := r.db.SelectContext(ctx, &dates, query, parentID); err != nil {
		return nil, fmt.Errorf("list historical event dates: %w", err)
	}
	return dates, nil
}

// GetByID returns a historical event by identifier.
func (r *TimelineRepository) GetByID(ctx context.Context, id string) (*models.HistoricalEvent, error) {
	query := fmt.Sprintf("SELECT %s FROM historical_events WHERE id = $1", historicalEventColumns)
	var event models.HistoricalEvent
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a historical event together with its registry row.
func (r *TimelineRepository) Create(ctx context.Context, event *models.HistoricalEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create historical event: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	page := &models.Page{ID: event.ID, Type: models.PageTypeHistoricalEvent, ParentID: &event.ParentID, Published: event.Published}
	if err := insertPageTx(ctx, tx, page); err != nil {
		return err
	}
	const query = `INSERT INTO historical_events (id, parent_id, event_date, image_id, title, description, published, created_at, updated_at)
VALUES (:id, :parent_id, :event_date, :image_id, :title, :description, :published, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create historical event: %w", err)
	}
	return tx.Commit()
}

// Update modifies an existing historical event.
func (r *TimelineRepository) Update(ctx context.Context, event *models.HistoricalEvent) error {
	event.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update historical event: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const query = `UPDATE historical_events SET event_date = :event_date, image_id = :image_id, title = :title,
description = :description, published = :published, updated_at = :updated_at
WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("update historical event: %w", err)
	}
	if err := setPagePublishedTx(ctx, tx, event.ID, event.Published); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a historical event and its registry row.
func (r *TimelineRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete historical event: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM historical_events WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete historical event: %w", err)
	}
	if err := deletePageTx(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

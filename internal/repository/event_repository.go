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

const eventColumns = "id, parent_id, event_type, event_format, has_livestream, start_date, start_time, end_time, title, short_description, full_description, location, registration_link, published, created_at, updated_at"

// EventRepository manages persistence for events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns published events under one index page partitioned by the
// upcoming/past tab, along with the total count. Upcoming events order
// ascending by (date, start time); past events descending.
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]models.Event, int, error) {
	base := "FROM events WHERE parent_id = $1 AND published = TRUE"
	args := []interface{}{filter.ParentID}
	var conditions []string

	order := "start_date ASC, start_time ASC"
	today := filter.Today.UTC().Truncate(24 * time.Hour)
	switch filter.Tab {
	case models.EventTabPast:
		conditions = append(conditions, fmt.Sprintf("start_date < $%d", len(args)+1))
		args = append(args, today)
		order = "start_date DESC, start_time DESC"
	default:
		conditions = append(conditions, fmt.Sprintf("start_date >= $%d", len(args)+1))
		args = append(args, today)
	}

	if filter.EventType != "" {
		conditions = append(conditions, fmt.Sprintf("event_type = $%d", len(args)+1))
		args = append(args, filter.EventType)
	}
	if filter.EventFormat != "" {
		conditions = append(conditions, fmt.Sprintf("event_format = $%d", len(args)+1))
		args = append(args, filter.EventFormat)
	}
	if filter.LivestreamReq {
		conditions = append(conditions, "has_livestream = TRUE")
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

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d", eventColumns, base, order, size, offset)
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	return events, total, nil
}

// ListAll returns every published event under one index page without
// pagination, latest first, used by the archive export.
func (r *EventRepository) ListAll(ctx context.Context, parentID string) ([]models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE parent_id = $1 AND published = TRUE ORDER BY start_date DESC, start_time DESC", eventColumns)
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query, parentID); err != nil {
		return nil, fmt.Errorf("list all events: %w", err)
	}
	return events, nil
}

// GetByID returns an event by identifier.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE id = $1", eventColumns)
	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts an event together with its registry row.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create event: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	page := &models.Page{ID: event.ID, Type: models.PageTypeEvent, ParentID: &event.ParentID, Published: event.Published}
	if err := insertPageTx(ctx, tx, page); err != nil {
		return err
	}
	const query = `INSERT INTO events (id, parent_id, event_type, event_format, has_livestream, start_date, start_time, end_time, title, short_description, full_description, location, registration_link, published, created_at, updated_at)
VALUES (:id, :parent_id, :event_type, :event_format, :has_livestream, :start_date, :start_time, :end_time, :title, :short_description, :full_description, :location, :registration_link, :published, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return tx.Commit()
}

// Update modifies an existing event.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update event: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const query = `UPDATE events SET event_type = :event_type, event_format = :event_format, has_livestream = :has_livestream,
start_date = :start_date, start_time = :start_time, end_time = :end_time, title = :title, short_description = :short_description,
full_description = :full_description, location = :location, registration_link = :registration_link, published = :published, updated_at = :updated_at
WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if err := setPagePublishedTx(ctx, tx, event.ID, event.Published); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes an event and its registry row.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete event: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if err := deletePageTx(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

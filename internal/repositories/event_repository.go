package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

type EventRepository interface {
	Create(ctx context.Context, e *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	// ListUpcoming returns active events with a date in the future,
	// soonest first. limit <= 0 means no limit.
	ListUpcoming(ctx context.Context, limit int) ([]*models.Event, error)
}

type eventRepository struct {
	db DB
}

func NewEventRepository(db DB) EventRepository {
	return &eventRepository{db: db}
}

const baseSelectEvent = `
    SELECT id, title, date, location, description, image_url, is_active, created_at
    FROM events
`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Date,
		&e.Location,
		&e.Description,
		&e.ImageURL,
		&e.IsActive,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *models.Event) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO events (id, title, date, location, description, image_url, is_active, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7, NOW())
    `,
		e.ID, e.Title, e.Date, e.Location, e.Description, e.ImageURL, e.IsActive)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	row := r.db.QueryRow(ctx, baseSelectEvent+" WHERE id = $1 AND is_active = TRUE", id)
	e, err := scanEvent(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, limit int) ([]*models.Event, error) {
	q := baseSelectEvent + " WHERE is_active = TRUE AND date >= NOW() ORDER BY date"
	args := []interface{}{}
	if limit > 0 {
		q += " LIMIT $1"
		args = append(args, limit)
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

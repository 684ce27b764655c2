package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

type AttendanceRepository interface {
	// GetOrCreate registers the member for the event, or returns the
	// existing row. The bool reports whether a new row was created.
	GetOrCreate(ctx context.Context, memberID, eventID uuid.UUID) (*models.EventAttendance, bool, error)
	Get(ctx context.Context, memberID, eventID uuid.UUID) (*models.EventAttendance, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error

	// ListForMember returns attendance rows joined with their events,
	// newest event first. Filters by status when status != "".
	ListForMember(ctx context.Context, memberID uuid.UUID, status string) ([]*models.EventAttendance, error)
	// ListUpcomingForMember returns registered rows for future events,
	// soonest first.
	ListUpcomingForMember(ctx context.Context, memberID uuid.UUID, after time.Time, limit int) ([]*models.EventAttendance, error)
	CountForMember(ctx context.Context, memberID uuid.UUID, status string) (int, error)
}

type attendanceRepository struct {
	db DB
}

func NewAttendanceRepository(db DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceJoinSelect = `
    SELECT a.id, a.member_id, a.event_id, a.status, a.registered_at,
           e.id, e.title, e.date, e.location, e.description, e.image_url, e.is_active, e.created_at
    FROM event_attendances a
    JOIN events e ON e.id = a.event_id
`

func scanAttendanceWithEvent(row pgx.Row) (*models.EventAttendance, error) {
	var a models.EventAttendance
	var e models.Event
	err := row.Scan(
		&a.ID, &a.MemberID, &a.EventID, &a.Status, &a.RegisteredAt,
		&e.ID, &e.Title, &e.Date, &e.Location, &e.Description, &e.ImageURL, &e.IsActive, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Event = &e
	return &a, nil
}

func (r *attendanceRepository) GetOrCreate(ctx context.Context, memberID, eventID uuid.UUID) (*models.EventAttendance, bool, error) {
	existing, err := r.Get(ctx, memberID, eventID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	a := &models.EventAttendance{
		ID:       uuid.New(),
		MemberID: memberID,
		EventID:  eventID,
		Status:   models.AttendanceRegistered,
	}
	// ON CONFLICT keeps a concurrent duplicate registration harmless.
	// RETURNING yields no row when the conflict swallowed the insert,
	// in which case the winner's row is fetched instead.
	row := r.db.QueryRow(ctx, `
        INSERT INTO event_attendances (id, member_id, event_id, status, registered_at)
        VALUES ($1,$2,$3,$4, NOW())
        ON CONFLICT (member_id, event_id) DO NOTHING
        RETURNING registered_at
    `,
		a.ID, a.MemberID, a.EventID, a.Status)
	if err := row.Scan(&a.RegisteredAt); err != nil {
		if err == pgx.ErrNoRows {
			winner, err := r.Get(ctx, memberID, eventID)
			if err != nil {
				return nil, false, err
			}
			return winner, false, nil
		}
		return nil, false, err
	}
	return a, true, nil
}

func (r *attendanceRepository) Get(ctx context.Context, memberID, eventID uuid.UUID) (*models.EventAttendance, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, member_id, event_id, status, registered_at
        FROM event_attendances
        WHERE member_id = $1 AND event_id = $2
    `, memberID, eventID)

	var a models.EventAttendance
	err := row.Scan(&a.ID, &a.MemberID, &a.EventID, &a.Status, &a.RegisteredAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *attendanceRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE event_attendances SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *attendanceRepository) ListForMember(ctx context.Context, memberID uuid.UUID, status string) ([]*models.EventAttendance, error) {
	q := attendanceJoinSelect + " WHERE a.member_id = $1"
	args := []interface{}{memberID}
	if status != "" {
		q += " AND a.status = $2"
		args = append(args, status)
	}
	q += " ORDER BY e.date DESC"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.EventAttendance
	for rows.Next() {
		a, err := scanAttendanceWithEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *attendanceRepository) ListUpcomingForMember(ctx context.Context, memberID uuid.UUID, after time.Time, limit int) ([]*models.EventAttendance, error) {
	rows, err := r.db.Query(ctx,
		attendanceJoinSelect+`
        WHERE a.member_id = $1 AND a.status = $2 AND e.date >= $3
        ORDER BY e.date
        LIMIT $4`,
		memberID, models.AttendanceRegistered, after, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.EventAttendance
	for rows.Next() {
		a, err := scanAttendanceWithEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *attendanceRepository) CountForMember(ctx context.Context, memberID uuid.UUID, status string) (int, error) {
	q := `SELECT COUNT(*) FROM event_attendances WHERE member_id = $1`
	args := []interface{}{memberID}
	if status != "" {
		q += " AND status = $2"
		args = append(args, status)
	}
	var n int
	if err := r.db.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

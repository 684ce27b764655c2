package repositories

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/require"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

// scriptedDB drives a repository through a fixed sequence of row
// results without a live pool.
type scriptedDB struct {
	queryRow func(sql string, args ...interface{}) pgx.Row
}

func (d *scriptedDB) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, nil
}

func (d *scriptedDB) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (d *scriptedDB) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	return d.queryRow(sql, args...)
}

type scriptedRow struct {
	scan func(dest ...interface{}) error
}

func (r scriptedRow) Scan(dest ...interface{}) error { return r.scan(dest...) }

// A concurrent duplicate registration makes the ON CONFLICT insert
// return no row; the caller must then get the winner's stored row, not
// a fabricated one with a zero timestamp.
func TestGetOrCreateReturnsWinnerRowOnConflict(t *testing.T) {
	memberID, eventID := uuid.New(), uuid.New()
	winnerID := uuid.New()
	registeredAt := time.Now().Add(-time.Minute).Truncate(time.Second)

	selects := 0
	db := &scriptedDB{queryRow: func(sql string, _ ...interface{}) pgx.Row {
		if strings.HasPrefix(strings.TrimSpace(sql), "INSERT") {
			return scriptedRow{scan: func(...interface{}) error { return pgx.ErrNoRows }}
		}
		selects++
		if selects == 1 {
			// No row yet when GetOrCreate first looks.
			return scriptedRow{scan: func(...interface{}) error { return pgx.ErrNoRows }}
		}
		return scriptedRow{scan: func(dest ...interface{}) error {
			*dest[0].(*uuid.UUID) = winnerID
			*dest[1].(*uuid.UUID) = memberID
			*dest[2].(*uuid.UUID) = eventID
			*dest[3].(*string) = models.AttendanceRegistered
			*dest[4].(*time.Time) = registeredAt
			return nil
		}}
	}}

	repo := NewAttendanceRepository(db)
	got, created, err := repo.GetOrCreate(context.Background(), memberID, eventID)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, winnerID, got.ID)
	require.Equal(t, registeredAt, got.RegisteredAt)
}

func TestGetOrCreateReturnsStoredTimestampOnInsert(t *testing.T) {
	memberID, eventID := uuid.New(), uuid.New()
	registeredAt := time.Now().Truncate(time.Second)

	db := &scriptedDB{queryRow: func(sql string, _ ...interface{}) pgx.Row {
		if strings.HasPrefix(strings.TrimSpace(sql), "INSERT") {
			return scriptedRow{scan: func(dest ...interface{}) error {
				*dest[0].(*time.Time) = registeredAt
				return nil
			}}
		}
		return scriptedRow{scan: func(...interface{}) error { return pgx.ErrNoRows }}
	}}

	repo := NewAttendanceRepository(db)
	got, created, err := repo.GetOrCreate(context.Background(), memberID, eventID)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, registeredAt, got.RegisteredAt)
	require.Equal(t, models.AttendanceRegistered, got.Status)
}

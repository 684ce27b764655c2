package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type OTPRepository interface {
	Create(ctx context.Context, rec *models.EmailOTP) error

	// GetLatest returns the most recently created row for the email,
	// or (nil, nil) when no row exists.
	GetLatest(ctx context.Context, email string) (*models.EmailOTP, error)

	// DeleteUnverified removes every unverified row for the email, so
	// that after a new issuance only the newest code is live.
	DeleteUnverified(ctx context.Context, email string) error

	// IncrementAttempts bumps the counter and returns the new value.
	// Increment-and-read is a single statement so two concurrent
	// verifications cannot both observe the same count.
	IncrementAttempts(ctx context.Context, id uuid.UUID) (int, error)

	MarkVerified(ctx context.Context, id uuid.UUID) error

	// HasVerifiedEmail reports whether the latest row for the email is
	// verified. Used as the registration precondition.
	HasVerifiedEmail(ctx context.Context, email string) (bool, error)

	// SweepExpired deletes rows whose expiry is more than olderThan in
	// the past, regardless of verification state. Returns rows deleted.
	SweepExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type otpRepository struct {
	db DB
}

func NewOTPRepository(db DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Create(ctx context.Context, rec *models.EmailOTP) error {
	q := `
        INSERT INTO email_otps
            (id, email, code, created_at, expires_at, attempts, is_verified)
        VALUES ($1, $2, $3, NOW(), $4, 0, FALSE)
    `
	_, err := r.db.Exec(ctx, q, rec.ID, rec.Email, rec.Code, rec.ExpiresAt)
	return err
}

func (r *otpRepository) GetLatest(ctx context.Context, email string) (*models.EmailOTP, error) {
	q := `
        SELECT id, email, code, created_at, expires_at, attempts, is_verified
        FROM email_otps
        WHERE email = $1
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, q, email)
	var rec models.EmailOTP
	err := row.Scan(
		&rec.ID,
		&rec.Email,
		&rec.Code,
		&rec.CreatedAt,
		&rec.ExpiresAt,
		&rec.Attempts,
		&rec.Verified,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *otpRepository) DeleteUnverified(ctx context.Context, email string) error {
	q := `DELETE FROM email_otps WHERE email = $1 AND is_verified = FALSE`
	_, err := r.db.Exec(ctx, q, email)
	return err
}

func (r *otpRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) (int, error) {
	q := `UPDATE email_otps SET attempts = attempts + 1 WHERE id = $1 RETURNING attempts`
	var attempts int
	if err := r.db.QueryRow(ctx, q, id).Scan(&attempts); err != nil {
		return 0, err
	}
	return attempts, nil
}

func (r *otpRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	q := `UPDATE email_otps SET is_verified = TRUE WHERE id = $1`
	_, err := r.db.Exec(ctx, q, id)
	return err
}

func (r *otpRepository) HasVerifiedEmail(ctx context.Context, email string) (bool, error) {
	q := `
        SELECT id
        FROM email_otps
        WHERE email = $1
          AND is_verified = TRUE
        ORDER BY created_at DESC
        LIMIT 1
    `
	var id uuid.UUID
	if err := r.db.QueryRow(ctx, q, email).Scan(&id); err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *otpRepository) SweepExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	q := `DELETE FROM email_otps WHERE expires_at < NOW() - $1::interval`
	tag, err := r.db.Exec(ctx, q, olderThan)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

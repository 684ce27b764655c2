package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

type TokenRepository interface {
	StoreRefreshToken(ctx context.Context, t *models.RefreshToken) error
	// GetRefreshToken returns (nil, nil) when the token is unknown.
	GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)
	RemoveRefreshToken(ctx context.Context, token string) error
	RemoveAllForMember(ctx context.Context, memberID uuid.UUID) error
	CleanupExpiredRefreshTokens(ctx context.Context) error
}

type tokenRepository struct {
	db DB
}

func NewTokenRepository(db DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) StoreRefreshToken(ctx context.Context, t *models.RefreshToken) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO member_refresh_tokens (id, member_id, token, expires_at, created_at)
        VALUES ($1,$2,$3,$4, NOW())
    `,
		t.ID, t.MemberID, t.Token, t.ExpiresAt)
	return err
}

func (r *tokenRepository) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, member_id, token, expires_at, created_at
        FROM member_refresh_tokens
        WHERE token = $1
    `, token)

	var t models.RefreshToken
	err := row.Scan(&t.ID, &t.MemberID, &t.Token, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tokenRepository) RemoveRefreshToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM member_refresh_tokens WHERE token = $1`, token)
	return err
}

func (r *tokenRepository) RemoveAllForMember(ctx context.Context, memberID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM member_refresh_tokens WHERE member_id = $1`, memberID)
	return err
}

func (r *tokenRepository) CleanupExpiredRefreshTokens(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM member_refresh_tokens WHERE expires_at < NOW()`)
	return err
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

type MemberRepository interface {
	Create(ctx context.Context, m *models.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	// GetByEmail returns (nil, nil) when no member exists for the email.
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	UpdateProfile(ctx context.Context, m *models.Member) error
}

type memberRepository struct {
	db DB
}

func NewMemberRepository(db DB) MemberRepository {
	return &memberRepository{db: db}
}

const baseSelectMember = `
    SELECT id, email, password_hash, first_name, last_name, phone, bio, avatar_url, joined_at
    FROM members
`

func scanMember(row pgx.Row) (*models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.ID,
		&m.Email,
		&m.PasswordHash,
		&m.FirstName,
		&m.LastName,
		&m.Phone,
		&m.Bio,
		&m.AvatarURL,
		&m.JoinedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) Create(ctx context.Context, m *models.Member) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO members
            (id, email, password_hash, first_name, last_name, phone, bio, avatar_url, joined_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW())
    `,
		m.ID, m.Email, m.PasswordHash, m.FirstName, m.LastName, m.Phone, m.Bio, m.AvatarURL)
	return err
}

func (r *memberRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	m, err := scanMember(r.db.QueryRow(ctx, baseSelectMember+" WHERE id = $1", id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	m, err := scanMember(r.db.QueryRow(ctx, baseSelectMember+" WHERE email = $1", email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) UpdateProfile(ctx context.Context, m *models.Member) error {
	_, err := r.db.Exec(ctx, `
        UPDATE members
        SET first_name = $2, last_name = $3, phone = $4, bio = $5, avatar_url = $6
        WHERE id = $1
    `,
		m.ID, m.FirstName, m.LastName, m.Phone, m.Bio, m.AvatarURL)
	return err
}

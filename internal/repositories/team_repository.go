package repositories

import (
	"context"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

type TeamRepository interface {
	Create(ctx context.Context, m *models.TeamMember) error
	// ListActive returns active members in display order. limit <= 0
	// means no limit.
	ListActive(ctx context.Context, limit int) ([]*models.TeamMember, error)
}

type teamRepository struct {
	db DB
}

func NewTeamRepository(db DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, m *models.TeamMember) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO team_members
            (id, name, position, bio, image_url, facebook, instagram, twitter, is_active, display_order)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    `,
		m.ID, m.Name, m.Position, m.Bio, m.ImageURL,
		m.Facebook, m.Instagram, m.Twitter, m.IsActive, m.DisplayOrder)
	return err
}

func (r *teamRepository) ListActive(ctx context.Context, limit int) ([]*models.TeamMember, error) {
	q := `
        SELECT id, name, position, bio, image_url, facebook, instagram, twitter,
               is_active, display_order
        FROM team_members
        WHERE is_active = TRUE
        ORDER BY display_order
    `
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

	var out []*models.TeamMember
	for rows.Next() {
		var m models.TeamMember
		err := rows.Scan(
			&m.ID, &m.Name, &m.Position, &m.Bio, &m.ImageURL,
			&m.Facebook, &m.Instagram, &m.Twitter, &m.IsActive, &m.DisplayOrder,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

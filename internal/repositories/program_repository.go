package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type ProgramRepository interface {
	Create(ctx context.Context, p *models.Program) error
	GetBySlug(ctx context.Context, slug string) (*models.Program, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Program, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListActive(ctx context.Context, limit int) ([]*models.Program, error)
	ListRelated(ctx context.Context, excludeID uuid.UUID, limit int) ([]*models.Program, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type programRepository struct {
	db DB
}

func NewProgramRepository(db DB) ProgramRepository {
	return &programRepository{db: db}
}

const baseSelectProgram = `
    SELECT id, title, slug, short_description, content, image_url,
           is_active, created_at, updated_at
    FROM programs
`

func scanProgram(row pgx.Row) (*models.Program, error) {
	var p models.Program
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.ShortDescription,
		&p.Content,
		&p.ImageURL,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *programRepository) Create(ctx context.Context, p *models.Program) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO programs
            (id, title, slug, short_description, content, image_url, is_active, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7, NOW(), NOW())
    `,
		p.ID,
		p.Title,
		p.Slug,
		p.ShortDescription,
		p.Content,
		p.ImageURL,
		p.IsActive,
	)
	return err
}

func (r *programRepository) GetBySlug(ctx context.Context, slug string) (*models.Program, error) {
	row := r.db.QueryRow(ctx, baseSelectProgram+" WHERE slug = $1 AND is_active = TRUE", slug)
	p, err := scanProgram(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *programRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Program, error) {
	row := r.db.QueryRow(ctx, baseSelectProgram+" WHERE id = $1 AND is_active = TRUE", id)
	p, err := scanProgram(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *programRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM programs WHERE slug = $1`, slug).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *programRepository) ListActive(ctx context.Context, limit int) ([]*models.Program, error) {
	q := baseSelectProgram + " WHERE is_active = TRUE ORDER BY created_at DESC"
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

	var out []*models.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *programRepository) ListRelated(ctx context.Context, excludeID uuid.UUID, limit int) ([]*models.Program, error) {
	rows, err := r.db.Query(ctx,
		baseSelectProgram+" WHERE is_active = TRUE AND id <> $1 ORDER BY created_at DESC LIMIT $2",
		excludeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

type ParticipationRepository interface {
	// GetOrCreate enrolls the member in the program, or returns the
	// existing row. The bool reports whether a new row was created.
	GetOrCreate(ctx context.Context, memberID, programID uuid.UUID) (*models.ProgramParticipation, bool, error)
	// ListForMember returns participations joined with their programs,
	// newest enrollment first. Filters by status when status != "".
	ListForMember(ctx context.Context, memberID uuid.UUID, status string) ([]*models.ProgramParticipation, error)
	ListProgramIDsForMember(ctx context.Context, memberID uuid.UUID) ([]uuid.UUID, error)
	CountForMember(ctx context.Context, memberID uuid.UUID) (int, error)
}

type participationRepository struct {
	db DB
}

func NewParticipationRepository(db DB) ParticipationRepository {
	return &participationRepository{db: db}
}

func (r *participationRepository) GetOrCreate(ctx context.Context, memberID, programID uuid.UUID) (*models.ProgramParticipation, bool, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, member_id, program_id, status, role, enrolled_at
        FROM program_participations
        WHERE member_id = $1 AND program_id = $2
    `, memberID, programID)

	var existing models.ProgramParticipation
	err := row.Scan(&existing.ID, &existing.MemberID, &existing.ProgramID,
		&existing.Status, &existing.Role, &existing.EnrolledAt)
	if err == nil {
		return &existing, false, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, err
	}

	p := &models.ProgramParticipation{
		ID:        uuid.New(),
		MemberID:  memberID,
		ProgramID: programID,
		Status:    models.ParticipationActive,
		Role:      models.RoleParticipant,
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO program_participations (id, member_id, program_id, status, role, enrolled_at)
        VALUES ($1,$2,$3,$4,$5, NOW())
        ON CONFLICT (member_id, program_id) DO NOTHING
    `,
		p.ID, p.MemberID, p.ProgramID, p.Status, p.Role)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func (r *participationRepository) ListForMember(ctx context.Context, memberID uuid.UUID, status string) ([]*models.ProgramParticipation, error) {
	q := `
        SELECT pp.id, pp.member_id, pp.program_id, pp.status, pp.role, pp.enrolled_at,
               p.id, p.title, p.slug, p.short_description, p.content, p.image_url,
               p.is_active, p.created_at, p.updated_at
        FROM program_participations pp
        JOIN programs p ON p.id = pp.program_id
        WHERE pp.member_id = $1
    `
	args := []interface{}{memberID}
	if status != "" {
		q += " AND pp.status = $2"
		args = append(args, status)
	}
	q += " ORDER BY pp.enrolled_at DESC"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ProgramParticipation
	for rows.Next() {
		var pp models.ProgramParticipation
		var p models.Program
		err := rows.Scan(
			&pp.ID, &pp.MemberID, &pp.ProgramID, &pp.Status, &pp.Role, &pp.EnrolledAt,
			&p.ID, &p.Title, &p.Slug, &p.ShortDescription, &p.Content, &p.ImageURL,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		pp.Program = &p
		out = append(out, &pp)
	}
	return out, rows.Err()
}

func (r *participationRepository) ListProgramIDsForMember(ctx context.Context, memberID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT program_id FROM program_participations WHERE member_id = $1`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *participationRepository) CountForMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM program_participations WHERE member_id = $1`, memberID).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

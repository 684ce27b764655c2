package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

type ContactRepository interface {
	Create(ctx context.Context, m *models.ContactMessage) error
	ListUnread(ctx context.Context) ([]*models.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type contactRepository struct {
	db DB
}

func NewContactRepository(db DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, m *models.ContactMessage) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO contact_messages (id, name, email, subject, message, is_read, created_at)
        VALUES ($1,$2,$3,$4,$5, FALSE, NOW())
    `,
		m.ID, m.Name, m.Email, m.Subject, m.Message)
	return err
}

func (r *contactRepository) ListUnread(ctx context.Context) ([]*models.ContactMessage, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, name, email, subject, message, is_read, created_at
        FROM contact_messages
        WHERE is_read = FALSE
        ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *contactRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE contact_messages SET is_read = TRUE WHERE id = $1`, id)
	return err
}

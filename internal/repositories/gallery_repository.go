package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

func placeholder(n int) string { return fmt.Sprintf("$%d", n) }

type GalleryRepository interface {
	CreateCategory(ctx context.Context, c *models.GalleryCategory) error
	ListCategories(ctx context.Context) ([]*models.GalleryCategory, error)

	CreateImage(ctx context.Context, img *models.GalleryImage) error
	// ListImages returns newest-first images, optionally filtered by
	// category name. limit <= 0 means no limit.
	ListImages(ctx context.Context, category string, limit int) ([]*models.GalleryImage, error)
}

type galleryRepository struct {
	db DB
}

func NewGalleryRepository(db DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) CreateCategory(ctx context.Context, c *models.GalleryCategory) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO gallery_categories (id, name) VALUES ($1, $2)`,
		c.ID, c.Name)
	return err
}

func (r *galleryRepository) ListCategories(ctx context.Context) ([]*models.GalleryCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM gallery_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.GalleryCategory
	for rows.Next() {
		var c models.GalleryCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *galleryRepository) CreateImage(ctx context.Context, img *models.GalleryImage) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO gallery_images (id, title, category_id, image_url, description, created_at)
        VALUES ($1,$2,$3,$4,$5, NOW())
    `,
		img.ID, img.Title, img.CategoryID, img.ImageURL, img.Description)
	return err
}

func (r *galleryRepository) ListImages(ctx context.Context, category string, limit int) ([]*models.GalleryImage, error) {
	q := `
        SELECT i.id, i.title, i.category_id, c.name, i.image_url, i.description, i.created_at
        FROM gallery_images i
        JOIN gallery_categories c ON c.id = i.category_id
    `
	args := []interface{}{}
	if category != "" {
		q += " WHERE c.name = $1"
		args = append(args, category)
	}
	q += " ORDER BY i.created_at DESC"
	if limit > 0 {
		q += " LIMIT " + placeholder(len(args)+1)
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.GalleryImage
	for rows.Next() {
		img, err := scanGalleryImage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func scanGalleryImage(row pgx.Row) (*models.GalleryImage, error) {
	var img models.GalleryImage
	err := row.Scan(
		&img.ID,
		&img.Title,
		&img.CategoryID,
		&img.Category,
		&img.ImageURL,
		&img.Description,
		&img.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type GalleryCategory struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type GalleryImage struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	CategoryID  uuid.UUID `json:"category_id"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

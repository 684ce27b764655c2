package models

import "github.com/google/uuid"

type TeamMember struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	Bio          string    `json:"bio"`
	ImageURL     string    `json:"image_url"`
	Facebook     string    `json:"facebook,omitempty"`
	Instagram    string    `json:"instagram,omitempty"`
	Twitter      string    `json:"twitter,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
}

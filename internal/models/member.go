package models

import (
	"time"

	"github.com/google/uuid"
)

// Member is a registered portal account. PasswordHash is bcrypt and is
// never serialized.
type Member struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	JoinedAt     time.Time `json:"joined_at"`
}

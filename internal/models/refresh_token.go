package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken backs a member session. Removed on logout, replaced on
// refresh, swept daily once expired.
type RefreshToken struct {
	ID        uuid.UUID
	MemberID  uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

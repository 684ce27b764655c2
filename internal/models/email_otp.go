package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailOTP is one row of the email_otps table: a single issuance of a
// verification code with its lifecycle metadata. Rows for the same
// email are kept as history; only the latest one is ever checked.
type EmailOTP struct {
	ID        uuid.UUID
	Email     string
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
	Attempts  int
	Verified  bool
}

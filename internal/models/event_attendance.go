package models

import (
	"time"

	"github.com/google/uuid"
)

// EventAttendance statuses
const (
	AttendanceRegistered = "registered"
	AttendanceCancelled  = "cancelled"
	AttendanceAttended   = "attended"
)

// EventAttendance links a member to an event. One row per (member, event).
type EventAttendance struct {
	ID           uuid.UUID `json:"id"`
	MemberID     uuid.UUID `json:"member_id"`
	EventID      uuid.UUID `json:"event_id"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`

	// Joined event fields for listing responses
	Event *Event `json:"event,omitempty"`
}

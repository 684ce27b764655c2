package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgramParticipation statuses and roles
const (
	ParticipationActive    = "active"
	ParticipationCompleted = "completed"
	ParticipationDropped   = "dropped"

	RoleParticipant = "participant"
	RoleVolunteer   = "volunteer"
)

// ProgramParticipation links a member to a program. One row per (member, program).
type ProgramParticipation struct {
	ID         uuid.UUID `json:"id"`
	MemberID   uuid.UUID `json:"member_id"`
	ProgramID  uuid.UUID `json:"program_id"`
	Status     string    `json:"status"`
	Role       string    `json:"role"`
	EnrolledAt time.Time `json:"enrolled_at"`

	Program *Program `json:"program,omitempty"`
}

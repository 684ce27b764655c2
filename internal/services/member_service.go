package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/binit-singh7/shanti-yuwa-club/internal/config"
	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
	"github.com/binit-singh7/shanti-yuwa-club/internal/repositories"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// Dashboard aggregates the member portal landing data.
type Dashboard struct {
	Member         *models.Member                 `json:"member"`
	UpcomingEvents []*models.EventAttendance      `json:"upcoming_events"`
	ActivePrograms []*models.ProgramParticipation `json:"active_programs"`
	EventsAttended int                            `json:"events_attended"`
	ProgramsJoined int                            `json:"programs_joined"`
}

// ---------------------------------------------------------------------
// MemberService interface
// ---------------------------------------------------------------------
type MemberService interface {
	// Register creates an account. The email must have completed OTP
	// verification first; otherwise ErrEmailNotVerified is returned.
	Register(ctx context.Context, email, password, firstName, lastName, phone string) (*models.Member, error)

	// Login returns the member on success, ErrInvalidCredentials on
	// unknown email or wrong password.
	Login(ctx context.Context, email, password string) (*models.Member, error)

	GetDashboard(ctx context.Context, memberID uuid.UUID) (*Dashboard, error)
	GetProfile(ctx context.Context, memberID uuid.UUID) (*models.Member, error)
	UpdateProfile(ctx context.Context, memberID uuid.UUID, firstName, lastName, phone, bio, avatarURL string) (*models.Member, error)

	ListEvents(ctx context.Context, memberID uuid.UUID, status string) ([]*models.EventAttendance, error)
	RegisterForEvent(ctx context.Context, memberID, eventID uuid.UUID) (*models.EventAttendance, error)
	CancelEventRegistration(ctx context.Context, memberID, eventID uuid.UUID) error

	// GetProgramOverview returns everything the member programs page
	// needs: all active programs, the member's enrolled program IDs,
	// and the full enrollment history.
	GetProgramOverview(ctx context.Context, memberID uuid.UUID) (*ProgramOverview, error)
	EnrollInProgram(ctx context.Context, memberID uuid.UUID, programSlug string) (*models.ProgramParticipation, error)
}

// ProgramOverview backs the member programs page.
type ProgramOverview struct {
	AllPrograms        []*models.Program              `json:"all_programs"`
	EnrolledProgramIDs []uuid.UUID                    `json:"enrolled_program_ids"`
	History            []*models.ProgramParticipation `json:"history"`
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------
type memberService struct {
	memberRepo        repositories.MemberRepository
	otpRepo           repositories.OTPRepository
	eventRepo         repositories.EventRepository
	programRepo       repositories.ProgramRepository
	attendanceRepo    repositories.AttendanceRepository
	participationRepo repositories.ParticipationRepository
	cfg               *config.Config
}

func NewMemberService(
	memberRepo repositories.MemberRepository,
	otpRepo repositories.OTPRepository,
	eventRepo repositories.EventRepository,
	programRepo repositories.ProgramRepository,
	attendanceRepo repositories.AttendanceRepository,
	participationRepo repositories.ParticipationRepository,
	cfg *config.Config,
) MemberService {
	return &memberService{
		memberRepo:        memberRepo,
		otpRepo:           otpRepo,
		eventRepo:         eventRepo,
		programRepo:       programRepo,
		attendanceRepo:    attendanceRepo,
		participationRepo: participationRepo,
		cfg:               cfg,
	}
}

/* ------------------------------------------------------------------
   Account lifecycle
------------------------------------------------------------------- */

func (s *memberService) Register(ctx context.Context, email, password, firstName, lastName, phone string) (*models.Member, error) {
	email = utils.NormalizeEmail(email)

	if !utils.ValidateEmail(ctx, email, s.cfg.ValidateEmailMX) {
		return nil, utils.ErrInvalidEmail
	}

	verified, err := s.otpRepo.HasVerifiedEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, utils.ErrEmailNotVerified
	}

	existing, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrEmailExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	m := &models.Member{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
		JoinedAt:     time.Now(),
	}
	if err := s.memberRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	utils.Logger.Infof("Registered member %s (%s)", m.ID, m.Email)
	return m, nil
}

func (s *memberService) Login(ctx context.Context, email, password string) (*models.Member, error) {
	email = utils.NormalizeEmail(email)

	m, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// Run the hash check even without a match, so unknown and known
	// emails take comparable time.
	if m == nil {
		_ = utils.CheckPasswordHash(password, "$2a$12$CCCCCCCCCCCCCCCCCCCCCOnfyS3uEHYy1vC3RMrVUjQpUo9g7pK7m")
		return nil, utils.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, m.PasswordHash) {
		return nil, utils.ErrInvalidCredentials
	}
	return m, nil
}

/* ------------------------------------------------------------------
   Portal
------------------------------------------------------------------- */

func (s *memberService) GetDashboard(ctx context.Context, memberID uuid.UUID) (*Dashboard, error) {
	m, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.attendanceRepo.ListUpcomingForMember(ctx, memberID, time.Now(), 5)
	if err != nil {
		return nil, err
	}

	active, err := s.participationRepo.ListForMember(ctx, memberID, models.ParticipationActive)
	if err != nil {
		return nil, err
	}

	attended, err := s.attendanceRepo.CountForMember(ctx, memberID, models.AttendanceAttended)
	if err != nil {
		return nil, err
	}

	joined, err := s.participationRepo.CountForMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Member:         m,
		UpcomingEvents: upcoming,
		ActivePrograms: active,
		EventsAttended: attended,
		ProgramsJoined: joined,
	}, nil
}

func (s *memberService) GetProfile(ctx context.Context, memberID uuid.UUID) (*models.Member, error) {
	return s.memberRepo.GetByID(ctx, memberID)
}

func (s *memberService) UpdateProfile(ctx context.Context, memberID uuid.UUID, firstName, lastName, phone, bio, avatarURL string) (*models.Member, error) {
	m, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	m.FirstName = firstName
	m.LastName = lastName
	m.Phone = phone
	m.Bio = bio
	m.AvatarURL = avatarURL

	if err := s.memberRepo.UpdateProfile(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

/* ------------------------------------------------------------------
   Events
------------------------------------------------------------------- */

func (s *memberService) ListEvents(ctx context.Context, memberID uuid.UUID, status string) ([]*models.EventAttendance, error) {
	return s.attendanceRepo.ListForMember(ctx, memberID, status)
}

func (s *memberService) RegisterForEvent(ctx context.Context, memberID, eventID uuid.UUID) (*models.EventAttendance, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil || !event.IsActive {
		return nil, &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Event not found"}
	}
	if event.Date.Before(time.Now()) {
		return nil, &utils.AppError{StatusCode: http.StatusUnprocessableEntity, Code: utils.ErrCodeValidation, Message: "Event has already taken place"}
	}

	att, created, err := s.attendanceRepo.GetOrCreate(ctx, memberID, eventID)
	if err != nil {
		return nil, err
	}
	// Re-registering after a cancellation flips the row back.
	if !created && att.Status == models.AttendanceCancelled {
		if err := s.attendanceRepo.SetStatus(ctx, att.ID, models.AttendanceRegistered); err != nil {
			return nil, err
		}
		att.Status = models.AttendanceRegistered
	}
	att.Event = event
	return att, nil
}

func (s *memberService) CancelEventRegistration(ctx context.Context, memberID, eventID uuid.UUID) error {
	att, err := s.attendanceRepo.Get(ctx, memberID, eventID)
	if err != nil {
		return err
	}
	if att == nil {
		return &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Registration not found"}
	}
	if att.Status != models.AttendanceRegistered {
		return &utils.AppError{StatusCode: http.StatusUnprocessableEntity, Code: utils.ErrCodeValidation, Message: "Registration is not active"}
	}
	return s.attendanceRepo.SetStatus(ctx, att.ID, models.AttendanceCancelled)
}

/* ------------------------------------------------------------------
   Programs
------------------------------------------------------------------- */

func (s *memberService) GetProgramOverview(ctx context.Context, memberID uuid.UUID) (*ProgramOverview, error) {
	all, err := s.programRepo.ListActive(ctx, 0)
	if err != nil {
		return nil, err
	}
	enrolledIDs, err := s.participationRepo.ListProgramIDsForMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	history, err := s.participationRepo.ListForMember(ctx, memberID, "")
	if err != nil {
		return nil, err
	}
	return &ProgramOverview{
		AllPrograms:        all,
		EnrolledProgramIDs: enrolledIDs,
		History:            history,
	}, nil
}

func (s *memberService) EnrollInProgram(ctx context.Context, memberID uuid.UUID, programSlug string) (*models.ProgramParticipation, error) {
	program, err := s.programRepo.GetBySlug(ctx, programSlug)
	if err != nil {
		return nil, err
	}
	if program == nil || !program.IsActive {
		return nil, &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Program not found"}
	}

	part, _, err := s.participationRepo.GetOrCreate(ctx, memberID, program.ID)
	if err != nil {
		return nil, err
	}
	part.Program = program
	return part, nil
}

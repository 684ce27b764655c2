package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/binit-singh7/shanti-yuwa-club/internal/config"
	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// ------------------------------------------------------------
// Fakes
// ------------------------------------------------------------
type fakeMemberRepo struct {
	members map[uuid.UUID]*models.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[uuid.UUID]*models.Member)}
}

func (f *fakeMemberRepo) Create(_ context.Context, m *models.Member) error {
	cp := *m
	f.members[m.ID] = &cp
	return nil
}

func (f *fakeMemberRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMemberRepo) GetByEmail(_ context.Context, email string) (*models.Member, error) {
	for _, m := range f.members {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberRepo) UpdateProfile(_ context.Context, m *models.Member) error {
	cp := *m
	f.members[m.ID] = &cp
	return nil
}

func newTestMemberService() (*memberService, *fakeMemberRepo, *fakeOTPRepo) {
	memberRepo := newFakeMemberRepo()
	otpRepo := newFakeOTPRepo()
	cfg := &config.Config{ValidateEmailMX: false}
	svc := NewMemberService(memberRepo, otpRepo, nil, nil, nil, nil, cfg).(*memberService)
	return svc, memberRepo, otpRepo
}

func markEmailVerified(repo *fakeOTPRepo, email string) {
	id := uuid.New()
	repo.records[id] = &models.EmailOTP{
		ID:        id,
		Email:     email,
		Code:      "123456",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(10 * time.Minute),
		Verified:  true,
	}
}

// ------------------------------------------------------------
// Register
// ------------------------------------------------------------
func TestRegisterRequiresVerifiedEmail(t *testing.T) {
	svc, _, _ := newTestMemberService()

	_, err := svc.Register(context.Background(), "binit@example.com", "s3cretpass", "Binit", "Singh", "")
	require.ErrorIs(t, err, utils.ErrEmailNotVerified)
}

func TestRegisterAfterVerification(t *testing.T) {
	svc, memberRepo, otpRepo := newTestMemberService()
	ctx := context.Background()

	markEmailVerified(otpRepo, "binit@example.com")

	m, err := svc.Register(ctx, "  Binit@Example.com ", "s3cretpass", "Binit", "Singh", "+9779812345678")
	require.NoError(t, err)
	require.Equal(t, "binit@example.com", m.Email)
	require.NotEqual(t, "s3cretpass", m.PasswordHash)

	stored, err := memberRepo.GetByEmail(ctx, "binit@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.True(t, utils.CheckPasswordHash("s3cretpass", stored.PasswordHash))
}

// Verification records and member accounts are keyed by the same
// normalized email, so a mixed-case signup must pass the gate.
func TestRegisterAcceptsMixedCaseVerifiedEmail(t *testing.T) {
	memberRepo := newFakeMemberRepo()
	otpRepo := newFakeOTPRepo()
	cfg := &config.Config{
		OrganizationName: config.OrganizationName,
		OTPCodeLength:    config.OTPCodeLength,
		OTPExpiry:        config.OTPExpiry,
		OTPMaxAttempts:   config.OTPMaxAttempts,
	}
	otpSvc := NewOTPService(otpRepo, &fakeMailer{}, cfg).(*otpService)
	memberSvc := NewMemberService(memberRepo, otpRepo, nil, nil, nil, nil, cfg).(*memberService)
	ctx := context.Background()

	rec, err := otpSvc.Issue(ctx, "Binit@Example.com")
	require.NoError(t, err)
	require.Equal(t, "binit@example.com", rec.Email)

	res, err := otpSvc.Verify(ctx, "BINIT@example.COM", rec.Code)
	require.NoError(t, err)
	require.Equal(t, OutcomeSuccess, res.Outcome)

	m, err := memberSvc.Register(ctx, "Binit@Example.com", "s3cretpass", "Binit", "Singh", "")
	require.NoError(t, err)
	require.Equal(t, "binit@example.com", m.Email)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, otpRepo := newTestMemberService()
	ctx := context.Background()

	markEmailVerified(otpRepo, "binit@example.com")

	_, err := svc.Register(ctx, "binit@example.com", "s3cretpass", "Binit", "Singh", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "binit@example.com", "otherpass1", "Binit", "Singh", "")
	require.ErrorIs(t, err, utils.ErrEmailExists)
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	svc, _, _ := newTestMemberService()

	_, err := svc.Register(context.Background(), "not-an-email", "s3cretpass", "Binit", "Singh", "")
	require.ErrorIs(t, err, utils.ErrInvalidEmail)
}

// ------------------------------------------------------------
// Login
// ------------------------------------------------------------
func TestLoginSuccessAndFailure(t *testing.T) {
	svc, _, otpRepo := newTestMemberService()
	ctx := context.Background()

	markEmailVerified(otpRepo, "binit@example.com")
	_, err := svc.Register(ctx, "binit@example.com", "s3cretpass", "Binit", "Singh", "")
	require.NoError(t, err)

	m, err := svc.Login(ctx, "binit@example.com", "s3cretpass")
	require.NoError(t, err)
	require.Equal(t, "binit@example.com", m.Email)

	_, err = svc.Login(ctx, "binit@example.com", "wrongpass1")
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "s3cretpass")
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

// ------------------------------------------------------------
// Profile
// ------------------------------------------------------------
func TestUpdateProfile(t *testing.T) {
	svc, _, otpRepo := newTestMemberService()
	ctx := context.Background()

	markEmailVerified(otpRepo, "binit@example.com")
	m, err := svc.Register(ctx, "binit@example.com", "s3cretpass", "Binit", "Singh", "")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, m.ID, "Binit", "Singh", "+9779812345678", "Yoga volunteer", "")
	require.NoError(t, err)
	require.Equal(t, "Yoga volunteer", updated.Bio)

	fetched, err := svc.GetProfile(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, "+9779812345678", fetched.Phone)
}

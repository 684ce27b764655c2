package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/binit-singh7/shanti-yuwa-club/internal/config"
	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// ------------------------------------------------------------
// In-memory fakes
// ------------------------------------------------------------
type fakeOTPRepo struct {
	records map[uuid.UUID]*models.EmailOTP
	failing bool
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{records: make(map[uuid.UUID]*models.EmailOTP)}
}

func (f *fakeOTPRepo) Create(_ context.Context, rec *models.EmailOTP) error {
	if f.failing {
		return errors.New("connection refused")
	}
	cp := *rec
	f.records[rec.ID] = &cp
	return nil
}

func (f *fakeOTPRepo) GetLatest(_ context.Context, email string) (*models.EmailOTP, error) {
	var matches []*models.EmailOTP
	for _, r := range f.records {
		if r.Email == email {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	cp := *matches[0]
	return &cp, nil
}

func (f *fakeOTPRepo) DeleteUnverified(_ context.Context, email string) error {
	for id, r := range f.records {
		if r.Email == email && !r.Verified {
			delete(f.records, id)
		}
	}
	return nil
}

func (f *fakeOTPRepo) IncrementAttempts(_ context.Context, id uuid.UUID) (int, error) {
	r, ok := f.records[id]
	if !ok {
		return 0, utils.ErrNoRowsUpdated
	}
	r.Attempts++
	return r.Attempts, nil
}

func (f *fakeOTPRepo) MarkVerified(_ context.Context, id uuid.UUID) error {
	r, ok := f.records[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	r.Verified = true
	return nil
}

func (f *fakeOTPRepo) HasVerifiedEmail(_ context.Context, email string) (bool, error) {
	for _, r := range f.records {
		if r.Email == email && r.Verified {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOTPRepo) SweepExpired(_ context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	var n int64
	for id, r := range f.records {
		if r.ExpiresAt.Before(cutoff) {
			delete(f.records, id)
			n++
		}
	}
	return n, nil
}

type fakeMailer struct {
	sent     []string // "to|subject"
	lastHTML string
	failing  bool
}

func (f *fakeMailer) Send(_ context.Context, to, subject, _, htmlBody string) error {
	if f.failing {
		return errors.New("sendgrid unavailable")
	}
	f.sent = append(f.sent, to+"|"+subject)
	f.lastHTML = htmlBody
	return nil
}

func newTestOTPService() (*otpService, *fakeOTPRepo, *fakeMailer) {
	repo := newFakeOTPRepo()
	mailer := &fakeMailer{}
	cfg := &config.Config{
		OrganizationName:  config.OrganizationName,
		OTPCodeLength:     config.OTPCodeLength,
		OTPExpiry:         config.OTPExpiry,
		OTPMaxAttempts:    config.OTPMaxAttempts,
		OTPResendCooldown: config.OTPResendCooldown,
		OTPSweepRetention: config.OTPSweepRetention,
	}
	return NewOTPService(repo, mailer, cfg).(*otpService), repo, mailer
}

// ------------------------------------------------------------
// (A) Issue
// ------------------------------------------------------------
func TestIssueCreatesAndDispatchesCode(t *testing.T) {
	svc, repo, mailer := newTestOTPService()
	ctx := context.Background()

	rec, err := svc.Issue(ctx, "binit@example.com")
	require.NoError(t, err)
	require.Len(t, rec.Code, 6)
	require.WithinDuration(t, time.Now().Add(10*time.Minute), rec.ExpiresAt, 2*time.Second)

	stored, err := repo.GetLatest(ctx, "binit@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, rec.Code, stored.Code)
	require.Zero(t, stored.Attempts)
	require.False(t, stored.Verified)

	require.Len(t, mailer.sent, 1)
	require.Equal(t, "binit@example.com|Shanti Yuwa Club - Email Verification OTP", mailer.sent[0])
}

func TestIssueInvalidatesPriorUnverifiedCode(t *testing.T) {
	svc, repo, _ := newTestOTPService()
	ctx := context.Background()

	first, err := svc.Issue(ctx, "binit@example.com")
	require.NoError(t, err)

	// Make ordering unambiguous in the fake.
	repo.records[first.ID].CreatedAt = time.Now().Add(-time.Minute)

	second, err := svc.Issue(ctx, "binit@example.com")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	// The old code is gone entirely, so only the new one can verify.
	res, err := svc.Verify(ctx, "binit@example.com", first.Code)
	require.NoError(t, err)
	if first.Code != second.Code {
		require.Equal(t, OutcomeMismatch, res.Outcome)
	}

	res, err = svc.Verify(ctx, "binit@example.com", second.Code)
	require.NoError(t, err)
	require.Equal(t, OutcomeSuccess, res.Outcome)
	require.Len(t, repo.records, 1)
}

func TestIssueSurfacesPersistAndDispatchFailures(t *testing.T) {
	svc, repo, mailer := newTestOTPService()
	ctx := context.Background()

	repo.failing = true
	_, err := svc.Issue(ctx, "binit@example.com")
	require.ErrorIs(t, err, utils.ErrPersistFailed)
	require.Empty(t, mailer.sent)

	repo.failing = false
	mailer.failing = true
	_, err = svc.Issue(ctx, "binit@example.com")
	require.ErrorIs(t, err, utils.ErrDispatchFailed)
}

// ------------------------------------------------------------
// (B) Verify state machine
// ------------------------------------------------------------
func TestVerifyHappyPathThenAlreadyUsed(t *testing.T) {
	svc, _, _ := newTestOTPService()
	ctx := context.Background()

	rec, err := svc.Issue(ctx, "binit@example.com")
	require.NoError(t, err)

	res, err := svc.Verify(ctx, "binit@example.com", "  "+rec.Code+" ")
	require.NoError(t, err)
	require.Equal(t, OutcomeSuccess, res.Outcome)
	require.Equal(t, "Email verified successfully!", res.Message)

	// Second use of the same code is rejected without burning attempts.
	res, err = svc.Verify(ctx, "binit@example.com", rec.Code)
	require.NoError(t, err)
	require.Equal(t, OutcomeAlreadyUsed, res.Outcome)
	require.Equal(t, "This OTP has already been used.", res.Message)
}

func TestVerifyNoRecord(t *testing.T) {
	svc, _, _ := newTestOTPService()

	res, err := svc.Verify(context.Background(), "nobody@example.com", "123456")
	require.NoError(t, err)
	require.Equal(t, OutcomeNotFound, res.Outcome)
	require.Equal(t, "No OTP found for this email. Please request a new one.", res.Message)
}

func TestVerifyAttemptBudget(t *testing.T) {
	svc, repo, _ := newTestOTPService()
	ctx := context.Background()

	rec, err := svc.Issue(ctx, "binit@example.com")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == rec.Code {
		wrong = "000001"
	}

	for i := 1; i <= 5; i++ {
		res, err := svc.Verify(ctx, "binit@example.com", wrong)
		require.NoError(t, err)
		require.Equal(t, OutcomeMismatch, res.Outcome)
		require.Equal(t, 5-i, res.AttemptsLeft)
		require.Equal(t, fmt.Sprintf("Invalid OTP. Attempts remaining: %d", 5-i), res.Message)
	}

	// Sixth attempt is over budget even with the correct code.
	res, err := svc.Verify(ctx, "binit@example.com", rec.Code)
	require.NoError(t, err)
	require.Equal(t, OutcomeTooManyAttempts, res.Outcome)
	require.Equal(t, "Too many failed attempts. Please request a new OTP.", res.Message)

	stored, err := repo.GetLatest(ctx, "binit@example.com")
	require.NoError(t, err)
	require.False(t, stored.Verified)
	require.Equal(t, 6, stored.Attempts)
}

func TestVerifyExpiredDoesNotBurnAttempts(t *testing.T) {
	svc, repo, _ := newTestOTPService()
	ctx := context.Background()

	rec, err := svc.Issue(ctx, "binit@example.com")
	require.NoError(t, err)
	repo.records[rec.ID].ExpiresAt = time.Now().Add(-time.Second)

	res, err := svc.Verify(ctx, "binit@example.com", rec.Code)
	require.NoError(t, err)
	require.Equal(t, OutcomeExpired, res.Outcome)
	require.Equal(t, "OTP has expired. Please request a new one.", res.Message)
	require.Zero(t, repo.records[rec.ID].Attempts)
}

// ------------------------------------------------------------
// (C) Resend cooldown
// ------------------------------------------------------------
func TestResendBlockedInsideCooldown(t *testing.T) {
	svc, _, mailer := newTestOTPService()
	ctx := context.Background()

	_, err := svc.Issue(ctx, "binit@example.com")
	require.NoError(t, err)

	_, err = svc.Resend(ctx, "binit@example.com")
	require.ErrorIs(t, err, utils.ErrResendCooldown)
	require.Len(t, mailer.sent, 1)
}

func TestResendAllowedAfterCooldown(t *testing.T) {
	svc, repo, mailer := newTestOTPService()
	ctx := context.Background()

	rec, err := svc.Issue(ctx, "binit@example.com")
	require.NoError(t, err)
	repo.records[rec.ID].CreatedAt = time.Now().Add(-61 * time.Second)

	fresh, err := svc.Resend(ctx, "binit@example.com")
	require.NoError(t, err)
	require.NotEqual(t, rec.ID, fresh.ID)
	require.Len(t, mailer.sent, 2)
}

func TestResendCooldownAppliesToVerifiedRecord(t *testing.T) {
	svc, repo, _ := newTestOTPService()
	ctx := context.Background()

	rec, err := svc.Issue(ctx, "binit@example.com")
	require.NoError(t, err)
	repo.records[rec.ID].Verified = true

	// The cooldown looks at the latest record regardless of state.
	_, err = svc.Resend(ctx, "binit@example.com")
	require.ErrorIs(t, err, utils.ErrResendCooldown)
}

func TestResendWithNoPriorRecordIssuesImmediately(t *testing.T) {
	svc, _, mailer := newTestOTPService()

	rec, err := svc.Resend(context.Background(), "fresh@example.com")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Len(t, mailer.sent, 1)
}

// ------------------------------------------------------------
// (D) Sweep
// ------------------------------------------------------------
func TestSweepExpiredHonorsRetention(t *testing.T) {
	svc, repo, _ := newTestOTPService()
	ctx := context.Background()

	old, err := svc.Issue(ctx, "old@example.com")
	require.NoError(t, err)
	repo.records[old.ID].ExpiresAt = time.Now().Add(-2 * time.Hour)

	recent, err := svc.Issue(ctx, "recent@example.com")
	require.NoError(t, err)
	repo.records[recent.ID].ExpiresAt = time.Now().Add(-30 * time.Minute)

	live, err := svc.Issue(ctx, "live@example.com")
	require.NoError(t, err)

	n, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	// Recently-expired and live records both survive the sweep.
	_, stillRecent := repo.records[recent.ID]
	_, stillLive := repo.records[live.ID]
	require.True(t, stillRecent)
	require.True(t, stillLive)
	_, gone := repo.records[old.ID]
	require.False(t, gone)
}

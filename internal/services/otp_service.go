package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/binit-singh7/shanti-yuwa-club/internal/config"
	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
	"github.com/binit-singh7/shanti-yuwa-club/internal/repositories"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// VerifyOutcome classifies the result of a verification attempt.
type VerifyOutcome string

const (
	OutcomeSuccess         VerifyOutcome = "success"
	OutcomeNotFound        VerifyOutcome = "not_found"
	OutcomeExpired         VerifyOutcome = "expired"
	OutcomeAlreadyUsed     VerifyOutcome = "already_used"
	OutcomeTooManyAttempts VerifyOutcome = "too_many_attempts"
	OutcomeMismatch        VerifyOutcome = "mismatch"
)

// VerifyResult carries the outcome plus the user-facing message.
// AttemptsLeft is meaningful only for OutcomeMismatch.
type VerifyResult struct {
	Outcome      VerifyOutcome
	Message      string
	AttemptsLeft int
}

// ---------------------------------------------------------------------
// OTPService interface
// ---------------------------------------------------------------------
type OTPService interface {
	// Issue invalidates prior unverified codes for the email, creates
	// a fresh one and dispatches it. Returns ErrPersistFailed or
	// ErrDispatchFailed; callers surface both as one generic failure.
	Issue(ctx context.Context, email string) (*models.EmailOTP, error)

	// Verify checks a submitted code against the latest record for the
	// email. The returned error is reserved for infrastructure faults;
	// every user-level condition is a VerifyResult outcome.
	Verify(ctx context.Context, email, submitted string) (VerifyResult, error)

	// Resend re-issues a code unless the latest record for the email
	// (any verification state) is younger than the cooldown, in which
	// case it returns ErrResendCooldown.
	Resend(ctx context.Context, email string) (*models.EmailOTP, error)

	// SweepExpired deletes records whose expiry is more than the
	// retention window in the past. Returns the number deleted.
	SweepExpired(ctx context.Context) (int64, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------
type otpService struct {
	repo   repositories.OTPRepository
	mailer Mailer
	cfg    *config.Config
}

func NewOTPService(repo repositories.OTPRepository, mailer Mailer, cfg *config.Config) OTPService {
	return &otpService{repo: repo, mailer: mailer, cfg: cfg}
}

func (s *otpService) Issue(ctx context.Context, email string) (*models.EmailOTP, error) {
	// Records are keyed by normalized email so the registration gate
	// matches regardless of the casing the user typed.
	email = utils.NormalizeEmail(email)

	// Only the newest code for an email is ever valid. Clearing old
	// unverified rows first also bounds storage growth.
	if err := s.repo.DeleteUnverified(ctx, email); err != nil {
		return nil, fmt.Errorf("%w: clearing stale codes: %v", utils.ErrPersistFailed, err)
	}

	now := time.Now()
	rec := &models.EmailOTP{
		ID:        uuid.New(),
		Email:     email,
		Code:      utils.RandomNumericString(s.cfg.OTPCodeLength),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.OTPExpiry),
	}

	// Persist before dispatch, so a send failure never leaves a code
	// in the user's inbox that the store has no record of.
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("%w: saving code: %v", utils.ErrPersistFailed, err)
	}

	expiresInMin := int(s.cfg.OTPExpiry.Minutes())
	subject := s.cfg.OrganizationName + " - Email Verification OTP"
	plain := fmt.Sprintf(
		"Hello,\n\nYour OTP for email verification is: %s\n\nThis code will expire in %d minutes.\n\nIf you didn't request this, please ignore this email.\n\nBest regards,\n%s Team\n",
		rec.Code, expiresInMin, s.cfg.OrganizationName,
	)
	html := fmt.Sprintf(otpEmailHTML, rec.Code, expiresInMin, now.Year())

	if err := s.mailer.Send(ctx, email, subject, plain, html); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to dispatch OTP email to %s", email)
		return nil, fmt.Errorf("%w: %v", utils.ErrDispatchFailed, err)
	}

	utils.Logger.Infof("Issued OTP for %s, expires at %s", email, rec.ExpiresAt.Format(time.RFC3339))
	return rec, nil
}

func (s *otpService) Verify(ctx context.Context, email, submitted string) (VerifyResult, error) {
	email = utils.NormalizeEmail(email)

	rec, err := s.repo.GetLatest(ctx, email)
	if err != nil {
		return VerifyResult{}, err
	}
	if rec == nil {
		return VerifyResult{
			Outcome: OutcomeNotFound,
			Message: "No OTP found for this email. Please request a new one.",
		}, nil
	}

	// The check order below is a behavioral contract: expiry before
	// verified-state before attempt budget before code comparison.
	// Expired and already-used codes never consume an attempt.
	if !time.Now().Before(rec.ExpiresAt) {
		return VerifyResult{
			Outcome: OutcomeExpired,
			Message: "OTP has expired. Please request a new one.",
		}, nil
	}

	if rec.Verified {
		return VerifyResult{
			Outcome: OutcomeAlreadyUsed,
			Message: "This OTP has already been used.",
		}, nil
	}

	// Every live attempt counts, right or wrong. Persisted before the
	// comparison so a crash afterwards still burned the attempt.
	attempts, err := s.repo.IncrementAttempts(ctx, rec.ID)
	if err != nil {
		return VerifyResult{}, err
	}

	if attempts > s.cfg.OTPMaxAttempts {
		return VerifyResult{
			Outcome: OutcomeTooManyAttempts,
			Message: "Too many failed attempts. Please request a new OTP.",
		}, nil
	}

	if strings.TrimSpace(submitted) != rec.Code {
		remaining := s.cfg.OTPMaxAttempts - attempts
		return VerifyResult{
			Outcome:      OutcomeMismatch,
			Message:      fmt.Sprintf("Invalid OTP. Attempts remaining: %d", remaining),
			AttemptsLeft: remaining,
		}, nil
	}

	if err := s.repo.MarkVerified(ctx, rec.ID); err != nil {
		return VerifyResult{}, err
	}

	utils.Logger.Infof("Email %s verified successfully", email)
	return VerifyResult{
		Outcome: OutcomeSuccess,
		Message: "Email verified successfully!",
	}, nil
}

func (s *otpService) Resend(ctx context.Context, email string) (*models.EmailOTP, error) {
	email = utils.NormalizeEmail(email)

	latest, err := s.repo.GetLatest(ctx, email)
	if err != nil {
		return nil, err
	}
	if latest != nil && time.Since(latest.CreatedAt) < s.cfg.OTPResendCooldown {
		return nil, utils.ErrResendCooldown
	}
	return s.Issue(ctx, email)
}

func (s *otpService) SweepExpired(ctx context.Context) (int64, error) {
	return s.repo.SweepExpired(ctx, s.cfg.OTPSweepRetention)
}

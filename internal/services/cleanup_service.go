package services

import (
	"context"

	"github.com/binit-singh7/shanti-yuwa-club/internal/repositories"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// CleanupService handles purging stale OTP records and refresh tokens.
type CleanupService interface {
	// SweepOTPs deletes OTP records expired beyond the retention
	// window. Runs hourly from the scheduler.
	SweepOTPs(ctx context.Context) error

	// CleanupTokens deletes expired refresh tokens. Runs daily.
	CleanupTokens(ctx context.Context) error
}

type cleanupService struct {
	otpService OTPService
	tokenRepo  repositories.TokenRepository
}

func NewCleanupService(otpService OTPService, tokenRepo repositories.TokenRepository) CleanupService {
	return &cleanupService{otpService: otpService, tokenRepo: tokenRepo}
}

func (s *cleanupService) SweepOTPs(ctx context.Context) error {
	n, err := s.otpService.SweepExpired(ctx)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to sweep expired OTP records")
		return err
	}
	if n > 0 {
		utils.Logger.Infof("Swept %d expired OTP record(s)", n)
	}
	return nil
}

func (s *cleanupService) CleanupTokens(ctx context.Context) error {
	if err := s.tokenRepo.CleanupExpiredRefreshTokens(ctx); err != nil {
		utils.Logger.WithError(err).Error("Failed to cleanup member_refresh_tokens")
		return err
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/binit-singh7/shanti-yuwa-club/internal/config"
	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
	"github.com/binit-singh7/shanti-yuwa-club/internal/repositories"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------
type JWTService interface {
	GenerateAccessToken(ctx context.Context, memberID uuid.UUID) (string, error)
	GenerateRefreshToken(ctx context.Context, memberID uuid.UUID) (*models.RefreshToken, error)

	// ParseAccessToken validates signature and expiry and returns the
	// member ID from the subject claim.
	ParseAccessToken(tokenString string) (uuid.UUID, error)

	// RefreshToken rotates a refresh token: the old one is removed and
	// a new access/refresh pair is issued for the same member.
	RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error)

	Logout(ctx context.Context, refreshTokenString string) error

	// LogoutAll revokes every session for the member.
	LogoutAll(ctx context.Context, memberID uuid.UUID) error
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------
type jwtService struct {
	secret        []byte
	tokenExpiry   time.Duration
	refreshExpiry time.Duration
	tokenRepo     repositories.TokenRepository
}

func NewJWTService(cfg *config.Config, tokenRepo repositories.TokenRepository) JWTService {
	return &jwtService{
		secret:        cfg.JWTSecret,
		tokenExpiry:   cfg.TokenExpiry,
		refreshExpiry: cfg.RefreshExpiry,
		tokenRepo:     tokenRepo,
	}
}

func (j *jwtService) GenerateAccessToken(ctx context.Context, memberID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": config.AppName,
		"sub": memberID.String(),
		"exp": now.Add(j.tokenExpiry).Unix(),
		"iat": now.Unix(),
		"jti": uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

func (j *jwtService) GenerateRefreshToken(ctx context.Context, memberID uuid.UUID) (*models.RefreshToken, error) {
	rt := &models.RefreshToken{
		ID:        uuid.New(),
		MemberID:  memberID,
		Token:     utils.RandomString(64),
		ExpiresAt: time.Now().Add(j.refreshExpiry),
		CreatedAt: time.Now(),
	}
	if err := j.tokenRepo.StoreRefreshToken(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (j *jwtService) ParseAccessToken(tokenString string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secret, nil
	}, jwt.WithIssuer(config.AppName), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return uuid.Nil, errors.New("invalid access token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid access token")
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.New("invalid access token")
	}
	memberID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("invalid access token")
	}
	return memberID, nil
}

func (j *jwtService) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	oldToken, err := j.tokenRepo.GetRefreshToken(ctx, refreshTokenString)
	if err != nil || oldToken == nil {
		utils.Logger.WithError(err).Error("invalid or missing refresh token in jwtService.RefreshToken")
		return "", "", errors.New("invalid refresh token")
	}

	if time.Now().After(oldToken.ExpiresAt) {
		utils.Logger.Error("refresh token expired in jwtService.RefreshToken")
		return "", "", errors.New("refresh token expired")
	}

	// Rotation: the presented token is single use.
	if err := j.tokenRepo.RemoveRefreshToken(ctx, oldToken.Token); err != nil {
		utils.Logger.WithError(err).Error("failed to remove old refresh token in jwtService.RefreshToken")
		return "", "", errors.New("failed to remove old token")
	}

	newAccess, err := j.GenerateAccessToken(ctx, oldToken.MemberID)
	if err != nil {
		return "", "", err
	}
	newRT, err := j.GenerateRefreshToken(ctx, oldToken.MemberID)
	if err != nil {
		return "", "", err
	}
	return newAccess, newRT.Token, nil
}

func (j *jwtService) Logout(ctx context.Context, refreshTokenString string) error {
	oldToken, err := j.tokenRepo.GetRefreshToken(ctx, refreshTokenString)
	if err != nil {
		utils.Logger.WithError(err).Error("logout fetch refresh token error in jwtService")
		return errors.New("logout server error")
	}
	if oldToken == nil {
		return nil
	}
	if err := j.tokenRepo.RemoveRefreshToken(ctx, oldToken.Token); err != nil {
		utils.Logger.WithError(err).Error("failed to remove token in jwtService.Logout")
		return errors.New("logout server error")
	}
	return nil
}

func (j *jwtService) LogoutAll(ctx context.Context, memberID uuid.UUID) error {
	if err := j.tokenRepo.RemoveAllForMember(ctx, memberID); err != nil {
		utils.Logger.WithError(err).Error("failed to remove member tokens in jwtService.LogoutAll")
		return errors.New("logout server error")
	}
	return nil
}

package dtos

import (
	"github.com/binit-singh7/shanti-yuwa-club/internal/models"
)

// ----------------------
// Requests
// ----------------------

type RegisterMemberRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type LoginMemberRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// ----------------------
// Responses
// ----------------------

type AuthResponse struct {
	Member       *models.Member `json:"member"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
